package screening

// nationalities is the fixed vocabulary used to classify a query segment
// as a nationality/country hint. Segments outside this set stay part of
// the name.
var nationalities = map[string]bool{
	"american": true, "british": true, "french": true, "german": true,
	"chinese": true, "russian": true, "iranian": true, "iraqi": true,
	"syrian": true, "afghan": true, "pakistan": true,
	"usa": true, "uk": true, "france": true, "germany": true,
	"china": true, "russia": true, "iran": true, "iraq": true,
	"syria": true, "afghanistan": true,
}
