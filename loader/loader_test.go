package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSource writes a temporary watchlist CSV and returns its path.
func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdn.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleSource = `36,"ZAWAHIRI, Ayman","individual","SDGT","Operational Leader",-0- ,-0- ,-0- ,-0- ,-0- ,-0- ,"DOB 19 Jun 1951; POB Giza, Egypt; a.k.a. 'ABU MUHAMMAD'; a.k.a. 'THE DOCTOR'; nationality Egypt; alt. ABDEL MUAZ."
2676,"AEROCARIBBEAN AIRLINES",-0- ,"CUBA",-0- ,-0- ,-0- ,-0- ,-0- ,-0- ,-0- ,-0-
short,row
5478,"HUSSEIN, Saddam","individual","IRAQ2",-0- ,-0- ,-0- ,-0- ,-0- ,-0- ,-0- ,"DOB 28 Apr 1937; POB al-Awja, Iraq; nationality Iraq."
`

func TestNewLoader(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := writeSource(t, sampleSource)
		l, err := NewLoader(path)
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := NewLoader(t.TempDir())
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})
}

func TestLoad(t *testing.T) {
	path := writeSource(t, sampleSource)
	l, err := NewLoader(path)
	require.NoError(t, err)

	entries, err := l.Load(context.Background())
	require.NoError(t, err)

	// The short row is skipped, not fatal.
	require.Len(t, entries, 3)

	t.Run("individual with full remarks", func(t *testing.T) {
		entry := entries[0]
		assert.Equal(t, "36", entry.ID)
		assert.Equal(t, "ZAWAHIRI, Ayman", entry.Name)
		assert.Equal(t, "individual", entry.Type)
		assert.Equal(t, "SDGT", entry.Program)
		assert.Equal(t, "Operational Leader", entry.Title)
		assert.True(t, entry.IsIndividual())

		assert.Equal(t, "19 Jun 1951", entry.DOB)
		assert.Equal(t, "Egypt", entry.Nationality)
		assert.Equal(t, "Giza, Egypt", entry.POB)
		assert.Equal(t, []string{"ABU MUHAMMAD", "THE DOCTOR", "ABDEL MUAZ."}, entry.Aliases)
	})

	t.Run("entity with sentinel fields", func(t *testing.T) {
		entry := entries[1]
		assert.Equal(t, "2676", entry.ID)
		assert.Equal(t, "AEROCARIBBEAN AIRLINES", entry.Name)
		assert.Empty(t, entry.Type)
		assert.Equal(t, "CUBA", entry.Program)
		assert.Empty(t, entry.Remarks)
		assert.False(t, entry.IsIndividual())
		assert.Empty(t, entry.DOB)
		assert.Empty(t, entry.Aliases)
	})

	t.Run("derived fields preserve source format", func(t *testing.T) {
		entry := entries[2]
		assert.Equal(t, "28 Apr 1937", entry.DOB)
		assert.Equal(t, "Iraq.", entry.Nationality)
		assert.Equal(t, "al-Awja, Iraq", entry.POB)
	})
}

func TestLoadMissingID(t *testing.T) {
	source := `-0-,"NO ID PERSON","individual","SDGT",-0- ,-0- ,-0- ,-0- ,-0- ,-0- ,-0- ,"DOB 1 Jan 1970."
`
	path := writeSource(t, source)
	l, err := NewLoader(path)
	require.NoError(t, err)

	entries, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Rows without a source identifier get a deterministic content-derived one.
	assert.NotEmpty(t, entries[0].ID)

	again, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries[0].ID, again[0].ID)
}

func TestLoadCancelledContext(t *testing.T) {
	path := writeSource(t, sampleSource)
	l, err := NewLoader(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadEmptySource(t *testing.T) {
	path := writeSource(t, "")
	l, err := NewLoader(path)
	require.NoError(t, err)

	entries, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemarksExtraction(t *testing.T) {
	t.Run("DOB", func(t *testing.T) {
		assert.Equal(t, "19 Jun 1951", extractDOB("DOB 19 Jun 1951; POB Giza"))
		assert.Equal(t, "circa 1960", extractDOB("DOB circa 1960"))
		assert.Empty(t, extractDOB("no date here"))
		// Lowercase "dob" is not a marker in the source format.
		assert.Empty(t, extractDOB("dob 19 Jun 1951"))
	})

	t.Run("nationality is case-insensitive", func(t *testing.T) {
		assert.Equal(t, "Egypt", extractNationality("nationality Egypt; other"))
		assert.Equal(t, "Egypt", extractNationality("Nationality Egypt"))
		assert.Empty(t, extractNationality("no nation"))
	})

	t.Run("POB", func(t *testing.T) {
		assert.Equal(t, "Giza, Egypt", extractPOB("DOB 1951; POB Giza, Egypt; nationality Egypt"))
		assert.Empty(t, extractPOB(""))
	})

	t.Run("aliases keep order, aka before alt", func(t *testing.T) {
		remarks := "alt. SECOND NAME; a.k.a. 'FIRST NAME'; a.k.a. 'OTHER NAME'"
		assert.Equal(t, []string{"FIRST NAME", "OTHER NAME", "SECOND NAME"}, extractAliases(remarks))
	})

	t.Run("no aliases", func(t *testing.T) {
		assert.Empty(t, extractAliases("DOB 1951"))
	})
}
