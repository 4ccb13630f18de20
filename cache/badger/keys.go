package badger

import (
	"fmt"

	"github.com/poiesic/sdnscreen/core"
)

// Key prefix for cached assessments
const assessmentPrefix = "assmnt"

// makeAssessmentKey generates a key for a cached assessment by content ID.
func makeAssessmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", assessmentPrefix, id))
}
