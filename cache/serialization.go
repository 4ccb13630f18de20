package cache

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/sdnscreen/assess"
)

// MarshalAssessment serializes an Assessment to bytes.
func MarshalAssessment(assessment *assess.Assessment) []byte {
	size := ord.Bool.Size(assessment.IsMatch) +
		ord.String.Size(assessment.Confidence) +
		varint.Float64.Size(assessment.Score) +
		ord.String.Size(assessment.Reasoning)

	buf := make([]byte, size)
	n := ord.Bool.Marshal(assessment.IsMatch, buf)
	n += ord.String.Marshal(assessment.Confidence, buf[n:])
	n += varint.Float64.Marshal(assessment.Score, buf[n:])
	ord.String.Marshal(assessment.Reasoning, buf[n:])
	return buf
}

// UnmarshalAssessment deserializes an Assessment from bytes.
func UnmarshalAssessment(data []byte) (*assess.Assessment, error) {
	var assessment assess.Assessment
	var n, total int
	var err error

	assessment.IsMatch, n, err = ord.Bool.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	total += n

	assessment.Confidence, n, err = ord.String.Unmarshal(data[total:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	total += n

	assessment.Score, n, err = varint.Float64.Unmarshal(data[total:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	total += n

	assessment.Reasoning, _, err = ord.String.Unmarshal(data[total:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	return &assessment, nil
}
