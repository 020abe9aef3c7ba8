package normalize

import (
	"errors"
	"fmt"
)

// Error kinds reported by KindOf. They are stable strings suitable for
// response bodies and log fields.
const (
	KindExtraction  = "extraction"
	KindParse       = "parse"
	KindEmptyResult = "empty_result"
)

// ErrExtraction indicates that no array of objects was found in the model
// output.
type ErrExtraction struct {
	Text string
}

func (e *ErrExtraction) Error() string {
	return "no JSON array of objects found in model output"
}

// ErrParse indicates that the located region could not be decoded.
type ErrParse struct {
	// Text is the offending candidate text.
	Text string
	Err  error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("decode model output: %v", e.Err)
}

func (e *ErrParse) Unwrap() error { return e.Err }

// ErrEmptyResult indicates that decoding succeeded but no record passed
// validation.
type ErrEmptyResult struct {
	Discarded int
}

func (e *ErrEmptyResult) Error() string {
	return fmt.Sprintf("no valid records in model output (%d discarded)", e.Discarded)
}

// KindOf returns the kind of a batch-mode pipeline error, or "" when err is
// not one.
func KindOf(err error) string {
	var (
		extErr   *ErrExtraction
		parseErr *ErrParse
		emptyErr *ErrEmptyResult
	)
	switch {
	case errors.As(err, &extErr):
		return KindExtraction
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &emptyErr):
		return KindEmptyResult
	}
	return ""
}
