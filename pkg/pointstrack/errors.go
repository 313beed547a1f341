package pointstrack

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an input file extension with no reader.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrSheetNotFound indicates the requested worksheet is not in the workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ProcessError represents an error while loading an input file.
type ProcessError struct {
	Path  string
	Stage string // "open", "read", "workbook"
	Err   error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError.
func NewProcessError(path, stage string, err error) *ProcessError {
	return &ProcessError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
