package texprep

import (
	"errors"
	"fmt"
	"log/slog"
)

// Errors returned by Select and Prepare.
var (
	// ErrUnsupportedFormat is returned for formats that are recognized but
	// have no GPU counterpart.
	ErrUnsupportedFormat = errors.New("texprep: unsupported format")

	// ErrInvalidFormat is returned for values outside the PixelFormat
	// enumeration. It indicates a bug in the caller.
	ErrInvalidFormat = errors.New("texprep: invalid format")

	// ErrBufferTooSmall is returned when a source buffer is shorter than
	// its format and dimensions require.
	ErrBufferTooSmall = errors.New("texprep: buffer too small")

	// ErrInvalidSize is returned for non-positive image dimensions.
	ErrInvalidSize = errors.New("texprep: invalid size")
)

// Severity classifies a FormatError.
type Severity uint8

const (
	// SeverityWarning marks a valid format the backend cannot hold. The
	// texture should be skipped; loading may continue.
	SeverityWarning Severity = iota

	// SeverityCodingError marks a value that is not a format at all.
	SeverityCodingError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCodingError:
		return "coding error"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// Level returns the slog level diagnostics of this severity are logged at.
func (s Severity) Level() slog.Level {
	if s == SeverityCodingError {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// FormatError reports why Select produced no target format. It wraps
// ErrUnsupportedFormat or ErrInvalidFormat.
type FormatError struct {
	Format   PixelFormat
	Severity Severity
	Reason   string
	Err      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Format, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func unsupported(f PixelFormat, reason string) *FormatError {
	return &FormatError{Format: f, Severity: SeverityWarning, Reason: reason, Err: ErrUnsupportedFormat}
}

func invalid(f PixelFormat, reason string) *FormatError {
	return &FormatError{Format: f, Severity: SeverityCodingError, Reason: reason, Err: ErrInvalidFormat}
}
