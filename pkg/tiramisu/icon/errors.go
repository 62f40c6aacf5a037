package icon

import (
	"errors"
	"fmt"
)

// SvgParseError indicates malformed XML or unsupported SVG input. It is
// returned by Parse and carries a human-readable message.
type SvgParseError struct {
	Message string
	Err     error
}

func (e *SvgParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("icon: svg parse: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("icon: svg parse: %s", e.Message)
}

func (e *SvgParseError) Unwrap() error {
	return e.Err
}

// TessellationError indicates a geometry failure while converting shapes
// to triangles (zero-length path, unresolvable self-intersection).
type TessellationError struct {
	Message string
}

func (e *TessellationError) Error() string {
	return fmt.Sprintf("icon: tessellation: %s", e.Message)
}

// IsSvgParse checks if an error is an SVG parse failure.
func IsSvgParse(err error) bool {
	var pe *SvgParseError
	return errors.As(err, &pe)
}

// IsTessellation checks if an error is a tessellation failure.
func IsTessellation(err error) bool {
	var te *TessellationError
	return errors.As(err, &te)
}
