package docport

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
)

// TypeError reports a shape mismatch detected when constructing a view over a
// node, for example asking for an ObjectView over a string. It is raised
// synchronously at construction, never deferred to first use.
type TypeError struct {
	Code string
	Want Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("docport: %s: want %s, got %s", e.Code, e.Want, e.Got)
}

// NewTypeError builds the standard wrong-shape construction error.
func NewTypeError(want, got Kind) *TypeError {
	return &TypeError{Code: CodeInvalidType, Want: want, Got: got}
}

// AsTypeError extracts a *TypeError from an error using errors.As internally.
func AsTypeError(err error) (*TypeError, bool) {
	if err == nil {
		return nil, false
	}
	var te *TypeError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
