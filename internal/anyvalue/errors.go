package anyvalue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

var (
	// ErrUnsupportedTag is returned by the runtime entry points for data
	// types outside the supported primitive kinds.
	ErrUnsupportedTag = errors.New("unsupported scalar tag")

	// ErrTagMismatch is wrapped by MismatchError.
	ErrTagMismatch = errors.New("scalar tag mismatch")
)

// MismatchError reports a strict unwrap against the wrong tag
type MismatchError struct {
	Expected arrow.Type
	Actual   arrow.Type
	Null     bool // scalar held the expected tag but no value
}

func (e *MismatchError) Error() string {
	var parts []string

	parts = append(parts, ErrTagMismatch.Error())
	parts = append(parts, fmt.Sprintf("expected %s", e.Expected))

	if e.Null {
		parts = append(parts, "got null")
	} else {
		parts = append(parts, fmt.Sprintf("got %s", e.Actual))
	}

	return strings.Join(parts, " - ")
}

func (e *MismatchError) Unwrap() error {
	return ErrTagMismatch
}
