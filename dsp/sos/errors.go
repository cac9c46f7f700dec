package sos

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLayout reports a serialized coefficient slice whose length
	// does not match the declared section count.
	ErrMalformedLayout = errors.New("serialized layout length does not match section count")

	// ErrUninitializedState reports a state buffer whose length does not
	// match the cascade it is used with. It is detected before any sample
	// is processed; no partial output is produced.
	ErrUninitializedState = errors.New("state buffer length does not match cascade")
)

// UnstableSectionError reports a section whose feedback coefficients place a
// pole on or outside the unit circle. The section is never clamped or
// corrected: altering a designed response silently is not acceptable, so the
// caller decides whether to abort or substitute a fallback cascade.
type UnstableSectionError struct {
	Index  int
	A1, A2 float64
}

func (e *UnstableSectionError) Error() string {
	return fmt.Sprintf("section %d is unstable: a1=%g, a2=%g", e.Index, e.A1, e.A2)
}
