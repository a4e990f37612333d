package bricklayer

import (
	"errors"
	"fmt"
)

// Kind identifies which of the validator's constraints failed.
type Kind int

// The validator's constraint taxonomy, one entry per failure mode named in
// the judge's rulebook.
const (
	// KindTopology marks constraint A: the solution's vertex count or edge
	// set doesn't match the figure's.
	KindTopology Kind = iota
	// KindOverstretched marks constraint B: an edge's squared length left
	// its admissible [1-eps, 1+eps] interval.
	KindOverstretched
	// KindOutsideHole marks constraint C: part of a posed edge lies
	// outside the hole.
	KindOutsideHole
)

func (k Kind) String() string {
	switch k {
	case KindTopology:
		return "topology mismatch"
	case KindOverstretched:
		return "overstretched"
	case KindOutsideHole:
		return "outside hole"
	default:
		return fmt.Sprintf("unknown validation failure (%d)", int(k))
	}
}

// ValidationError reports a single constraint failure, identified by Kind,
// with a human-readable Detail.
type ValidationError struct {
	Kind   Kind
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is reports whether target names the same Kind, so callers can write
// errors.Is(err, &ValidationError{Kind: KindOverstretched}).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// CompoundError aggregates every constraint failure found by Validate,
// rather than stopping at the first one, so a caller can see every reason a
// pose was rejected.
type CompoundError struct {
	Failures []*ValidationError
}

func (e *CompoundError) Error() string {
	if len(e.Failures) == 1 {
		return e.Failures[0].Error()
	}
	s := fmt.Sprintf("%d constraint failures:", len(e.Failures))
	for _, f := range e.Failures {
		s += " [" + f.Error() + "]"
	}
	return s
}

// Unwrap exposes the individual failures to errors.Is/errors.As.
func (e *CompoundError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// has reports whether the compound error contains a failure of the given
// kind.
func (e *CompoundError) has(k Kind) bool {
	for _, f := range e.Failures {
		if f.Kind == k {
			return true
		}
	}
	return false
}

// ErrEdgeIndexOutOfRange is the sentinel for malformed input, checked with
// errors.Is: it is fatal to the operation that discovers it (construction
// of a FigureIndex, or JSON decoding of a Problem) rather than a constraint
// failure on an otherwise well-formed pose.
var ErrEdgeIndexOutOfRange = errors.New("edge index out of range")

// MalformedInputError wraps a sentinel with operation-specific context.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string { return e.Err.Error() }
func (e *MalformedInputError) Unwrap() error { return e.Err }
