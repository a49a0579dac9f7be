package sqltype

import (
	"context"
	"errors"
	"fmt"
)

// CastEngine converts values between types along the CAST edges of a registry.
//
// Edges are directional: VARCHAR to BOOLEAN exists, BOOLEAN to VARCHAR is a
// separate edge.
type CastEngine struct {
	registry *Registry
}

// NewCastEngine returns a cast engine over r. A nil r uses Default().
func NewCastEngine(r *Registry) *CastEngine {
	if r == nil {
		r = Default()
	}
	return &CastEngine{registry: r}
}

// Cast converts v to target.
//
// A value is always castable to its own type. Without a registered edge the
// returned *CastError wraps an *OperatorNotFoundError.
func (e *CastEngine) Cast(ctx context.Context, v Value, target TypeID) (Value, error) {
	if v == nil {
		return nil, fmt.Errorf("can not cast nil value to %s", target)
	}
	sig := CastSignature(v.Type(), target)
	op, err := e.registry.Lookup(sig)
	if err != nil {
		if v.Type() == target {
			return v, nil
		}
		return nil, &CastError{
			From:   v.Type(),
			To:     target,
			Detail: fmt.Sprintf("Cannot cast %s to %s", v.Type(), target),
			Err:    err,
		}
	}

	res, err := op(ctx, v)
	if err != nil {
		var castErr *CastError
		if errors.As(err, &castErr) {
			return nil, err
		}
		return nil, &CastError{
			From:   v.Type(),
			To:     target,
			Detail: fmt.Sprintf("Cannot cast '%s' to %s: %v", v, target, err),
			Err:    err,
		}
	}
	return res, nil
}

// CanCast reports whether values of type from can be cast to type to.
func (e *CastEngine) CanCast(from, to TypeID) bool {
	return from == to || e.registry.Has(CastSignature(from, to))
}
