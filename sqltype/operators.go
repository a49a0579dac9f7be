package sqltype

import (
	"context"
)

// registration is one row of a type module's operator table.
type registration struct {
	sig Signature
	op  Operator
}

func checkArity(sig Signature, args []Value, n int) error {
	if len(args) != n {
		return argumentCountError(sig.String(), n, len(args))
	}
	return nil
}

func arg[T Value](sig Signature, args []Value, pos int) (T, error) {
	v, ok := args[pos].(T)
	if !ok {
		var zero T
		return zero, argumentTypeError[T](sig.String(), pos, args[pos])
	}
	return v, nil
}

// pure adapts a context-free function to the shape used by the helpers below.
func pure[F, T any](fn func(F) (T, error)) func(context.Context, F) (T, error) {
	return func(_ context.Context, v F) (T, error) {
		return fn(v)
	}
}

func unaryOperator[F Value, T Value](sig Signature, fn func(context.Context, F) (T, error)) registration {
	return registration{
		sig: sig,
		op: func(ctx context.Context, args ...Value) (Value, error) {
			if err := checkArity(sig, args, 1); err != nil {
				return nil, err
			}
			v, err := arg[F](sig, args, 0)
			if err != nil {
				return nil, err
			}
			return fn(ctx, v)
		},
	}
}

func binaryOperator[L Value, R Value, T Value](sig Signature, fn func(context.Context, L, R) (T, error)) registration {
	return registration{
		sig: sig,
		op: func(ctx context.Context, args ...Value) (Value, error) {
			if err := checkArity(sig, args, 2); err != nil {
				return nil, err
			}
			l, err := arg[L](sig, args, 0)
			if err != nil {
				return nil, err
			}
			r, err := arg[R](sig, args, 1)
			if err != nil {
				return nil, err
			}
			return fn(ctx, l, r)
		},
	}
}

func castOperator[F Value, T Value](from, to TypeID, fn func(context.Context, F) (T, error)) registration {
	return unaryOperator(CastSignature(from, to), fn)
}

func hashOperator[T Value](typ TypeID, fn func(context.Context, T) (Bigint, error)) registration {
	return unaryOperator(OperatorSignature(typ, OperatorHash), fn)
}

// comparisonOperators registers EQUAL through BETWEEN for a type with a
// context-free total order.
func comparisonOperators[T ordered[T]](typ TypeID) []registration {
	return comparisons(typ, func(_ context.Context, a, b T) (int, error) {
		return a.Cmp(b), nil
	})
}

// comparisons derives EQUAL through BETWEEN from a single three-way compare.
func comparisons[T Value](typ TypeID, compare func(ctx context.Context, a, b T) (int, error)) []registration {
	predicate := func(kind OperatorKind, holds func(c int) bool) registration {
		return binaryOperator(OperatorSignature(typ, kind), func(ctx context.Context, a, b T) (Boolean, error) {
			c, err := compare(ctx, a, b)
			if err != nil {
				return false, err
			}
			return Boolean(holds(c)), nil
		})
	}

	betweenSig := OperatorSignature(typ, OperatorBetween)
	between := registration{
		sig: betweenSig,
		op: func(ctx context.Context, args ...Value) (Value, error) {
			if err := checkArity(betweenSig, args, 3); err != nil {
				return nil, err
			}
			var vals [3]T
			for i := range vals {
				v, err := arg[T](betweenSig, args, i)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}
			lo, err := compare(ctx, vals[1], vals[0])
			if err != nil {
				return nil, err
			}
			if lo > 0 {
				return Boolean(false), nil
			}
			hi, err := compare(ctx, vals[0], vals[2])
			if err != nil {
				return nil, err
			}
			return Boolean(hi <= 0), nil
		},
	}

	return []registration{
		predicate(OperatorEqual, func(c int) bool { return c == 0 }),
		predicate(OperatorNotEqual, func(c int) bool { return c != 0 }),
		predicate(OperatorLessThan, func(c int) bool { return c < 0 }),
		predicate(OperatorLessOrEqual, func(c int) bool { return c <= 0 }),
		predicate(OperatorGreaterThan, func(c int) bool { return c > 0 }),
		predicate(OperatorGreaterOrEqual, func(c int) bool { return c >= 0 }),
		between,
	}
}

// toVarchar registers the cast of typ to its canonical text form.
func toVarchar[T Value](typ TypeID) registration {
	return castOperator(typ, TypeVarchar, func(_ context.Context, v T) (Varchar, error) {
		return Varchar(v.String()), nil
	})
}
