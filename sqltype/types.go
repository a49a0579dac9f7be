// Package sqltype implements the scalar value types of a SQL query engine
// and the operators an expression evaluator dispatches against them.
//
// Values are immutable. Operators are looked up in a frozen [Registry] by
// [Signature] and may be invoked from any number of goroutines.
package sqltype

//go:generate go run ../internal/cmd/generate -out .

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"strconv"
)

// Value is an immutable SQL scalar.
//
// Implementations never change after construction and may be shared
// between goroutines without synchronization.
type Value interface {
	Type() TypeID
	fmt.Stringer
}

// ordered is implemented by values with a total order.
type ordered[T Value] interface {
	Value
	Cmp(other T) int
}

type Boolean bool

func (b Boolean) Type() TypeID {
	return TypeBoolean
}
func (b Boolean) Cmp(other Boolean) int {
	switch {
	case b == other:
		return 0
	case !bool(b):
		return -1
	default:
		return 1
	}
}
func (b Boolean) Hash() Bigint {
	if b {
		return 1231
	}
	return 1237
}
func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

type Bigint int64

func (i Bigint) Type() TypeID {
	return TypeBigint
}
func (i Bigint) Cmp(other Bigint) int {
	return cmp.Compare(i, other)
}
func (i Bigint) Hash() Bigint {
	return i
}
func (i Bigint) String() string {
	return strconv.FormatInt(int64(i), 10)
}

type Double float64

func (d Double) Type() TypeID {
	return TypeDouble
}

// Cmp orders NaN before every other value, so that sorting is total.
func (d Double) Cmp(other Double) int {
	return cmp.Compare(d, other)
}

// Hash treats 0 and -0 alike, and all NaNs alike, since they compare equal.
func (d Double) Hash() Bigint {
	switch {
	case d == 0:
		return 0
	case math.IsNaN(float64(d)):
		return Bigint(math.Float64bits(math.NaN()))
	}
	return Bigint(math.Float64bits(float64(d)))
}
func (d Double) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

func booleanOperators() []registration {
	return append(comparisonOperators[Boolean](TypeBoolean),
		hashOperator(TypeBoolean, func(_ context.Context, b Boolean) (Bigint, error) {
			return b.Hash(), nil
		}),
		toVarchar[Boolean](TypeBoolean),
	)
}

func bigintOperators() []registration {
	return append(comparisonOperators[Bigint](TypeBigint),
		hashOperator(TypeBigint, func(_ context.Context, i Bigint) (Bigint, error) {
			return i.Hash(), nil
		}),
		toVarchar[Bigint](TypeBigint),
	)
}

func doubleOperators() []registration {
	return append(comparisonOperators[Double](TypeDouble),
		hashOperator(TypeDouble, func(_ context.Context, d Double) (Bigint, error) {
			return d.Hash(), nil
		}),
		toVarchar[Double](TypeDouble),
	)
}
