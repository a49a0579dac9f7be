package sqltype

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/sqltypes-go/internal/overflow"
)

const monthsPerYear = 12

// IntervalYearMonth is a signed span of calendar months.
//
// Years and months are not stored separately; Years and Months only
// decompose the total for display.
type IntervalYearMonth struct {
	months int64
}

// NewIntervalYearMonth returns the interval of years*12 + months months.
func NewIntervalYearMonth(years, months int64) (IntervalYearMonth, error) {
	y, ok := overflow.Mul(years, monthsPerYear)
	if !ok {
		return IntervalYearMonth{}, &ArithmeticOverflowError{
			Op:     "interval construction",
			Detail: fmt.Sprintf("%d years", years),
		}
	}
	total, ok := overflow.Add(y, months)
	if !ok {
		return IntervalYearMonth{}, &ArithmeticOverflowError{
			Op:     "interval construction",
			Detail: fmt.Sprintf("%d years %d months", years, months),
		}
	}
	return IntervalYearMonth{months: total}, nil
}

// IntervalFromMonths returns the interval of the given total months.
func IntervalFromMonths(months int64) IntervalYearMonth {
	return IntervalYearMonth{months: months}
}

func (i IntervalYearMonth) Type() TypeID {
	return TypeIntervalYearToMonth
}
func (i IntervalYearMonth) TotalMonths() int64 {
	return i.months
}

// Years returns the whole years of the interval, carrying its sign.
func (i IntervalYearMonth) Years() int64 {
	return i.months / monthsPerYear
}

// Months returns the months remaining after Years, carrying the interval's sign.
func (i IntervalYearMonth) Months() int64 {
	return i.months % monthsPerYear
}

func (i IntervalYearMonth) Equal(other IntervalYearMonth) bool {
	return i.months == other.months
}
func (i IntervalYearMonth) Cmp(other IntervalYearMonth) int {
	switch {
	case i.months < other.months:
		return -1
	case i.months > other.months:
		return 1
	default:
		return 0
	}
}
func (i IntervalYearMonth) Hash() Bigint {
	return hashInt64(i.months)
}

func (i IntervalYearMonth) Add(other IntervalYearMonth) (IntervalYearMonth, error) {
	m, ok := overflow.Add(i.months, other.months)
	if !ok {
		return IntervalYearMonth{}, &ArithmeticOverflowError{Op: "interval addition", Detail: fmt.Sprintf("%v + %v", i, other)}
	}
	return IntervalYearMonth{months: m}, nil
}

func (i IntervalYearMonth) Subtract(other IntervalYearMonth) (IntervalYearMonth, error) {
	m, ok := overflow.Sub(i.months, other.months)
	if !ok {
		return IntervalYearMonth{}, &ArithmeticOverflowError{Op: "interval subtraction", Detail: fmt.Sprintf("%v - %v", i, other)}
	}
	return IntervalYearMonth{months: m}, nil
}

func (i IntervalYearMonth) Negate() (IntervalYearMonth, error) {
	m, ok := overflow.Neg(i.months)
	if !ok {
		return IntervalYearMonth{}, &ArithmeticOverflowError{Op: "interval negation", Detail: fmt.Sprintf("-(%v)", i)}
	}
	return IntervalYearMonth{months: m}, nil
}

// Multiply scales the interval by factor, which must be a Bigint or a Double.
//
// The product is computed in decimal arithmetic and truncated toward zero
// to whole months.
func (i IntervalYearMonth) Multiply(ctx context.Context, factor Value) (IntervalYearMonth, error) {
	return i.scale(ctx, factor, false)
}

// Divide scales the interval by 1/divisor, which must be a Bigint or a Double.
//
// The quotient is truncated toward zero to whole months.
func (i IntervalYearMonth) Divide(ctx context.Context, divisor Value) (IntervalYearMonth, error) {
	return i.scale(ctx, divisor, true)
}

func (i IntervalYearMonth) scale(ctx context.Context, scalar Value, divide bool) (IntervalYearMonth, error) {
	op := "interval multiplication"
	if divide {
		op = "interval division"
	}

	var s apd.Decimal
	switch v := scalar.(type) {
	case Bigint:
		s.SetInt64(int64(v))
	case Double:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return IntervalYearMonth{}, &ArithmeticOverflowError{Op: op, Detail: fmt.Sprintf("non-finite factor %v", v)}
		}
		if _, err := s.SetFloat64(float64(v)); err != nil {
			return IntervalYearMonth{}, fmt.Errorf("%s: %w", op, err)
		}
	default:
		return IntervalYearMonth{}, fmt.Errorf("can not scale %s by %T", TypeIntervalYearToMonth, scalar)
	}
	if divide && s.IsZero() {
		return IntervalYearMonth{}, &ArithmeticOverflowError{Op: op, Detail: "division by zero"}
	}

	// every rounding step truncates, so dropped digits never carry into the months
	truncCtx := *apdContext(ctx)
	truncCtx.Rounding = apd.RoundDown

	var (
		res  apd.Decimal
		cond apd.Condition
		err  error
	)
	m := apd.New(i.months, 0)
	if divide {
		cond, err = truncCtx.Quo(&res, m, &s)
	} else {
		cond, err = truncCtx.Mul(&res, m, &s)
	}
	if err != nil {
		return IntervalYearMonth{}, &ArithmeticOverflowError{Op: op, Detail: err.Error()}
	}
	if cond.Rounded() && res.Exponent > 0 {
		return IntervalYearMonth{}, &ArithmeticOverflowError{
			Op:     op,
			Detail: fmt.Sprintf("%d digits of precision can not hold %s months", truncCtx.Precision, res.String()),
		}
	}

	var months apd.Decimal
	if _, err := truncCtx.RoundToIntegralValue(&months, &res); err != nil {
		return IntervalYearMonth{}, &ArithmeticOverflowError{Op: op, Detail: err.Error()}
	}
	total, err := months.Int64()
	if err != nil {
		return IntervalYearMonth{}, &ArithmeticOverflowError{Op: op, Detail: fmt.Sprintf("%s months", res.String())}
	}
	return IntervalYearMonth{months: total}, nil
}

// String renders the interval as [-]Y-M, e.g. 1518 months as 126-6.
func (i IntervalYearMonth) String() string {
	abs := uint64(i.months)
	sign := ""
	if i.months < 0 {
		abs = -abs
		sign = "-"
	}
	return sign + strconv.FormatUint(abs/monthsPerYear, 10) + "-" + strconv.FormatUint(abs%monthsPerYear, 10)
}

// IntervalField is a start or end field of an interval qualifier.
type IntervalField int

const (
	IntervalFieldYear IntervalField = iota
	IntervalFieldMonth
)

func (f IntervalField) String() string {
	switch f {
	case IntervalFieldYear:
		return "YEAR"
	case IntervalFieldMonth:
		return "MONTH"
	default:
		return "IntervalField(" + strconv.Itoa(int(f)) + ")"
	}
}

var (
	intervalYearToMonthRegex = regexp.MustCompile(`^(-)?(\d+)(?:-(\d+))?$`)
	intervalSingleFieldRegex = regexp.MustCompile(`^(-)?(\d+)$`)
)

// ParseIntervalYearMonth parses the text of an interval literal with the
// qualifier start TO end, e.g. INTERVAL '124-30' YEAR TO MONTH.
//
// Accepted forms are [-]Y-M and [-]Y for YEAR TO MONTH, [-]Y for YEAR and
// [-]M for MONTH. The sign applies to the combined value.
func ParseIntervalYearMonth(text string, start, end IntervalField) (IntervalYearMonth, error) {
	parseErr := func(err error) error {
		return &ParseError{Type: TypeIntervalYearToMonth, Text: text, Err: err}
	}

	var (
		negative      bool
		years, months int64
		err           error
	)
	switch {
	case start == IntervalFieldYear && end == IntervalFieldMonth:
		m := intervalYearToMonthRegex.FindStringSubmatch(text)
		if m == nil {
			return IntervalYearMonth{}, parseErr(nil)
		}
		negative = m[1] != ""
		if years, err = parseIntervalField(m[2]); err != nil {
			return IntervalYearMonth{}, parseErr(err)
		}
		if m[3] != "" {
			if months, err = parseIntervalField(m[3]); err != nil {
				return IntervalYearMonth{}, parseErr(err)
			}
		}
	case start == end && (start == IntervalFieldYear || start == IntervalFieldMonth):
		m := intervalSingleFieldRegex.FindStringSubmatch(text)
		if m == nil {
			return IntervalYearMonth{}, parseErr(nil)
		}
		negative = m[1] != ""
		v, err := parseIntervalField(m[2])
		if err != nil {
			return IntervalYearMonth{}, parseErr(err)
		}
		if start == IntervalFieldYear {
			years = v
		} else {
			months = v
		}
	default:
		return IntervalYearMonth{}, parseErr(fmt.Errorf("unsupported qualifier %s TO %s", start, end))
	}

	i, err := NewIntervalYearMonth(years, months)
	if err != nil {
		return IntervalYearMonth{}, parseErr(err)
	}
	if negative {
		i.months = -i.months
	}
	return i, nil
}

// parseIntervalField parses a run of decimal digits.
func parseIntervalField(digits string) (int64, error) {
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &ArithmeticOverflowError{Op: "interval literal", Detail: digits}
	}
	return v, nil
}

func intervalOperators() []registration {
	typ := TypeIntervalYearToMonth
	multiplySig := OperatorSignature(typ, OperatorMultiply)

	return append(comparisonOperators[IntervalYearMonth](typ),
		hashOperator(typ, func(_ context.Context, i IntervalYearMonth) (Bigint, error) {
			return i.Hash(), nil
		}),
		unaryOperator(OperatorSignature(typ, OperatorNegate), pure(IntervalYearMonth.Negate)),
		binaryOperator(OperatorSignature(typ, OperatorAdd), func(_ context.Context, a, b IntervalYearMonth) (IntervalYearMonth, error) {
			return a.Add(b)
		}),
		binaryOperator(OperatorSignature(typ, OperatorSubtract), func(_ context.Context, a, b IntervalYearMonth) (IntervalYearMonth, error) {
			return a.Subtract(b)
		}),
		registration{
			sig: multiplySig,
			// the factor may be on either side
			op: func(ctx context.Context, args ...Value) (Value, error) {
				if err := checkArity(multiplySig, args, 2); err != nil {
					return nil, err
				}
				if i, ok := args[0].(IntervalYearMonth); ok {
					return i.Multiply(ctx, args[1])
				}
				i, err := arg[IntervalYearMonth](multiplySig, args, 1)
				if err != nil {
					return nil, err
				}
				return i.Multiply(ctx, args[0])
			},
		},
		binaryOperator(OperatorSignature(typ, OperatorDivide), func(ctx context.Context, i IntervalYearMonth, divisor Value) (IntervalYearMonth, error) {
			return i.Divide(ctx, divisor)
		}),
		toVarchar[IntervalYearMonth](typ),
	)
}
