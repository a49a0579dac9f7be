package sqltype

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Varchar is a variable-length byte sequence holding text or binary data.
//
// The bytes are not interpreted for comparison: ordering is the raw unsigned
// byte order, and two values are equal iff their bytes are identical.
type Varchar string

// NewVarchar copies b into a new Varchar.
func NewVarchar(b []byte) Varchar {
	return Varchar(b)
}

// Bytes returns a copy of the underlying bytes.
func (s Varchar) Bytes() []byte {
	return []byte(s)
}

func (s Varchar) Type() TypeID {
	return TypeVarchar
}
func (s Varchar) Len() int {
	return len(s)
}
func (s Varchar) Equal(other Varchar) bool {
	return s == other
}
func (s Varchar) Cmp(other Varchar) int {
	return strings.Compare(string(s), string(other))
}
func (s Varchar) Hash() Bigint {
	return hashString(string(s))
}
func (s Varchar) String() string {
	return string(s)
}

// ToBoolean accepts T, F, 1, 0, TRUE and FALSE, ignoring ASCII case.
// Nothing is trimmed.
func (s Varchar) ToBoolean() (Boolean, error) {
	switch len(s) {
	case 1:
		switch toUpperASCII(s[0]) {
		case 'T', '1':
			return true, nil
		case 'F', '0':
			return false, nil
		}
	case 4:
		if equalFoldASCII(string(s), "TRUE") {
			return true, nil
		}
	case 5:
		if equalFoldASCII(string(s), "FALSE") {
			return false, nil
		}
	}
	return false, castError(TypeVarchar, TypeBoolean, string(s), nil)
}

// ToDouble parses s as a floating point literal.
//
// Surrounding whitespace and control characters are ignored, a trailing
// f, F, d or D suffix is accepted, and the only spellings of the special
// values are NaN and Infinity with an optional sign. Literals beyond the
// DOUBLE range become an infinity.
func (s Varchar) ToDouble() (Double, error) {
	text := strings.TrimFunc(string(s), func(r rune) bool { return r <= ' ' })
	digits := strings.TrimLeft(text, "+-")
	if len(text)-len(digits) > 1 {
		return 0, castError(TypeVarchar, TypeDouble, string(s), nil)
	}
	switch digits {
	case "NaN":
		return Double(math.NaN()), nil
	case "Infinity":
		if text[0] == '-' {
			return Double(math.Inf(-1)), nil
		}
		return Double(math.Inf(1)), nil
	}
	if hasFloatSuffix(digits) {
		text = text[:len(text)-1]
		digits = digits[:len(digits)-1]
	}
	if digits == "" || !isFloatStart(digits[0]) {
		// rejects Go-only spellings such as inf and nan
		return 0, castError(TypeVarchar, TypeDouble, string(s), nil)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, castError(TypeVarchar, TypeDouble, string(s), err)
	}
	return Double(v), nil
}

func isFloatStart(c byte) bool {
	return c == '.' || (c >= '0' && c <= '9')
}

// hasFloatSuffix reports a trailing type suffix. In hexadecimal literals
// f and d are digits unless a binary exponent precedes them.
func hasFloatSuffix(digits string) bool {
	if len(digits) < 2 {
		return false
	}
	switch digits[len(digits)-1] {
	case 'f', 'F', 'd', 'D':
	default:
		return false
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return strings.ContainsAny(digits, "pP")
	}
	return true
}

func (s Varchar) ToBigint() (Bigint, error) {
	v, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return 0, castError(TypeVarchar, TypeBigint, string(s), err)
	}
	return Bigint(v), nil
}

func (s Varchar) ToTime() (Time, error) {
	t, err := ParseTime(string(s))
	if err != nil {
		return Time{}, castError(TypeVarchar, TypeTime, string(s), err)
	}
	return t, nil
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// equalFoldASCII compares s against an upper case ASCII word, folding only
// ASCII letters of s.
func equalFoldASCII(s, upper string) bool {
	if len(s) != len(upper) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toUpperASCII(s[i]) != upper[i] {
			return false
		}
	}
	return true
}

func varcharOperators() []registration {
	return append(comparisonOperators[Varchar](TypeVarchar),
		hashOperator(TypeVarchar, func(_ context.Context, s Varchar) (Bigint, error) {
			return s.Hash(), nil
		}),
		castOperator(TypeVarchar, TypeBoolean, pure(Varchar.ToBoolean)),
		castOperator(TypeVarchar, TypeDouble, pure(Varchar.ToDouble)),
		castOperator(TypeVarchar, TypeBigint, pure(Varchar.ToBigint)),
		castOperator(TypeVarchar, TypeTime, pure(Varchar.ToTime)),
		castOperator(TypeVarchar, TypeVarchar, func(_ context.Context, s Varchar) (Varchar, error) {
			return s, nil
		}),
	)
}
