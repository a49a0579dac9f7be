package sqltype

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// ParseLiteral parses the canonical text form of a value of type typ.
//
// Intervals use the YEAR TO MONTH qualifier. Zoned values carry their zone
// key after a single space and are resolved with the context's zone lookup.
func ParseLiteral(ctx context.Context, typ TypeID, text string) (Value, error) {
	switch typ {
	case TypeBoolean:
		switch text {
		case "true":
			return Boolean(true), nil
		case "false":
			return Boolean(false), nil
		}
		return nil, &ParseError{Type: typ, Text: text}
	case TypeBigint:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, literalError(typ, text, err)
		}
		return Bigint(i), nil
	case TypeDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, literalError(typ, text, err)
		}
		return Double(f), nil
	case TypeVarchar:
		return Varchar(text), nil
	case TypeIntervalYearToMonth:
		return ParseIntervalYearMonth(text, IntervalFieldYear, IntervalFieldMonth)
	case TypeTime:
		return ParseTime(text)
	case TypeTimeWithTimeZone:
		return ParseTimeWithTimeZone(text, zoneLookup(ctx))
	case TypeTimestamp:
		return ParseTimestamp(text)
	case TypeTimestampWithTimeZone:
		return ParseTimestampWithTimeZone(text, zoneLookup(ctx))
	default:
		return nil, &ParseError{Type: typ, Text: text, Err: fmt.Errorf("no literal syntax for %s", typ)}
	}
}

func literalError(typ TypeID, text string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return &ParseError{Type: typ, Text: text, Err: &ArithmeticOverflowError{Op: "literal", Detail: text}}
	}
	return &ParseError{Type: typ, Text: text}
}
