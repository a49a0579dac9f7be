package sqltype_test

import (
	"context"
	"errors"
	"testing"

	"github.com/damedic/sqltypes-go/sqltype"
)

func TestParseLiteral(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		typ  sqltype.TypeID
		text string
	}{
		{sqltype.TypeBoolean, "true"},
		{sqltype.TypeBoolean, "false"},
		{sqltype.TypeBigint, "-9223372036854775808"},
		{sqltype.TypeDouble, "2.5"},
		{sqltype.TypeVarchar, "anything at all"},
		{sqltype.TypeIntervalYearToMonth, "126-6"},
		{sqltype.TypeIntervalYearToMonth, "-0-3"},
		{sqltype.TypeTime, "03:04:05.321"},
		{sqltype.TypeTimeWithTimeZone, "03:04:05.321 Europe/Berlin"},
		{sqltype.TypeTimestamp, "2001-01-22 03:04:05.321"},
		{sqltype.TypeTimestampWithTimeZone, "2001-01-22 03:04:05.321 +07:09"},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String()+" "+tt.text, func(t *testing.T) {
			v, err := sqltype.ParseLiteral(ctx, tt.typ, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Type() != tt.typ {
				t.Errorf("Type = %s, want %s", v.Type(), tt.typ)
			}
			// canonical forms print as they parse
			if v.String() != tt.text {
				t.Errorf("String = %s, want %s", v.String(), tt.text)
			}
		})
	}
}

func TestParseLiteralErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		typ          sqltype.TypeID
		text         string
		wantOverflow bool
	}{
		{typ: sqltype.TypeBoolean, text: "TRUE"},
		{typ: sqltype.TypeBoolean, text: "1"},
		{typ: sqltype.TypeBigint, text: "1.0"},
		{typ: sqltype.TypeBigint, text: "9223372036854775808", wantOverflow: true},
		{typ: sqltype.TypeDouble, text: "1e400", wantOverflow: true},
		{typ: sqltype.TypeDouble, text: "one"},
		{typ: sqltype.TypeTime, text: "25:00"},
		{typ: sqltype.TypeIntervalYearToMonth, text: "1 year"},
		{typ: sqltype.TypeUnknown, text: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String()+" "+tt.text, func(t *testing.T) {
			_, err := sqltype.ParseLiteral(ctx, tt.typ, tt.text)
			if !errors.Is(err, sqltype.ErrParse) {
				t.Fatalf("expected parse error, got %v", err)
			}
			if got := errors.Is(err, sqltype.ErrArithmeticOverflow); got != tt.wantOverflow {
				t.Errorf("overflow = %v, want %v", got, tt.wantOverflow)
			}
		})
	}
}
