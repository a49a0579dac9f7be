package sqltype_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/sqltypes-go/sqltype"
)

func mustInterval(t *testing.T, years, months int64) sqltype.IntervalYearMonth {
	t.Helper()
	i, err := sqltype.NewIntervalYearMonth(years, months)
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func TestIntervalNormalization(t *testing.T) {
	tests := []struct {
		years, months int64
		wantTotal     int64
		wantString    string
	}{
		{124, 30, 1518, "126-6"},
		{0, 3, 3, "0-3"},
		{6, 0, 72, "6-0"},
		{0, -3, -3, "-0-3"},
		{-124, -30, -1518, "-126-6"},
		{1, -1, 11, "0-11"},
		{0, 0, 0, "0-0"},
	}
	for _, tt := range tests {
		t.Run(tt.wantString, func(t *testing.T) {
			i := mustInterval(t, tt.years, tt.months)
			if i.TotalMonths() != tt.wantTotal {
				t.Errorf("TotalMonths = %d, want %d", i.TotalMonths(), tt.wantTotal)
			}
			if i.String() != tt.wantString {
				t.Errorf("String = %s, want %s", i.String(), tt.wantString)
			}
		})
	}
}

func TestIntervalDecomposition(t *testing.T) {
	i := sqltype.IntervalFromMonths(-1518)
	if i.Years() != -126 || i.Months() != -6 {
		t.Errorf("got %d years %d months", i.Years(), i.Months())
	}
	if got := sqltype.IntervalFromMonths(math.MinInt64).String(); got != "-768614336404564650-8" {
		t.Errorf("String of minimum = %s", got)
	}
}

func TestIntervalConstructionOverflow(t *testing.T) {
	if _, err := sqltype.NewIntervalYearMonth(math.MaxInt64/12+1, 0); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("years: expected overflow, got %v", err)
	}
	if _, err := sqltype.NewIntervalYearMonth(math.MaxInt64/12, 12); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("months: expected overflow, got %v", err)
	}
}

func TestIntervalArithmetic(t *testing.T) {
	threeMonths := mustInterval(t, 0, 3)
	sixYears := mustInterval(t, 6, 0)

	sum, err := threeMonths.Add(threeMonths)
	if err != nil || sum.TotalMonths() != 6 {
		t.Errorf("3 months + 3 months = %v, %v", sum, err)
	}
	sum, err = sixYears.Add(sixYears)
	if err != nil || sum.TotalMonths() != 144 {
		t.Errorf("6 years + 6 years = %v, %v", sum, err)
	}
	sum, err = threeMonths.Add(sixYears)
	if err != nil || sum.TotalMonths() != 75 || sum.String() != "6-3" {
		t.Errorf("3 months + 6 years = %v, %v", sum, err)
	}
	diff, err := threeMonths.Subtract(sixYears)
	if err != nil || diff.TotalMonths() != -69 {
		t.Errorf("3 months - 6 years = %v, %v", diff, err)
	}
	neg, err := threeMonths.Negate()
	if err != nil || neg.TotalMonths() != -3 {
		t.Errorf("-(3 months) = %v, %v", neg, err)
	}
}

func TestIntervalArithmeticOverflow(t *testing.T) {
	largest := sqltype.IntervalFromMonths(math.MaxInt64)
	smallest := sqltype.IntervalFromMonths(math.MinInt64)
	one := sqltype.IntervalFromMonths(1)

	if _, err := largest.Add(one); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("max + 1: expected overflow, got %v", err)
	}
	if _, err := smallest.Subtract(one); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("min - 1: expected overflow, got %v", err)
	}
	if _, err := smallest.Negate(); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("-min: expected overflow, got %v", err)
	}
	if _, err := largest.Multiply(context.Background(), sqltype.Bigint(2)); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("max * 2: expected overflow, got %v", err)
	}
}

func TestIntervalScaling(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		months int64
		scalar sqltype.Value
		divide bool
		want   int64
	}{
		{"multiply by double", 10, sqltype.Double(2.5), false, 25},
		{"multiply by bigint", 10, sqltype.Bigint(3), false, 30},
		{"multiply by negative", 10, sqltype.Bigint(-3), false, -30},
		{"multiply by zero", 10, sqltype.Double(0), false, 0},
		{"divide by double", 48, sqltype.Double(4.8), true, 10},
		{"divide by bigint", 48, sqltype.Bigint(4), true, 12},
		{"multiply truncates", 7, sqltype.Double(1.5), false, 10},
		{"multiply truncates toward zero", -7, sqltype.Double(1.5), false, -10},
		{"divide truncates", 10, sqltype.Bigint(3), true, 3},
		{"divide truncates toward zero", -10, sqltype.Bigint(3), true, -3},
		{"divide by negative", 10, sqltype.Double(-4), true, -2},
		{"fraction below one month", 1, sqltype.Double(0.99), false, 0},
		{"shortest decimal of a double", 10, sqltype.Double(0.1), false, 1},
		{"wide product truncates", 5006999999999999999, sqltype.Double(0.7000000000000001), false, 3504900000000000499},
		{"wide product truncates 3", 5006999999999999999, sqltype.Double(0.7000000000000003), false, 3504900000000001501},
		{"wide product truncates 7", 5006999999999999999, sqltype.Double(0.7000000000000007), false, 3504900000000003504},
		{"wide negative product truncates", -5006999999999999999, sqltype.Double(0.7000000000000001), false, -3504900000000000499},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := sqltype.IntervalFromMonths(tt.months)
			var (
				got sqltype.IntervalYearMonth
				err error
			)
			if tt.divide {
				got, err = i.Divide(ctx, tt.scalar)
			} else {
				got, err = i.Multiply(ctx, tt.scalar)
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.TotalMonths() != tt.want {
				t.Errorf("got %d months, want %d", got.TotalMonths(), tt.want)
			}
		})
	}
}

func TestIntervalScalingErrors(t *testing.T) {
	ctx := context.Background()
	i := sqltype.IntervalFromMonths(12)

	for _, scalar := range []sqltype.Value{sqltype.Bigint(0), sqltype.Double(0)} {
		if _, err := i.Divide(ctx, scalar); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
			t.Errorf("divide by %v: expected overflow, got %v", scalar, err)
		}
	}
	for _, scalar := range []sqltype.Value{sqltype.Double(math.NaN()), sqltype.Double(math.Inf(1))} {
		if _, err := i.Multiply(ctx, scalar); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
			t.Errorf("multiply by %v: expected overflow, got %v", scalar, err)
		}
	}
	if _, err := i.Multiply(ctx, sqltype.Varchar("2")); err == nil {
		t.Error("expected error scaling by VARCHAR")
	}
}

func TestIntervalScalingPrecision(t *testing.T) {
	nineteen := sqltype.IntervalFromMonths(19)
	ctx := sqltype.WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(1))

	// one significant digit still truncates 9.5 to 9
	got, err := nineteen.Divide(ctx, sqltype.Bigint(2))
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalMonths() != 9 {
		t.Errorf("precision 1: got %d months, want 9", got.TotalMonths())
	}

	if _, err := nineteen.Multiply(ctx, sqltype.Bigint(1)); !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("19 months in one digit: expected overflow, got %v", err)
	}
}

func TestIntervalOrder(t *testing.T) {
	threeMonths := mustInterval(t, 0, 3)
	fourMonths := mustInterval(t, 0, 4)
	if threeMonths.Cmp(fourMonths) >= 0 {
		t.Error("expected 3 months < 4 months")
	}
	if threeMonths.Cmp(threeMonths) != 0 {
		t.Error("expected 3 months == 3 months")
	}
	if !mustInterval(t, 6, 0).Equal(mustInterval(t, 0, 72)) {
		t.Error("expected 6 years == 72 months")
	}
	if mustInterval(t, 6, 0).Hash() != mustInterval(t, 0, 72).Hash() {
		t.Error("expected equal hashes for 6 years and 72 months")
	}
}

func TestParseIntervalYearMonth(t *testing.T) {
	year, month := sqltype.IntervalFieldYear, sqltype.IntervalFieldMonth
	tests := []struct {
		text       string
		start, end sqltype.IntervalField
		want       int64
		wantErr    bool
	}{
		{text: "124-30", start: year, end: month, want: 1518},
		{text: "-124-30", start: year, end: month, want: -1518},
		{text: "0-3", start: year, end: month, want: 3},
		{text: "6", start: year, end: month, want: 72},
		{text: "6", start: year, end: year, want: 72},
		{text: "-6", start: year, end: year, want: -72},
		{text: "30", start: month, end: month, want: 30},
		{text: "-30", start: month, end: month, want: -30},
		{text: "1-2", start: year, end: year, wantErr: true},
		{text: "1-2", start: month, end: month, wantErr: true},
		{text: "1-2-3", start: year, end: month, wantErr: true},
		{text: "+1-2", start: year, end: month, wantErr: true},
		{text: " 1-2", start: year, end: month, wantErr: true},
		{text: "1-", start: year, end: month, wantErr: true},
		{text: "", start: year, end: month, wantErr: true},
		{text: "a-b", start: year, end: month, wantErr: true},
		{text: "1", start: month, end: year, wantErr: true},
		{text: "99999999999999999999", start: month, end: month, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.start.String()+" TO "+tt.end.String()+" "+tt.text, func(t *testing.T) {
			got, err := sqltype.ParseIntervalYearMonth(tt.text, tt.start, tt.end)
			if tt.wantErr {
				if !errors.Is(err, sqltype.ErrParse) {
					t.Fatalf("expected parse error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.TotalMonths() != tt.want {
				t.Errorf("got %d months, want %d", got.TotalMonths(), tt.want)
			}
		})
	}
}

func TestParseIntervalOverflowCause(t *testing.T) {
	_, err := sqltype.ParseIntervalYearMonth("99999999999999999999", sqltype.IntervalFieldMonth, sqltype.IntervalFieldMonth)
	if !errors.Is(err, sqltype.ErrArithmeticOverflow) {
		t.Errorf("expected wrapped overflow, got %v", err)
	}
}
