package sqltype

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a zone-naive date and time, stored as wall-clock
// milliseconds since 1970-01-01 00:00:00.
type Timestamp struct {
	millis int64
}

// TimestampFromMillis returns the timestamp millis after the epoch.
func TimestampFromMillis(millis int64) Timestamp {
	return Timestamp{millis: millis}
}

func (t Timestamp) Type() TypeID {
	return TypeTimestamp
}
func (t Timestamp) Millis() int64 {
	return t.millis
}
func (t Timestamp) Cmp(other Timestamp) int {
	return compareMillis(t.millis, other.millis)
}
func (t Timestamp) Hash() Bigint {
	return hashInt64(t.millis)
}

// String renders the timestamp as YYYY-MM-DD HH:MM:SS.mmm.
func (t Timestamp) String() string {
	return time.UnixMilli(t.millis).UTC().Format(timestampLayout)
}

const timestampLayout = "2006-01-02 15:04:05.000"

// TimestampWithTimeZone is a date and time local to a zone.
type TimestampWithTimeZone struct {
	local Timestamp
	zone  ZoneKey
}

func (t TimestampWithTimeZone) Type() TypeID {
	return TypeTimestampWithTimeZone
}
func (t TimestampWithTimeZone) Zone() ZoneKey {
	return t.zone
}
func (t TimestampWithTimeZone) LocalTimestamp() Timestamp {
	return t.local
}

// UTCMillis returns the instant denoted by t as milliseconds since the epoch.
func (t TimestampWithTimeZone) UTCMillis(lookup ZoneLookup) (int64, error) {
	return resolveLocal(lookup, t.zone, t.local.millis)
}

// Cmp compares the instants denoted by t and other, whatever their zones.
func (t TimestampWithTimeZone) Cmp(other TimestampWithTimeZone, lookup ZoneLookup) (int, error) {
	l, err := t.UTCMillis(lookup)
	if err != nil {
		return 0, err
	}
	r, err := other.UTCMillis(lookup)
	if err != nil {
		return 0, err
	}
	return compareMillis(l, r), nil
}

func (t TimestampWithTimeZone) String() string {
	return t.local.String() + " " + string(t.zone)
}

var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseTimestamp parses YYYY-MM-DD HH:MM[:SS[.mmm]].
func ParseTimestamp(s string) (Timestamp, error) {
	ts, ok := parseTimestamp(s)
	if !ok {
		return Timestamp{}, &ParseError{Type: TypeTimestamp, Text: s}
	}
	return ts, nil
}

func parseTimestamp(s string) (Timestamp, bool) {
	datePart, timePart, found := strings.Cut(s, " ")
	if !found {
		return Timestamp{}, false
	}
	m := dateRegex.FindStringSubmatch(datePart)
	if m == nil {
		return Timestamp{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		// time.Date normalizes e.g. February 30th
		return Timestamp{}, false
	}
	tod, ok := parseTimeOfDay(timePart)
	if !ok {
		return Timestamp{}, false
	}
	return Timestamp{millis: date.UnixMilli() + tod.millis}, true
}

// ParseTimestampWithTimeZone parses YYYY-MM-DD HH:MM[:SS[.mmm]] followed by
// a space and a zone key.
func ParseTimestampWithTimeZone(s string, lookup ZoneLookup) (TimestampWithTimeZone, error) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return TimestampWithTimeZone{}, &ParseError{Type: TypeTimestampWithTimeZone, Text: s}
	}
	ts, ok := parseTimestamp(s[:i])
	if !ok {
		return TimestampWithTimeZone{}, &ParseError{Type: TypeTimestampWithTimeZone, Text: s}
	}
	zone := ZoneKey(s[i+1:])
	if _, err := resolveLocal(lookup, zone, ts.millis); err != nil {
		return TimestampWithTimeZone{}, &ParseError{Type: TypeTimestampWithTimeZone, Text: s, Err: err}
	}
	return TimestampWithTimeZone{local: ts, zone: zone}, nil
}

func timestampOperators() []registration {
	return append(comparisonOperators[Timestamp](TypeTimestamp),
		hashOperator(TypeTimestamp, func(_ context.Context, t Timestamp) (Bigint, error) {
			return t.Hash(), nil
		}),
		toVarchar[Timestamp](TypeTimestamp),
	)
}

func timestampWithTimeZoneOperators() []registration {
	typ := TypeTimestampWithTimeZone
	return append(comparisons(typ, func(ctx context.Context, a, b TimestampWithTimeZone) (int, error) {
		return a.Cmp(b, zoneLookup(ctx))
	}),
		hashOperator(typ, func(ctx context.Context, t TimestampWithTimeZone) (Bigint, error) {
			utc, err := t.UTCMillis(zoneLookup(ctx))
			if err != nil {
				return 0, err
			}
			return hashInt64(utc), nil
		}),
		toVarchar[TimestampWithTimeZone](typ),
	)
}
