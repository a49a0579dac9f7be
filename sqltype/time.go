package sqltype

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// Time is a zone-naive time of day with millisecond precision.
type Time struct {
	millis int64
}

// NewTime returns the time millis milliseconds after midnight.
func NewTime(millis int64) (Time, error) {
	if millis < 0 || millis >= millisPerDay {
		return Time{}, &ArithmeticOverflowError{
			Op:     "time construction",
			Detail: fmt.Sprintf("%d milliseconds is outside of a day", millis),
		}
	}
	return Time{millis: millis}, nil
}

// TimeOf returns the time hour:minute:second.millis.
func TimeOf(hour, minute, second, millis int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || millis < 0 || millis > 999 {
		return Time{}, &ArithmeticOverflowError{
			Op:     "time construction",
			Detail: fmt.Sprintf("%d:%d:%d.%d is not a time of day", hour, minute, second, millis),
		}
	}
	return Time{millis: int64(hour)*millisPerHour + int64(minute)*millisPerMinute + int64(second)*millisPerSecond + int64(millis)}, nil
}

func (t Time) Type() TypeID {
	return TypeTime
}
func (t Time) MillisOfDay() int64 {
	return t.millis
}
func (t Time) Hour() int {
	return int(t.millis / millisPerHour)
}
func (t Time) Minute() int {
	return int(t.millis % millisPerHour / millisPerMinute)
}
func (t Time) Second() int {
	return int(t.millis % millisPerMinute / millisPerSecond)
}
func (t Time) Millisecond() int {
	return int(t.millis % millisPerSecond)
}
func (t Time) Equal(other Time) bool {
	return t.millis == other.millis
}
func (t Time) Cmp(other Time) int {
	return compareMillis(t.millis, other.millis)
}
func (t Time) Hash() Bigint {
	return hashInt64(t.millis)
}

// At attaches zone to t, treating the stored time as local to that zone.
func (t Time) At(zone ZoneKey, lookup ZoneLookup) (TimeWithTimeZone, error) {
	if _, err := resolveLocal(lookup, zone, t.millis); err != nil {
		return TimeWithTimeZone{}, err
	}
	return TimeWithTimeZone{local: t, zone: zone}, nil
}

// ToTimestamp places t on 1970-01-01.
func (t Time) ToTimestamp() Timestamp {
	return Timestamp{millis: t.millis}
}

// String renders the time as HH:MM:SS.mmm.
func (t Time) String() string {
	var b strings.Builder
	b.Grow(len("00:00:00.000"))
	pad(&b, t.Hour(), 2)
	b.WriteByte(':')
	pad(&b, t.Minute(), 2)
	b.WriteByte(':')
	pad(&b, t.Second(), 2)
	b.WriteByte('.')
	pad(&b, t.Millisecond(), 3)
	return b.String()
}

// TimeWithTimeZone is a time of day local to a zone.
type TimeWithTimeZone struct {
	local Time
	zone  ZoneKey
}

func (t TimeWithTimeZone) Type() TypeID {
	return TypeTimeWithTimeZone
}
func (t TimeWithTimeZone) Zone() ZoneKey {
	return t.zone
}
func (t TimeWithTimeZone) MillisOfDay() int64 {
	return t.local.millis
}

// LocalTime drops the zone, keeping the local time of day.
func (t TimeWithTimeZone) LocalTime() Time {
	return t.local
}

// UTCMillis returns the UTC milliseconds of day on 1970-01-01 that t denotes.
// The result may fall outside of [0, 86400000) for zones east or west of UTC.
func (t TimeWithTimeZone) UTCMillis(lookup ZoneLookup) (int64, error) {
	return resolveLocal(lookup, t.zone, t.local.millis)
}

// Cmp compares the instants denoted by t and other, whatever their zones.
func (t TimeWithTimeZone) Cmp(other TimeWithTimeZone, lookup ZoneLookup) (int, error) {
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

func (t TimeWithTimeZone) Hash(lookup ZoneLookup) (Bigint, error) {
	utc, err := t.UTCMillis(lookup)
	if err != nil {
		return 0, err
	}
	return hashInt64(utc), nil
}

// ToTimestampWithTimeZone places t on 1970-01-01 in its zone.
func (t TimeWithTimeZone) ToTimestampWithTimeZone() TimestampWithTimeZone {
	return TimestampWithTimeZone{local: t.local.ToTimestamp(), zone: t.zone}
}

// String renders the time as HH:MM:SS.mmm followed by the zone key.
func (t TimeWithTimeZone) String() string {
	return t.local.String() + " " + string(t.zone)
}

func compareMillis(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func pad(b *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

var timeRegex = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{3}))?)?$`)

// ParseTime parses HH:MM[:SS[.mmm]]. Missing seconds and milliseconds are zero.
func ParseTime(s string) (Time, error) {
	t, ok := parseTimeOfDay(s)
	if !ok {
		return Time{}, &ParseError{Type: TypeTime, Text: s}
	}
	return t, nil
}

func parseTimeOfDay(s string) (Time, bool) {
	m := timeRegex.FindStringSubmatch(s)
	if m == nil {
		return Time{}, false
	}
	fields := [4]int{}
	for i, f := range m[1:] {
		if f == "" {
			continue
		}
		// at most three digits, can not fail
		fields[i], _ = strconv.Atoi(f)
	}
	t, err := TimeOf(fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return Time{}, false
	}
	return t, true
}

// ParseTimeWithTimeZone parses HH:MM[:SS[.mmm]] followed by a space and a zone key.
func ParseTimeWithTimeZone(s string, lookup ZoneLookup) (TimeWithTimeZone, error) {
	timePart, zone, found := strings.Cut(s, " ")
	if !found {
		return TimeWithTimeZone{}, &ParseError{Type: TypeTimeWithTimeZone, Text: s}
	}
	t, ok := parseTimeOfDay(timePart)
	if !ok {
		return TimeWithTimeZone{}, &ParseError{Type: TypeTimeWithTimeZone, Text: s}
	}
	tz, err := t.At(ZoneKey(zone), lookup)
	if err != nil {
		return TimeWithTimeZone{}, &ParseError{Type: TypeTimeWithTimeZone, Text: s, Err: err}
	}
	return tz, nil
}

func timeOperators() []registration {
	return append(comparisonOperators[Time](TypeTime),
		hashOperator(TypeTime, func(_ context.Context, t Time) (Bigint, error) {
			return t.Hash(), nil
		}),
		castOperator(TypeTime, TypeTimeWithTimeZone, func(ctx context.Context, t Time) (TimeWithTimeZone, error) {
			return attachSessionZone(ctx, t, TypeTimeWithTimeZone)
		}),
		castOperator(TypeTime, TypeTimestamp, func(_ context.Context, t Time) (Timestamp, error) {
			return t.ToTimestamp(), nil
		}),
		castOperator(TypeTime, TypeTimestampWithTimeZone, func(ctx context.Context, t Time) (TimestampWithTimeZone, error) {
			tz, err := attachSessionZone(ctx, t, TypeTimestampWithTimeZone)
			if err != nil {
				return TimestampWithTimeZone{}, err
			}
			return tz.ToTimestampWithTimeZone(), nil
		}),
		toVarchar[Time](TypeTime),
	)
}

func attachSessionZone(ctx context.Context, t Time, target TypeID) (TimeWithTimeZone, error) {
	zone := sessionZone(ctx)
	tz, err := t.At(zone, zoneLookup(ctx))
	if err != nil {
		return TimeWithTimeZone{}, &CastError{
			From:   TypeTime,
			To:     target,
			Detail: fmt.Sprintf("Cannot cast '%s' to %s in zone %s: %v", t, target, zone, err),
			Err:    err,
		}
	}
	return tz, nil
}

func timeWithTimeZoneOperators() []registration {
	typ := TypeTimeWithTimeZone
	return append(comparisons(typ, func(ctx context.Context, a, b TimeWithTimeZone) (int, error) {
		return a.Cmp(b, zoneLookup(ctx))
	}),
		hashOperator(typ, func(ctx context.Context, t TimeWithTimeZone) (Bigint, error) {
			return t.Hash(zoneLookup(ctx))
		}),
		castOperator(typ, TypeTime, func(_ context.Context, t TimeWithTimeZone) (Time, error) {
			return t.LocalTime(), nil
		}),
		castOperator(typ, TypeTimestampWithTimeZone, func(_ context.Context, t TimeWithTimeZone) (TimestampWithTimeZone, error) {
			return t.ToTimestampWithTimeZone(), nil
		}),
		toVarchar[TimeWithTimeZone](typ),
	)
}
