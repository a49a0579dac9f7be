package sqltype

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"sync"
	"time"
	_ "time/tzdata"
)

// ZoneKey identifies a time zone, either by IANA name ("Europe/Berlin")
// or as a fixed offset ("+01:00").
type ZoneKey string

const UTC ZoneKey = "UTC"

// ZoneLookup resolves zone keys to their offset rules.
//
// Implementations must be safe for concurrent use.
type ZoneLookup interface {
	Location(key ZoneKey) (*time.Location, error)
}

// ZoneTable is an immutable, preloaded ZoneLookup.
//
// Fixed offsets of the form ±HH:MM are resolved without being preloaded.
type ZoneTable struct {
	zones map[ZoneKey]*time.Location
}

// NewZoneTable loads the named zones from the time zone database.
func NewZoneTable(names ...string) (*ZoneTable, error) {
	zones := make(map[ZoneKey]*time.Location, len(names))
	for _, name := range names {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnknownZone, name, err)
		}
		zones[ZoneKey(name)] = loc
	}
	return &ZoneTable{zones: zones}, nil
}

var fixedOffsetRegex = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

func (z *ZoneTable) Location(key ZoneKey) (*time.Location, error) {
	if loc, ok := z.zones[key]; ok {
		return loc, nil
	}
	if m := fixedOffsetRegex.FindStringSubmatch(string(key)); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if hours > 14 || minutes > 59 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownZone, key)
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(string(key), offset), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownZone, key)
}

// Keys returns the preloaded zone keys in sorted order.
func (z *ZoneTable) Keys() []ZoneKey {
	keys := make([]ZoneKey, 0, len(z.zones))
	for k := range z.zones {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var defaultZoneNames = []string{
	"UTC",
	"America/Chicago",
	"America/Los_Angeles",
	"America/New_York",
	"America/Sao_Paulo",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Europe/Berlin",
	"Europe/London",
	"Europe/Paris",
	"Pacific/Auckland",
}

// DefaultZones returns the process-wide zone table, loaded on first use.
var DefaultZones = sync.OnceValue(func() *ZoneTable {
	table, err := NewZoneTable(defaultZoneNames...)
	if err != nil {
		panic(err)
	}
	return table
})

// localInstant returns the UTC milliseconds of the wall-clock time
// localMillis in loc. It reports false for wall-clock times skipped by a
// forward transition, e.g. 02:30 on the night summer time starts.
func localInstant(loc *time.Location, localMillis int64) (int64, bool) {
	wall := time.UnixMilli(localMillis).UTC()
	t := time.Date(
		wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(),
		loc,
	)
	if t.Hour() != wall.Hour() || t.Minute() != wall.Minute() || t.Day() != wall.Day() {
		return 0, false
	}
	return t.UnixMilli(), true
}

// resolveLocal resolves localMillis in zone to UTC milliseconds.
func resolveLocal(lookup ZoneLookup, zone ZoneKey, localMillis int64) (int64, error) {
	loc, err := lookup.Location(zone)
	if err != nil {
		return 0, err
	}
	utc, ok := localInstant(loc, localMillis)
	if !ok {
		return 0, fmt.Errorf("%s does not exist in %s", time.UnixMilli(localMillis).UTC().Format(timestampLayout), zone)
	}
	return utc, nil
}
