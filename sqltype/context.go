package sqltype

import (
	"context"

	"github.com/cockroachdb/apd/v3"
)

type decimalContextKey struct{}

// WithAPDContext sets the decimal context for interval scaling.
//
// Only its precision and exponent limits are used: MULTIPLY and DIVIDE
// always round toward zero. The default of 34 digits keeps the whole months
// of every int64 result. A precision too small to hold them makes scaling
// fail with ArithmeticOverflowError instead of rounding months away.
func WithAPDContext(ctx context.Context, decimalCtx *apd.Context) context.Context {
	return context.WithValue(ctx, decimalContextKey{}, decimalCtx)
}

var defaultScalingContext = apd.BaseContext.WithPrecision(34)

func apdContext(ctx context.Context) *apd.Context {
	if ctx == nil {
		return defaultScalingContext
	}
	decimalCtx, _ := ctx.Value(decimalContextKey{}).(*apd.Context)
	if decimalCtx == nil {
		return defaultScalingContext
	}
	return decimalCtx
}

type zoneLookupKey struct{}

// WithZoneLookup installs the zone lookup used to resolve zone keys.
//
// By default DefaultZones is used.
func WithZoneLookup(ctx context.Context, lookup ZoneLookup) context.Context {
	return context.WithValue(ctx, zoneLookupKey{}, lookup)
}

func zoneLookup(ctx context.Context) ZoneLookup {
	if ctx != nil {
		if lookup, ok := ctx.Value(zoneLookupKey{}).(ZoneLookup); ok && lookup != nil {
			return lookup
		}
	}
	return DefaultZones()
}

type sessionZoneKey struct{}

// WithSessionZone sets the zone attached to zone-naive values when they are
// cast to a zoned type. Defaults to UTC.
func WithSessionZone(ctx context.Context, zone ZoneKey) context.Context {
	return context.WithValue(ctx, sessionZoneKey{}, zone)
}

func sessionZone(ctx context.Context) ZoneKey {
	if ctx != nil {
		if zone, ok := ctx.Value(sessionZoneKey{}).(ZoneKey); ok && zone != "" {
			return zone
		}
	}
	return UTC
}
