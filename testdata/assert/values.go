package assert

import (
	"reflect"
	"testing"

	"github.com/damedic/sqltypes-go/sqltype"
	"github.com/google/go-cmp/cmp"
)

var valueOptions = cmp.Options{
	// value types keep their state unexported
	cmp.Exporter(func(reflect.Type) bool { return true }),
	// NaN equals NaN, as in the DOUBLE order
	cmp.Comparer(func(a, b sqltype.Double) bool { return a.Cmp(b) == 0 }),
}

// ValueEqual reports a diff if actual is not the same SQL value as expected.
func ValueEqual(t *testing.T, expected, actual sqltype.Value) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, valueOptions); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}
