package sqltype

import (
	"fmt"
	"log/slog"
	"sync"
)

// typeModules lists the operator tables of every built-in type.
var typeModules = []func() []registration{
	booleanOperators,
	bigintOperators,
	doubleOperators,
	varcharOperators,
	intervalOperators,
	timeOperators,
	timeWithTimeZoneOperators,
	timestampOperators,
	timestampWithTimeZoneOperators,
}

// RegisterBuiltins registers the operators of all built-in types into b.
func RegisterBuiltins(b *RegistryBuilder) error {
	for _, module := range typeModules {
		for _, r := range module() {
			if err := b.Register(r.sig, r.op); err != nil {
				return fmt.Errorf("registering built-in operators: %w", err)
			}
		}
	}
	return nil
}

// NewBuiltinRegistry builds and freezes a registry holding only the
// built-in operators.
func NewBuiltinRegistry() (*Registry, error) {
	b := NewRegistryBuilder()
	if err := RegisterBuiltins(b); err != nil {
		return nil, err
	}
	return b.Freeze(), nil
}

// Default returns the process-wide registry of built-in operators.
//
// It is built on first use. A failing registration is a programming error
// and panics.
var Default = sync.OnceValue(func() *Registry {
	r, err := NewBuiltinRegistry()
	if err != nil {
		slog.Error("failed to build operator registry", "err", err)
		panic(err)
	}
	return r
})
