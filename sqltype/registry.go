package sqltype

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Operator is the implementation of one operator for one type.
//
// Predicates return a Boolean, HASH returns a Bigint, CAST returns a value
// of the target type and arithmetic returns a value of the operand type.
// Operators are pure and may be invoked concurrently.
type Operator func(ctx context.Context, args ...Value) (Value, error)

// Signature identifies a registry slot.
type Signature struct {
	Type TypeID
	Kind OperatorKind
	// Target is the result type of a CAST, and TypeUnknown otherwise.
	Target TypeID
}

// OperatorSignature returns the signature of a non-cast operator of typ.
func OperatorSignature(typ TypeID, kind OperatorKind) Signature {
	return Signature{Type: typ, Kind: kind}
}

// CastSignature returns the signature of the cast from one type to another.
func CastSignature(from, to TypeID) Signature {
	return Signature{Type: from, Kind: OperatorCast, Target: to}
}

func (s Signature) String() string {
	if s.Kind == OperatorCast {
		return fmt.Sprintf("CAST(%s AS %s)", s.Type, s.Target)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Type)
}

func compareSignatures(a, b Signature) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	return cmp.Compare(a.Target, b.Target)
}

// RegistryBuilder collects operator registrations until it is frozen.
type RegistryBuilder struct {
	mu        sync.Mutex
	frozen    bool
	operators map[Signature]Operator
}

func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{operators: make(map[Signature]Operator)}
}

// Register adds op under sig.
//
// It fails if sig is already occupied or the builder has been frozen.
func (b *RegistryBuilder) Register(sig Signature, op Operator) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen {
		return fmt.Errorf("%w: can not register %s", ErrRegistryFrozen, sig)
	}
	if op == nil {
		return fmt.Errorf("operator %s is nil", sig)
	}
	if (sig.Kind == OperatorCast) != (sig.Target != TypeUnknown) {
		return fmt.Errorf("invalid signature %s: only CAST has a target type", sig)
	}
	if _, ok := b.operators[sig]; ok {
		return &DuplicateRegistrationError{Signature: sig}
	}
	b.operators[sig] = op
	return nil
}

// Freeze ends the building phase and returns the read-only registry.
//
// Every later call to Register fails. Calling Freeze again returns a
// registry with the same content.
func (b *RegistryBuilder) Freeze() *Registry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frozen = true
	r := &Registry{operators: maps.Clone(b.operators)}
	slog.Debug("operator registry frozen", "operators", len(r.operators))
	return r
}

// Registry is a frozen operator table. It is never written after
// construction, so lookups need no locking.
type Registry struct {
	operators map[Signature]Operator
}

// Lookup returns the operator registered under sig.
func (r *Registry) Lookup(sig Signature) (Operator, error) {
	op, ok := r.operators[sig]
	if !ok {
		return nil, &OperatorNotFoundError{Signature: sig}
	}
	return op, nil
}

// Has reports whether an operator is registered under sig.
func (r *Registry) Has(sig Signature) bool {
	_, ok := r.operators[sig]
	return ok
}

// Signatures returns all registered signatures, ordered by type, kind and target.
func (r *Registry) Signatures() []Signature {
	sigs := make([]Signature, 0, len(r.operators))
	for sig := range r.operators {
		sigs = append(sigs, sig)
	}
	slices.SortFunc(sigs, compareSignatures)
	return sigs
}

// Invoke looks up the operator for sig and applies it to args.
func (r *Registry) Invoke(ctx context.Context, sig Signature, args ...Value) (Value, error) {
	op, err := r.Lookup(sig)
	if err != nil {
		return nil, err
	}
	return op(ctx, args...)
}
