package sqltype

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("invalid literal")
	// ErrCast is matched by every *CastError.
	ErrCast = errors.New("invalid cast")
	// ErrOperatorNotFound is matched by every *OperatorNotFoundError.
	ErrOperatorNotFound = errors.New("operator not found")
	// ErrArithmeticOverflow is matched by every *ArithmeticOverflowError.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	// ErrDuplicateRegistration is matched by every *DuplicateRegistrationError.
	ErrDuplicateRegistration = errors.New("duplicate operator registration")
	// ErrRegistryFrozen is returned when registering into a frozen registry.
	ErrRegistryFrozen = errors.New("operator registry is frozen")
	// ErrUnknownZone is returned when a zone key can not be resolved.
	ErrUnknownZone = errors.New("unknown time zone")
)

// ParseError reports literal text that does not match the grammar of its type.
type ParseError struct {
	Type TypeID
	Text string
	// Err optionally holds the underlying cause, e.g. an overflow.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s literal '%s': %v", e.Type, e.Text, e.Err)
	}
	return fmt.Sprintf("invalid %s literal '%s'", e.Type, e.Text)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// CastError reports a well-formed value that can not be represented in the target type.
type CastError struct {
	From   TypeID
	To     TypeID
	Detail string
	Err    error
}

func (e *CastError) Error() string {
	return e.Detail
}

func (e *CastError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrCast, e.Err}
	}
	return []error{ErrCast}
}

func castError(from, to TypeID, text string, cause error) *CastError {
	return &CastError{
		From:   from,
		To:     to,
		Detail: fmt.Sprintf("Cannot cast '%s' to %s", text, to),
		Err:    cause,
	}
}

// OperatorNotFoundError reports a signature without a registered implementation.
type OperatorNotFoundError struct {
	Signature Signature
}

func (e *OperatorNotFoundError) Error() string {
	return fmt.Sprintf("operator not found: %s", e.Signature)
}

func (e *OperatorNotFoundError) Unwrap() error {
	return ErrOperatorNotFound
}

// ArithmeticOverflowError reports a result outside the representable range.
type ArithmeticOverflowError struct {
	Op     string
	Detail string
}

func (e *ArithmeticOverflowError) Error() string {
	return fmt.Sprintf("arithmetic overflow in %s: %s", e.Op, e.Detail)
}

func (e *ArithmeticOverflowError) Unwrap() error {
	return ErrArithmeticOverflow
}

// DuplicateRegistrationError reports a second registration for an occupied signature.
type DuplicateRegistrationError struct {
	Signature Signature
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("operator %s is already registered", e.Signature)
}

func (e *DuplicateRegistrationError) Unwrap() error {
	return ErrDuplicateRegistration
}

func argumentCountError(sig string, want, got int) error {
	return fmt.Errorf("%s expects %d arguments, got %d", sig, want, got)
}

func argumentTypeError[T Value](sig string, pos int, got Value) error {
	var want T
	return fmt.Errorf("%s expects argument %d of type %T, got %T", sig, pos, want, got)
}
