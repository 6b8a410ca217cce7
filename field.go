package bitsig

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrFieldMismatch is returned when arithmetic is attempted between field
// elements with different moduli. There is no valid mixed-field arithmetic,
// so callers must treat this as fatal for the operation in progress.
var ErrFieldMismatch = errors.New("field elements have different moduli")

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
	bigSeven = big.NewInt(7)
)

// FieldElement is an integer reduced modulo a fixed prime. Elements are
// immutable values; every operation returns a fresh element and never touches
// its operands.
type FieldElement struct {
	n *big.Int
	m *big.Int
}

// NewFieldElement creates a field element from n, reduced into [0, m).
// Negative n reduces to its positive residue.
func NewFieldElement(n, m *big.Int) FieldElement {
	return FieldElement{n: new(big.Int).Mod(n, m), m: m}
}

// Num returns a copy of the element's value.
func (e FieldElement) Num() *big.Int {
	return new(big.Int).Set(e.n)
}

// Modulus returns a copy of the element's modulus.
func (e FieldElement) Modulus() *big.Int {
	return new(big.Int).Set(e.m)
}

func (e FieldElement) sameField(other FieldElement) error {
	if e.m.Cmp(other.m) != 0 {
		return fmt.Errorf("%w: %x vs %x", ErrFieldMismatch, e.m, other.m)
	}
	return nil
}

// Add returns e + other.
func (e FieldElement) Add(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	return NewFieldElement(new(big.Int).Add(e.n, other.n), e.m), nil
}

// Sub returns e - other.
func (e FieldElement) Sub(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	return NewFieldElement(new(big.Int).Sub(e.n, other.n), e.m), nil
}

// Mul returns e * other.
func (e FieldElement) Mul(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	return NewFieldElement(new(big.Int).Mul(e.n, other.n), e.m), nil
}

// Div returns e / other, computed as e * other^(m-2) per Fermat's little
// theorem. This is only an inverse when the modulus is prime. Division by
// zero yields zero, not an error: 0^(m-2) is 0, and the reference semantics
// rely on that falling through.
func (e FieldElement) Div(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	inv := other.Pow(new(big.Int).Sub(e.m, bigTwo))
	return e.Mul(inv)
}

// Pow returns e raised to exp. Negative exponents are handled by first
// reducing exp modulo m-1 (Fermat), which is only valid when the base is
// coprime to the modulus; never call this on a zero base with a negative
// exponent.
func (e FieldElement) Pow(exp *big.Int) FieldElement {
	reduced := new(big.Int).Mod(exp, new(big.Int).Sub(e.m, bigOne))
	return FieldElement{n: new(big.Int).Exp(e.n, reduced, e.m), m: e.m}
}

// Mod returns e modulo other's value, staying in the same field.
func (e FieldElement) Mod(other FieldElement) (FieldElement, error) {
	if err := e.sameField(other); err != nil {
		return FieldElement{}, err
	}
	return FieldElement{n: new(big.Int).Mod(e.n, other.n), m: e.m}, nil
}

// Neg returns the additive inverse of e.
func (e FieldElement) Neg() FieldElement {
	return NewFieldElement(new(big.Int).Neg(e.n), e.m)
}

// Equal reports whether both the value and the modulus match.
func (e FieldElement) Equal(other FieldElement) bool {
	return e.n.Cmp(other.n) == 0 && e.m.Cmp(other.m) == 0
}

// IsZero reports whether the element is the additive identity.
func (e FieldElement) IsZero() bool {
	return e.n.Sign() == 0
}

// String renders the element as hex together with its modulus.
func (e FieldElement) String() string {
	return fmt.Sprintf("%x (mod %x)", e.n, e.m)
}
