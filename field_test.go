package bitsig

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FieldElement_Closure(t *testing.T) {
	assert := assert.New(t)

	m := Secp256k1().P
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a := NewFieldElement(new(big.Int).Rand(rng, m), m)
		b := NewFieldElement(new(big.Int).Rand(rng, m), m)

		sum, err := a.Add(b)
		assert.NoError(err)
		diff, err := a.Sub(b)
		assert.NoError(err)
		prod, err := a.Mul(b)
		assert.NoError(err)

		for _, e := range []FieldElement{sum, diff, prod} {
			assert.True(e.Num().Sign() >= 0)
			assert.True(e.Num().Cmp(m) < 0)
		}
	}
}

func Test_FieldElement_SmallPrime(t *testing.T) {
	assert := assert.New(t)

	m := big.NewInt(13)
	a := NewFieldElement(big.NewInt(7), m)
	b := NewFieldElement(big.NewInt(9), m)

	sum, err := a.Add(b)
	assert.NoError(err)
	assert.EqualValues(3, sum.Num().Int64())

	diff, err := a.Sub(b)
	assert.NoError(err)
	assert.EqualValues(11, diff.Num().Int64())

	prod, err := a.Mul(b)
	assert.NoError(err)
	assert.EqualValues(11, prod.Num().Int64())

	assert.EqualValues(6, a.Neg().Num().Int64())

	rem, err := b.Mod(a)
	assert.NoError(err)
	assert.EqualValues(2, rem.Num().Int64())
}

func Test_FieldElement_NegativeValueReduces(t *testing.T) {
	assert := assert.New(t)

	e := NewFieldElement(big.NewInt(-3), big.NewInt(13))
	assert.EqualValues(10, e.Num().Int64())
}

func Test_FieldElement_DivSelfIsOne(t *testing.T) {
	assert := assert.New(t)

	m := Secp256k1().P
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		n := new(big.Int).Rand(rng, m)
		if n.Sign() == 0 {
			continue
		}
		a := NewFieldElement(n, m)
		q, err := a.Div(a)
		assert.NoError(err)
		assert.EqualValues(1, q.Num().Int64())
	}
}

func Test_FieldElement_DivByZeroYieldsZero(t *testing.T) {
	assert := assert.New(t)

	m := Secp256k1().P
	a := NewFieldElement(big.NewInt(12345), m)
	zero := NewFieldElement(big.NewInt(0), m)
	q, err := a.Div(zero)
	assert.NoError(err)
	assert.True(q.IsZero())
}

func Test_FieldElement_PowNegativeExponent(t *testing.T) {
	assert := assert.New(t)

	m := Secp256k1().P
	a := NewFieldElement(big.NewInt(31337), m)
	inv := a.Pow(big.NewInt(-1))
	prod, err := inv.Mul(a)
	assert.NoError(err)
	assert.EqualValues(1, prod.Num().Int64())
}

func Test_FieldElement_Mismatch(t *testing.T) {
	assert := assert.New(t)

	a := NewFieldElement(big.NewInt(5), big.NewInt(13))
	b := NewFieldElement(big.NewInt(5), big.NewInt(17))

	_, err := a.Add(b)
	assert.ErrorIs(err, ErrFieldMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(err, ErrFieldMismatch)
	_, err = a.Mul(b)
	assert.ErrorIs(err, ErrFieldMismatch)
	_, err = a.Div(b)
	assert.ErrorIs(err, ErrFieldMismatch)
	_, err = a.Mod(b)
	assert.ErrorIs(err, ErrFieldMismatch)

	// Same value, different field: not equal.
	assert.False(a.Equal(b))
}

func Test_FieldElement_Immutable(t *testing.T) {
	assert := assert.New(t)

	m := big.NewInt(13)
	a := NewFieldElement(big.NewInt(7), m)
	b := NewFieldElement(big.NewInt(9), m)
	_, err := a.Add(b)
	assert.NoError(err)
	assert.EqualValues(7, a.Num().Int64())
	assert.EqualValues(9, b.Num().Int64())
}
