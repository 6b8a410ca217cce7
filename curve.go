package bitsig

import (
	"math/big"
)

// Curve holds the secp256k1 domain parameters. The curve equation is
// y² = x³ + 7 mod P. A Curve value is immutable after construction and is
// passed explicitly into every operation that needs it.
type Curve struct {
	P *big.Int // field prime
	N *big.Int // group order
	G Point    // generator
}

var secp256k1 = newSecp256k1()

// Secp256k1 returns the canonical secp256k1 parameter set. The returned
// value is shared and read-only.
func Secp256k1() *Curve {
	return secp256k1
}

func newSecp256k1() *Curve {
	// See https://www.secg.org/sec2-v2.pdf, section 2.4.1.
	p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	n, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	gx, _ := new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	gy, _ := new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
	return &Curve{
		P: p,
		N: n,
		G: NewPoint(NewFieldElement(gx, p), NewFieldElement(gy, p)),
	}
}

// Point is an affine point on the curve, or the point at infinity (the group
// identity), which is carried as an explicit variant rather than a magic
// coordinate pair.
type Point struct {
	X, Y FieldElement
	inf  bool
}

// NewPoint creates an affine point from two field elements over the curve
// prime. The coordinates are not checked against the curve equation here;
// use Curve.IsOnCurve for that.
func NewPoint(x, y FieldElement) Point {
	return Point{X: x, Y: y}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether two points are the same point.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// IsOnCurve reports whether p satisfies y² = x³ + 7 mod P. The point at
// infinity is on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	lhs := p.Y.Pow(bigTwo)
	rhs, err := p.X.Pow(bigThree).Add(NewFieldElement(bigSeven, c.P))
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// Add applies the group law to two affine points: the tangent slope when
// doubling, the chord slope otherwise. It is never called with the point at
// infinity; ScalarMult swaps the identity out before the group law runs.
// Adding a point to its own negation divides by zero, which the field
// defines as zero, so the result is garbage rather than an error; callers
// on that path (recovery candidates) fail downstream by design.
func (c *Curve) Add(p, q Point) (Point, error) {
	var lambda FieldElement
	if p.X.Equal(q.X) && p.Y.Equal(q.Y) {
		// λ = 3x² / 2y
		num, err := p.X.Pow(bigTwo).Mul(NewFieldElement(bigThree, c.P))
		if err != nil {
			return Point{}, err
		}
		den, err := p.Y.Mul(NewFieldElement(bigTwo, c.P))
		if err != nil {
			return Point{}, err
		}
		lambda, err = num.Div(den)
		if err != nil {
			return Point{}, err
		}
	} else {
		// λ = (y₂ - y₁) / (x₂ - x₁)
		num, err := q.Y.Sub(p.Y)
		if err != nil {
			return Point{}, err
		}
		den, err := q.X.Sub(p.X)
		if err != nil {
			return Point{}, err
		}
		lambda, err = num.Div(den)
		if err != nil {
			return Point{}, err
		}
	}

	// x₃ = λ² - x₁ - x₂
	t, err := lambda.Pow(bigTwo).Sub(p.X)
	if err != nil {
		return Point{}, err
	}
	x, err := t.Sub(q.X)
	if err != nil {
		return Point{}, err
	}

	// y₃ = λ(x₁ - x₃) - y₁
	dx, err := p.X.Sub(x)
	if err != nil {
		return Point{}, err
	}
	ldx, err := lambda.Mul(dx)
	if err != nil {
		return Point{}, err
	}
	y, err := ldx.Sub(p.Y)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(x, y), nil
}

// ScalarMult computes k·p by binary double-and-add, walking the bits of k
// from least significant to most significant. The accumulator starts at
// infinity and the first set bit replaces it with the running base instead of
// invoking the group law on the identity.
//
// This is not constant time: the number and pattern of point additions leaks
// the Hamming weight and bit positions of k through timing. That is an
// accepted limitation for a file signing tool; do not reuse this where
// side-channel resistance matters.
func (c *Curve) ScalarMult(k *big.Int, p Point) (Point, error) {
	acc := Infinity()
	base := p
	var err error
	for i := 0; i < 256; i++ {
		if k.Bit(i) != 0 {
			if acc.IsInfinity() {
				acc = base
			} else {
				acc, err = c.Add(acc, base)
				if err != nil {
					return Point{}, err
				}
			}
		}
		base, err = c.Add(base, base)
		if err != nil {
			return Point{}, err
		}
	}
	return acc, nil
}

// ScalarBaseMult computes k·G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(k, c.G)
}
