package bitsig

import (
	"math/big"
)

// Signature is an ECDSA (r, s) pair over secp256k1.
// See https://en.wikipedia.org/wiki/Elliptic_Curve_Digital_Signature_Algorithm
type Signature struct {
	R *big.Int
	S *big.Int
}

// RecoverPublicKey reconstructs the candidate public key for one recovery id
// in 0..3: Q = r⁻¹·(s·R + (−z)·G), where R is the point rebuilt from the
// candidate x coordinate r + (id/2)·N and the square root of x³ + 7 whose
// parity matches the id's low bit.
//
// The square root β = α^((P+1)/4) is valid because P ≡ 3 (mod 4), but β² ≡ α
// is not rechecked: for an id whose candidate x is not on the curve the
// returned key is meaningless rather than an error, and simply fails to match
// any address downstream.
func (sig *Signature) RecoverPublicKey(curve *Curve, digest *big.Int, recID int) (*PublicKey, error) {
	r := NewFieldElement(sig.R, curve.P)
	s := NewFieldElement(sig.S, curve.P)

	// x = r + (id/2)·N covers the rare signature whose true x exceeded N.
	offset, err := NewFieldElement(curve.N, curve.P).Mul(NewFieldElement(big.NewInt(int64(recID/2)), curve.P))
	if err != nil {
		return nil, err
	}
	x, err := r.Add(offset)
	if err != nil {
		return nil, err
	}

	// α = x³ + 7, β = √α
	alpha, err := x.Pow(bigThree).Add(NewFieldElement(bigSeven, curve.P))
	if err != nil {
		return nil, err
	}
	sqrtExp := new(big.Int).Add(curve.P, bigOne)
	sqrtExp.Div(sqrtExp, bigFour)
	beta := alpha.Pow(sqrtExp)

	// Pick the root whose parity encodes which root the signer's point used.
	parity, err := beta.Sub(NewFieldElement(big.NewInt(int64(recID)), curve.P))
	if err != nil {
		return nil, err
	}
	y := beta
	if parity.Num().Bit(0) != 0 {
		y = beta.Neg()
	}

	// Q = r⁻¹·(s·R + (−z)·G)
	rp := NewPoint(x, y)
	sR, err := curve.ScalarMult(s.Num(), rp)
	if err != nil {
		return nil, err
	}
	minusZ := NewFieldElement(digest, curve.N).Neg()
	zG, err := curve.ScalarBaseMult(minusZ.Num())
	if err != nil {
		return nil, err
	}
	sum, err := curve.Add(sR, zG)
	if err != nil {
		return nil, err
	}
	rInv := NewFieldElement(sig.R, curve.N).Pow(big.NewInt(-1))
	q, err := curve.ScalarMult(rInv.Num(), sum)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(curve, q), nil
}

// VerifyAddress reports whether the signature over digest was produced by
// the key behind the given Bitcoin address. It walks all four recovery ids,
// derives the compressed and uncompressed address of each candidate key, and
// accepts on the first match. There is no direct check of the ECDSA
// verification congruence; recovering the signer's key and comparing
// addresses is the whole verification.
func (sig *Signature) VerifyAddress(curve *Curve, digest *big.Int, address string) (bool, error) {
	for recID := 0; recID < 4; recID++ {
		pub, err := sig.RecoverPublicKey(curve, digest, recID)
		if err != nil {
			return false, err
		}
		if pub.BitcoinAddress(false) == address || pub.BitcoinAddress(true) == address {
			return true, nil
		}
	}
	return false, nil
}
