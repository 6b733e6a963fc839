package group

import (
	"crypto/sha256"
	"io"
	"math/big"
)

// Scalar is an element of a group's scalar field: integers modulo the
// group's order N. Every arithmetic method sets the receiver and returns
// it, mirroring Element's calling convention.
type Scalar struct {
	order *big.Int
	val   *big.Int
}

// NewScalar allocates a zero scalar bound to the given group order.
func NewScalar(order *big.Int) Scalar {
	return Scalar{order: order, val: new(big.Int)}
}

// ScalarFromU128 reduces v modulo order.
func ScalarFromU128(order *big.Int, v *big.Int) Scalar {
	s := NewScalar(order)
	s.val.Mod(v, order)
	return s
}

// ScalarFromBytesModOrder reduces the big-endian integer encoded by b
// modulo order.
func ScalarFromBytesModOrder(order *big.Int, b []byte) Scalar {
	s := NewScalar(order)
	s.val.Mod(new(big.Int).SetBytes(b), order)
	return s
}

func hashToScalar(order *big.Int, data []byte) Scalar {
	digest := sha256.Sum256(data)
	return ScalarFromBytesModOrder(order, digest[:])
}

func sampleUniformScalar(order *big.Int, rand io.Reader) Scalar {
	// 16 bytes beyond the order's width keep the reduction bias negligible
	// for every backend, including the 384-bit P-384 order.
	buf := make([]byte, (order.BitLen()+7)/8+16)
	if _, err := io.ReadFull(rand, buf); err != nil {
		panic("group: RNG read failed: " + err.Error())
	}
	return ScalarFromBytesModOrder(order, buf)
}

// Order returns the scalar field's modulus.
func (s Scalar) Order() *big.Int { return s.order }

// BigInt returns the scalar's value as a non-negative integer in
// [0, order).
func (s Scalar) BigInt() *big.Int { return new(big.Int).Set(s.val) }

// Bytes returns the 32-byte big-endian canonical encoding of the scalar.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	s.val.FillBytes(out[:])
	return out
}

// Add sets the receiver to a+b mod order and returns it.
func (s *Scalar) Add(a, b Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Add(a.val, b.val), a.order)
	return s
}

// Sub sets the receiver to a-b mod order and returns it.
func (s *Scalar) Sub(a, b Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Sub(a.val, b.val), a.order)
	return s
}

// Mul sets the receiver to a*b mod order and returns it.
func (s *Scalar) Mul(a, b Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Mul(a.val, b.val), a.order)
	return s
}

// Neg sets the receiver to -a mod order and returns it.
func (s *Scalar) Neg(a Scalar) *Scalar {
	s.order = a.order
	s.val = new(big.Int).Mod(new(big.Int).Neg(a.val), a.order)
	return s
}

// IsZero reports whether the scalar is the additive identity.
func (s Scalar) IsZero() bool { return s.val.Sign() == 0 }

// Equal reports whether the two scalars hold the same value.
func (s Scalar) Equal(o Scalar) bool { return s.val.Cmp(o.val) == 0 }
