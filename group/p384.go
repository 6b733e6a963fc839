package group

import (
	"io"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

// p384Group implements Group over NIST P-384, an alternate backend offering
// a larger security margin than P-256 or Ristretto255 (spec §4.1).
type p384Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type p384Point struct {
	curve *p384Group
	val   circl.Element
}

func (g *p384Group) Name() string { return g.name }

func (g *p384Group) P() *big.Int { return g.fieldOrder }
func (g *p384Group) N() *big.Int { return g.curveOrder }

func (g *p384Group) Generator() Element {
	return &p384Point{curve: g, val: circl.P384.Generator()}
}

func (g *p384Group) Identity() Element {
	return &p384Point{curve: g, val: circl.P384.Identity()}
}

func (g *p384Group) Element() Element {
	return &p384Point{curve: g, val: circl.P384.NewElement()}
}

func (g *p384Group) Random(rand io.Reader) Element {
	var buf [96]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		panic("group: RNG read failed: " + err.Error())
	}
	return &p384Point{curve: g, val: circl.P384.HashToElement(buf[:], nil)}
}

func (g *p384Group) SampleUniformScalar(rand io.Reader) Scalar {
	return sampleUniformScalar(g.curveOrder, rand)
}

func (g *p384Group) HashToScalar(data []byte) Scalar {
	return hashToScalar(g.curveOrder, data)
}

func (e *p384Point) check(a Element) *p384Point {
	ea, ok := a.(*p384Point)
	if !ok {
		panic("group: incompatible element type")
	}
	return ea
}

func (e *p384Point) toScalar(s Scalar) circl.Scalar {
	return circl.P384.NewScalar().SetBigInt(s.BigInt())
}

func (e *p384Point) Add(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	e.curve = ca.curve
	e.val = circl.P384.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *p384Point) Subtract(a, b Element) Element {
	ca := e.check(a)
	tmp := ca.curve.Identity()
	tmp.Negate(b)
	return e.Add(a, tmp)
}

func (e *p384Point) Negate(a Element) Element {
	ca := e.check(a)
	e.curve = ca.curve
	e.val = circl.P384.NewElement().Neg(ca.val)
	return e
}

func (e *p384Point) IsEqual(b Element) bool {
	return e.val.IsEqual(e.check(b).val)
}

func (e *p384Point) Set(x Element) Element {
	cx := e.check(x)
	e.curve = cx.curve
	e.val = circl.P384.NewElement().Set(cx.val)
	return e
}

func (e *p384Point) SetBytes(b []byte) Element {
	e.val = circl.P384.NewElement()
	_ = e.val.UnmarshalBinary(b)
	return e
}

func (e *p384Point) Scale(x Element, s Scalar) Element {
	ex := e.check(x)
	e.curve = ex.curve
	e.val = circl.P384.NewElement().Mul(ex.val, e.toScalar(s))
	return e
}

func (e *p384Point) BaseScale(s Scalar) Element {
	e.val = circl.P384.NewElement().MulGen(e.toScalar(s))
	return e
}

func (e *p384Point) GroupOrder() *big.Int { return e.curve.curveOrder }
func (e *p384Point) FieldOrder() *big.Int { return e.curve.fieldOrder }

func (e *p384Point) Bytes() []byte {
	b, _ := e.val.MarshalBinary()
	return b
}

func (e *p384Point) String() string { return hexEncode(e.Bytes()) }

func (e *p384Point) IsIdentity() bool { return e.val.IsIdentity() }

func (e *p384Point) MarshalBinary() ([]byte, error) { return e.val.MarshalBinary() }

func (e *p384Point) UnmarshalBinary(data []byte) error { return e.val.UnmarshalBinary(data) }

func (e *p384Point) MarshalJSON() ([]byte, error) { return marshalElementJSON(e) }

func (e *p384Point) UnmarshalJSON(data []byte) error {
	e.val = circl.P384.NewElement()
	return unmarshalElementJSON(data, e)
}

// P384 returns the NIST P-384 group.
func P384() Group {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff", 16)
	n, _ := new(big.Int).SetString("ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973", 16)
	return &p384Group{fieldOrder: p, curveOrder: n, name: "P-384"}
}
