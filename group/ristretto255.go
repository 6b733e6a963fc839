package group

import (
	"io"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

// r255Group implements Group over the Ristretto255 prime-order group, the
// reference backend this module recommends (spec §4.1).
type r255Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type r255Point struct {
	curve *r255Group
	val   circl.Element
}

func (g *r255Group) Name() string { return g.name }

func (g *r255Group) P() *big.Int { return g.fieldOrder }
func (g *r255Group) N() *big.Int { return g.curveOrder }

func (g *r255Group) Generator() Element {
	return &r255Point{curve: g, val: circl.Ristretto255.Generator()}
}

func (g *r255Group) Identity() Element {
	return &r255Point{curve: g, val: circl.Ristretto255.Identity()}
}

func (g *r255Group) Element() Element {
	return &r255Point{curve: g, val: circl.Ristretto255.NewElement()}
}

// Random samples via hash-to-curve over 64 uniform bytes rather than
// scaling the generator by a sampled scalar, which would leak the element's
// discrete log to the caller.
func (g *r255Group) Random(rand io.Reader) Element {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		panic("group: RNG read failed: " + err.Error())
	}
	return &r255Point{curve: g, val: circl.Ristretto255.HashToElement(buf[:], nil)}
}

func (g *r255Group) SampleUniformScalar(rand io.Reader) Scalar {
	return sampleUniformScalar(g.curveOrder, rand)
}

func (g *r255Group) HashToScalar(data []byte) Scalar {
	return hashToScalar(g.curveOrder, data)
}

func (e *r255Point) check(a Element) *r255Point {
	ea, ok := a.(*r255Point)
	if !ok {
		panic("group: incompatible element type")
	}
	return ea
}

func (e *r255Point) toScalar(s Scalar) circl.Scalar {
	return circl.Ristretto255.NewScalar().SetBigInt(s.BigInt())
}

func (e *r255Point) Add(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	e.curve = ca.curve
	e.val = circl.Ristretto255.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *r255Point) Subtract(a, b Element) Element {
	ca := e.check(a)
	tmp := ca.curve.Identity()
	tmp.Negate(b)
	return e.Add(a, tmp)
}

func (e *r255Point) Negate(a Element) Element {
	ca := e.check(a)
	e.curve = ca.curve
	e.val = circl.Ristretto255.NewElement().Neg(ca.val)
	return e
}

func (e *r255Point) IsEqual(b Element) bool {
	return e.val.IsEqual(e.check(b).val)
}

func (e *r255Point) Set(x Element) Element {
	cx := e.check(x)
	e.curve = cx.curve
	e.val = circl.Ristretto255.NewElement().Set(cx.val)
	return e
}

func (e *r255Point) SetBytes(b []byte) Element {
	e.val = circl.Ristretto255.NewElement()
	_ = e.val.UnmarshalBinary(b)
	return e
}

func (e *r255Point) Scale(x Element, s Scalar) Element {
	ex := e.check(x)
	e.curve = ex.curve
	e.val = circl.Ristretto255.NewElement().Mul(ex.val, e.toScalar(s))
	return e
}

func (e *r255Point) BaseScale(s Scalar) Element {
	e.val = circl.Ristretto255.NewElement().MulGen(e.toScalar(s))
	return e
}

func (e *r255Point) GroupOrder() *big.Int { return e.curve.curveOrder }
func (e *r255Point) FieldOrder() *big.Int { return e.curve.fieldOrder }

func (e *r255Point) Bytes() []byte {
	b, _ := e.val.MarshalBinary()
	return b
}

func (e *r255Point) String() string { return hexEncode(e.Bytes()) }

func (e *r255Point) IsIdentity() bool { return e.val.IsIdentity() }

func (e *r255Point) MarshalBinary() ([]byte, error) { return e.val.MarshalBinary() }

func (e *r255Point) UnmarshalBinary(data []byte) error { return e.val.UnmarshalBinary(data) }

func (e *r255Point) MarshalJSON() ([]byte, error) { return marshalElementJSON(e) }

func (e *r255Point) UnmarshalJSON(data []byte) error {
	e.val = circl.Ristretto255.NewElement()
	return unmarshalElementJSON(data, e)
}

// Ristretto255 returns the Ristretto255 group, this module's default and
// recommended backend (spec §4.1).
func Ristretto255() Group {
	p, _ := new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	n, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	return &r255Group{fieldOrder: p, curveOrder: n, name: "Ristretto255"}
}
