package group

import (
	"io"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

// p256Group implements Group over NIST P-256, an alternate backend for
// deployments that require a standardized curve (spec §4.1).
type p256Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type p256Point struct {
	curve *p256Group
	val   circl.Element
}

func (g *p256Group) Name() string { return g.name }

func (g *p256Group) P() *big.Int { return g.fieldOrder }
func (g *p256Group) N() *big.Int { return g.curveOrder }

func (g *p256Group) Generator() Element {
	return &p256Point{curve: g, val: circl.P256.Generator()}
}

func (g *p256Group) Identity() Element {
	return &p256Point{curve: g, val: circl.P256.Identity()}
}

func (g *p256Group) Element() Element {
	return &p256Point{curve: g, val: circl.P256.NewElement()}
}

func (g *p256Group) Random(rand io.Reader) Element {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		panic("group: RNG read failed: " + err.Error())
	}
	return &p256Point{curve: g, val: circl.P256.HashToElement(buf[:], nil)}
}

func (g *p256Group) SampleUniformScalar(rand io.Reader) Scalar {
	return sampleUniformScalar(g.curveOrder, rand)
}

func (g *p256Group) HashToScalar(data []byte) Scalar {
	return hashToScalar(g.curveOrder, data)
}

func (e *p256Point) check(a Element) *p256Point {
	ea, ok := a.(*p256Point)
	if !ok {
		panic("group: incompatible element type")
	}
	return ea
}

func (e *p256Point) toScalar(s Scalar) circl.Scalar {
	return circl.P256.NewScalar().SetBigInt(s.BigInt())
}

func (e *p256Point) Add(a, b Element) Element {
	ca, cb := e.check(a), e.check(b)
	e.curve = ca.curve
	e.val = circl.P256.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *p256Point) Subtract(a, b Element) Element {
	ca := e.check(a)
	tmp := ca.curve.Identity()
	tmp.Negate(b)
	return e.Add(a, tmp)
}

func (e *p256Point) Negate(a Element) Element {
	ca := e.check(a)
	e.curve = ca.curve
	e.val = circl.P256.NewElement().Neg(ca.val)
	return e
}

func (e *p256Point) IsEqual(b Element) bool {
	return e.val.IsEqual(e.check(b).val)
}

func (e *p256Point) Set(x Element) Element {
	cx := e.check(x)
	e.curve = cx.curve
	e.val = circl.P256.NewElement().Set(cx.val)
	return e
}

func (e *p256Point) SetBytes(b []byte) Element {
	e.val = circl.P256.NewElement()
	_ = e.val.UnmarshalBinary(b)
	return e
}

func (e *p256Point) Scale(x Element, s Scalar) Element {
	ex := e.check(x)
	e.curve = ex.curve
	e.val = circl.P256.NewElement().Mul(ex.val, e.toScalar(s))
	return e
}

func (e *p256Point) BaseScale(s Scalar) Element {
	e.val = circl.P256.NewElement().MulGen(e.toScalar(s))
	return e
}

func (e *p256Point) GroupOrder() *big.Int { return e.curve.curveOrder }
func (e *p256Point) FieldOrder() *big.Int { return e.curve.fieldOrder }

func (e *p256Point) Bytes() []byte {
	b, _ := e.val.MarshalBinary()
	return b
}

func (e *p256Point) String() string { return hexEncode(e.Bytes()) }

func (e *p256Point) IsIdentity() bool { return e.val.IsIdentity() }

func (e *p256Point) MarshalBinary() ([]byte, error) { return e.val.MarshalBinary() }

func (e *p256Point) UnmarshalBinary(data []byte) error { return e.val.UnmarshalBinary(data) }

func (e *p256Point) MarshalJSON() ([]byte, error) { return marshalElementJSON(e) }

func (e *p256Point) UnmarshalJSON(data []byte) error {
	e.val = circl.P256.NewElement()
	return unmarshalElementJSON(data, e)
}

// P256 returns the NIST P-256 group.
func P256() Group {
	p, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	n, _ := new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)
	return &p256Group{fieldOrder: p, curveOrder: n, name: "P-256"}
}
