package group

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
)

// ModPElement is an element of a safe-prime modular multiplicative group:
// the prime-order subgroup of (Z/pZ)* generated by gen. A pure math/big
// implementation, kept as a backend with no elliptic-curve dependency at
// all (spec §4.1 only requires a prime-order group abstraction, not a
// specific instantiation).
type ModPElement struct {
	group *ModPGroup
	val   *big.Int
}

// ModPGroup is the order-q subgroup of (Z/pZ)* for a safe prime p = 2q+1.
type ModPGroup struct {
	gen        *big.Int
	fieldOrder *big.Int
	groupOrder *big.Int
	name       string
}

func (g *ModPGroup) Name() string { return g.name }

func (g *ModPGroup) equals(h *ModPGroup) bool {
	if g == h {
		return true
	}
	return g.fieldOrder.Cmp(h.fieldOrder) == 0 && g.gen.Cmp(h.gen) == 0
}

func (g *ModPGroup) P() *big.Int { return g.fieldOrder }
func (g *ModPGroup) N() *big.Int { return g.groupOrder }

func (g *ModPGroup) Generator() Element {
	return &ModPElement{group: g, val: new(big.Int).Set(g.gen)}
}

func (g *ModPGroup) Identity() Element {
	return &ModPElement{group: g, val: big.NewInt(1)}
}

func (g *ModPGroup) Element() Element {
	return &ModPElement{group: g, val: new(big.Int)}
}

// Random samples a uniform exponent and scales the generator by it, unlike
// the elliptic-curve backends, which hash uniform bytes to the group —
// there is no hash-to-group primitive available for a plain multiplicative
// subgroup. The exponent stays inside Random and is not returned.
func (g *ModPGroup) Random(src io.Reader) Element {
	r := g.SampleUniformScalar(src)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *ModPGroup) SampleUniformScalar(src io.Reader) Scalar {
	r, err := rand.Int(src, g.groupOrder)
	if err != nil {
		panic("group: RNG read failed: " + err.Error())
	}
	return ScalarFromU128(g.groupOrder, r)
}

func (g *ModPGroup) HashToScalar(data []byte) Scalar {
	return hashToScalar(g.groupOrder, data)
}

func (e *ModPElement) check(a Element) *ModPElement {
	ea, ok := a.(*ModPElement)
	if !ok {
		panic("group: incompatible element type")
	}
	if !e.group.equals(ea.group) {
		panic("group: incompatible groups")
	}
	return ea
}

func (e *ModPElement) Add(a, b Element) Element {
	ea, eb := e.check(a), e.check(b)
	e.group = ea.group
	e.val = new(big.Int).Mod(new(big.Int).Mul(ea.val, eb.val), e.group.fieldOrder)
	return e
}

func (e *ModPElement) Subtract(a, b Element) Element {
	ea := e.check(a)
	tmp := ea.group.Identity()
	tmp.Negate(b)
	return e.Add(a, tmp)
}

func (e *ModPElement) Negate(a Element) Element {
	ea := e.check(a)
	e.group = ea.group
	e.val = new(big.Int).ModInverse(ea.val, e.group.fieldOrder)
	return e
}

func (e *ModPElement) IsEqual(b Element) bool {
	return e.val.Cmp(e.check(b).val) == 0
}

func (e *ModPElement) Set(a Element) Element {
	ea := e.check(a)
	e.group = ea.group
	e.val = new(big.Int).Set(ea.val)
	return e
}

func (e *ModPElement) SetBytes(b []byte) Element {
	e.val = new(big.Int).SetBytes(b)
	return e
}

func (e *ModPElement) Scale(a Element, s Scalar) Element {
	ea := e.check(a)
	e.group = ea.group
	e.val = new(big.Int).Exp(ea.val, s.BigInt(), e.group.fieldOrder)
	return e
}

func (e *ModPElement) BaseScale(s Scalar) Element {
	e.val = new(big.Int).Exp(e.group.gen, s.BigInt(), e.group.fieldOrder)
	return e
}

func (e *ModPElement) GroupOrder() *big.Int { return e.group.groupOrder }
func (e *ModPElement) FieldOrder() *big.Int { return e.group.fieldOrder }

func (e *ModPElement) Bytes() []byte { return e.val.Bytes() }

func (e *ModPElement) String() string { return e.val.String() }

func (e *ModPElement) IsIdentity() bool { return e.val.Cmp(big.NewInt(1)) == 0 }

func (e *ModPElement) MarshalBinary() ([]byte, error) { return e.val.Bytes(), nil }

func (e *ModPElement) UnmarshalBinary(data []byte) error {
	e.val = new(big.Int).SetBytes(data)
	return nil
}

func (e *ModPElement) MarshalJSON() ([]byte, error) { return marshalElementJSON(e) }

func (e *ModPElement) UnmarshalJSON(data []byte) error { return unmarshalElementJSON(data, e) }

// NewModPGroup builds the order-q subgroup of (Z/pZ)*, with p a safe prime
// (p = 2q+1) given in hex, and generator also given in hex.
func NewModPGroup(name string, fieldOrderHex, generatorHex string) Group {
	repr := strings.Join(strings.Fields(fieldOrderHex), "")

	fieldOrder, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		panic("group: invalid field order")
	}

	gen, ok := new(big.Int).SetString(strings.Join(strings.Fields(generatorHex), ""), 16)
	if !ok {
		panic("group: invalid generator")
	}

	groupOrder := new(big.Int).Sub(fieldOrder, big.NewInt(1))
	groupOrder.Div(groupOrder, big.NewInt(2))

	return &ModPGroup{fieldOrder: fieldOrder, groupOrder: groupOrder, gen: gen, name: name}
}
