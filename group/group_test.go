package group

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bigOne = big.NewInt(1)

var rfc3526ModPGroup3072 = NewModPGroup(
	"RFC3526ModPGroup3072",
	`FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
		E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
		DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
		15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
		ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
		ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
		F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
		BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
		43DB5BFC E0FD108E 4B82D120 A93AD2CA FFFFFFFF FFFFFFFF
		`, "2")

var allGroups = []Group{
	rfc3526ModPGroup3072,
	Ristretto255(),
	P256(),
	P384(),
}

func TestGroupNegation(t *testing.T) {
	const trials = 1 << 5
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			Q := g.Element()
			for i := 0; i < trials; i++ {
				P := g.Random(rand.Reader)
				Q.Set(P)
				Q.Subtract(Q, P)
				assert.True(t, Q.IsIdentity())
			}
		})
	}
}

func TestGroupOrder(t *testing.T) {
	const trials = 1 << 5
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			I := g.Identity()
			Q := g.Element()
			minusOne := NewScalar(g.N())
			minusOne.Neg(ScalarFromU128(g.N(), bigOne))
			for i := 0; i < trials; i++ {
				P := g.Random(rand.Reader)
				Q.Scale(P, minusOne)
				Q.Add(Q, P)
				assert.True(t, Q.IsEqual(I))
			}
		})
	}
}

func TestGroupSet(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			P := g.Random(rand.Reader)
			Q := g.Element()
			Q.Set(P)
			assert.True(t, Q.IsEqual(P))
		})
	}
}

func TestGroupBaseScaleMatchesRepeatedAdd(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			two := NewScalar(g.N())
			two.Add(ScalarFromU128(g.N(), bigOne), ScalarFromU128(g.N(), bigOne))

			a := g.Element().BaseScale(two)
			b := g.Element().Add(g.Generator(), g.Generator())
			assert.True(t, a.IsEqual(b))

			three := NewScalar(g.N())
			three.Add(two, ScalarFromU128(g.N(), bigOne))
			a = g.Element().Add(a, g.Generator())
			b = g.Element().BaseScale(three)
			assert.True(t, a.IsEqual(b))
		})
	}
}

func TestGroupSubtractUndoesAdd(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			r1 := g.Random(rand.Reader)
			r2 := g.Random(rand.Reader)
			e := g.Element()
			e.Add(r1, r2)
			e.Subtract(e, r2)
			assert.True(t, e.IsEqual(r1))
		})
	}
}

func TestGroupBinaryRoundTrip(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			P := g.Random(rand.Reader)
			b, err := P.MarshalBinary()
			require.NoError(t, err)

			Q := g.Element()
			require.NoError(t, Q.UnmarshalBinary(b))
			assert.True(t, P.IsEqual(Q))
		})
	}
}

func TestGroupJSONRoundTrip(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			P := g.Random(rand.Reader)
			data, err := P.MarshalJSON()
			require.NoError(t, err)

			Q := g.Element()
			require.NoError(t, Q.UnmarshalJSON(data))
			assert.True(t, P.IsEqual(Q))
		})
	}
}

func TestScalarArithmetic(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			a := g.SampleUniformScalar(rand.Reader)
			b := g.SampleUniformScalar(rand.Reader)

			sum := NewScalar(g.N())
			sum.Add(a, b)
			diff := NewScalar(g.N())
			diff.Sub(sum, b)
			assert.True(t, diff.Equal(a))
		})
	}
}
