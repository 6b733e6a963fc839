package nizk

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beleniosvote/core/elgamal"
	"github.com/beleniosvote/core/group"
)

func TestDLProofCompleteness(t *testing.T) {
	g := group.Ristretto255()
	w := g.SampleUniformScalar(rand.Reader)
	P := g.Element().BaseScale(w)

	proof := ProveDL(g, P, w, rand.Reader)
	assert.True(t, VerifyDL(g, P, proof))
}

func TestDLProofSoundness(t *testing.T) {
	g := group.Ristretto255()
	w := g.SampleUniformScalar(rand.Reader)
	P := g.Element().BaseScale(w)

	wrong := g.SampleUniformScalar(rand.Reader)
	proof := ProveDL(g, P, wrong, rand.Reader)
	assert.False(t, VerifyDL(g, P, proof))
}

func TestDLProofJSONRoundTrip(t *testing.T) {
	g := group.Ristretto255()
	w := g.SampleUniformScalar(rand.Reader)
	P := g.Element().BaseScale(w)
	proof := ProveDL(g, P, w, rand.Reader)

	data, err := proof.MarshalJSON()
	require.NoError(t, err)

	zero := group.NewScalar(g.N())
	decoded, err := UnmarshalDLProofJSON(data, zero)
	require.NoError(t, err)
	assert.True(t, VerifyDL(g, P, decoded))
}

func setOf(g group.Group, vals ...int64) []group.Scalar {
	out := make([]group.Scalar, len(vals))
	for i, v := range vals {
		out[i] = group.ScalarFromU128(g.N(), big.NewInt(v))
	}
	return out
}

func TestSetMembershipCompleteness(t *testing.T) {
	g := group.Ristretto255()
	x := g.SampleUniformScalar(rand.Reader)
	y := g.Element().BaseScale(x)

	V := setOf(g, 0, 1)
	ctx := []byte("S0")

	for _, idx := range []int{0, 1} {
		c, r := elgamal.EncryptLeakingRandomness(g, y, V[idx], rand.Reader)
		proof := ProveSetMembership(g, y, c, V, idx, r, ctx, rand.Reader)
		assert.True(t, VerifySetMembership(g, y, c, V, ctx, proof), "index %d", idx)
	}
}

func TestSetMembershipSoundness(t *testing.T) {
	g := group.Ristretto255()
	x := g.SampleUniformScalar(rand.Reader)
	y := g.Element().BaseScale(x)

	V := setOf(g, 0, 1)
	ctx := []byte("S0")

	// Encrypt a value not in the claimed set.
	outOfSet := group.ScalarFromU128(g.N(), big.NewInt(2))
	c, r := elgamal.EncryptLeakingRandomness(g, y, outOfSet, rand.Reader)

	proof := ProveSetMembership(g, y, c, V, 0, r, ctx, rand.Reader)
	assert.False(t, VerifySetMembership(g, y, c, V, ctx, proof))
}

func TestSetMembershipRejectsWrongRandomness(t *testing.T) {
	g := group.Ristretto255()
	x := g.SampleUniformScalar(rand.Reader)
	y := g.Element().BaseScale(x)

	V := setOf(g, 0, 1)
	ctx := []byte("S0")

	c, _ := elgamal.EncryptLeakingRandomness(g, y, V[1], rand.Reader)
	wrongR := g.SampleUniformScalar(rand.Reader)

	proof := ProveSetMembership(g, y, c, V, 1, wrongR, ctx, rand.Reader)
	assert.False(t, VerifySetMembership(g, y, c, V, ctx, proof))
}

func TestSetMembershipJSONRoundTrip(t *testing.T) {
	g := group.Ristretto255()
	x := g.SampleUniformScalar(rand.Reader)
	y := g.Element().BaseScale(x)

	V := setOf(g, 0, 1)
	ctx := []byte("S0")
	c, r := elgamal.EncryptLeakingRandomness(g, y, V[0], rand.Reader)
	proof := ProveSetMembership(g, y, c, V, 0, r, ctx, rand.Reader)

	data, err := proof.MarshalJSON()
	require.NoError(t, err)

	zero := group.NewScalar(g.N())
	decoded, err := UnmarshalSetMembershipProofJSON(data, zero)
	require.NoError(t, err)
	assert.True(t, VerifySetMembership(g, y, c, V, ctx, decoded))
}
