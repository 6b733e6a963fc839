package elgamal

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beleniosvote/core/group"
)

func TestHomomorphism(t *testing.T) {
	g := group.Ristretto255()
	x := g.SampleUniformScalar(rand.Reader)
	y := g.Element().BaseScale(x)

	m1 := group.ScalarFromU128(g.N(), big.NewInt(1))
	m2 := group.ScalarFromU128(g.N(), big.NewInt(1))

	c1, _ := EncryptLeakingRandomness(g, y, m1, rand.Reader)
	c2, _ := EncryptLeakingRandomness(g, y, m2, rand.Reader)

	sum := Add(g, c1, c2)

	d1 := Decrypt(g, x, c1)
	d2 := Decrypt(g, x, c2)
	expect := g.Element().Add(d1, d2)

	got := Decrypt(g, x, sum)
	assert.True(t, got.IsEqual(expect))
}

func TestRoundTripJSON(t *testing.T) {
	g := group.Ristretto255()
	x := g.SampleUniformScalar(rand.Reader)
	y := g.Element().BaseScale(x)

	m := group.ScalarFromU128(g.N(), big.NewInt(0))
	c, _ := EncryptLeakingRandomness(g, y, m, rand.Reader)

	data, err := c.MarshalJSON()
	require.NoError(t, err)

	c2, err := UnmarshalCiphertextJSON(data, g)
	require.NoError(t, err)

	assert.True(t, c.Alpha.IsEqual(c2.Alpha))
	assert.True(t, c.Beta.IsEqual(c2.Beta))
}
