// Package elgamal implements ElGamal encryption over a group.Group, with
// the randomness-leaking variant the NIZK layer needs to build its proofs
// (spec §4.2).
package elgamal

import (
	"encoding/json"
	"io"

	"github.com/beleniosvote/core/group"
)

// Ciphertext is an ordered pair (Alpha, Beta) = (r*g, r*y + m*g).
type Ciphertext struct {
	Alpha group.Element
	Beta  group.Element
}

// EncryptLeakingRandomness encrypts message m (given as a scalar, usually a
// small non-negative integer lifted via Scale-by-generator) under public
// key y, returning both the ciphertext and the randomness r used. Callers
// that do not need r for a proof should discard it immediately; it must
// never be persisted or transmitted (spec §9).
func EncryptLeakingRandomness(g group.Group, y group.Element, m group.Scalar, rand io.Reader) (Ciphertext, group.Scalar) {
	r := g.SampleUniformScalar(rand)

	alpha := g.Element().BaseScale(r)

	mask := g.Element().Scale(y, r)
	liftedMessage := g.Element().BaseScale(m)
	beta := g.Element().Add(liftedMessage, mask)

	return Ciphertext{Alpha: alpha, Beta: beta}, r
}

// Add returns the componentwise sum of two ciphertexts. By ElGamal's
// additive homomorphism this encrypts the sum of the two plaintexts under
// the sum of the two randomnesses.
func Add(g group.Group, a, b Ciphertext) Ciphertext {
	return Ciphertext{
		Alpha: g.Element().Add(a.Alpha, b.Alpha),
		Beta:  g.Element().Add(a.Beta, b.Beta),
	}
}

// Decrypt returns beta - x*alpha, which equals m*g. Recovering the integer
// m from m*g requires a small-range discrete log search and is the
// trustees' concern, out of scope for this package (spec §4.2).
func Decrypt(g group.Group, x group.Scalar, c Ciphertext) group.Element {
	mask := g.Element().Scale(c.Alpha, x)
	return g.Element().Subtract(c.Beta, mask)
}

type ciphertextJSON struct {
	Alpha json.RawMessage `json:"alpha"`
	Beta  json.RawMessage `json:"beta"`
}

// MarshalJSON encodes the ciphertext as its two group elements.
func (c Ciphertext) MarshalJSON() ([]byte, error) {
	alphaB, err := c.Alpha.MarshalJSON()
	if err != nil {
		return nil, err
	}
	betaB, err := c.Beta.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(ciphertextJSON{Alpha: alphaB, Beta: betaB})
}

// UnmarshalCiphertextJSON decodes a ciphertext previously produced by
// MarshalJSON, allocating its elements in g.
func UnmarshalCiphertextJSON(data []byte, g group.Group) (Ciphertext, error) {
	var tmp ciphertextJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return Ciphertext{}, err
	}
	c := Ciphertext{Alpha: g.Element(), Beta: g.Element()}
	if err := c.Alpha.UnmarshalJSON(tmp.Alpha); err != nil {
		return Ciphertext{}, err
	}
	if err := c.Beta.UnmarshalJSON(tmp.Beta); err != nil {
		return Ciphertext{}, err
	}
	return c, nil
}
