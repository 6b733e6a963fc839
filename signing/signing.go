// Package signing implements the Schnorr-style signature used for trustee
// and Voting Server authentication (spec §2 item 3), domain-separated with the
// literal tag "sigmsg".
package signing

import (
	"io"

	"github.com/beleniosvote/core/group"
)

const domainSep = "sigmsg"

// Signature is a Schnorr signature over a pre-hashed message: challenge c
// and response s.
type Signature struct {
	Challenge group.Scalar
	Response  group.Scalar
}

// Sign produces a signature of msg under signing key sk, with public key
// pk = sk*g implicit in the transcript.
func Sign(g group.Group, sk group.Scalar, pk group.Element, msg []byte, rand io.Reader) Signature {
	k := g.SampleUniformScalar(rand)
	A := g.Element().BaseScale(k)

	c := challenge(g, pk, A, msg)

	s := group.NewScalar(g.N())
	witnessTimesChallenge := group.NewScalar(g.N())
	witnessTimesChallenge.Mul(sk, c)
	s.Sub(k, witnessTimesChallenge)

	return Signature{Challenge: c, Response: s}
}

// Verify checks sig against public key pk and message msg.
func Verify(g group.Group, pk group.Element, msg []byte, sig Signature) bool {
	A := g.Element().BaseScale(sig.Response)
	A.Add(A, g.Element().Scale(pk, sig.Challenge))

	c := challenge(g, pk, A, msg)
	return c.Equal(sig.Challenge)
}

func challenge(g group.Group, pk, A group.Element, msg []byte) group.Scalar {
	transcript := make([]byte, 0, len(domainSep)+len(pk.Bytes())+len(A.Bytes())+len(msg))
	transcript = append(transcript, domainSep...)
	transcript = append(transcript, pk.Bytes()...)
	transcript = append(transcript, A.Bytes()...)
	transcript = append(transcript, msg...)
	return g.HashToScalar(transcript)
}
