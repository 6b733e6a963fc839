// Package nizk implements the two Fiat-Shamir NIZK systems the ballot and
// participant layers build on: a Schnorr proof of discrete-log knowledge
// ("pok") and a finite-set/interval membership proof over an ElGamal
// ciphertext ("prove"). Both collapse a Sigma protocol with an explicit,
// domain-separated transcript hash (spec §4.4).
package nizk

import (
	"io"

	"github.com/beleniosvote/core/group"
)

const pokDomainSep = "pok"

// DLProof is a non-interactive Schnorr proof that the prover knows w such
// that P = w*g, for some point P implicit in the verifier's call.
type DLProof struct {
	Challenge group.Scalar
	Response  group.Scalar
}

// ProveDL proves knowledge of w for P = w*g.
func ProveDL(g group.Group, P group.Element, w group.Scalar, rand io.Reader) DLProof {
	k := g.SampleUniformScalar(rand)
	A := g.Element().BaseScale(k)

	c := dlChallenge(g, P, A)

	wc := group.NewScalar(g.N())
	wc.Mul(w, c)
	s := group.NewScalar(g.N())
	s.Sub(k, wc)

	return DLProof{Challenge: c, Response: s}
}

// VerifyDL checks a DLProof against the claimed point P.
func VerifyDL(g group.Group, P group.Element, proof DLProof) bool {
	A := g.Element().BaseScale(proof.Response)
	A.Add(A, g.Element().Scale(P, proof.Challenge))

	c := dlChallenge(g, P, A)
	return c.Equal(proof.Challenge)
}

func dlChallenge(g group.Group, P, A group.Element) group.Scalar {
	transcript := make([]byte, 0, len(pokDomainSep)+len(P.Bytes())+len(A.Bytes()))
	transcript = append(transcript, pokDomainSep...)
	transcript = append(transcript, P.Bytes()...)
	transcript = append(transcript, A.Bytes()...)
	return g.HashToScalar(transcript)
}
