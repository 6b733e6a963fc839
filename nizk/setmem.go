package nizk

import (
	"io"

	"github.com/beleniosvote/core/group"
	"github.com/beleniosvote/core/elgamal"
)

const setMemDomainSep = "prove"

// ProofPart is one (challenge, response) pair of a SetMembershipProof, one
// per element of the candidate set V.
type ProofPart struct {
	Challenge group.Scalar
	Response  group.Scalar
}

// SetMembershipProof proves that an ElGamal ciphertext encrypts one of a
// small, ordered, public set of values V, without revealing which (spec
// §4.4.2). It is a k-way OR composition of Schnorr proofs, one per
// candidate, collapsed with a single Fiat-Shamir challenge shared across
// all branches.
type SetMembershipProof []ProofPart

// ProveSetMembership proves that ciphertext c = (r*g, r*y + V[index]*g)
// for the given index into V, with context prefix ctx bound into the
// transcript (the election fingerprint and ballot-specific data, per spec
// §4.5).
func ProveSetMembership(g group.Group, y group.Element, c elgamal.Ciphertext, V []group.Scalar, index int, r group.Scalar, ctx []byte, rand io.Reader) SetMembershipProof {
	k := len(V)
	cs := make([]group.Scalar, k)
	ss := make([]group.Scalar, k)
	As := make([]group.Element, k)
	Bs := make([]group.Element, k)

	var w group.Scalar
	for j := 0; j < k; j++ {
		if j == index {
			w = g.SampleUniformScalar(rand)
			As[j] = g.Element().BaseScale(w)
			Bs[j] = g.Element().Scale(y, w)
			continue
		}
		cs[j] = g.SampleUniformScalar(rand)
		ss[j] = g.SampleUniformScalar(rand)

		As[j] = g.Element().Add(
			g.Element().BaseScale(ss[j]),
			g.Element().Scale(c.Alpha, cs[j]),
		)

		vjg := g.Element().BaseScale(V[j])
		betaMinusVjg := g.Element().Subtract(c.Beta, vjg)
		Bs[j] = g.Element().Add(
			g.Element().Scale(y, ss[j]),
			g.Element().Scale(betaMinusVjg, cs[j]),
		)
	}

	cTotal := setMemChallenge(g, ctx, c, As, Bs)

	cIndex := cTotal
	for j := 0; j < k; j++ {
		if j == index {
			continue
		}
		cIndex.Sub(cIndex, cs[j])
	}
	cs[index] = cIndex

	rc := group.NewScalar(g.N())
	rc.Mul(r, cIndex)
	sIndex := group.NewScalar(g.N())
	sIndex.Sub(w, rc)
	ss[index] = sIndex

	proof := make(SetMembershipProof, k)
	for j := 0; j < k; j++ {
		proof[j] = ProofPart{Challenge: cs[j], Response: ss[j]}
	}
	return proof
}

// VerifySetMembership checks proof against ciphertext c, public key y, set
// V, and context prefix ctx. The order of V, and of proof's entries, is
// part of the contract and must match the prover's exactly.
func VerifySetMembership(g group.Group, y group.Element, c elgamal.Ciphertext, V []group.Scalar, ctx []byte, proof SetMembershipProof) bool {
	if len(proof) != len(V) {
		return false
	}
	k := len(V)
	As := make([]group.Element, k)
	Bs := make([]group.Element, k)

	sum := group.NewScalar(g.N())
	for j := 0; j < k; j++ {
		As[j] = g.Element().Add(
			g.Element().BaseScale(proof[j].Response),
			g.Element().Scale(c.Alpha, proof[j].Challenge),
		)

		vjg := g.Element().BaseScale(V[j])
		betaMinusVjg := g.Element().Subtract(c.Beta, vjg)
		Bs[j] = g.Element().Add(
			g.Element().Scale(y, proof[j].Response),
			g.Element().Scale(betaMinusVjg, proof[j].Challenge),
		)

		sum.Add(sum, proof[j].Challenge)
	}

	cTotal := setMemChallenge(g, ctx, c, As, Bs)
	return sum.Equal(cTotal)
}

func setMemChallenge(g group.Group, ctx []byte, c elgamal.Ciphertext, As, Bs []group.Element) group.Scalar {
	transcript := make([]byte, 0, 256)
	transcript = append(transcript, setMemDomainSep...)
	transcript = append(transcript, ctx...)
	transcript = append(transcript, c.Alpha.Bytes()...)
	transcript = append(transcript, c.Beta.Bytes()...)
	for j := range As {
		transcript = append(transcript, As[j].Bytes()...)
		transcript = append(transcript, Bs[j].Bytes()...)
	}
	return g.HashToScalar(transcript)
}
