// Package ballot implements ballot construction (Voter, spec §4.5) and
// verification (Voting Server, spec §4.6): per-question ElGamal
// encryptions bound together with individual-choice membership proofs and
// an aggregate sum-in-interval proof.
package ballot

import (
	"io"
	"math/big"

	"github.com/beleniosvote/core/election"
	"github.com/beleniosvote/core/elgamal"
	"github.com/beleniosvote/core/group"
	"github.com/beleniosvote/core/nizk"
)

// Answer is one question's worth of encrypted choices together with their
// proofs (spec §3 Answer).
type Answer struct {
	Choices           []elgamal.Ciphertext
	IndividualProofs  []nizk.SetMembershipProof
	OverallProof      nizk.SetMembershipProof
	BlankProof        *struct{} // reserved, always nil (spec §9 iv)
}

func zeroOneSet(g group.Group) []group.Scalar {
	return []group.Scalar{
		group.ScalarFromU128(g.N(), big.NewInt(0)),
		group.ScalarFromU128(g.N(), big.NewInt(1)),
	}
}

func intervalSet(g group.Group, min, max int) []group.Scalar {
	out := make([]group.Scalar, max-min+1)
	for i := range out {
		out[i] = group.ScalarFromU128(g.N(), big.NewInt(int64(min+i)))
	}
	return out
}

// canonicalChoices encodes the ordered ciphertext vector for binding into
// the overall proof's context, per spec §4.5 step 5.
func canonicalChoices(choices []elgamal.Ciphertext) []byte {
	out := make([]byte, 0, 64*len(choices))
	for _, c := range choices {
		out = append(out, c.Alpha.Bytes()...)
		out = append(out, c.Beta.Bytes()...)
	}
	return out
}

// buildAnswer constructs one Answer for question q given the voter's 0/1
// choice vector, per spec §4.5.
func buildAnswer(g group.Group, y group.Element, q election.Question, choices []int, s0 []byte, rand io.Reader) Answer {
	k := len(q.Answers)
	if len(choices) != k {
		panic("ballot: choice vector length mismatch")
	}

	V01 := zeroOneSet(g)

	ciphertexts := make([]elgamal.Ciphertext, k)
	randomness := make([]group.Scalar, k)
	individualProofs := make([]nizk.SetMembershipProof, k)

	sumIdx := 0
	sumR := group.NewScalar(g.N())

	for c := 0; c < k; c++ {
		m := group.ScalarFromU128(g.N(), big.NewInt(int64(choices[c])))
		ct, r := elgamal.EncryptLeakingRandomness(g, y, m, rand)
		ciphertexts[c] = ct
		randomness[c] = r
		sumIdx += choices[c]
		sumR.Add(sumR, r)

		individualProofs[c] = nizk.ProveSetMembership(g, y, ct, V01, choices[c], r, s0, rand)
	}

	sumCiphertext := ciphertexts[0]
	for c := 1; c < k; c++ {
		sumCiphertext = elgamal.Add(g, sumCiphertext, ciphertexts[c])
	}

	Vinterval := intervalSet(g, q.Min, q.Max)
	overallCtx := append(append([]byte{}, s0...), canonicalChoices(ciphertexts)...)
	overallProof := nizk.ProveSetMembership(g, y, sumCiphertext, Vinterval, sumIdx-q.Min, sumR, overallCtx, rand)

	return Answer{
		Choices:          ciphertexts,
		IndividualProofs: individualProofs,
		OverallProof:     overallProof,
	}
}

// verifyAnswer checks answer against question q, public key y, and context
// prefix s0, per spec §4.6.
func verifyAnswer(g group.Group, y group.Element, q election.Question, answer Answer, s0 []byte) error {
	if len(answer.Choices) != len(answer.IndividualProofs) {
		return ErrBallotVerification
	}
	if len(answer.Choices) != len(q.Answers) {
		return ErrBallotVerification
	}

	V01 := zeroOneSet(g)
	for c, ct := range answer.Choices {
		if !nizk.VerifySetMembership(g, y, ct, V01, s0, answer.IndividualProofs[c]) {
			return ErrBallotVerification
		}
	}

	sumCiphertext := answer.Choices[0]
	for c := 1; c < len(answer.Choices); c++ {
		sumCiphertext = elgamal.Add(g, sumCiphertext, answer.Choices[c])
	}

	Vinterval := intervalSet(g, q.Min, q.Max)
	overallCtx := append(append([]byte{}, s0...), canonicalChoices(answer.Choices)...)
	if !nizk.VerifySetMembership(g, y, sumCiphertext, Vinterval, overallCtx, answer.OverallProof) {
		return ErrBallotVerification
	}

	return nil
}
