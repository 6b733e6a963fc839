package ballot

import (
	"io"

	"github.com/beleniosvote/core/credential"
	"github.com/beleniosvote/core/election"
	"github.com/beleniosvote/core/group"
)

// Ballot is a voter's cast vote (spec §3 Ballot): one Answer per election
// question, bound to the election's fingerprint and the voter's
// credential public key.
type Ballot struct {
	ElectionUUID string
	ElectionHash [32]byte
	Credential   group.Element
	Answers      []Answer
}

// Cast builds a Ballot for e given the voter's Password and a 0/1 choice
// vector per question, in question order (spec §4.5).
func Cast(g group.Group, e election.Election, password string, choices [][]int, rand io.Reader) Ballot {
	if len(choices) != len(e.Questions) {
		panic("ballot: choice vector count mismatch")
	}

	cred := credential.DeriveEncryptionKeypair(g, password)
	fp := e.Fingerprint()

	s0 := make([]byte, 0, 32+len(cred.PublicKey.Bytes()))
	s0 = append(s0, fp[:]...)
	s0 = append(s0, cred.PublicKey.Bytes()...)

	answers := make([]Answer, len(e.Questions))
	for i, q := range e.Questions {
		answers[i] = buildAnswer(g, e.PublicKey, q, choices[i], s0, rand)
	}

	return Ballot{
		ElectionUUID: e.UUID,
		ElectionHash: fp,
		Credential:   cred.PublicKey,
		Answers:      answers,
	}
}

// Verify checks b against e, per spec §4.6. It does not check the
// credential list L or replay protection; those are the Voting Server's
// responsibility and live in the participants package, which composes
// this with ErrCredentialNotFound/ErrCredentialUsedTwice.
func Verify(g group.Group, e election.Election, b Ballot) error {
	if len(b.Answers) != len(e.Questions) {
		return ErrBallotVerification
	}

	s0 := make([]byte, 0, 32+len(b.Credential.Bytes()))
	s0 = append(s0, b.ElectionHash[:]...)
	s0 = append(s0, b.Credential.Bytes()...)

	for i, q := range e.Questions {
		if err := verifyAnswer(g, e.PublicKey, q, b.Answers[i], s0); err != nil {
			return err
		}
	}
	return nil
}
