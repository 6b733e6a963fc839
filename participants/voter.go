package participants

import (
	"io"

	"github.com/beleniosvote/core/ballot"
	"github.com/beleniosvote/core/election"
	"github.com/beleniosvote/core/group"
)

// EmptyVoter is a Voter's initial state.
type EmptyVoter struct{}

// PasswordStateVoter is a Voter holding its issued password, after E4
// (spec §4.7: "Voter state progresses EmptyState → E5 (has password)").
type PasswordStateVoter struct {
	Password string
}

// ElectionStateVoter is a Voter holding both its password and the final
// Election object, after E11 (spec §4.7: "→ V1 (has election)").
type ElectionStateVoter struct {
	Password string
	Election election.Election
}

// NewVoter constructs a Voter in its initial state.
func NewVoter(rand io.Reader) Participant[EmptyVoter] {
	return Participant[EmptyVoter]{State: EmptyVoter{}, Rand: rand}
}

// ProcessE4 records the password CA issued to this voter.
func ProcessE4(p Participant[EmptyVoter], msg E4Mi) Participant[PasswordStateVoter] {
	next, _ := Process(p, msg, func(_ Participant[EmptyVoter], m E4Mi) (PasswordStateVoter, struct{}) {
		return PasswordStateVoter{Password: m.Password}, struct{}{}
	})
	return next
}

// ProcessE11Voter records the finalized Election, readying the voter to
// cast a ballot.
func ProcessE11Voter(p Participant[PasswordStateVoter], msg E11M) Participant[ElectionStateVoter] {
	next, _ := Process(p, msg, func(pp Participant[PasswordStateVoter], m E11M) (ElectionStateVoter, struct{}) {
		return ElectionStateVoter{Password: pp.State.Password, Election: m.Election}, struct{}{}
	})
	return next
}

// CastBallot is the Voter's one-shot V1 casting operation: it builds and
// returns a Ballot for the given per-question choice vectors, per spec
// §4.5. Casting does not change the voter's state; a voter may hold a
// single Election across any number of casting attempts, consistent with
// the core being transport-agnostic about retries.
func CastBallot(g group.Group, p Participant[ElectionStateVoter], choices [][]int) ballot.Ballot {
	return ballot.Cast(g, p.State.Election, p.State.Password, choices, p.Rand)
}
