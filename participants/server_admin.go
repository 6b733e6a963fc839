package participants

import "io"

// EmptySA is the Server Administrator's initial state.
type EmptySA struct{}

// RosterState is the Server Administrator's state after authorizing a
// voter roster at E1 (spec §4.7 table, step E1).
type RosterState struct {
	Voters []VoterSpec
}

// NewServerAdmin constructs a Server Administrator in its initial state.
func NewServerAdmin(rand io.Reader) Participant[EmptySA] {
	return NewParticipant(EmptySA{}, rand)
}

// ProcessE1 authorizes the roster carried in msg, advancing SA to
// RosterState and producing the same E1M to forward to the Voting Server.
func ProcessE1(p Participant[EmptySA], msg E1M) (Participant[RosterState], E1M) {
	return Process(p, msg, func(_ Participant[EmptySA], m E1M) (RosterState, E1M) {
		return RosterState{Voters: m.Voters}, m
	})
}
