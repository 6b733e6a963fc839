package participants

import (
	"io"
	"sort"

	"github.com/beleniosvote/core/ballot"
	"github.com/beleniosvote/core/credential"
	"github.com/beleniosvote/core/election"
	"github.com/beleniosvote/core/group"
	"github.com/beleniosvote/core/nizk"
	"github.com/beleniosvote/core/signing"
)

// EmptyVS is the Voting Server's initial state.
type EmptyVS struct{}

// RosterStateVS holds the authorized roster, the election UUID VS itself
// generated at E1→E3 (spec §4.7: "VS generates UUID"), and the signing
// keypair VS uses to sign the Election it eventually publishes at E11.
type RosterStateVS struct {
	Voters     []VoterSpec
	UUID       string
	SigningKey credential.Keypair
}

// LStateVS is VS after CA's shuffled list L arrives and the multiset
// check (E8) has been run.
type LStateVS struct {
	Voters     []VoterSpec
	UUID       string
	SigningKey credential.Keypair
	L          []LEntry
}

// KeysStateVS accumulates trustee public key contributions at E9.
type KeysStateVS struct {
	Voters        []VoterSpec
	UUID          string
	SigningKey    credential.Keypair
	L             []LEntry
	PublicKeys    map[int]group.Element
	FailedIndices []int
}

// ElectionStateVS is VS after the Election has been finalized at E11.
type ElectionStateVS struct {
	Election        election.Election
	L               []LEntry
	AcceptedBallots []AcceptedBallot
}

// AcceptedBallot records a verified ballot together with the voting
// weight of the credential that cast it (spec §4.6).
type AcceptedBallot struct {
	Ballot ballot.Ballot
	Weight int
}

// NewVotingServer constructs a Voting Server in its initial state.
func NewVotingServer(rand io.Reader) Participant[EmptyVS] {
	return Participant[EmptyVS]{State: EmptyVS{}, Rand: rand}
}

// ProcessE1VS ingests the roster, generates the election UUID itself
// (spec §4.7: "VS generates UUID"), and samples the signing keypair VS
// will use to sign the Election at E11, producing the E3M to forward to
// the Credential Authority.
func ProcessE1VS(g group.Group, p Participant[EmptyVS], msg E1M) (Participant[RosterStateVS], E3M, error) {
	uuid, err := credential.GenerateUUID(p.Rand)
	if err != nil {
		return Participant[RosterStateVS]{}, E3M{}, err
	}

	sk := g.SampleUniformScalar(p.Rand)
	signingKey := credential.Keypair{SecretKey: sk, PublicKey: g.Element().BaseScale(sk)}

	next, out := Process(p, msg, func(_ Participant[EmptyVS], m E1M) (RosterStateVS, E3M) {
		weights := make([]int, len(m.Voters))
		for i, v := range m.Voters {
			weights[i] = v.Weight
		}
		return RosterStateVS{Voters: m.Voters, UUID: uuid, SigningKey: signingKey}, E3M{UUID: uuid, Weights: weights}
	})
	return next, out, nil
}

// ProcessE7 runs the multiset cross-check of spec §4.7 step E8 against
// CA's shuffled list L, and advances to LStateVS regardless of outcome
// (the failure is surfaced in the returned E8M, not by refusing to
// progress, matching the spec's "check result" message).
func ProcessE7(p Participant[RosterStateVS], msg E7M) (Participant[LStateVS], E8M) {
	return Process(p, msg, func(pp Participant[RosterStateVS], m E7M) (LStateVS, E8M) {
		var err error
		if !multisetsMatch(pp.State.Voters, m.L) {
			err = &DifferentMultisetError{}
		}
		return LStateVS{
			Voters:     pp.State.Voters,
			UUID:       pp.State.UUID,
			SigningKey: pp.State.SigningKey,
			L:          m.L,
		}, E8M{Err: err}
	})
}

func multisetsMatch(voters []VoterSpec, l []LEntry) bool {
	want := make([]int, len(voters))
	for i, v := range voters {
		want[i] = v.Weight
	}
	got := make([]int, len(l))
	for i, e := range l {
		got[i] = e.Weight
	}
	sort.Ints(want)
	sort.Ints(got)
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

// StartKeyCollection transitions VS from LStateVS into KeysStateVS, ready
// to receive E9 trustee contributions.
func StartKeyCollection(p Participant[LStateVS]) Participant[KeysStateVS] {
	return Participant[KeysStateVS]{
		State: KeysStateVS{
			Voters:     p.State.Voters,
			UUID:       p.State.UUID,
			SigningKey: p.State.SigningKey,
			L:          p.State.L,
			PublicKeys: make(map[int]group.Element),
		},
		Rand: p.Rand,
	}
}

// ProcessE9 verifies one trustee's discrete-log proof of knowledge of its
// secret key together with the signature binding that proof to the
// trustee's own signing key (spec §3: trustees sign their DL-proof
// submissions at E9), and, on success, records its public key
// contribution; on failure (either check) the trustee's index is
// recorded in FailedIndices and its key is omitted from the aggregate
// (spec §4.7: "only summing keys whose DL proofs verified").
func ProcessE9(g group.Group, p Participant[KeysStateVS], msg E9M) Participant[KeysStateVS] {
	next, _ := Process(p, msg, func(pp Participant[KeysStateVS], m E9M) (KeysStateVS, struct{}) {
		s := pp.State
		ok := nizk.VerifyDL(g, m.PublicKey, m.Proof) &&
			signing.Verify(g, m.SigningPublicKey, e9SignedPayload(m.Index, m.PublicKey), m.Signature)
		if ok {
			s.PublicKeys[m.Index] = m.PublicKey
		} else {
			s.FailedIndices = append(s.FailedIndices, m.Index)
		}
		return s, struct{}{}
	})
	return next
}

// ProcessE10 finalizes the Election: the public key is the sum of all
// successfully verified trustee public keys (spec §4.7 step E10→E11), and
// signs the finalized Election's fingerprint with VS's own signing key so
// that CA and the voters can authenticate its origin (spec §3: "VS signs
// the published Election at E11"). If any trustee's proof failed, a
// *TrusteePKProofFailedError naming the failed indices is also returned;
// the election is still built from the keys that did verify.
func ProcessE10(g group.Group, p Participant[KeysStateVS], msg E10M) (Participant[ElectionStateVS], E11M, error) {
	s := p.State

	indices := make([]int, 0, len(s.PublicKeys))
	for idx := range s.PublicKeys {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	pk := g.Identity()
	for _, idx := range indices {
		pk = pk.Add(pk, s.PublicKeys[idx])
	}

	e := election.Election{
		Version:             msg.Version,
		Description:         msg.Description,
		Name:                msg.Name,
		GroupName:           g.Name(),
		PublicKey:           pk,
		Questions:           msg.Questions,
		UUID:                s.UUID,
		Administrator:       msg.Administrator,
		CredentialAuthority: msg.CredentialAuthority,
	}

	fp := e.Fingerprint()
	sig := signing.Sign(g, s.SigningKey.SecretKey, s.SigningKey.PublicKey, fp[:], p.Rand)

	out := E11M{
		Election:         e,
		L:                s.L,
		Signature:        sig,
		SigningPublicKey: s.SigningKey.PublicKey,
	}
	next := Participant[ElectionStateVS]{
		State: ElectionStateVS{Election: e, L: s.L},
		Rand:  p.Rand,
	}

	var err error
	if len(s.FailedIndices) > 0 {
		failed := make([]int, len(s.FailedIndices))
		copy(failed, s.FailedIndices)
		sort.Ints(failed)
		err = &TrusteePKProofFailedError{Indices: failed}
	}
	return next, out, err
}

// VerifyBallot is the V3 ballot verification entry point (spec §6): it
// checks the credential is authorized in L, has not already voted, and
// that the ballot's proofs verify, appending it to AcceptedBallots only
// on full success.
func VerifyBallot(g group.Group, p *Participant[ElectionStateVS], b ballot.Ballot) error {
	s := &p.State

	weight, ok := 0, false
	for _, entry := range s.L {
		if entry.PublicKey.IsEqual(b.Credential) {
			weight, ok = entry.Weight, true
			break
		}
	}
	if !ok {
		return ballot.ErrCredentialNotFound
	}

	for _, accepted := range s.AcceptedBallots {
		if accepted.Ballot.Credential.IsEqual(b.Credential) {
			return ballot.ErrCredentialUsedTwice
		}
	}

	if err := ballot.Verify(g, s.Election, b); err != nil {
		return err
	}

	s.AcceptedBallots = append(s.AcceptedBallots, AcceptedBallot{Ballot: b, Weight: weight})
	return nil
}
