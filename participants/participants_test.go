package participants

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beleniosvote/core/ballot"
	"github.com/beleniosvote/core/election"
	"github.com/beleniosvote/core/group"
)

// setupElection drives the full E1-E12 setup sequence for numTrustees
// trustees and the given voter weights, returning the finalized Voting
// Server state, each voter's issued password (in roster order), and the
// E11M every voter receives, without casting any ballots.
func setupElection(t *testing.T, g group.Group, weights []int, numTrustees int) (Participant[ElectionStateVS], []PasswordEntry, E11M) {
	t.Helper()

	voters := make([]VoterSpec, len(weights))
	for i, w := range weights {
		voters[i] = VoterSpec{Weight: w}
	}
	e1 := E1M{Voters: voters}

	sa := NewServerAdmin(rand.Reader)
	_, e1out := ProcessE1(sa, e1)
	require.Equal(t, e1.Voters, e1out.Voters)

	vs := NewVotingServer(rand.Reader)
	vsRoster, e3, err := ProcessE1VS(g, vs, e1)
	require.NoError(t, err)
	assert.NotEmpty(t, vsRoster.State.UUID)

	ca := NewCredentialAuthority(rand.Reader)
	caReq := ProcessE3(ca, e3)

	caList, passwords, e7, err := GenerateCredentials(g, caReq)
	require.NoError(t, err)
	require.Len(t, passwords, len(weights))
	require.Len(t, e7.L, len(weights))

	vsL, e8 := ProcessE7(vsRoster, e7)
	assert.NoError(t, e8.Err)

	vsKeys := StartKeyCollection(vsL)
	trustees := make([]Participant[KeyStateTrustee], numTrustees)
	for i := 0; i < numTrustees; i++ {
		tr := NewTrustee(i+1, rand.Reader)
		keyed, e9 := GenerateKeyShare(g, tr)
		trustees[i] = keyed
		vsKeys = ProcessE9(g, vsKeys, e9)
	}
	assert.Empty(t, vsKeys.State.FailedIndices)

	e10 := E10M{
		Version:     1,
		Name:        "board election",
		Description: "annual board election",
		Questions: []election.Question{
			election.NewQuestion("Pick a chair", []string{"Alice", "Bob"}, 0, 1),
		},
		Administrator:       "admin",
		CredentialAuthority: "ca",
	}
	vsFinal, e11, err := ProcessE10(g, vsKeys, e10)
	require.NoError(t, err)
	assert.Equal(t, "ca", vsFinal.State.Election.CredentialAuthority)

	caFinal, e12 := ProcessE11CA(caList, e11)
	assert.NoError(t, e12.Err)
	_ = caFinal

	return vsFinal, passwords, e11
}

// runElection drives setupElection and then a V1-V3 casting round for
// every voter, returning the final Voting Server state for assertions.
func runElection(t *testing.T, g group.Group, weights []int, numTrustees int) Participant[ElectionStateVS] {
	t.Helper()

	vsFinal, passwords, e11 := setupElection(t, g, weights, numTrustees)

	for i := range passwords {
		voter := NewVoter(rand.Reader)
		voterPw := ProcessE4(voter, E4Mi{Password: passwords[i].Password})
		voterElection := ProcessE11Voter(voterPw, e11)

		ballot := CastBallot(g, voterElection, [][]int{{1, 0}})
		err := VerifyBallot(g, &vsFinal, ballot)
		assert.NoError(t, err)
	}

	return vsFinal
}

func TestFullSetupAndCastingSingleVoter(t *testing.T) {
	g := group.Ristretto255()
	vs := runElection(t, g, []int{1}, 1)
	assert.Len(t, vs.State.AcceptedBallots, 1)
	assert.Equal(t, 1, vs.State.AcceptedBallots[0].Weight)
}

func TestFullSetupAndCastingMultipleVotersAndTrustees(t *testing.T) {
	g := group.Ristretto255()
	vs := runElection(t, g, []int{1, 1, 2}, 3)
	assert.Len(t, vs.State.AcceptedBallots, 3)
}

func TestMultisetMismatchReported(t *testing.T) {
	g := group.Ristretto255()

	e1 := E1M{Voters: []VoterSpec{{Weight: 1}, {Weight: 1}, {Weight: 2}}}
	vs := NewVotingServer(rand.Reader)
	vsRoster, e3, err := ProcessE1VS(g, vs, e1)
	require.NoError(t, err)

	ca := NewCredentialAuthority(rand.Reader)
	caReq := ProcessE3(ca, e3)
	_, _, e7, err := GenerateCredentials(g, caReq)
	require.NoError(t, err)

	// Corrupt the weight multiset CA reports back.
	e7.L[0].Weight = 2
	e7.L[2].Weight = 2

	_, e8 := ProcessE7(vsRoster, e7)
	var mismatch *DifferentMultisetError
	assert.ErrorAs(t, e8.Err, &mismatch)
}

func TestCheatingTrusteeExcludedFromPublicKey(t *testing.T) {
	g := group.Ristretto255()

	e1 := E1M{Voters: []VoterSpec{{Weight: 1}}}
	vs := NewVotingServer(rand.Reader)
	vsRoster, e3, err := ProcessE1VS(g, vs, e1)
	require.NoError(t, err)

	ca := NewCredentialAuthority(rand.Reader)
	caReq := ProcessE3(ca, e3)
	_, _, e7, err := GenerateCredentials(g, caReq)
	require.NoError(t, err)

	vsL, _ := ProcessE7(vsRoster, e7)
	vsKeys := StartKeyCollection(vsL)

	honest := NewTrustee(2, rand.Reader)
	honestKeyed, e9honest := GenerateKeyShare(g, honest)
	vsKeys = ProcessE9(g, vsKeys, e9honest)

	cheater := NewTrustee(1, rand.Reader)
	_, e9cheat := GenerateKeyShare(g, cheater)
	// Submit a public key that does not match the proven secret.
	e9cheat.PublicKey = g.Random(rand.Reader)
	vsKeys = ProcessE9(g, vsKeys, e9cheat)

	e10 := E10M{
		Version: 1,
		Name:    "test",
		Questions: []election.Question{
			election.NewQuestion("Q", []string{"A", "B"}, 0, 1),
		},
		Administrator: "admin",
	}
	vsFinal, _, err := ProcessE10(g, vsKeys, e10)

	var failed *TrusteePKProofFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, []int{1}, failed.Indices)

	assert.True(t, vsFinal.State.Election.PublicKey.IsEqual(honestKeyed.State.PublicKey))
}

func TestDoubleVoteRejected(t *testing.T) {
	g := group.Ristretto255()
	vsFinal, passwords, e11 := setupElection(t, g, []int{1}, 1)

	voter := NewVoter(rand.Reader)
	voterPw := ProcessE4(voter, E4Mi{Password: passwords[0].Password})
	voterElection := ProcessE11Voter(voterPw, e11)

	first := CastBallot(g, voterElection, [][]int{{1, 0}})
	require.NoError(t, VerifyBallot(g, &vsFinal, first))

	second := CastBallot(g, voterElection, [][]int{{0, 1}})
	assert.ErrorIs(t, VerifyBallot(g, &vsFinal, second), ballot.ErrCredentialUsedTwice)
	assert.Len(t, vsFinal.State.AcceptedBallots, 1)
}

func TestUnknownCredentialRejected(t *testing.T) {
	g := group.Ristretto255()
	vsFinal, _, e11 := setupElection(t, g, []int{1}, 1)

	stranger := NewVoter(rand.Reader)
	strangerPw := ProcessE4(stranger, E4Mi{Password: "not-an-issued-password"})
	strangerElection := ProcessE11Voter(strangerPw, e11)

	b := CastBallot(g, strangerElection, [][]int{{1, 0}})
	assert.ErrorIs(t, VerifyBallot(g, &vsFinal, b), ballot.ErrCredentialNotFound)
	assert.Empty(t, vsFinal.State.AcceptedBallots)
}
