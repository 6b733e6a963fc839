// Command beleniosdemo runs a complete election end to end against an
// in-process transport: one Server Administrator, one Voting Server, one
// Credential Authority, nine Trustees, and ten Voters, following the full
// E1-E12 setup sequence and a V1-V3 casting round for every voter.
package main

import (
	"crypto/rand"
	"fmt"

	"github.com/beleniosvote/core/election"
	"github.com/beleniosvote/core/group"
	"github.com/beleniosvote/core/participants"
	"github.com/beleniosvote/core/xlog"
)

const (
	numVoters   = 10
	numTrustees = 9
)

func main() {
	log := xlog.With("beleniosdemo")
	g := group.Ristretto255()

	log.Info().Int("voters", numVoters).Int("trustees", numTrustees).Msg("starting election setup")

	voters := make([]participants.VoterSpec, numVoters)
	for i := range voters {
		voters[i] = participants.VoterSpec{Weight: 1}
	}
	e1 := participants.E1M{Voters: voters}

	sa := participants.NewServerAdmin(rand.Reader)
	_, e1out := participants.ProcessE1(sa, e1)

	vs := participants.NewVotingServer(rand.Reader)
	vsRoster, e3, err := participants.ProcessE1VS(g, vs, e1out)
	if err != nil {
		log.Fatal().Err(err).Msg("voting server failed to generate the election uuid")
	}
	log.Info().Str("uuid", vsRoster.State.UUID).Msg("voting server assigned election uuid")

	ca := participants.NewCredentialAuthority(rand.Reader)
	caReq := participants.ProcessE3(ca, e3)

	caList, passwords, e7, err := participants.GenerateCredentials(g, caReq)
	if err != nil {
		log.Fatal().Err(err).Msg("credential generation failed")
	}

	voterStates := make([]participants.Participant[participants.PasswordStateVoter], numVoters)
	for i := 0; i < numVoters; i++ {
		v := participants.NewVoter(rand.Reader)
		voterStates[i] = participants.ProcessE4(v, participants.E4Mi{Password: passwords[i].Password})
	}

	vsL, e8 := participants.ProcessE7(vsRoster, e7)
	if e8.Err != nil {
		log.Fatal().Err(e8.Err).Msg("voting server rejected the multiset check at E8")
	}
	log.Info().Msg("voting server confirmed the voter weight multiset")

	vsKeys := participants.StartKeyCollection(vsL)
	for i := 1; i <= numTrustees; i++ {
		tr := participants.NewTrustee(i, rand.Reader)
		_, e9 := participants.GenerateKeyShare(g, tr)
		vsKeys = participants.ProcessE9(g, vsKeys, e9)
	}
	if len(vsKeys.State.FailedIndices) > 0 {
		log.Warn().Ints("failed_indices", vsKeys.State.FailedIndices).Msg("some trustee proofs failed; excluding them from the public key")
	}

	questionOne := election.NewQuestion(
		"Who should be director in 2026?",
		[]string{"Mark Fischlin", "Nadia Heninger", "Anna Lysyanskaya"}, 0, 1)
	questionTwo := election.NewQuestion(
		"Which hardness assumption will be broken next?",
		[]string{"RLWE with small Galois group", "Small moduli LWR", "Factoring 4096-bit RSA"}, 0, 1)

	e10 := participants.E10M{
		Version:             1,
		Description:         "This is a test election",
		Name:                "Test Election",
		Questions:           []election.Question{questionOne, questionTwo},
		Administrator:       "Election Administrator",
		CredentialAuthority: "Credential Authority",
	}
	vsFinal, e11, err := participants.ProcessE10(g, vsKeys, e10)
	if err != nil {
		log.Warn().Err(err).Msg("election finalized with excluded trustee keys")
	}
	log.Info().Hex("fingerprint", fpSlice(vsFinal.State.Election)).Msg("election finalized")

	caFinal, e12 := participants.ProcessE11CA(caList, e11)
	if e12.Err != nil {
		log.Fatal().Err(e12.Err).Msg("credential authority disagrees with voting server over L")
	}
	_ = caFinal

	log.Info().Msg("voting phase starting")
	for i, vstate := range voterStates {
		voter := participants.ProcessE11Voter(vstate, e11)
		choices := [][]int{{1, 0, 0}, {0, 1, 0}}
		b := participants.CastBallot(g, voter, choices)

		if err := participants.VerifyBallot(g, &vsFinal, b); err != nil {
			log.Error().Err(err).Int("voter", i).Msg("ballot rejected")
			continue
		}
	}

	log.Info().Int("accepted", len(vsFinal.State.AcceptedBallots)).Msg("voting complete")
	fmt.Printf("accepted %d of %d ballots\n", len(vsFinal.State.AcceptedBallots), numVoters)
}

func fpSlice(e election.Election) []byte {
	fp := e.Fingerprint()
	return fp[:]
}
