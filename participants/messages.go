// Package participants implements the five-role election setup state
// machine (Server Administrator, Voting Server, Credential Authority,
// Trustee, Voter) and the step-indexed messages that drive it, E1-E12 for
// setup and V1-V4 for voting (spec §4.7).
package participants

import (
	"encoding/binary"

	"github.com/beleniosvote/core/election"
	"github.com/beleniosvote/core/group"
	"github.com/beleniosvote/core/nizk"
	"github.com/beleniosvote/core/signing"
)

// VoterSpec is one entry of the roster the Server Administrator authorizes
// (spec §2 item 8, data flow).
type VoterSpec struct {
	Weight int
}

// LEntry is one row of the public voter roll L: a credential public key
// paired with its weight (spec §3 "List L").
type LEntry struct {
	PublicKey group.Element
	Weight    int
}

// E1M carries the authorized voter roster from the driver to SA and VS.
type E1M struct {
	Voters []VoterSpec
}

// E3M carries the election UUID and the voter weights from VS to CA.
type E3M struct {
	UUID    string
	Weights []int
}

// E4Mi is the per-voter message CA sends each voter: their Password.
type E4Mi struct {
	Password string
}

// E7M carries CA's shuffled public list L to VS.
type E7M struct {
	L []LEntry
}

// E8M carries the result of VS's multiset cross-check back (conceptually;
// here it is the return value of the transition, spec §4.7).
type E8M struct {
	Err error
}

// E9M carries one trustee's public key contribution with its discrete-log
// knowledge proof, from Trustee_k to VS, signed under the trustee's own
// signing key (spec §3: "trustees sign their DL-proof submissions at
// E9") so VS can authenticate the submission's origin alongside the
// proof itself.
type E9M struct {
	Index            int
	PublicKey        group.Element
	Proof            nizk.DLProof
	SigningPublicKey group.Element
	Signature        signing.Signature
}

// e9SignedPayload is the canonical byte string a trustee signs at E9 and
// VS re-derives to verify it: the trustee's index bound to its election
// public key, so a signature cannot be replayed under a different index
// or a substituted key.
func e9SignedPayload(index int, pk group.Element) []byte {
	var idxBytes [8]byte
	binary.LittleEndian.PutUint64(idxBytes[:], uint64(index))
	return append(idxBytes[:], pk.Bytes()...)
}

// E10M carries the election's static description (everything but the
// trustee-aggregated public key) from the driver to VS.
type E10M struct {
	Version             int
	Name                string
	Description         string
	Questions           []election.Question
	Administrator       string
	CredentialAuthority string
}

// E11M carries the finalized Election object and L from VS to CA and to
// the voters, signed with VS's own signing key (spec §3: "the Voting
// Server signs the published Election at E11") so any recipient can
// authenticate that the Election came from VS before trusting L or
// casting ballots against it.
type E11M struct {
	Election         election.Election
	L                []LEntry
	Signature        signing.Signature
	SigningPublicKey group.Element
}

// E12M carries CA's re-confirmation that the received L matches its own.
type E12M struct {
	Err error
}
