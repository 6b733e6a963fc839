package participants

import (
	"io"

	"github.com/beleniosvote/core/credential"
	"github.com/beleniosvote/core/group"
)

// EmptyCA is the Credential Authority's initial state.
type EmptyCA struct{}

// RequestStateCA holds the election UUID and voter weights VS sent at E3.
type RequestStateCA struct {
	UUID    string
	Weights []int
}

// PasswordEntry pairs a voter's issued password with its weight, in CA's
// original (pre-shuffle) indexing — CA needs this ordering to hand each
// voter their own password at E4.
type PasswordEntry struct {
	Password string
	Weight   int
}

// ListStateCA holds the shuffled public list L together with the
// passwords still indexed in generation order, after E4/E7.
type ListStateCA struct {
	UUID      string
	L         []LEntry
	Passwords []PasswordEntry
}

// FinalStateCA is CA after the E12 recheck of VS's echoed-back L.
type FinalStateCA struct {
	UUID string
	L    []LEntry
}

// NewCredentialAuthority constructs a Credential Authority in its initial
// state.
func NewCredentialAuthority(rand io.Reader) Participant[EmptyCA] {
	return Participant[EmptyCA]{State: EmptyCA{}, Rand: rand}
}

// ProcessE3 records the election UUID and weights CA received from VS.
func ProcessE3(p Participant[EmptyCA], msg E3M) Participant[RequestStateCA] {
	next, _ := Process(p, msg, func(_ Participant[EmptyCA], m E3M) (RequestStateCA, struct{}) {
		return RequestStateCA{UUID: m.UUID, Weights: m.Weights}, struct{}{}
	})
	return next
}

// GenerateCredentials derives one password and one credential encryption
// keypair per voter weight, then produces the public list L as a uniform
// Fisher-Yates shuffle of the (pubkey, weight) pairs (spec §4.7: "CA's
// shuffle of L is a uniform Fisher-Yates permutation using the supplied
// CSPRNG; this is the only mechanism that unlinks voter-identity-by-index
// from credential-public-key").
func GenerateCredentials(g group.Group, p Participant[RequestStateCA]) (Participant[ListStateCA], []PasswordEntry, E7M, error) {
	s := p.State

	passwords := make([]PasswordEntry, len(s.Weights))
	entries := make([]LEntry, len(s.Weights))

	for i, w := range s.Weights {
		pw, err := credential.GeneratePassword(p.Rand)
		if err != nil {
			return Participant[ListStateCA]{}, nil, E7M{}, err
		}
		passwords[i] = PasswordEntry{Password: pw, Weight: w}

		kp := credential.DeriveEncryptionKeypair(g, pw)
		entries[i] = LEntry{PublicKey: kp.PublicKey, Weight: w}
	}

	shuffled := fisherYatesShuffle(entries, p.Rand)

	next := Participant[ListStateCA]{
		State: ListStateCA{UUID: s.UUID, L: shuffled, Passwords: passwords},
		Rand:  p.Rand,
	}
	return next, passwords, E7M{L: shuffled}, nil
}

// fisherYatesShuffle returns a uniformly random permutation of entries,
// consuming randomness from rand via rejection sampling of uniform 64-bit
// draws (randIntn).
func fisherYatesShuffle(entries []LEntry, rand io.Reader) []LEntry {
	out := make([]LEntry, len(entries))
	copy(out, entries)

	for i := len(out) - 1; i > 0; i-- {
		j := randIntn(rand, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func randIntn(rand io.Reader, n int) int {
	if n <= 1 {
		return 0
	}
	var buf [8]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			panic("participants: RNG read failed: " + err.Error())
		}
		v := uint64(0)
		for _, b := range buf {
			v = v<<8 | uint64(b)
		}
		// Reject draws in the partial top range to avoid modulo bias.
		limit := (^uint64(0) / uint64(n)) * uint64(n)
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

// ProcessE11CA is CA's E12 recheck: the Election/L VS echoes back at E11
// must carry the same L as the one CA generated and shuffled.
func ProcessE11CA(p Participant[ListStateCA], msg E11M) (Participant[FinalStateCA], E12M) {
	return Process(p, msg, func(pp Participant[ListStateCA], m E11M) (FinalStateCA, E12M) {
		var err error
		if !sameL(pp.State.L, m.L) {
			err = &DisagreementOverLError{}
		}
		return FinalStateCA{UUID: pp.State.UUID, L: pp.State.L}, E12M{Err: err}
	})
}

func sameL(a, b []LEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Weight != b[i].Weight || !a[i].PublicKey.IsEqual(b[i].PublicKey) {
			return false
		}
	}
	return true
}
