package election

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beleniosvote/core/group"
)

func sampleElection() Election {
	g := group.Ristretto255()
	pk := g.Random(rand.Reader)
	return Election{
		Version:     1,
		Description: "test election",
		Name:        "2026 board vote",
		GroupName:   g.Name(),
		PublicKey:   pk,
		Questions: []Question{
			NewQuestion("Who should chair?", []string{"Alice", "Bob"}, 0, 1),
		},
		UUID:                "abcdefghijklmn",
		Administrator:       "admin",
		CredentialAuthority: "ca",
	}
}

func TestFingerprintStable(t *testing.T) {
	e := sampleElection()
	f1 := e.Fingerprint()
	f2 := e.Fingerprint()
	assert.Equal(t, f1, f2)
}

func TestFingerprintChangesWithContent(t *testing.T) {
	e1 := sampleElection()
	e2 := sampleElection()
	e2.Name = "different name"

	assert.NotEqual(t, e1.Fingerprint(), e2.Fingerprint())
}

func TestQuestionBoundsPanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		NewQuestion("bad", []string{"A"}, 2, 1)
	})
}
