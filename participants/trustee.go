package participants

import (
	"io"

	"github.com/beleniosvote/core/group"
	"github.com/beleniosvote/core/nizk"
	"github.com/beleniosvote/core/signing"
)

// EmptyTrustee is a Trustee's initial state.
type EmptyTrustee struct {
	Index int
}

// KeyStateTrustee is a Trustee after generating its decryption key share
// and the discrete-log proof of knowledge it sends at E9.
type KeyStateTrustee struct {
	Index      int
	SecretKey  group.Scalar
	PublicKey  group.Element
	SigningKey group.Scalar
}

// NewTrustee constructs a Trustee in its initial state, tagged with its
// 1-based index (matching the spec's Trustee_k notation).
func NewTrustee(index int, rand io.Reader) Participant[EmptyTrustee] {
	return Participant[EmptyTrustee]{State: EmptyTrustee{Index: index}, Rand: rand}
}

// GenerateKeyShare samples the trustee's decryption key share and
// produces its public key together with a discrete-log knowledge proof,
// which VS verifies at E9 before including the key in the election
// public key aggregate. The submission is signed under a freshly sampled
// signing key (spec §3: "trustees sign their DL-proof submissions at
// E9"), binding the index and public key together so VS can detect a
// tampered-in-transit or misattributed contribution independently of the
// DL proof itself.
func GenerateKeyShare(g group.Group, p Participant[EmptyTrustee]) (Participant[KeyStateTrustee], E9M) {
	sk := g.SampleUniformScalar(p.Rand)
	pk := g.Element().BaseScale(sk)
	proof := nizk.ProveDL(g, pk, sk, p.Rand)

	signingSK := g.SampleUniformScalar(p.Rand)
	signingPK := g.Element().BaseScale(signingSK)
	sig := signing.Sign(g, signingSK, signingPK, e9SignedPayload(p.State.Index, pk), p.Rand)

	next := Participant[KeyStateTrustee]{
		State: KeyStateTrustee{Index: p.State.Index, SecretKey: sk, PublicKey: pk, SigningKey: signingSK},
		Rand:  p.Rand,
	}
	return next, E9M{
		Index:            p.State.Index,
		PublicKey:        pk,
		Proof:            proof,
		SigningPublicKey: signingPK,
		Signature:        sig,
	}
}
