package credential

import "github.com/beleniosvote/core/group"

const (
	dkDomainSep = "dk"
	skDomainSep = "sk"
)

// Keypair is a scalar/point pair derived from a Password.
type Keypair struct {
	SecretKey group.Scalar
	PublicKey group.Element
}

// DeriveEncryptionKeypair derives the credential encryption keypair from a
// Password: sk = HashToScalar("dk" ‖ password), pk = sk*g (spec §4.3). The
// domain tag is bit-literal and must not change, or key derivation stops
// being reproducible cross-implementation.
func DeriveEncryptionKeypair(g group.Group, password string) Keypair {
	return derive(g, dkDomainSep, password)
}

// DeriveSigningKeypair derives the credential signing keypair from a
// Password: sk = HashToScalar("sk" ‖ password), pk = sk*g (spec §4.3). It
// must be independent of DeriveEncryptionKeypair — the two domain tags
// must stay distinct, or deniability-style properties silently break
// (spec §9).
func DeriveSigningKeypair(g group.Group, password string) Keypair {
	return derive(g, skDomainSep, password)
}

func derive(g group.Group, domainSep, password string) Keypair {
	transcript := make([]byte, 0, len(domainSep)+len(password))
	transcript = append(transcript, domainSep...)
	transcript = append(transcript, password...)
	sk := g.HashToScalar(transcript)
	pk := g.Element().BaseScale(sk)
	return Keypair{SecretKey: sk, PublicKey: pk}
}
