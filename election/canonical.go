package election

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
)

// canonicalEncode writes the deterministic byte serialization of e: field
// order as in the Election struct, UTF-8 strings prefixed by a 4-byte
// little-endian byte length, the public key as its canonical group
// encoding, little-endian integers, and sequences prefixed by a 4-byte
// little-endian element count (spec §4.8). All participants must produce
// byte-identical output from the same Election content, or ballot proofs
// bound to the fingerprint silently stop verifying.
func canonicalEncode(e Election) []byte {
	var buf bytes.Buffer

	writeU32(&buf, uint32(e.Version))
	writeString(&buf, e.Description)
	writeString(&buf, e.Name)
	writeString(&buf, e.GroupName)
	writeBytes(&buf, e.PublicKey.Bytes())

	writeU32(&buf, uint32(len(e.Questions)))
	for _, q := range e.Questions {
		writeString(&buf, q.Text)
		writeU32(&buf, uint32(len(q.Answers)))
		for _, a := range q.Answers {
			writeString(&buf, a)
		}
		writeBool(&buf, q.Blank)
		writeU32(&buf, uint32(q.Min))
		writeU32(&buf, uint32(q.Max))
	}

	writeString(&buf, e.UUID)
	writeString(&buf, e.Administrator)
	writeString(&buf, e.CredentialAuthority)

	return buf.Bytes()
}

// fingerprint returns SHA-256 of the canonical encoding of e.
func fingerprint(e Election) [32]byte {
	return sha256.Sum256(canonicalEncode(e))
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeBool(buf *bytes.Buffer, b bool) {
	if b {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func writeBytes(buf *bytes.Buffer, b []byte) {
	buf.Write(b)
}

func writeString(buf *bytes.Buffer, s string) {
	writeU32(buf, uint32(len(s)))
	buf.WriteString(s)
}
