package credential

import "io"

// uuidCharCount is the number of base58 characters an election UUID is
// rendered with; spec §3 requires at least 14, carrying at least 128 bits
// of entropy.
const uuidCharCount = 22

// GenerateUUID samples a fresh election UUID, rendered as a base58 string.
func GenerateUUID(rand io.Reader) (string, error) {
	return GeneratePassword(rand)
}
