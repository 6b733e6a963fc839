// Package credential implements voter/trustee secrets (Password), election
// UUIDs, and the derivation of credential keypairs from a Password (spec
// §4.3). The election UUID is not an input to the key derivation.
package credential

import (
	"fmt"
	"io"
	"math/big"

	"github.com/mr-tron/base58"
)

// alphabet is the literal base58 alphabet this spec fixes (spec §4.3, §6);
// it happens to coincide with mr-tron/base58's default Bitcoin alphabet.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const alphabetSize = 58

// passwordCharCount is the length of a generated Password: 22 base58
// characters encode the 128 bits of entropy sampled for it (spec §4.3).
const passwordCharCount = 22

// credentialDigitCount is the number of random digits in a printable
// checksummed credential token, supplementing the plain Password with a
// human typo-detecting variant.
const credentialDigitCount = 14

// GeneratePassword samples 16 bytes of CSPRNG output and renders it as a
// 22-character base58 string: the lowest-order digit is rightmost, and the
// value is interpreted big-endian (spec §4.3).
func GeneratePassword(rand io.Reader) (string, error) {
	var buf [16]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return "", fmt.Errorf("credential: RNG read failed: %w", err)
	}
	return padLeft(base58.Encode(buf[:]), passwordCharCount), nil
}

// GenerateCredential samples a 14-digit base58 token and appends a trailing
// checksum digit, for contexts where a human must retype the secret.
func GenerateCredential(rand io.Reader) (string, error) {
	var buf [16]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return "", fmt.Errorf("credential: RNG read failed: %w", err)
	}
	randNum := new(big.Int).SetBytes(buf[:])

	digits := make([]int, credentialDigitCount)
	base := big.NewInt(alphabetSize)
	mod := new(big.Int)
	for i := 0; i < credentialDigitCount; i++ {
		mod.Mod(randNum, base)
		digits[i] = int(mod.Int64())
		randNum.Div(randNum, base)
	}

	check := checksum(digits)

	out := make([]byte, credentialDigitCount+1)
	for i, d := range digits {
		out[i] = alphabet[d]
	}
	out[credentialDigitCount] = alphabet[check]
	return string(out), nil
}

// checksumModulus is 53, not the 58-letter alphabet size: the checksum
// digit always falls in the first 53 letters of the alphabet.
const checksumModulus = 53

// twoPow128Mod53 is 2^128 mod 53. The original implementation computes the
// checksum as u128::wrapping_sub(53, sum) % 53: since sum is built from 14
// base58 digits it almost always exceeds 53, so the subtraction wraps
// around the u128 range before the final reduction, folding this constant
// back in. checksum mirrors that wraparound instead of the naive (53-sum)
// mod 53, which only agrees with it when sum <= 53.
const twoPow128Mod53 = 13

// checksum mirrors the original implementation's digit weighting exactly:
// digits is little-endian (digits[0] is the least-significant generated
// digit), but the checksum sum reads it from the end, i.e. the
// most-recently-generated digit gets the lowest weight, weighted in base
// 58, combined with a wrapping subtraction from 53, and reduced modulo 53.
func checksum(digits []int) int {
	sum := new(big.Int)
	weight := big.NewInt(1)
	base := big.NewInt(alphabetSize)
	term := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		term.Mul(big.NewInt(int64(digits[i])), weight)
		sum.Add(sum, term)
		weight.Mul(weight, base)
	}

	modulus := big.NewInt(checksumModulus)
	out := new(big.Int).Sub(modulus, sum)
	if sum.Cmp(modulus) > 0 {
		out.Add(out, big.NewInt(twoPow128Mod53))
	}
	out.Mod(out, modulus)
	return int(out.Int64())
}

// VerifyCredentialChecksum reports whether a 15-character credential token
// carries a valid trailing checksum digit.
func VerifyCredentialChecksum(token string) bool {
	if len(token) != credentialDigitCount+1 {
		return false
	}
	digits := make([]int, credentialDigitCount)
	for i := 0; i < credentialDigitCount; i++ {
		d, ok := indexOf(token[i])
		if !ok {
			return false
		}
		digits[i] = d
	}
	want, ok := indexOf(token[credentialDigitCount])
	if !ok {
		return false
	}
	return checksum(digits) == want
}

func indexOf(c byte) (int, bool) {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i, true
		}
	}
	return 0, false
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	pad := make([]byte, n-len(s))
	for i := range pad {
		pad[i] = alphabet[0]
	}
	return string(pad) + s
}
