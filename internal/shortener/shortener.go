package shortener

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Alphabet is the character set short codes are drawn from: the base64
// alphabet with `+` and `/` replaced by `-` and `_`, so codes never need
// percent-encoding in a path.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// CodeGenerator produces random short codes of a fixed length.
// Randomness comes from crypto/rand so codes resist enumeration;
// a general-purpose PRNG would make issued codes guessable.
type CodeGenerator struct {
	length int
}

// NewCodeGenerator creates a generator with the given code length.
// Lengths outside 4..12 are clamped to the default of 6.
// 6 characters over a 64-symbol alphabet gives 64^6 ≈ 68 billion codes.
func NewCodeGenerator(length int) *CodeGenerator {
	if length < 4 || length > 12 {
		length = 6
	}
	return &CodeGenerator{length: length}
}

// Length returns the configured code length
func (g *CodeGenerator) Length() int {
	return g.length
}

// Generate draws random bytes, encodes them with the URL-safe base64
// alphabet, and truncates to the configured length. Each output byte of
// the encoding covers 6 random bits, so reading length bytes of input is
// always enough material after truncation.
func (g *CodeGenerator) Generate() (string, error) {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	code := base64.RawURLEncoding.EncodeToString(buf)
	return code[:g.length], nil
}
