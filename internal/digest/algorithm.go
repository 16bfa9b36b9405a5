package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a supported cryptographic hash function.
// Values are always one of the constants below; use ParseAlgorithm to
// obtain one from untrusted input.
type Algorithm string

const (
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_512   Algorithm = "sha3-512"
	Blake2b256 Algorithm = "blake2b-256"
)

// DefaultAlgorithm is used when the caller does not name an algorithm.
const DefaultAlgorithm = SHA256

var constructors = map[Algorithm]func() hash.Hash{
	MD5:      md5.New,
	SHA1:     sha1.New,
	SHA224:   sha256.New224,
	SHA256:   sha256.New,
	SHA384:   sha512.New384,
	SHA512:   sha512.New,
	SHA3_256: sha3.New256,
	SHA3_512: sha3.New512,
	Blake2b256: func() hash.Hash {
		h, _ := blake2b.New256(nil) // only errors for oversized keys; nil key never fails
		return h
	},
}

// ParseAlgorithm validates a user-supplied algorithm name. Names are matched
// case-insensitively; an empty name selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return DefaultAlgorithm, nil
	}
	algo := Algorithm(trimmed)
	if _, ok := constructors[algo]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return algo, nil
}

// SupportedAlgorithms returns the sorted list of algorithm identifiers.
func SupportedAlgorithms() []string {
	names := make([]string, 0, len(constructors))
	for algo := range constructors {
		names = append(names, string(algo))
	}
	sort.Strings(names)
	return names
}

// New returns a fresh hash state for the algorithm.
func (a Algorithm) New() hash.Hash {
	return constructors[a]()
}

func (a Algorithm) String() string {
	return string(a)
}
