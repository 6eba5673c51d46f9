package application

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/bnema/authflow-cli/internal/domain"
	"github.com/bnema/authflow-cli/internal/ports"
)

// ChallengeMethodS256 is the only challenge method this client offers.
const ChallengeMethodS256 = "S256"

const verifierBytes = 32

// PkceGenerator mints one verifier/challenge pair per flow attempt.
type PkceGenerator struct {
	random ports.RandomSource
}

func NewPkceGenerator(random ports.RandomSource) *PkceGenerator {
	if random == nil {
		random = ports.CryptoRand{}
	}

	return &PkceGenerator{random: random}
}

// Pair derives a fresh pair: the verifier is the base64url (no padding)
// encoding of 32 random bytes, the challenge the base64url encoding of the
// SHA-256 digest of the verifier's ASCII bytes.
func (g *PkceGenerator) Pair() (domain.Pkce, error) {
	buf, err := g.random.Bytes(verifierBytes)
	if err != nil {
		return domain.Pkce{}, fmt.Errorf("generate pkce verifier: %w", err)
	}

	verifier := base64.RawURLEncoding.EncodeToString(buf)

	return domain.Pkce{
		Verifier:  verifier,
		Challenge: ChallengeFromVerifier(verifier),
	}, nil
}

// ChallengeFromVerifier recomputes the S256 challenge for a known verifier.
func ChallengeFromVerifier(verifier string) string {
	digest := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(digest[:])
}
