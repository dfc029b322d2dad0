package ledger

import (
	// Go Internal Packages
	"fmt"

	// External Packages
	"github.com/google/uuid"
)

// SuffixSource supplies the uniqueness component of a debt reference. It is
// the only impure part of reference generation and is injectable for tests.
type SuffixSource func() string

// ReferenceGenerator builds identifiers linking an original debt transaction
// to its repayments. Two references for the same counter-party and timestamp
// share a prefix but never collide.
type ReferenceGenerator struct {
	Suffix SuffixSource
}

func NewReferenceGenerator(suffix SuffixSource) *ReferenceGenerator {
	if suffix == nil {
		suffix = func() string {
			return uuid.NewString()[:8]
		}
	}
	return &ReferenceGenerator{Suffix: suffix}
}

// Generate returns a reference of the form DEBT_<partyID>_<millis>_<suffix>.
func (g *ReferenceGenerator) Generate(counterPartyID string, timestampMillis int64) string {
	return fmt.Sprintf("DEBT_%s_%d_%s", counterPartyID, timestampMillis, g.Suffix())
}

// Derive builds the same reference shape as Generate but with a suffix
// hashed from the inputs, so equal inputs always yield the same reference.
// Used where a reference is recomputed on every pass rather than minted
// once and persisted.
func (g *ReferenceGenerator) Derive(counterPartyID string, timestampMillis int64, qualifier string) string {
	seed := fmt.Sprintf("%s_%d_%s", counterPartyID, timestampMillis, qualifier)
	suffix := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()[:8]
	return fmt.Sprintf("DEBT_%s_%d_%s", counterPartyID, timestampMillis, suffix)
}
