package ledger

import (
	// Go Internal Packages
	"encoding/json"
	"strings"

	// Local Packages
	models "debt-ledger/models"

	// External Packages
	"go.uber.org/zap"
)

// Codec decodes the counter-party list and debt metadata blobs attached to
// transactions. Malformed input never aborts aggregation: it degrades to an
// empty list or absent metadata.
type Codec struct {
	Logger *zap.Logger
}

func NewCodec(logger *zap.Logger) *Codec {
	return &Codec{Logger: logger}
}

// DecodeParties parses an encoded counter-party list. Blank or malformed
// input yields an empty list.
func (c *Codec) DecodeParties(raw string) []models.CounterParty {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var parties []models.CounterParty
	if err := json.Unmarshal([]byte(raw), &parties); err != nil {
		c.Logger.Warn("failed to decode counter-party list", zap.String("raw", raw), zap.Error(err))
		return nil
	}
	return parties
}

// EncodeParties serializes a counter-party list. DecodeParties round-trips
// any well-formed non-empty input.
func (c *Codec) EncodeParties(parties []models.CounterParty) string {
	data, err := json.Marshal(parties)
	if err != nil {
		c.Logger.Warn("failed to encode counter-party list", zap.Error(err))
		return "[]"
	}
	return string(data)
}

// DecodeMetadata parses an encoded debt metadata blob. Blank or malformed
// input yields nil.
func (c *Codec) DecodeMetadata(raw string) *models.DebtMetadata {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var meta models.DebtMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		c.Logger.Warn("failed to decode debt metadata", zap.String("raw", raw), zap.Error(err))
		return nil
	}
	return &meta
}

// EncodeMetadata serializes debt metadata, round-trip symmetric with
// DecodeMetadata.
func (c *Codec) EncodeMetadata(meta models.DebtMetadata) string {
	data, err := json.Marshal(meta)
	if err != nil {
		c.Logger.Warn("failed to encode debt metadata", zap.Error(err))
		return "{}"
	}
	return string(data)
}
