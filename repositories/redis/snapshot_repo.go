package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "debt-ledger/models"

	// External Packages
	"github.com/redis/go-redis/v9"
)

// SnapshotRepository publishes the latest debt overview. Each wallet scope
// owns a single slot that every publish overwrites, so readers only ever see
// the most recent recomputation.
type SnapshotRepository struct {
	client    *redis.Client
	keyPrefix string
}

func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client, keyPrefix: "debt-overview"}
}

// Publish overwrites the snapshot slot for the overview's wallet scope.
func (r *SnapshotRepository) Publish(ctx context.Context, overview models.DebtOverview) error {
	data, err := json.Marshal(overview)
	if err != nil {
		return err
	}

	scope := overview.WalletID
	if scope == "" {
		scope = "all"
	}
	key := fmt.Sprintf("%s:%s", r.keyPrefix, scope)
	return r.client.Set(ctx, key, data, 0).Err()
}
