package mongodb

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "debt-ledger/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type WalletRepository struct {
	client     *mongo.Client
	collection string
}

func NewWalletRepository(client *mongo.Client) *WalletRepository {
	return &WalletRepository{client: client, collection: "wallets"}
}

// GetWallets returns every wallet known to the store.
func (r *WalletRepository) GetWallets(ctx context.Context) ([]models.Wallet, error) {
	collection := r.client.Database(database).Collection(r.collection)
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var stored []models.MongoWallet
	if err = cursor.All(ctx, &stored); err != nil {
		return nil, err
	}

	wallets := make([]models.Wallet, len(stored))
	for i := range stored {
		wallets[i] = stored[i].Transform()
	}
	return wallets, nil
}
