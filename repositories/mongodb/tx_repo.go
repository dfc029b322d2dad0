package mongodb

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "debt-ledger/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const database = "debtledger"

type TxRepository struct {
	client     *mongo.Client
	logger     *zap.Logger
	collection string
}

func NewTxRepository(client *mongo.Client, logger *zap.Logger) *TxRepository {
	return &TxRepository{client: client, logger: logger, collection: "transactions"}
}

// GetAll returns every stored transaction across all wallets.
func (r *TxRepository) GetAll(ctx context.Context) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{})
}

// GetForWallet returns the transactions of a single wallet.
func (r *TxRepository) GetForWallet(ctx context.Context, walletID string) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{"wallet_id": walletID})
}

func (r *TxRepository) find(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	collection := r.client.Database(database).Collection(r.collection)
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var stored []models.MongoTransaction
	if err = cursor.All(ctx, &stored); err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(stored))
	for i := range stored {
		tx, err := stored[i].Transform()
		if err != nil {
			// A row with an unreadable amount cannot be aggregated;
			// skip it rather than failing the whole fetch.
			r.logger.Warn("skipping transaction with bad amount",
				zap.String("transaction_id", stored[i].ID), zap.Error(err))
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
