package redis

import (
	// Go Internal Packages
	"context"

	// External Packages
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RatesRepository reads the cached currency-rate table. Rates are kept in a
// single hash of currency code to units-per-base-unit; populating the hash
// is outside this service's scope.
type RatesRepository struct {
	client  *redis.Client
	logger  *zap.Logger
	hashKey string
}

func NewRatesRepository(client *redis.Client, logger *zap.Logger) *RatesRepository {
	return &RatesRepository{client: client, logger: logger, hashKey: "currency-rates"}
}

// GetRates loads the full rate table. Entries with unreadable values are
// skipped so one bad rate cannot block conversion of the rest.
func (r *RatesRepository) GetRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	raw, err := r.client.HGetAll(ctx, r.hashKey).Result()
	if err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(raw))
	for code, value := range raw {
		rate, err := decimal.NewFromString(value)
		if err != nil {
			r.logger.Warn("skipping unreadable currency rate",
				zap.String("code", code), zap.String("value", value))
			continue
		}
		rates[code] = rate
	}
	return rates, nil
}
