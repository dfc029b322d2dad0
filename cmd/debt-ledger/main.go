package main

import (
	// Go Internal Packages
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	// Local Packages
	config "debt-ledger/config"
	helpers "debt-ledger/helpers"
	kafka "debt-ledger/kafka"
	mongodb "debt-ledger/repositories/mongodb"
	redis "debt-ledger/repositories/redis"
	currency "debt-ledger/services/currency"
	ledger "debt-ledger/services/ledger"
	overview "debt-ledger/services/overview"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

// LoadConfig loads the default configuration and overrides it with the config file
// specified by the path defined in the config flag
func LoadConfig() *koanf.Koanf {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k
}

// LoadSecrets loads the secret variables and overrides the config
func LoadSecrets(k config.Config) config.Config {
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		k.Mongo.URI = mongoURI
	}
	if redisURI := os.Getenv("REDIS_URI"); redisURI != "" {
		k.Redis.URI = redisURI
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		k.Redis.Password = redisPassword
	}
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		k.Kafka.Brokers = strings.Split(kafkaBrokers, ",")
	}
	k.IsProdMode = os.Getenv("IS_PROD_MODE") == "true" || k.IsProdMode
	return k
}

func main() {
	k := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Update and validate the config before starting
	appKonf = LoadSecrets(appKonf)
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		k.Print()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(k.String("logger.level")))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.OutputPaths = []string{"stdout"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mongo Connection
	mongoClient, err := mongodb.Connect(ctx, appKonf.Mongo.URI)
	if err != nil {
		logger.Fatal("cannot create mongo client", zap.Error(err))
	}

	// Redis Connection
	redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
	if err != nil {
		logger.Fatal("cannot create redis client", zap.Error(err))
	}

	txRepo := mongodb.NewTxRepository(mongoClient, logger)
	walletRepo := mongodb.NewWalletRepository(mongoClient)
	snapshotRepo := redis.NewSnapshotRepository(redisClient)
	ratesRepo := redis.NewRatesRepository(redisClient, logger)
	dlQueue := redis.NewDeadLetterQueue(redisClient, logger)

	// The rate table is read once at startup; rate maintenance is owned by
	// another service.
	rates, err := ratesRepo.GetRates(ctx)
	if err != nil {
		logger.Warn("cannot load currency rates, conversion disabled", zap.Error(err))
	}
	converter := currency.NewConverter(appKonf.Ledger.BaseCurrency, rates)

	codec := ledger.NewCodec(logger)
	refs := ledger.NewReferenceGenerator(nil)
	aggregator := ledger.NewAggregator(logger, codec, refs)

	orchestrator := overview.NewOrchestrator(logger, txRepo, walletRepo, aggregator, appKonf.Ledger.DefaultSymbol)
	orchestrator.Publisher = snapshotRepo
	orchestrator.Convert = converter.Convert

	// Compute the first snapshot before consuming changes so readers never
	// see an empty slot on startup.
	if err = orchestrator.Refresh(ctx); err != nil {
		logger.Error("initial overview refresh failed", zap.Error(err))
	} else if !appKonf.IsProdMode {
		if snapshot, ok := orchestrator.Current(); ok {
			helpers.PrintStruct(snapshot)
		}
	}

	processor := overview.NewChangeProcessor(logger, orchestrator, dlQueue)

	metrics := kprom.NewMetrics("dl")
	conf := &kafka.ConsumerConfig{
		Brokers:        appKonf.Kafka.Brokers,
		Name:           appKonf.Kafka.ConsumerName,
		Topic:          appKonf.Kafka.Topic,
		RecordsPerPoll: appKonf.Kafka.RecordsPerPoll,
	}

	changeConsumer, err := kafka.NewChangeConsumer(conf, processor, metrics, logger)
	if err != nil {
		logger.Fatal("cannot create change-event consumer", zap.Error(err))
	}

	err = changeConsumer.Poll(ctx)
	if err != nil {
		logger.Fatal("cannot poll records from topic", zap.Error(err))
	}
}
