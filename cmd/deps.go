package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"weaver/internal/config"
	"weaver/pkg/cache"
	"weaver/pkg/dictionary"
	"weaver/pkg/logger"
	"weaver/pkg/sentiment"
	"weaver/pkg/sentiment/huggingface"
	"weaver/pkg/storage"
	"weaver/pkg/storage/postgres"
)

const wordListFetchTimeout = 30 * time.Second

// dictionarySource picks the word list configured in cfg. words is only read
// by the postgres source and may be nil otherwise.
func dictionarySource(cfg *config.Config, words storage.WordStorage) (dictionary.Source, error) {
	switch cfg.Dictionary.Source {
	case config.DictionarySourceEmbedded, "":
		return dictionary.EmbeddedSource{}, nil
	case config.DictionarySourceFile:
		return dictionary.FileSource{Path: cfg.Dictionary.Path}, nil
	case config.DictionarySourceHTTP:
		return dictionary.HTTPSource{
			Client: &http.Client{Timeout: wordListFetchTimeout},
			URL:    cfg.Dictionary.URL,
		}, nil
	case config.DictionarySourcePostgres:
		if words == nil {
			return nil, fmt.Errorf("dictionary source %q needs a database", cfg.Dictionary.Source)
		}

		return postgres.WordSource{Storage: words, Length: cfg.Dictionary.WordLength}, nil
	default:
		return nil, fmt.Errorf("unknown dictionary source %q", cfg.Dictionary.Source)
	}
}

// loadDictionary builds the dictionary once at startup.
func loadDictionary(ctx context.Context, cfg *config.Config, words storage.WordStorage) (*dictionary.Dictionary, error) {
	src, err := dictionarySource(cfg, words)
	if err != nil {
		return nil, err
	}

	dict, err := dictionary.LoadFrom(ctx, src, cfg.Dictionary.WordLength)
	if err != nil {
		return nil, fmt.Errorf("could not load dictionary: %w", err)
	}

	logger.Info(ctx, "dictionary loaded",
		zap.String("source", cfg.Dictionary.Source),
		zap.Int("size", dict.Len()),
		zap.String("fingerprint", dict.Fingerprint()))

	return dict, nil
}

// newPathCache connects to redis when an address is configured. Without one,
// solutions are not cached.
func newPathCache(ctx context.Context, cfg *config.Config) (cache.PathCache, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis is not configured, ladder cache disabled")

		return cache.Nop{}, func() {}
	}

	store, err := cache.NewRedisStore(ctx, cache.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return cache.New(store, cfg.Solver.ResultCacheTTL, cache.WithFlightTimeout(cfg.Solver.SolveTimeout)), func() {
		logger.Info(ctx, "closing redis client...")
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// newSentimentClient returns nil when no token is configured, which disables
// the sentiment endpoint.
func newSentimentClient(cfg *config.Config) sentiment.Client {
	if cfg.Sentiment.Token == "" {
		return nil
	}

	return huggingface.New(&http.Client{Timeout: cfg.Sentiment.Timeout}, huggingface.Options{
		Endpoint:      cfg.Sentiment.Endpoint,
		Model:         cfg.Sentiment.Model,
		Token:         cfg.Sentiment.Token,
		RatePerSecond: cfg.Sentiment.RatePerSecond,
		Burst:         cfg.Sentiment.Burst,
	})
}
