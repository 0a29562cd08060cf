package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weaver/internal/config"
	"weaver/pkg/cache"
	"weaver/pkg/dictionary"
	"weaver/pkg/logger"
	"weaver/pkg/storage"
	"weaver/pkg/storage/postgres"
)

// wordsCommand groups subcommands that manage the words table used by the
// postgres dictionary source.
func wordsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manages the stored word list",
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Imports the configured word list into the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			pathCache, closeCache := newPathCache(ctx, cfg)
			defer closeCache()

			importCfg := *cfg
			if path, _ := cmd.Flags().GetString("file"); path != "" {
				importCfg.Dictionary.Source = config.DictionarySourceFile
				importCfg.Dictionary.Path = path
			}

			if _, err := importWords(ctx, &importCfg, strg, pathCache); err != nil {
				logger.Fatal(ctx, "could not import words", zap.Error(err))
			}
		},
	}
	importCmd.Flags().String("file", "", "Read words from this file instead of the configured source")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Prints how many words of the configured length are stored",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			count, err := strg.WordCount(ctx, cfg.Dictionary.WordLength)
			if err != nil {
				logger.Fatal(ctx, "could not count words", zap.Error(err))
			}

			fmt.Println(count) //nolint: forbidigo
		},
	}

	cmd.AddCommand(importCmd, countCmd)

	return cmd
}

// importWords loads the configured word list and stores it. The postgres
// source would read back its own table, so it imports the embedded list instead.
// When words were added, cached ladders of the previous stored list are dropped.
func importWords(ctx context.Context,
	cfg *config.Config,
	words storage.WordStorage,
	pathCache cache.PathCache) (int64, error) {
	var src dictionary.Source = dictionary.EmbeddedSource{}
	if cfg.Dictionary.Source != config.DictionarySourcePostgres {
		var err error
		if src, err = dictionarySource(cfg, nil); err != nil {
			return 0, err
		}
	}

	dict, err := dictionary.LoadFrom(ctx, src, cfg.Dictionary.WordLength)
	if err != nil {
		return 0, fmt.Errorf("could not load word list: %w", err)
	}

	// an empty table has no cached ladders to drop
	var previous string
	stored, err := dictionary.LoadFrom(ctx, postgres.WordSource{Storage: words, Length: cfg.Dictionary.WordLength},
		cfg.Dictionary.WordLength)
	if err == nil {
		previous = stored.Fingerprint()
	}

	added, err := words.StoreWords(ctx, dict.Words()...)
	if err != nil {
		return 0, fmt.Errorf("could not store words: %w", err)
	}

	if added > 0 && previous != "" {
		if err := pathCache.Invalidate(ctx, previous); err != nil {
			logger.Warn(ctx, "could not invalidate path cache", zap.Error(err))
		}
	}

	logger.Info(ctx, "words imported",
		zap.Int("read", dict.Len()),
		zap.Int64("added", added),
		zap.String("fingerprint", dict.Fingerprint()))

	return added, nil
}
