package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weaver/internal/api/handler/v1handler"
	"weaver/internal/config"
	"weaver/internal/weaver"
	"weaver/pkg/logger"
	"weaver/pkg/serrors"
	"weaver/pkg/storage"
)

// solveCommand constructs the 'solve' subcommand that prints the shortest
// ladder between two words without starting the server.
func solveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve START TARGET",
		Short: "Prints the shortest word ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var words storage.WordStorage
			if cfg.Dictionary.Source == config.DictionarySourcePostgres {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				words = strg
			}

			dict, err := loadDictionary(ctx, cfg, words)
			if err != nil {
				logger.Fatal(ctx, "could not load dictionary", zap.Error(err))
			}

			pathCache, closeCache := newPathCache(ctx, cfg)
			defer closeCache()

			w := weaver.New(weaver.Deps{Dictionary: dict, Cache: pathCache}, weaver.NewOptions(cfg))

			asJSON, _ := cmd.Flags().GetBool("json")
			share, _ := cmd.Flags().GetBool("share")

			cmd.SilenceUsage = true

			return runSolve(ctx, w, cmd.OutOrStdout(), args[0], args[1], asJSON, share)
		},
	}

	cmd.Flags().Bool("json", false, "Print the solution as JSON")
	cmd.Flags().Bool("share", false, "Also print a share link for the start word")

	return cmd
}

// runSolve solves one query and writes the result to out. Input errors are
// returned with their user-facing message.
func runSolve(ctx context.Context, w weaver.Weaver, out io.Writer, start, target string, asJSON, share bool) error {
	sol, err := w.Solve(ctx, start, target)
	if err != nil {
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			return errors.New(se.Message())
		}

		return err
	}

	if asJSON {
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		v1handler.DomainSolutionToV1Specs(sol).Encode(e)
		if _, err := fmt.Fprintf(out, "%s\n", e.Bytes()); err != nil {
			return fmt.Errorf("could not write solution: %w", err)
		}
	} else {
		var line string
		if sol.Found {
			line = fmt.Sprintf("%s (%d steps)", strings.Join(sol.Path, " -> "), sol.Steps())
		} else {
			line = fmt.Sprintf("no ladder from %s to %s", sol.Start, sol.Target)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("could not write solution: %w", err)
		}
	}

	if share {
		link, err := w.ShareURL(ctx, sol.Start)
		if err != nil {
			return fmt.Errorf("could not build share link: %w", err)
		}
		if _, err := fmt.Fprintln(out, link); err != nil {
			return fmt.Errorf("could not write share link: %w", err)
		}
	}

	return nil
}
