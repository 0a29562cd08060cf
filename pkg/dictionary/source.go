package dictionary

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"weaver/pkg/serrors"
)

//go:embed assets/4-letter-words.txt
var embeddedWords []byte

// Source yields the raw lines a Dictionary is built from. Implementations only
// read; filtering and normalization belong to Load.
type Source interface {
	Lines(ctx context.Context) ([]string, error)
}

// LoadFrom reads lines from src and builds a Dictionary. Any source failure is
// reported as ErrLoad so callers can tell "could not load" from a valid result.
func LoadFrom(ctx context.Context, src Source, wordLength int) (*Dictionary, error) {
	if src == nil {
		return nil, serrors.With(ErrLoad, "no dictionary source")
	}

	lines, err := src.Lines(ctx)
	if err != nil {
		return nil, serrors.Wrap(ErrLoad, err, "could not read dictionary source")
	}

	return Load(lines, wordLength)
}

// LinesSource serves a fixed slice of lines.
type LinesSource []string

// Lines implements Source.
func (s LinesSource) Lines(context.Context) ([]string, error) {
	return s, nil
}

// EmbeddedSource serves the bundled 4-letter word list.
type EmbeddedSource struct{}

// Lines implements Source.
func (EmbeddedSource) Lines(context.Context) ([]string, error) {
	return readLines(bytes.NewReader(embeddedWords))
}

// FileSource reads one word per line from a local file.
type FileSource struct {
	Path string
}

// Lines implements Source.
func (s FileSource) Lines(context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open word list: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return readLines(f)
}

// HTTPSource fetches a word list over HTTP, one word per line.
type HTTPSource struct {
	Client *http.Client
	URL    string
}

// Lines implements Source.
func (s HTTPSource) Lines(ctx context.Context) ([]string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch word list: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching word list failed with status %d", resp.StatusCode)
	}

	return readLines(resp.Body)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read word list: %w", err)
	}

	return lines, nil
}
