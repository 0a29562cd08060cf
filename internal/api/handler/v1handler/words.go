package v1handler

import (
	"context"

	"weaver/internal/api/specs/v1specs"
	"weaver/pkg/domain"
	"weaver/pkg/serrors"
)

// DomainSolutionToV1Specs maps a solution to its API representation.
func DomainSolutionToV1Specs(in *domain.Solution) *v1specs.Solution {
	path := in.Path
	if path == nil {
		path = []string{}
	}

	return &v1specs.Solution{
		Start:  in.Start,
		Target: in.Target,
		Found:  in.Found,
		Steps:  in.Steps(),
		Path:   path,
	}
}

// GetDictionary describes the loaded word list.
func (h Handler) GetDictionary(ctx context.Context) (*v1specs.DictionaryInfo, error) {
	info := h.deps.Weaver.DictionaryInfo(ctx)

	return &v1specs.DictionaryInfo{
		WordLength:  info.WordLength,
		Size:        info.Size,
		Fingerprint: info.Fingerprint,
	}, nil
}

// CheckWord reports whether a word is in the word list.
func (h Handler) CheckWord(ctx context.Context, params v1specs.CheckWordParams) (*v1specs.WordCheck, error) {
	res, err := h.deps.Weaver.Check(ctx, params.Word)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.WordCheck{Word: res.Word, Valid: res.Valid}, nil
}

// ShareWord returns a link that pre-fills the start word.
func (h Handler) ShareWord(ctx context.Context, params v1specs.ShareWordParams) (*v1specs.ShareLink, error) {
	link, err := h.deps.Weaver.ShareURL(ctx, params.Word1)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ShareLink{URL: link}, nil
}

// Solve returns a shortest ladder between the two words.
func (h Handler) Solve(ctx context.Context, req *v1specs.SolveRequest) (*v1specs.Solution, error) {
	sol, err := h.deps.Weaver.Solve(ctx, req.Start, req.Target)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainSolutionToV1Specs(sol), nil
}

// Sentiment labels the sentiment of a text.
func (h Handler) Sentiment(ctx context.Context, req *v1specs.SentimentRequest) (*v1specs.SentimentResult, error) {
	if h.deps.Sentiment == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "sentiment analysis is not configured")
	}

	label, err := h.deps.Sentiment.Label(ctx, req.Text)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.SentimentResult{Label: string(label)}, nil
}
