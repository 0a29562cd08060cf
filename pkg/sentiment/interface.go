// Package sentiment labels words on a five-point sentiment scale. Labels only
// decorate ladder words for presentation; they never influence a search.
package sentiment

import (
	"context"

	"weaver/pkg/domain"
)

// Client is the abstraction over sentiment providers.
//
//go:generate mockgen -package mocksentiment -source=interface.go -destination=mock/mocksentiment.go *
type Client interface {
	// Label classifies text. Empty text is a bad request; a provider without
	// credentials reports serrors.ErrUnavailable.
	Label(ctx context.Context, text string) (domain.SentimentLabel, error)
}
