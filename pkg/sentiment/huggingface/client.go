// Package huggingface provides a sentiment.Client backed by the Hugging Face
// inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"weaver/pkg/domain"
	"weaver/pkg/sentiment"
	"weaver/pkg/serrors"
)

const (
	// DefaultEndpoint is the public inference API.
	DefaultEndpoint = "https://api-inference.huggingface.co"
	// DefaultModel is a five-label multilingual sentiment classifier.
	DefaultModel = "tabularisai/multilingual-sentiment-analysis"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	Endpoint string
	Model    string
	Token    string
	// RatePerSecond caps outbound requests; <= 0 disables limiting.
	RatePerSecond float64
	Burst         int
}

// Client talks to the inference API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	endpoint   string
	model      string
	token      string
}

var _ sentiment.Client = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		model:      opts.Model,
		token:      opts.Token,
	}
}

type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// topLabel accepts both response shapes of the API: a flat list of
// predictions or a list holding one list per input.
func topLabel(b []byte) (string, error) {
	var nested [][]prediction
	var flat []prediction
	if err := json.Unmarshal(b, &nested); err == nil && len(nested) > 0 {
		flat = nested[0]
	} else if err := json.Unmarshal(b, &flat); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if len(flat) == 0 {
		return "", errors.New("response has no predictions")
	}

	best := flat[0]
	for _, p := range flat[1:] {
		if p.Score > best.Score {
			best = p
		}
	}

	return best.Label, nil
}

// Label classifies text with the configured model.
func (c *Client) Label(ctx context.Context, text string) (domain.SentimentLabel, error) {
	if c.token == "" {
		return "", serrors.With(serrors.ErrUnavailable, "sentiment provider token not configured")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", serrors.With(serrors.ErrBadRequest, "missing text")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		switch ctxErr := ctx.Err(); {
		case errors.Is(ctxErr, context.Canceled):
			return "", serrors.Wrap(serrors.ErrCanceled, ctxErr, "sentiment request canceled")
		case ctxErr != nil:
			return "", serrors.Wrap(serrors.ErrTimeout, ctxErr, "sentiment request timed out")
		}

		return "", serrors.Wrap(serrors.ErrRateLimited, err, "sentiment rate limit wait aborted")
	}

	body, err := json.Marshal(struct {
		Inputs string `json:"inputs"`
	}{Inputs: strings.ToLower(text)})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.endpoint+"/models/"+c.model,
		bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if len(b) > maxResponseBytes {
		return "", fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode == http.StatusServiceUnavailable {
		// the model is still loading on the provider side
		return "", serrors.With(serrors.ErrUnavailable, "model unavailable: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("classification failed: %s", strings.TrimSpace(string(b)))
	}

	label, err := topLabel(b)
	if err != nil {
		return "", err
	}

	return domain.ParseSentimentLabel(label), nil
}
