package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/nuranest/pregnancy-triage/internal/domain/providers"
	"github.com/nuranest/pregnancy-triage/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client generates pregnancy health answers via the OpenAI chat API,
// grounded on snippets retrieved from the document searcher.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *tokenBucket
	searcher   providers.DocumentSearcher
	searchK    int
}

// Ensure Client implements AnswerGenerator
var _ providers.AnswerGenerator = (*Client)(nil)

// NewClient creates a new OpenAI answer-generation client. searcher may be
// nil, in which case answers are generated without retrieved context.
func NewClient(cfg *config.OpenAIConfig, searcher providers.DocumentSearcher, searchK int) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	if searchK <= 0 {
		searchK = 3
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		limiter:  newTokenBucket(cfg.RateLimitRPM, cfg.RateLimitBurst),
		searcher: searcher,
		searchK:  searchK,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatEnvelope struct {
	Choices []chatChoice `json:"choices"`
}

// GenerateAnswer answers a pregnancy health question. Retrieval failures are
// tolerated: the answer is then generated without document context.
func (c *Client) GenerateAnswer(ctx context.Context, question string) (*providers.GeneratedAnswer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.New("question is required")
	}

	var docs []entities.Document
	if c.searcher != nil {
		retrieved, err := c.searcher.Search(ctx, question, c.searchK)
		if err == nil {
			docs = retrieved
		}
	}

	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			recordOpenAIMetric(ctx, c.model, 0, 0, err)
			return nil, err
		}
		recordOpenAIRateLimitWait(ctx, c.model, time.Since(waitStart))
	}

	payload := map[string]interface{}{
		"model": c.model,
		"messages": []chatMessage{
			{Role: "system", Content: answerSystemPrompt},
			{Role: "user", Content: buildAnswerUserPrompt(question, docs)},
		},
		"temperature": 0.1,
		"max_tokens":  2000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordOpenAIMetric(ctx, c.model, 0, time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		recordOpenAIMetric(ctx, c.model, resp.StatusCode, time.Since(start), fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("openai request failed with status %d", resp.StatusCode)
	}

	var envelope chatEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		recordOpenAIMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	if len(envelope.Choices) == 0 || strings.TrimSpace(envelope.Choices[0].Message.Content) == "" {
		recordOpenAIMetric(ctx, c.model, resp.StatusCode, time.Since(start), errors.New("missing answer text"))
		return nil, errors.New("openai response missing answer text")
	}

	recordOpenAIMetric(ctx, c.model, resp.StatusCode, time.Since(start), nil)

	sources := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Source != "" {
			sources = append(sources, doc.Source)
		}
	}

	return &providers.GeneratedAnswer{
		Text:    strings.TrimSpace(envelope.Choices[0].Message.Content),
		Sources: sources,
	}, nil
}

func newTokenBucket(rpm int, burst int) *tokenBucket {
	if rpm == 0 {
		rpm = 60
	}
	if rpm < 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}

	bucket := &tokenBucket{
		tokens: make(chan struct{}, burst),
	}
	for i := 0; i < burst; i++ {
		bucket.tokens <- struct{}{}
	}

	interval := time.Minute / time.Duration(rpm)
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			select {
			case bucket.tokens <- struct{}{}:
			default:
			}
		}
	}()

	return bucket
}

type tokenBucket struct {
	tokens chan struct{}
}

func (b *tokenBucket) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.tokens:
		return nil
	}
}

type openAIMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
	rateLimitWait   metric.Float64Histogram
}

var openaiMetricsInit = false
var openaiMetrics openAIMetrics

func ensureOpenAIMetrics() {
	if openaiMetricsInit {
		return
	}
	meter := otel.Meter("github.com/nuranest/pregnancy-triage/openai")

	requestCount, err := meter.Int64Counter(
		"ai.openai.request.count",
		metric.WithDescription("Number of OpenAI requests"),
	)
	if err != nil {
		return
	}
	requestDuration, err := meter.Float64Histogram(
		"ai.openai.request.duration",
		metric.WithDescription("OpenAI request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}
	requestErrors, err := meter.Int64Counter(
		"ai.openai.request.errors",
		metric.WithDescription("Number of OpenAI request errors"),
	)
	if err != nil {
		return
	}
	rateLimitWait, err := meter.Float64Histogram(
		"ai.openai.rate_limit.wait",
		metric.WithDescription("Time spent waiting for OpenAI rate limiter in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}

	openaiMetrics = openAIMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		requestErrors:   requestErrors,
		rateLimitWait:   rateLimitWait,
	}
	openaiMetricsInit = true
}

func recordOpenAIMetric(ctx context.Context, model string, statusCode int, duration time.Duration, err error) {
	ensureOpenAIMetrics()
	if !openaiMetricsInit {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "openai"),
		attribute.String("ai.model", model),
	}
	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	openaiMetrics.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	openaiMetrics.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		openaiMetrics.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func recordOpenAIRateLimitWait(ctx context.Context, model string, wait time.Duration) {
	ensureOpenAIMetrics()
	if !openaiMetricsInit {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "openai"),
		attribute.String("ai.model", model),
	}
	openaiMetrics.rateLimitWait.Record(ctx, float64(wait.Milliseconds()), metric.WithAttributes(attrs...))
}
