package speech

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	speech "google.golang.org/api/speech/v1"
)

// FinalResultTimeout bounds the wait for a final transcript. A dictation
// that the service has not finalized within this window fails rather than
// blocking the intake flow.
const FinalResultTimeout = 20 * time.Second

// Client wraps the Google Cloud Speech-to-Text API service.
type Client struct {
	service *speech.Service
}

// NewClientFromCredentialsFile creates a Speech client from a Service
// Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Speech client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, speech.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := speech.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Speech client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := speech.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &Client{service: svc}, nil
}

// WithEndpoint points the client at a non-default API endpoint (tests).
func NewClientFromHTTPWithEndpoint(ctx context.Context, httpClient *http.Client, endpoint string) (*Client, error) {
	svc, err := speech.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Transcribe submits one dictation clip and returns the final transcript,
// waiting at most FinalResultTimeout.
func (c *Client) Transcribe(ctx context.Context, req TranscribeRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, FinalResultTimeout)
	defer cancel()

	languageCode := req.LanguageCode
	if languageCode == "" {
		languageCode = "en-US"
	}

	resp, err := c.service.Speech.Recognize(&speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			Encoding:        req.Encoding,
			SampleRateHertz: req.SampleRateHertz,
			LanguageCode:    languageCode,
		},
		Audio: &speech.RecognitionAudio{
			Content: req.AudioContent,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to transcribe dictation: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		parts = append(parts, result.Alternatives[0].Transcript)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no transcript in speech response")
	}

	return strings.Join(parts, " "), nil
}
