// Package classifier talks to the external statistical text classifier.
// The model itself (vectorizer + trained classifier) is a black box
// behind a model-serving endpoint; this package only carries text over
// and a prior label back.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobshield/verify-service/internal/rules"
)

const requestTimeout = 10 * time.Second

// Classifier yields a prior verdict for the combined posting text.
type Classifier interface {
	Predict(ctx context.Context, text string) (rules.Label, error)
}

// HTTPClassifier calls a JSON model-serving endpoint.
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClassifier constructs a classifier client with a shared HTTP
// client and a bounded timeout.
func NewHTTPClassifier(baseURL string) *HTTPClassifier {
	return &HTTPClassifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Label string `json:"label"`
}

// Predict posts the combined text and returns the model's label.
func (c *HTTPClassifier) Predict(ctx context.Context, text string) (rules.Label, error) {
	payload, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}

	label, err := rules.ParseLabel(parsed.Label)
	if err != nil {
		return "", fmt.Errorf("classifier response: %w", err)
	}
	return label, nil
}
