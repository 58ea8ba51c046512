// Package edge invokes the serverless functions of the backend provider.
package edge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pontopro/backend/internal/metrics"
)

// Function names deployed on the provider
const (
	FunctionCreateUser    = "create-user"
	FunctionDashboardData = "get-dashboard-data"
)

// ErrFunctionFailed wraps every non-2xx answer
var ErrFunctionFailed = errors.New("edge function failed")

// FunctionError carries the status and message returned by a function
type FunctionError struct {
	Function string
	Status   int
	Message  string
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("edge function %s returned %d: %s", e.Function, e.Status, e.Message)
}

func (e *FunctionError) Unwrap() error {
	return ErrFunctionFailed
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Invoke posts payload to the named function on behalf of the caller's access
// token and decodes the JSON answer into out when out is non-nil.
func (c *Client) Invoke(ctx context.Context, accessToken, function string, payload, out any) error {
	start := time.Now()
	err := c.invoke(ctx, accessToken, function, payload, out)
	metrics.ObserveEdgeCall(function, err, time.Since(start))
	return err
}

func (c *Client) invoke(ctx context.Context, accessToken, function string, payload, out any) error {
	body := []byte("{}")
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", function, err)
		}
	}

	url := c.baseURL + "/" + function
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	log.Printf("[EDGE] Invoking %s", function)
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[EDGE] %s request failed: %v", function, err)
		return fmt.Errorf("invoke %s: %w", function, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1_048_576))
	if err != nil {
		return fmt.Errorf("read %s response: %w", function, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[EDGE] %s returned non-OK status: %d", function, resp.StatusCode)
		return &FunctionError{Function: function, Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("[EDGE] Failed to decode %s response: %v", function, err)
		return fmt.Errorf("decode %s response: %w", function, err)
	}
	return nil
}

func errorMessage(data []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(data))
}
