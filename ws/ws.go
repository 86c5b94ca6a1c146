// Package ws is the client side of the external annotation service: one
// synchronous POST of the raw structure text, returning the JSON body the
// service produced. The service itself, and decoding its response, are out
// of scope here.
package ws

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Timeout bounds the single analysis call. There is no retry: a timeout or
// a non-success status is fatal and surfaced to the caller.
const Timeout = 5 * time.Minute

// DefaultURL returns the service base URL, honoring the RNAPOLIS_WS_URL
// environment variable.
func DefaultURL() string {
	if url := os.Getenv("RNAPOLIS_WS_URL"); url != "" {
		return url
	}
	return "https://rnapolis-ws.cs.put.poznan.pl/api"
}

// Analyze submits the structure text for the given model and returns the
// raw response body.
func Analyze(baseURL string, model int, body []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/analyze/%d", strings.TrimSuffix(baseURL, "/"), model)
	client := &http.Client{Timeout: Timeout}

	resp, err := client.Post(url, "text/plain", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ws: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ws: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ws: %s returned %s", url, resp.Status)
	}
	return data, nil
}
