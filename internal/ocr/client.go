// Package ocr calls the OCR.space text-extraction API and provides a
// deterministic local cleanup for the raw text it returns. Extraction is
// best-effort: a page the service cannot read yields an empty string, not an
// error.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultURL is the OCR.space parse endpoint.
const DefaultURL = "https://api.ocr.space/parse/image"

// Client talks to the OCR.space API.
type Client struct {
	apiKey string
	url    string
	hc     *http.Client
}

// NewClient returns a client for the given API key against the default
// endpoint.
func NewClient(apiKey string) *Client {
	return NewClientWithURL(apiKey, DefaultURL)
}

// NewClientWithURL returns a client against a custom endpoint (used in
// tests).
func NewClientWithURL(apiKey, url string) *Client {
	return &Client{
		apiKey: apiKey,
		url:    url,
		hc:     &http.Client{Timeout: 60 * time.Second},
	}
}

type parseResponse struct {
	OCRExitCode   int `json:"OCRExitCode"`
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
}

// ParseImage sends one image to the OCR service and returns the extracted
// text. A non-success exit code from the service yields empty text with a
// nil error; transport failures are returned as errors.
func (c *Client) ParseImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"apikey":    c.apiKey,
		"language":  "eng",
		"OCREngine": "1",
		"isTable":   "true",
		"scale":     "true",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", fmt.Errorf("write form field: %w", err)
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("decode ocr response: %w", err)
	}
	if pr.OCRExitCode != 1 {
		return "", nil
	}

	var parts []string
	for _, r := range pr.ParsedResults {
		parts = append(parts, r.ParsedText)
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
