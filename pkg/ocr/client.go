// Package ocr talks to the external text-extraction sidecar. Images and
// PDFs are forwarded as-is; the sidecar answers with plain extracted text.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type extractResponse struct {
	Text string `json:"text"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// OCR on large PDFs is slow, keep a generous timeout.
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// ExtractText uploads the file to the sidecar's /extract endpoint and
// returns the recognized text.
func (c *Client) ExtractText(ctx context.Context, filename string, content []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/extract", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var parsed extractResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return "", err
	}

	return parsed.Text, nil
}
