package gemini

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Client talks to the Gemini generative language API. The credential is
// passed as a query parameter, not a header.
type Client struct {
	BaseURL string
	Model   string
	APIKey  string
	Client  *http.Client
	Verbose bool
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

func NewClient(baseURL, model, apiKey string, verbose bool) *Client {
	return &Client{
		BaseURL: baseURL,
		Model:   model,
		APIKey:  apiKey,
		Client:  &http.Client{},
		Verbose: verbose,
	}
}

func (c *Client) GenerateText(prompt string) (string, error) {
	if c.Verbose {
		fmt.Println("Sending request to Gemini API...")
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("connection to Gemini failed: %w", err)
	}
	defer resp.Body.Close()

	if c.Verbose {
		fmt.Printf("Gemini API response status: %d\n", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if c.Verbose {
		fmt.Printf("Raw response: %s\n", body)
	}

	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text *string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}

	if len(payload.Candidates) > 0 {
		parts := payload.Candidates[0].Content.Parts
		if len(parts) > 0 && parts[0].Text != nil {
			return *parts[0].Text, nil
		}
	}
	if len(payload.Error) > 0 {
		return "", fmt.Errorf("Gemini API error: %s", payload.Error)
	}

	return "", errors.New("failed to parse Gemini response")
}
