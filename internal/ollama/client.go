package ollama

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client talks to a local Ollama server. It is the most lenient of the
// backends: when the reply shape is unrecognized it returns the raw body
// instead of failing.
type Client struct {
	BaseURL string
	Model   string
	Client  *http.Client
	Verbose bool
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

func NewClient(baseURL, model string, verbose bool) *Client {
	return &Client{
		BaseURL: baseURL,
		Model:   model,
		Client:  &http.Client{},
		Verbose: verbose,
	}
}

func (c *Client) GenerateText(prompt string) (string, error) {
	if c.Verbose {
		fmt.Println("Sending request to Ollama API...")
	}

	reqBody := generateRequest{
		Model:  c.Model,
		Prompt: prompt,
		Stream: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", c.BaseURL)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("connection to Ollama failed (is it running on %s?): %w", c.BaseURL, err)
	}
	defer resp.Body.Close()

	if c.Verbose {
		fmt.Printf("Ollama API response status: %d\n", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if c.Verbose {
		fmt.Printf("Raw response: %s\n", body)
	}

	// Pointer fields so a present-but-empty "response" is still honored.
	var payload struct {
		Response *string `json:"response"`
		Error    *string `json:"error"`
		Message  *struct {
			Content *string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode Ollama response: %w", err)
	}

	if payload.Response != nil {
		return *payload.Response, nil
	}
	if payload.Error != nil {
		return "", fmt.Errorf("Ollama API error: %s", *payload.Error)
	}
	if payload.Message != nil && payload.Message.Content != nil {
		return *payload.Message.Content, nil
	}

	// Unknown but valid JSON: hand the body back as-is.
	return string(body), nil
}
