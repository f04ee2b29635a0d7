package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const systemPrompt = "You are a helpful assistant that generates git commit messages."

// Client talks to the OpenAI chat completions API, or any endpoint that
// speaks the same dialect.
type Client struct {
	BaseURL string
	Model   string
	APIKey  string
	Client  *http.Client
	Verbose bool
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
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
		fmt.Println("Sending request to OpenAI API...")
	}

	reqBody := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("connection to OpenAI failed: %w", err)
	}
	defer resp.Body.Close()

	if c.Verbose {
		fmt.Printf("OpenAI API response status: %d\n", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if c.Verbose {
		fmt.Printf("Raw response: %s\n", body)
	}

	var payload struct {
		Choices []struct {
			Message struct {
				Content *string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode OpenAI response: %w", err)
	}

	if len(payload.Choices) > 0 && payload.Choices[0].Message.Content != nil {
		return *payload.Choices[0].Message.Content, nil
	}
	if payload.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", payload.Error.Message)
	}

	return "", errors.New("failed to parse OpenAI response")
}
