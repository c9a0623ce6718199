package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HuggingFaceProvider calls the hosted Inference API text-generation task.
type HuggingFaceProvider struct {
	BaseURL string
	Token   string
	Model   string
	Client  *http.Client
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	ReturnFullText bool    `json:"return_full_text"`
	Temperature    float64 `json:"temperature"`
}

type hfGenerateReq struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGenerateResp struct {
	GeneratedText string `json:"generated_text"`
}

type hfErrorResp struct {
	Error string `json:"error,omitempty"`
}

func NewHuggingFaceProvider(baseURL, token, model string) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	return &HuggingFaceProvider{
		BaseURL: baseURL,
		Token:   token,
		Model:   model,
		Client:  &http.Client{Timeout: 90 * time.Second},
	}
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	if p.Client == nil {
		return "", errors.New("huggingface: http client is nil")
	}
	model := strings.TrimSpace(p.Model)
	if model == "" {
		return "", errors.New("huggingface: model is required")
	}

	reqBody := hfGenerateReq{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens:   params.MaxNewTokens,
			ReturnFullText: params.ReturnFullText,
			Temperature:    params.Temperature,
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s", strings.TrimRight(p.BaseURL, "/"), model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		var decoded hfErrorResp
		if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error != "" {
			return "", fmt.Errorf("huggingface: %s", decoded.Error)
		}
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("huggingface: %s", msg)
	}

	// text-generation returns a one-element array of candidates
	var decoded []hfGenerateResp
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded) == 0 {
		return "", errors.New("huggingface: empty response")
	}
	return decoded[0].GeneratedText, nil
}
