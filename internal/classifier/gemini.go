package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const classifyPrompt = "Clasifica el sentimiento del siguiente texto como exactamente una palabra: " +
	"'positivo', 'negativo' o 'neutro'. Responde solo con una de esas tres palabras.\n\nTexto: %s"

// GeminiClassifier classifies text through the Gemini generateContent API.
// Best effort: no retries and no circuit breaking, only the client timeout.
type GeminiClassifier struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// NewGeminiClassifier creates a classifier backed by the given model.
func NewGeminiClassifier(apiKey, model, baseURL string) *GeminiClassifier {
	return &GeminiClassifier{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Classify sends text to the model with an instruction to answer with
// exactly one label word and normalizes whatever comes back.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{{Text: fmt.Sprintf(classifyPrompt, text)}},
				Role:  "user",
			},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0,
			MaxOutputTokens: 16,
		},
	}

	raw, err := c.doRequest(ctx, reqBody)
	if err != nil {
		return "", err
	}

	return NormalizeLabel(raw), nil
}

func (c *GeminiClassifier) doRequest(ctx context.Context, reqBody geminiRequest) (string, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling classifier: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var result geminiResponse
	if resp.StatusCode != http.StatusOK {
		if err := json.Unmarshal(body, &result); err == nil && result.Error != nil {
			return "", fmt.Errorf("classifier API error (HTTP %d): %s", resp.StatusCode, result.Error.Message)
		}
		return "", fmt.Errorf("classifier API error: HTTP %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("classifier API error: %s", result.Error.Message)
	}

	// No candidates is not a transport failure: treat it as an empty
	// answer and let normalization fall back to neutro.
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
