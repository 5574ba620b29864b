// Package insight asks an external text-generation service for a short
// business recommendation over the terminal's aggregate figures. Failures
// never propagate: the reporting path always gets a displayable string.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"smartpos/internal/report"
)

// Fixed user-facing messages. These mirror the strings the terminal has
// always shown and are part of the surface contract.
const (
	NoDataMessage        = "尚無交易數據，無法進行分析。"
	EmptyResponseMessage = "無法獲取分析建議。"
	UnavailableMessage   = "AI 分析暫時不可用，請檢查網路或 API 金鑰。"
)

// Collaborator produces a recommendation from aggregate figures. One attempt
// per invocation, no retries.
type Collaborator interface {
	Recommend(ctx context.Context, f report.Figures) (string, error)
}

// Client talks to a Gemini-style generateContent endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// BuildPrompt renders the analyst prompt around the aggregate figures.
func BuildPrompt(f report.Figures) string {
	return fmt.Sprintf(`你是一個專業的商業分析師。請根據以下 POS 數據提供簡短的經營建議（約 150 字）：
- 總訂單數: %d
- 總銷售額: $%g
- 總利潤: $%g
- 平均客單價: $%.2f

請重點分析利潤率，並給予 2-3 個具體的改進建議（例如：成本控制、熱門產品推廣）。
請用繁體中文回答。`, f.OrderCount, f.TotalSales, f.TotalProfit, f.AvgOrderValue)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) Recommend(ctx context.Context, f report.Figures) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(f)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal insight request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight request returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode insight response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
