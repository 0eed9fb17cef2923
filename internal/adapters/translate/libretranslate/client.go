// Package libretranslate talks to a LibreTranslate-compatible translation
// service. Translation is strictly best-effort: every failure mode falls back
// to the input text so a translation outage can never fail a parent write.
package libretranslate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Pranav99t/polytask/internal/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	http    *resty.Client
}

// New builds a client for the service at baseURL. apiKey may be empty for
// unauthenticated instances. timeout bounds every request; zero means the
// default.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := resty.New().SetTimeout(timeout)
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, http: c}
}

type translateRequest struct {
	Q      any    `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

func (c *Client) TranslateOne(ctx context.Context, text string, source, target domain.Locale) (string, error) {
	if source == target || strings.TrimSpace(text) == "" {
		return text, nil
	}
	var resp struct {
		TranslatedText string `json:"translatedText"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{Q: text, Source: source.String(), Target: target.String(), Format: "text", APIKey: c.apiKey}).
		SetResult(&resp).
		Post(c.baseURL + "/translate")
	if err != nil {
		return text, err
	}
	if r.IsError() {
		return text, fmt.Errorf("translate: %s; body: %s", r.Status(), r.String())
	}
	if strings.TrimSpace(resp.TranslatedText) == "" {
		return text, fmt.Errorf("translate: empty response body")
	}
	return resp.TranslatedText, nil
}

func (c *Client) TranslateBatch(ctx context.Context, texts []string, source, target domain.Locale) ([]string, error) {
	out := make([]string, len(texts))
	copy(out, texts)
	if source == target || len(texts) == 0 {
		return out, nil
	}
	// Blank inputs pass through; only the rest go over the wire.
	idx := make([]int, 0, len(texts))
	q := make([]string, 0, len(texts))
	for i, t := range texts {
		if strings.TrimSpace(t) != "" {
			idx = append(idx, i)
			q = append(q, t)
		}
	}
	if len(q) == 0 {
		return out, nil
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{Q: q, Source: source.String(), Target: target.String(), Format: "text", APIKey: c.apiKey}).
		Post(c.baseURL + "/translate")
	if err != nil {
		return out, err
	}
	if r.IsError() {
		return out, fmt.Errorf("translate batch: %s; body: %s", r.Status(), r.String())
	}
	var resp struct {
		TranslatedText []string `json:"translatedText"`
	}
	if err := json.Unmarshal(r.Body(), &resp); err != nil {
		// Some instances return a single string for a one-element batch.
		var single struct {
			TranslatedText string `json:"translatedText"`
		}
		if err2 := json.Unmarshal(r.Body(), &single); err2 == nil && len(q) == 1 && single.TranslatedText != "" {
			out[idx[0]] = single.TranslatedText
			return out, nil
		}
		return out, fmt.Errorf("translate batch: decode response: %w", err)
	}
	if len(resp.TranslatedText) != len(q) {
		return out, fmt.Errorf("translate batch: got %d results for %d inputs", len(resp.TranslatedText), len(q))
	}
	for i, pos := range idx {
		if strings.TrimSpace(resp.TranslatedText[i]) != "" {
			out[pos] = resp.TranslatedText[i]
		}
	}
	return out, nil
}
