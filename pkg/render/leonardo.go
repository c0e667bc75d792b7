package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kabsdesign/studio/pkg/apperr"
)

// Generation job pacing. Jobs typically finish in 15-40 seconds; the
// deadline caps a request at about a minute.
const (
	defaultPollInterval = 4 * time.Second
	defaultPollDeadline = 60 * time.Second
	createTimeout       = 30 * time.Second
	pollTimeout         = 20 * time.Second
)

// LeonardoClient talks to a Leonardo-style image generation API: submit a
// generation job, then poll it to completion.
type LeonardoClient struct {
	baseURL string
	apiKey  string
	modelID string

	createClient *http.Client
	pollClient   *http.Client

	pollInterval time.Duration
	pollDeadline time.Duration
}

// NewLeonardoClient creates a client for the given API endpoint
func NewLeonardoClient(baseURL, apiKey, modelID string) *LeonardoClient {
	return &LeonardoClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		modelID:      modelID,
		createClient: &http.Client{Timeout: createTimeout},
		pollClient:   &http.Client{Timeout: pollTimeout},
		pollInterval: defaultPollInterval,
		pollDeadline: defaultPollDeadline,
	}
}

// Configured reports whether an API key is present
func (c *LeonardoClient) Configured() bool {
	return c.apiKey != ""
}

type createGenerationPayload struct {
	Prompt        string `json:"prompt"`
	ModelID       string `json:"modelId"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	NumImages     int    `json:"num_images"`
	GuidanceScale int    `json:"guidance_scale"`
	Public        bool   `json:"public"`
}

type createGenerationResponse struct {
	SDGenerationJob struct {
		GenerationID string `json:"generationId"`
	} `json:"sdGenerationJob"`
}

type pollGenerationResponse struct {
	GenerationsByPK struct {
		Status          string `json:"status"`
		GeneratedImages []struct {
			URL string `json:"url"`
		} `json:"generated_images"`
	} `json:"generations_by_pk"`
}

// Generate submits a generation job and polls until it completes, fails,
// or the deadline passes.
func (c *LeonardoClient) Generate(ctx context.Context, prompt string) (*GenerationResult, error) {
	if !c.Configured() {
		return nil, apperr.New(http.StatusInternalServerError, "Image provider API key not configured")
	}

	generationID, err := c.createGeneration(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return c.pollGeneration(ctx, generationID)
}

func (c *LeonardoClient) createGeneration(ctx context.Context, prompt string) (string, error) {
	payload := createGenerationPayload{
		Prompt:        prompt,
		ModelID:       c.modelID,
		Width:         1024,
		Height:        768,
		NumImages:     1,
		GuidanceScale: 7,
		Public:        false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", apperr.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/generations", bytes.NewReader(body))
	if err != nil {
		return "", apperr.Internal(err)
	}
	c.setHeaders(req)

	resp, err := c.createClient.Do(req)
	if err != nil {
		return "", apperr.Upstream("Failed to create image generation", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperr.Upstream(
			fmt.Sprintf("Failed to create image generation: %d %s", resp.StatusCode, detail), nil)
	}

	var created createGenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", apperr.Upstream("Invalid response from image provider", err)
	}
	if created.SDGenerationJob.GenerationID == "" {
		return "", apperr.Upstream("Image generation id missing from provider response", nil)
	}
	return created.SDGenerationJob.GenerationID, nil
}

func (c *LeonardoClient) pollGeneration(ctx context.Context, generationID string) (*GenerationResult, error) {
	deadline := time.Now().Add(c.pollDeadline)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, apperr.Upstream("Image generation cancelled", ctx.Err())
		case <-time.After(c.pollInterval):
		}

		status, urls, err := c.fetchGeneration(ctx, generationID)
		if err != nil {
			return nil, err
		}

		switch status {
		case "COMPLETE", "COMPLETED", "FINISHED":
			if len(urls) == 0 {
				return nil, apperr.Upstream("Image generation completed without images", nil)
			}
			return &GenerationResult{
				GenerationID: generationID,
				ImageURLs:    urls,
				Status:       strings.ToLower(status),
			}, nil
		case "FAILED", "ERROR":
			return nil, apperr.Upstream(
				fmt.Sprintf("Image generation failed with status %s", status), nil)
		}
		// Still pending; keep polling.
	}

	return nil, apperr.UpstreamTimeout("Image generation timed out before completion")
}

func (c *LeonardoClient) fetchGeneration(ctx context.Context, generationID string) (string, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/generations/"+generationID, nil)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	c.setHeaders(req)

	resp, err := c.pollClient.Do(req)
	if err != nil {
		return "", nil, apperr.Upstream("Failed to fetch image generation status", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", nil, apperr.Upstream(
			fmt.Sprintf("Failed to fetch image generation status: %d", resp.StatusCode), nil)
	}

	var polled pollGenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&polled); err != nil {
		return "", nil, apperr.Upstream("Invalid response from image provider", err)
	}

	urls := make([]string, 0, len(polled.GenerationsByPK.GeneratedImages))
	for _, img := range polled.GenerationsByPK.GeneratedImages {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	return strings.ToUpper(polled.GenerationsByPK.Status), urls, nil
}

func (c *LeonardoClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
