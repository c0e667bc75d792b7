package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kabsdesign/studio/pkg/apperr"
)

// maxVariants caps one variant request; each variant costs at least one
// provider job, four with all views.
const maxVariants = 3

// imageGenerator abstracts the provider client for the gateway
type imageGenerator interface {
	Generate(ctx context.Context, prompt string) (*GenerationResult, error)
	Configured() bool
}

// GenerationRecorder receives the outcome and duration of every
// provider job the gateway runs.
type GenerationRecorder interface {
	RecordImageGeneration(operation, status string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordImageGeneration(string, string, time.Duration) {}

// Gateway combines the prompt builder, the enhancer, and the image
// provider client behind the rendering operations the API exposes.
type Gateway struct {
	generator imageGenerator
	enhancer  PromptEnhancer
	recorder  GenerationRecorder
	logger    *logrus.Logger
}

// NewGateway creates the rendering gateway
func NewGateway(generator imageGenerator, enhancer PromptEnhancer, logger *logrus.Logger) *Gateway {
	return &Gateway{
		generator: generator,
		enhancer:  enhancer,
		recorder:  nopRecorder{},
		logger:    logger,
	}
}

// WithRecorder routes job outcomes to the given recorder
func (g *Gateway) WithRecorder(recorder GenerationRecorder) *Gateway {
	g.recorder = recorder
	return g
}

// generate runs one provider job and records its outcome and duration
// under the given operation label.
func (g *Gateway) generate(ctx context.Context, operation, prompt string) (*GenerationResult, error) {
	start := time.Now()
	result, err := g.generator.Generate(ctx, prompt)
	status := "success"
	if err != nil {
		status = "error"
	}
	g.recorder.RecordImageGeneration(operation, status, time.Since(start))
	return result, err
}

// GenerateKitchen builds and enhances the prompt, and optionally renders
// an image. An image failure is reported inside the response instead of
// failing the request, so clients always get the prompt back.
func (g *Gateway) GenerateKitchen(ctx context.Context, req *KitchenRequest) (*KitchenResponse, error) {
	prompt := BuildKitchenPrompt(req)
	enhanced, err := g.enhancer.Enhance(ctx, prompt)
	if err != nil {
		// Enhancement is best-effort; fall back to the base prompt.
		g.logger.WithError(err).Warn("prompt enhancement failed, using base prompt")
		enhanced = prompt
	}

	resp := &KitchenResponse{
		Success:        true,
		OriginalPrompt: prompt,
		EnhancedPrompt: enhanced,
		Message:        "Prompt ready for image generation.",
	}

	if !req.GenerateImage {
		return resp, nil
	}

	if !g.generator.Configured() {
		resp.ImageError = "Image provider API key not configured"
		return resp, nil
	}

	result, err := g.generate(ctx, "generate-kitchen", enhanced)
	if err != nil {
		resp.ImageError = apperr.ClientMessage(err)
		return resp, nil
	}

	resp.ImageProvider = "leonardo"
	resp.ImageURLs = result.ImageURLs
	resp.GenerationID = result.GenerationID
	resp.Status = result.Status
	return resp, nil
}

// GenerateKitchenImage renders an image directly from the design. Unlike
// GenerateKitchen, provider failures fail the request.
func (g *Gateway) GenerateKitchenImage(ctx context.Context, req *KitchenRequest) (*KitchenImageResponse, error) {
	if !g.generator.Configured() {
		return nil, apperr.New(500, "Image provider API key not configured")
	}

	prompt := BuildKitchenPrompt(req)
	result, err := g.generate(ctx, "generate-kitchen-image", prompt)
	if err != nil {
		return nil, err
	}

	return &KitchenImageResponse{
		Success:       true,
		Prompt:        prompt,
		ImageProvider: "leonardo",
		ImageURLs:     result.ImageURLs,
		GenerationID:  result.GenerationID,
		Status:        result.Status,
	}, nil
}

// GenerateVariants produces up to three design variants from a free-form
// prompt. Each variant renders a front view; with GenerateAllViews set,
// left, right and top views follow, and a failed secondary view is
// dropped without failing the variant.
func (g *Gateway) GenerateVariants(ctx context.Context, req *VariantRequest) (*VariantsResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, apperr.Validation("Prompt is required")
	}

	count := req.Variants
	if count < 1 {
		count = 1
	}
	if count > maxVariants {
		count = maxVariants
	}

	variants := make([]Variant, 0, count)
	for idx := 1; idx <= count; idx++ {
		variant := Variant{
			ID:             fmt.Sprintf("variant-%d", idx),
			Title:          fmt.Sprintf("Variant %d", idx),
			EnhancedPrompt: prompt,
			ImageURLs:      make([]string, 0),
		}

		front, err := g.generate(ctx, "variant", prompt)
		if err != nil {
			variant.Status = "error"
			variant.ImageError = apperr.ClientMessage(err)
			variants = append(variants, variant)
			continue
		}

		variant.ImageURLs = append(variant.ImageURLs, front.ImageURLs...)
		variant.Status = front.Status

		if req.GenerateAllViews && len(front.ImageURLs) > 0 {
			for _, suffix := range viewSuffixes {
				view, err := g.generate(ctx, "variant-view", prompt+suffix)
				if err != nil {
					g.logger.WithError(err).WithField("variant", variant.ID).
						Warn("secondary view generation failed")
					continue
				}
				variant.ImageURLs = append(variant.ImageURLs, view.ImageURLs...)
			}
		}

		variants = append(variants, variant)
	}

	return &VariantsResponse{Success: true, Variants: variants}, nil
}
