package render

// KitchenElement is one design element as sent by the planner client
type KitchenElement struct {
	Type          string  `json:"type"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	FurnitureType string  `json:"furnitureType,omitempty"`
	Fill          string  `json:"fill,omitempty"`
}

// KitchenRequest describes a kitchen design to render
type KitchenRequest struct {
	Elements      []KitchenElement `json:"elements"`
	WallColor     string           `json:"wallColor"`
	FloorColor    string           `json:"floorColor"`
	CeilingColor  string           `json:"ceilingColor"`
	KitchenShape  string           `json:"kitchenShape,omitempty"`
	GenerateImage bool             `json:"generateImage"`
}

// KitchenResponse carries the built prompt and, when requested, the
// generated image. A failed image generation fills ImageError instead of
// failing the request.
type KitchenResponse struct {
	Success        bool     `json:"success"`
	OriginalPrompt string   `json:"original_prompt"`
	EnhancedPrompt string   `json:"enhanced_prompt"`
	Message        string   `json:"message"`
	ImageProvider  string   `json:"image_provider,omitempty"`
	ImageURLs      []string `json:"image_urls,omitempty"`
	GenerationID   string   `json:"generation_id,omitempty"`
	Status         string   `json:"status,omitempty"`
	ImageError     string   `json:"image_error,omitempty"`
}

// KitchenImageResponse is the direct-generation response; here a provider
// failure fails the whole request.
type KitchenImageResponse struct {
	Success       bool     `json:"success"`
	Prompt        string   `json:"prompt"`
	ImageProvider string   `json:"image_provider"`
	ImageURLs     []string `json:"image_urls"`
	GenerationID  string   `json:"generation_id"`
	Status        string   `json:"status"`
}

// GenerationResult is what the image provider returns for one job
type GenerationResult struct {
	GenerationID string
	ImageURLs    []string
	Status       string
}

// VariantRequest asks for design variants from a free-form prompt
type VariantRequest struct {
	Prompt           string `json:"prompt"`
	Variants         int    `json:"variants"`
	ProjectID        string `json:"projectId,omitempty"`
	GenerateAllViews bool   `json:"generateAllViews"`
}

// Variant is one generated design variant. When the front view fails,
// Status is "error" and ImageError explains why; additional camera angles
// that fail are simply absent from ImageURLs.
type Variant struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	EnhancedPrompt string   `json:"enhanced_prompt"`
	ImageURLs      []string `json:"image_urls"`
	Status         string   `json:"status"`
	ImageError     string   `json:"image_error,omitempty"`
}

// VariantsResponse wraps the variant list
type VariantsResponse struct {
	Success  bool      `json:"success"`
	Variants []Variant `json:"variants"`
}
