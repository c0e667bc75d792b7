package catalog

// ModuleClass positions a kitchen module within a run of cabinetry
type ModuleClass string

// Module classes recognized by the planner.
const (
	ModuleBase      ModuleClass = "base"
	ModuleWall      ModuleClass = "wall"
	ModuleTall      ModuleClass = "tall"
	ModuleVanity    ModuleClass = "vanity"
	ModuleCorner    ModuleClass = "corner"
	ModuleAppliance ModuleClass = "appliance"
	ModulePanel     ModuleClass = "panel"
	ModuleCustom    ModuleClass = "custom"
)

// PlanShape is one primitive of a block's 2D plan symbol. Kind selects
// which fields apply: "rect" uses X/Y/Width/Height, "line" uses Points,
// "circle" uses X/Y/Radius. Coordinates are normalized to the block's
// bounding box.
type PlanShape struct {
	Kind         string     `json:"kind"`
	X            float64    `json:"x,omitempty"`
	Y            float64    `json:"y,omitempty"`
	Width        float64    `json:"width,omitempty"`
	Height       float64    `json:"height,omitempty"`
	Radius       float64    `json:"radius,omitempty"`
	Points       []float64  `json:"points,omitempty"`
	CornerRadius float64    `json:"cornerRadius,omitempty"`
	Stroke       string     `json:"stroke,omitempty"`
	StrokeWidth  float64    `json:"strokeWidth,omitempty"`
	Fill         string     `json:"fill,omitempty"`
	Dash         []float64  `json:"dash,omitempty"`
}

// BlockDefinition describes one placeable furniture block. Width, Height
// and Depth are millimetres.
type BlockDefinition struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Category     string      `json:"category"`
	Manufacturer string      `json:"manufacturer,omitempty"`
	SKU          string      `json:"sku,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	ModuleClass  ModuleClass `json:"moduleClass,omitempty"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	Depth        float64     `json:"depth,omitempty"`
	Description  string      `json:"description,omitempty"`
	PlanSymbols  []PlanShape `json:"planSymbols"`
}
