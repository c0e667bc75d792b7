package catalog

// seedBlocks is the built-in catalog. Plan symbol coordinates are
// normalized to the block's bounding box; dimensions are millimetres.
var seedBlocks = []BlockDefinition{
	{
		ID: "bed-single", Name: "Bed (Single)", Type: "furniture", Category: "furniture",
		Manufacturer: "Generic Furniture Co.", SKU: "BED-S-1000",
		Width: 1000, Height: 2000,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0, Y: 0, Width: 1, Height: 1, CornerRadius: 0.04},
			{Kind: "rect", X: 0.05, Y: 0.05, Width: 0.9, Height: 0.35, Fill: "detail"},
			{Kind: "rect", X: 0.05, Y: 0.45, Width: 0.9, Height: 0.5, Fill: "detail", Dash: []float64{0.02, 0.03}},
			{Kind: "line", Points: []float64{0.05, 0.45, 0.95, 0.45}, Stroke: "detail"},
		},
	},
	{
		ID: "bed-double", Name: "Bed (Double)", Type: "furniture", Category: "furniture",
		Manufacturer: "Generic Furniture Co.", SKU: "BED-D-1600",
		Width: 1600, Height: 2000,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0, Y: 0, Width: 1, Height: 1, CornerRadius: 0.05},
			{Kind: "line", Points: []float64{0.5, 0.05, 0.5, 0.95}, Stroke: "detail", Dash: []float64{0.03, 0.03}},
			{Kind: "rect", X: 0.07, Y: 0.07, Width: 0.86, Height: 0.32, Fill: "detail"},
			{Kind: "rect", X: 0.07, Y: 0.45, Width: 0.86, Height: 0.48, Fill: "detail", Dash: []float64{0.02, 0.03}},
			{Kind: "line", Points: []float64{0.07, 0.45, 0.93, 0.45}, Stroke: "detail"},
		},
	},
	{
		ID: "sofa-3", Name: "Sofa (3-Seater)", Type: "furniture", Category: "furniture",
		Manufacturer: "ComfortLiving", SKU: "SOFA-3-2100",
		Width: 2100, Height: 800,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0, Y: 0.1, Width: 1, Height: 0.8, CornerRadius: 0.05},
			{Kind: "rect", X: 0.05, Y: 0.05, Width: 0.9, Height: 0.35, Fill: "detail"},
			{Kind: "line", Points: []float64{0.33, 0.1, 0.33, 0.9}, Dash: []float64{0.02, 0.02}, Stroke: "detail"},
			{Kind: "line", Points: []float64{0.66, 0.1, 0.66, 0.9}, Dash: []float64{0.02, 0.02}, Stroke: "detail"},
			{Kind: "rect", X: 0.02, Y: 0.2, Width: 0.06, Height: 0.6, Fill: "detail"},
			{Kind: "rect", X: 0.92, Y: 0.2, Width: 0.06, Height: 0.6, Fill: "detail"},
		},
	},
	{
		ID: "base-cabinet", Name: "Base Cabinet", Type: "furniture", Category: "kitchen",
		Manufacturer: "KAB Kitchens", SKU: "CAB-B-600", ModuleClass: ModuleBase,
		Width: 600, Height: 600, Depth: 600,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0, Y: 0, Width: 1, Height: 1},
			{Kind: "line", Points: []float64{0.5, 0, 0.5, 1}, Stroke: "detail"},
			{Kind: "circle", X: 0.25, Y: 0.5, Radius: 0.04, Fill: "detail"},
			{Kind: "circle", X: 0.75, Y: 0.5, Radius: 0.04, Fill: "detail"},
		},
	},
	{
		ID: "sink-unit", Name: "Sink Base Unit", Type: "furniture", Category: "kitchen",
		Manufacturer: "KAB Kitchens", SKU: "SINK-900", ModuleClass: ModuleBase,
		Width: 900, Height: 600, Depth: 600,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0, Y: 0, Width: 1, Height: 1},
			{Kind: "rect", X: 0.08, Y: 0.1, Width: 0.84, Height: 0.6, Fill: "detail"},
			{Kind: "circle", X: 0.35, Y: 0.4, Radius: 0.05, Stroke: "base"},
			{Kind: "circle", X: 0.65, Y: 0.4, Radius: 0.05, Stroke: "base"},
			{Kind: "line", Points: []float64{0.08, 0.8, 0.92, 0.8}, Stroke: "detail"},
			{Kind: "circle", X: 0.5, Y: 0.25, Radius: 0.03, Fill: "detail"},
		},
	},
	{
		ID: "dining-table-rect", Name: "Dining Table (Rect)", Type: "furniture", Category: "furniture",
		Manufacturer: "Atelier Tables", SKU: "TABLE-RECT-1800",
		Width: 1800, Height: 900,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0, Y: 0, Width: 1, Height: 1, CornerRadius: 0.08},
			{Kind: "rect", X: 0.05, Y: 0.15, Width: 0.9, Height: 0.7, Stroke: "detail"},
			{Kind: "circle", X: 0.15, Y: 0.25, Radius: 0.04, Fill: "detail"},
			{Kind: "circle", X: 0.15, Y: 0.75, Radius: 0.04, Fill: "detail"},
			{Kind: "circle", X: 0.85, Y: 0.25, Radius: 0.04, Fill: "detail"},
			{Kind: "circle", X: 0.85, Y: 0.75, Radius: 0.04, Fill: "detail"},
		},
	},
	{
		ID: "wc", Name: "Toilet (WC)", Type: "furniture", Category: "bathroom",
		Manufacturer: "SanitaryWorks", SKU: "WC-400",
		Width: 400, Height: 700,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0.35, Y: 0, Width: 0.3, Height: 0.45, CornerRadius: 0.1},
			{Kind: "circle", X: 0.5, Y: 0.7, Radius: 0.28, Stroke: "base"},
			{Kind: "circle", X: 0.5, Y: 0.7, Radius: 0.15, Stroke: "detail"},
		},
	},
	{
		ID: "wardrobe", Name: "Wardrobe", Type: "furniture", Category: "furniture",
		Manufacturer: "Closets Pro", SKU: "WARD-1200",
		Width: 1200, Height: 2400,
		PlanSymbols: []PlanShape{
			{Kind: "rect", X: 0, Y: 0, Width: 1, Height: 1},
			{Kind: "line", Points: []float64{0.33, 0, 0.33, 1}, Stroke: "detail"},
			{Kind: "line", Points: []float64{0.66, 0, 0.66, 1}, Stroke: "detail"},
			{Kind: "circle", X: 0.16, Y: 0.5, Radius: 0.03, Fill: "detail"},
			{Kind: "circle", X: 0.5, Y: 0.5, Radius: 0.03, Fill: "detail"},
			{Kind: "circle", X: 0.84, Y: 0.5, Radius: 0.03, Fill: "detail"},
		},
	},
}
