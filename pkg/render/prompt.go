package render

import (
	"fmt"
	"strings"
)

// colorNames maps the planner palette's hex values to names the image
// model understands.
var colorNames = map[string]string{
	"#FFFFFF": "white",
	"#F5F5F5": "light gray",
	"#E5E7EB": "gray",
	"#B68A5A": "warm wood",
	"#2B2F36": "dark",
	"#7CAB6A": "green",
	"#2F6F9F": "blue",
	"#D2691E": "wood",
	"#8B7355": "brown",
}

func colorName(hex, fallback string) string {
	if name, ok := colorNames[strings.ToUpper(hex)]; ok {
		return name
	}
	return fallback
}

// Camera-angle suffixes appended to the base prompt when all views are
// requested. Each insists on the identical design so the provider varies
// only the viewpoint.
var viewSuffixes = []string{
	". EXACT SAME DESIGN from left side perspective, camera positioned to the left showing the side view of the same layout, same cabinets, same colors, same materials, same appliances, only camera angle changed to left side.",
	". EXACT SAME DESIGN from right side perspective, camera positioned to the right showing the side view of the same layout, same cabinets, same colors, same materials, same appliances, only camera angle changed to right side.",
	". EXACT SAME DESIGN from top-down bird's eye view, aerial perspective from above showing the same layout, same cabinets, same colors, same materials, same appliances, only camera angle changed to top view.",
}

// BuildKitchenPrompt converts a kitchen design to a rendering prompt. The
// conversion is deterministic: the same design always yields the same
// prompt.
func BuildKitchenPrompt(req *KitchenRequest) string {
	var walls, baseCabinets, wallCabinets, sinks, stoves, refrigerators []KitchenElement
	for _, e := range req.Elements {
		if e.Type == "wall" {
			walls = append(walls, e)
		}
		switch e.FurnitureType {
		case "base-cabinet", "cabinet":
			baseCabinets = append(baseCabinets, e)
		case "wall-cabinet":
			wallCabinets = append(wallCabinets, e)
		case "sink":
			sinks = append(sinks, e)
		case "stove":
			stoves = append(stoves, e)
		case "refrigerator":
			refrigerators = append(refrigerators, e)
		}
	}

	shapeDesc := req.KitchenShape
	if shapeDesc == "" {
		shapeDesc = "modern"
	}
	if len(walls) >= 3 {
		if req.KitchenShape != "" {
			shapeDesc = req.KitchenShape + " kitchen"
		} else if len(walls) == 3 {
			shapeDesc = "U-shaped kitchen"
		} else {
			shapeDesc = "L-shaped kitchen"
		}
	}

	wallColorName := colorName(req.WallColor, "white")
	floorColorName := colorName(req.FloorColor, "light gray")

	cabinetColor := "white"
	if len(baseCabinets) > 0 {
		cabinetColor = "light wood"
		if fill := baseCabinets[0].Fill; fill != "" {
			cabinetColor = colorName(fill, "light wood")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a photorealistic, professional interior design rendering of a %s kitchen.\n\n", shapeDesc)
	b.WriteString("Design specifications:\n")
	fmt.Fprintf(&b, "- Kitchen layout: %s\n", shapeDesc)
	fmt.Fprintf(&b, "- Wall color: %s\n", wallColorName)
	fmt.Fprintf(&b, "- Floor: %s flooring\n", floorColorName)
	fmt.Fprintf(&b, "- Cabinets: %s base cabinets and wall cabinets\n", cabinetColor)
	b.WriteString("- Countertops: white marble or quartz countertops sitting flat on base cabinets\n")
	fmt.Fprintf(&b, "- Number of base cabinets: %d\n", len(baseCabinets))
	fmt.Fprintf(&b, "- Number of wall cabinets: %d\n", len(wallCabinets))

	if len(sinks) > 0 {
		b.WriteString("- Kitchen sink: stainless steel sink integrated into countertop\n")
	}
	if len(stoves) > 0 {
		b.WriteString("- Gas stove: black gas stove positioned flat on countertop\n")
	}
	if len(refrigerators) > 0 {
		b.WriteString("- Refrigerator: stainless steel refrigerator\n")
	}

	b.WriteString(`
Style requirements:
- Photorealistic quality like professional interior design photography
- Natural lighting from windows
- Soft shadows and realistic materials
- Modern, clean aesthetic
- Countertops must be perfectly flat on base cabinets (not floating)
- All appliances properly integrated into the design
- Professional kitchen design magazine quality

Camera angle: Interior view from inside the kitchen, eye level perspective showing the full kitchen layout.
`)

	return b.String()
}
