package classify

// Entry is a named reference color in HSV space.
type Entry struct {
	Name       string  `json:"name"`
	Hue        float64 `json:"hue"`        // degrees [0, 360)
	Saturation float64 `json:"saturation"` // [0, 1]
	Value      float64 `json:"value"`      // [0, 1]
}

// palette order is significant: on equal distance the earlier entry wins.
var palette = []Entry{
	// Reds
	{Name: "Red", Hue: 0, Saturation: 1, Value: 1},
	{Name: "Dark Red", Hue: 0, Saturation: 1, Value: 0.55},
	{Name: "Tomato", Hue: 9, Saturation: 0.72, Value: 1},
	{Name: "Crimson", Hue: 348, Saturation: 0.83, Value: 0.86},
	{Name: "Orange Red", Hue: 16, Saturation: 1, Value: 1},
	{Name: "Coral", Hue: 16, Saturation: 0.68, Value: 1},
	{Name: "Maroon", Hue: 0, Saturation: 1, Value: 0.4},

	// Oranges and yellows
	{Name: "Orange", Hue: 30, Saturation: 1, Value: 1},
	{Name: "Carrot Orange", Hue: 28, Saturation: 0.85, Value: 0.9},
	{Name: "Gold", Hue: 51, Saturation: 1, Value: 1},
	{Name: "Goldenrod", Hue: 43, Saturation: 0.74, Value: 0.85},
	{Name: "Yellow", Hue: 60, Saturation: 1, Value: 1},
	{Name: "Bright Yellow", Hue: 60, Saturation: 1, Value: 1},
	{Name: "Lemon Yellow", Hue: 58, Saturation: 0.9, Value: 1},
	{Name: "Golden Yellow", Hue: 52, Saturation: 0.95, Value: 0.95},
	{Name: "Light Yellow", Hue: 60, Saturation: 0.25, Value: 1},
	{Name: "Pastel Yellow", Hue: 60, Saturation: 0.3, Value: 0.97},
	{Name: "Yellow Orange", Hue: 45, Saturation: 1, Value: 1},

	// Yellow-greens
	{Name: "Green Yellow", Hue: 75, Saturation: 1, Value: 1},
	{Name: "Yellow Green", Hue: 85, Saturation: 1, Value: 1},
	{Name: "Inchworm", Hue: 90, Saturation: 0.75, Value: 0.9},
	{Name: "Chartreuse", Hue: 90, Saturation: 1, Value: 1},

	// Greens and olives
	{Name: "Lime Green", Hue: 120, Saturation: 1, Value: 1},
	{Name: "Pure Green", Hue: 120, Saturation: 1, Value: 1},
	{Name: "Green", Hue: 120, Saturation: 0.8, Value: 0.8},
	{Name: "Medium Green", Hue: 120, Saturation: 0.7, Value: 0.7},
	{Name: "Light Green", Hue: 120, Saturation: 0.4, Value: 1},
	{Name: "Pale Green", Hue: 120, Saturation: 0.3, Value: 0.9},
	{Name: "Emerald", Hue: 140, Saturation: 0.8, Value: 0.8},
	{Name: "Fern Green", Hue: 110, Saturation: 0.6, Value: 0.5},
	{Name: "Moss Green", Hue: 95, Saturation: 0.6, Value: 0.5},
	{Name: "Dark Moss Green", Hue: 95, Saturation: 0.7, Value: 0.35},
	{Name: "Olive", Hue: 60, Saturation: 0.8, Value: 0.5},
	{Name: "Olivine", Hue: 80, Saturation: 0.55, Value: 0.7},
	{Name: "Light Olive Green", Hue: 75, Saturation: 0.4, Value: 0.8},

	// Cyans and blues
	{Name: "Cyan", Hue: 180, Saturation: 1, Value: 1},
	{Name: "Teal", Hue: 180, Saturation: 0.8, Value: 0.6},
	{Name: "Teal Blue", Hue: 190, Saturation: 0.8, Value: 0.7},
	{Name: "Blue Green", Hue: 170, Saturation: 0.7, Value: 0.7},
	{Name: "Aquamarine", Hue: 160, Saturation: 0.5, Value: 1},
	{Name: "Turquoise", Hue: 174, Saturation: 0.72, Value: 0.88},
	{Name: "Light Blue", Hue: 200, Saturation: 0.4, Value: 1},
	{Name: "Sky Blue", Hue: 197, Saturation: 0.71, Value: 0.9},
	{Name: "Blue", Hue: 240, Saturation: 1, Value: 1},
	{Name: "Royal Blue", Hue: 225, Saturation: 0.73, Value: 0.88},
	{Name: "Dark Blue", Hue: 240, Saturation: 1, Value: 0.5},
	{Name: "Indigo Blue", Hue: 260, Saturation: 0.8, Value: 0.5},
	{Name: "Indigo", Hue: 275, Saturation: 0.75, Value: 0.5},

	// Violets and purples
	{Name: "Violet", Hue: 270, Saturation: 0.6, Value: 0.9},
	{Name: "Blue Violet", Hue: 275, Saturation: 0.76, Value: 0.85},
	{Name: "Purple", Hue: 285, Saturation: 0.8, Value: 0.7},
	{Name: "Medium Purple", Hue: 290, Saturation: 0.5, Value: 0.85},
	{Name: "Deep Purple", Hue: 285, Saturation: 0.85, Value: 0.4},
	{Name: "Dark Purple", Hue: 285, Saturation: 0.9, Value: 0.3},

	// Magentas and pinks
	{Name: "Magenta", Hue: 300, Saturation: 1, Value: 1},
	{Name: "Deep Pink", Hue: 330, Saturation: 0.9, Value: 1},
	{Name: "Pink", Hue: 350, Saturation: 0.4, Value: 1},
	{Name: "Pale Pink", Hue: 350, Saturation: 0.25, Value: 1},
	{Name: "Very Pale Pink", Hue: 350, Saturation: 0.15, Value: 1},
	{Name: "Rose", Hue: 345, Saturation: 0.6, Value: 0.8},

	// Neutrals
	{Name: "White", Hue: 0, Saturation: 0, Value: 1},
	{Name: "Brown", Hue: 30, Saturation: 0.8, Value: 0.4},

	// Test kit shades
	{Name: "Light Cyan", Hue: 180, Saturation: 0.25, Value: 1},
	{Name: "Pale Lavender Blue", Hue: 220, Saturation: 0.35, Value: 0.95},
	{Name: "Light Violet", Hue: 270, Saturation: 0.45, Value: 0.9},
	{Name: "Soft Pinkish Purple", Hue: 295, Saturation: 0.45, Value: 0.85},
	{Name: "Medium Magenta", Hue: 300, Saturation: 0.65, Value: 0.8},
	{Name: "Deep Fuchsia Pink", Hue: 315, Saturation: 0.85, Value: 0.8},
	{Name: "Bright Reddish Pink", Hue: 345, Saturation: 0.85, Value: 1},
	{Name: "Reddish Magenta", Hue: 330, Saturation: 0.8, Value: 0.9},
	{Name: "Dark Pinkish Red", Hue: 350, Saturation: 0.75, Value: 0.75},
	{Name: "Deep Crimson Red", Hue: 355, Saturation: 0.9, Value: 0.5},
	{Name: "Bright Lemon Yellow", Hue: 58, Saturation: 1, Value: 1},
	{Name: "Light Golden Yellow", Hue: 50, Saturation: 0.6, Value: 0.95},
	{Name: "Sunflower Yellow", Hue: 54, Saturation: 0.9, Value: 0.95},
	{Name: "Amber", Hue: 45, Saturation: 0.95, Value: 0.95},
	{Name: "Tangerine", Hue: 25, Saturation: 0.9, Value: 1},
	{Name: "Scarlet Red", Hue: 8, Saturation: 1, Value: 1},
	{Name: "Dark Crimson", Hue: 350, Saturation: 0.85, Value: 0.4},
}

// Entries returns a copy of the palette in search order.
func Entries() []Entry {
	out := make([]Entry, len(palette))
	copy(out, palette)
	return out
}
