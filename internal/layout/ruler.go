package layout

// AxisGeometry is what the ruler needs from the category axis.
type AxisGeometry struct {
	Width              float64 // Pixel width of the axis
	TickCount          int     // Number of categories
	CategoryPercentage float64 // Share of a tick used by its bars (0..1)
	BarPercentage      float64 // Share of a bar slot used by the bar (0..1)
}

// Ruler holds the pixel sizes shared by every candle of a series on one
// category axis.
type Ruler struct {
	StackCount      int
	TickWidth       float64
	CategoryWidth   float64
	CategorySpacing float64
	FullBarWidth    float64
	BarWidth        float64
	BarSpacing      float64
}

// ComputeRuler derives the ruler for an axis shared by stackCount slots.
// A stackCount below 1 is treated as 1 and an axis without ticks has a
// zero tick width, so the result never contains a division by zero.
func ComputeRuler(g AxisGeometry, stackCount int) Ruler {
	if stackCount < 1 {
		stackCount = 1
	}

	var tickWidth float64
	if g.TickCount > 0 {
		tickWidth = g.Width / float64(g.TickCount)
	}

	categoryWidth := tickWidth * g.CategoryPercentage
	categorySpacing := (tickWidth - categoryWidth) / 2
	fullBarWidth := categoryWidth / float64(stackCount)
	barWidth := fullBarWidth * g.BarPercentage
	barSpacing := fullBarWidth - barWidth

	return Ruler{
		StackCount:      stackCount,
		TickWidth:       tickWidth,
		CategoryWidth:   categoryWidth,
		CategorySpacing: categorySpacing,
		FullBarWidth:    fullBarWidth,
		BarWidth:        barWidth,
		BarSpacing:      barSpacing,
	}
}
