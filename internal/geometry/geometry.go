package geometry

import "listslider/internal/domain"

// Geometry holds the sizes derived from the viewport width
type Geometry struct {
	ViewportWidth float64
	SlideWidth    float64
	BoardWidth    float64
}

// Recompute derives the slide and board widths. It is pure and can be called
// on every resize, independently of any running animation.
func Recompute(viewportWidth float64, itemCount, itemsPerViewport int) (Geometry, error) {
	if itemsPerViewport <= 0 {
		return Geometry{}, &domain.ConfigurationError{
			Option: "items_per_viewport",
			Value:  itemsPerViewport,
			Reason: "must be at least 1",
		}
	}
	if itemCount < 0 {
		itemCount = 0
	}

	slideWidth := viewportWidth / float64(itemsPerViewport)
	return Geometry{
		ViewportWidth: viewportWidth,
		SlideWidth:    slideWidth,
		BoardWidth:    slideWidth * float64(itemCount),
	}, nil
}

// Offset returns the board offset that brings index to the left edge of the
// viewport. The board moves leftward, so the offset is negative.
func (g Geometry) Offset(index int) float64 {
	if index == 0 {
		return 0
	}
	return -float64(index) * g.SlideWidth
}
