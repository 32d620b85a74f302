package flyout

import (
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

// TargetOffset returns how far the clone travels to reach the cart anchor.
// sign is +1 for left-to-right and -1 for right-to-left layouts.
func TargetOffset(source model.Rect, sign, anchorX, verticalBias float32) model.Vec2 {
	return model.Vec2{
		X: sign * (anchorX - source.X),
		Y: -source.Y - verticalBias,
	}
}

// CloneOrigin converts a start-edge relative rectangle into the physical
// rectangle the clone is drawn at.
func CloneOrigin(source model.Rect, dir locale.Direction, screenWidth float32) model.Rect {
	if dir == locale.RightToLeft {
		source.X = screenWidth - source.X - source.Width
	}
	return source
}
