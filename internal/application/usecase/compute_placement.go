package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/domain/placement"
)

// ComputePlacementUseCase answers where a tooltip would be drawn for a
// given host, bubble size and viewport.
type ComputePlacementUseCase struct{}

// NewComputePlacementUseCase creates a new ComputePlacementUseCase.
func NewComputePlacementUseCase() *ComputePlacementUseCase {
	return &ComputePlacementUseCase{}
}

// ComputePlacementInput mirrors placement.Input with a side still to
// be parsed.
type ComputePlacementInput struct {
	Host     entity.Rect
	Tooltip  entity.Size
	Side     string
	Offset   float64
	Viewport entity.Viewport
}

// ComputePlacementOutput is the computed position.
type ComputePlacementOutput struct {
	Placement entity.Placement `json:"placement"`
	Requested entity.Side      `json:"requested"`
	Flipped   bool             `json:"flipped"`
	// Overflows is set when the bubble still leaves the viewport after
	// the single flip.
	Overflows bool `json:"overflows"`
}

// Execute validates the request and runs the placement calculator.
func (uc *ComputePlacementUseCase) Execute(_ context.Context, input ComputePlacementInput) (*ComputePlacementOutput, error) {
	side, err := entity.ParseSide(input.Side)
	if err != nil {
		return nil, err
	}
	if input.Offset < 0 || math.IsNaN(input.Offset) {
		return nil, fmt.Errorf("offset must be a non-negative number, got %v", input.Offset)
	}

	in := placement.Input{
		Host:     input.Host,
		Tooltip:  entity.Rect{Width: input.Tooltip.Width, Height: input.Tooltip.Height},
		Side:     side,
		Offset:   input.Offset,
		Viewport: input.Viewport,
	}
	p := placement.Compute(in)

	return &ComputePlacementOutput{
		Placement: p,
		Requested: side,
		Flipped:   p.Side != side,
		Overflows: overflows(p, in),
	}, nil
}

func overflows(p entity.Placement, in placement.Input) bool {
	tip := in.Tooltip.Sanitize()
	top := p.Top - in.Viewport.ScrollTop
	return top < 0 || p.Left < 0 ||
		top+tip.Height > in.Viewport.Height ||
		p.Left+tip.Width > in.Viewport.Width
}
