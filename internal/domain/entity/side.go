package entity

import (
	"fmt"
	"strings"
)

// Side is the edge of the host a tooltip is anchored to, optionally
// with a start/end alignment suffix.
type Side string

const (
	SideTop         Side = "top"
	SideTopStart    Side = "top-start"
	SideTopEnd      Side = "top-end"
	SideBottom      Side = "bottom"
	SideBottomStart Side = "bottom-start"
	SideBottomEnd   Side = "bottom-end"
	SideLeft        Side = "left"
	SideRight       Side = "right"
)

// DefaultSide is used when no placement is configured.
const DefaultSide = SideBottom

// AllSides returns every supported side in a stable order.
func AllSides() []Side {
	return []Side{
		SideTop, SideTopStart, SideTopEnd,
		SideBottom, SideBottomStart, SideBottomEnd,
		SideLeft, SideRight,
	}
}

// ParseSide converts a user supplied string into a Side.
// Matching is case-insensitive and surrounding whitespace is ignored.
func ParseSide(s string) (Side, error) {
	side := Side(strings.ToLower(strings.TrimSpace(s)))
	if side == "" {
		return DefaultSide, nil
	}
	if !side.Valid() {
		names := make([]string, 0, len(AllSides()))
		for _, v := range AllSides() {
			names = append(names, string(v))
		}
		return "", fmt.Errorf("unknown placement %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return side, nil
}

// Valid reports whether s is one of the supported sides.
func (s Side) Valid() bool {
	switch s {
	case SideTop, SideTopStart, SideTopEnd,
		SideBottom, SideBottomStart, SideBottomEnd,
		SideLeft, SideRight:
		return true
	}
	return false
}

// IsTop reports whether s is top or one of its aligned variants.
func (s Side) IsTop() bool {
	return s == SideTop || s == SideTopStart || s == SideTopEnd
}

// IsBottom reports whether s is bottom or one of its aligned variants.
func (s Side) IsBottom() bool {
	return s == SideBottom || s == SideBottomStart || s == SideBottomEnd
}

// IsHorizontal reports whether s anchors on the left or right edge.
func (s Side) IsHorizontal() bool {
	return s == SideLeft || s == SideRight
}

// Opposite returns the side across the host, keeping the alignment suffix.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideTopStart:
		return SideBottomStart
	case SideTopEnd:
		return SideBottomEnd
	case SideBottom:
		return SideTop
	case SideBottomStart:
		return SideTopStart
	case SideBottomEnd:
		return SideTopEnd
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return s
}

func (s Side) String() string {
	return string(s)
}
