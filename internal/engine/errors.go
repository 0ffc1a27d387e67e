package engine

import "fmt"

// RejectReason identifies which placement precondition failed.
type RejectReason int

const (
	// ReasonNoUnit means no unit exists at the requested anchor position.
	ReasonNoUnit RejectReason = iota
	// ReasonUnitOccupied means an existing bin already covers the anchor unit.
	ReasonUnitOccupied
	// ReasonOutOfBounds means the adjusted bin rectangle leaves the drawer.
	ReasonOutOfBounds
	// ReasonOverlap means the adjusted bin rectangle intersects a placed bin.
	ReasonOverlap
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNoUnit:
		return "no unit at position"
	case ReasonUnitOccupied:
		return "unit already occupied"
	case ReasonOutOfBounds:
		return "outside drawer bounds"
	case ReasonOverlap:
		return "overlaps an existing bin"
	default:
		return "rejected"
	}
}

// PlacementError reports a rejected placement attempt. It is expected during
// normal interactive use and carries the failed precondition so the caller
// can surface it as feedback rather than treat it as an application error.
type PlacementError struct {
	Reason RejectReason
	X, Y   float64 // requested anchor position, mm
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place bin at (%.1f, %.1f): %s", e.X, e.Y, e.Reason)
}
