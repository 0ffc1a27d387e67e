// Package engine implements the interactive bin-placement model for one
// drawer-editing session. A Session holds the drawer's unit partition and the
// authoritative set of placed bins; the caller (CLI, UI, importer) drives it
// with queries while the user hovers and with mutations when the user
// commits.
//
// All queries are pure. Mutations touch only the bin collection and complete
// synchronously; the session has no internal concurrency and is meant to be
// driven serially by a single caller.
package engine

import (
	"fmt"

	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// Session is the placement engine state for one drawer.
type Session struct {
	units  []model.Unit
	bins   []model.PlacedBin
	width  float64 // drawer bounds derived from the unit partition
	depth  float64
}

// NewSession creates a placement session over the given unit partition,
// seeded with previously placed bins (e.g. loaded from a saved layout).
// Initial bins are validated against the in-bounds and non-overlap
// invariants so a corrupted source cannot poison later queries.
func NewSession(units []model.Unit, bins []model.PlacedBin) (*Session, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("placement session requires a non-empty unit partition")
	}

	s := &Session{units: units}
	for _, u := range units {
		if right := u.XOffset + u.Width; right > s.width {
			s.width = right
		}
		if back := u.YOffset + u.Depth; back > s.depth {
			s.depth = back
		}
	}

	for i, b := range bins {
		if !binRect(b).within(s.width, s.depth) {
			return nil, fmt.Errorf("initial bin %q lies outside the drawer bounds", b.ID)
		}
		for j := 0; j < i; j++ {
			if b.Overlaps(bins[j]) {
				return nil, fmt.Errorf("initial bins %q and %q overlap", bins[j].ID, b.ID)
			}
		}
	}
	s.bins = append(s.bins, bins...)
	return s, nil
}

// Width returns the drawer width derived from the unit partition.
func (s *Session) Width() float64 { return s.width }

// Depth returns the drawer depth derived from the unit partition.
func (s *Session) Depth() float64 { return s.depth }

// Units returns a copy of the unit partition.
func (s *Session) Units() []model.Unit {
	out := make([]model.Unit, len(s.units))
	copy(out, s.units)
	return out
}

// Bins returns a copy of the placed bin collection.
func (s *Session) Bins() []model.PlacedBin {
	out := make([]model.PlacedBin, len(s.bins))
	copy(out, s.bins)
	return out
}

// UnitAt returns the unit whose half-open rectangle contains the point, and
// whether one exists. It maps an arbitrary drawer coordinate (e.g. a
// translated pointer position) to the underlying grid cell.
func (s *Session) UnitAt(x, y float64) (model.Unit, bool) {
	for _, u := range s.units {
		if unitRect(u).containsPoint(x, y) {
			return u, true
		}
	}
	return model.Unit{}, false
}

// unitAtOffset returns the unit anchored exactly at the given offset.
func (s *Session) unitAtOffset(x, y float64) (model.Unit, bool) {
	for _, u := range s.units {
		if almostEqual(u.XOffset, x) && almostEqual(u.YOffset, y) {
			return u, true
		}
	}
	return model.Unit{}, false
}

// IsUnitAvailable reports whether the unit anchored at the given offset is
// free of placed bins. A unit that does not exist is not available.
func (s *Session) IsUnitAvailable(unitX, unitY float64) bool {
	u, ok := s.unitAtOffset(unitX, unitY)
	if !ok {
		return false
	}
	ur := unitRect(u)
	for _, b := range s.bins {
		if ur.intersects(binRect(b)) {
			return false
		}
	}
	return true
}

// WouldOverlap is the authoritative placement-legality check for a candidate
// rectangle: true when it falls outside the drawer bounds or intersects any
// placed bin. It consults the live bin collection on every call.
func (s *Session) WouldOverlap(x, y, width, depth float64) bool {
	r := rect{x: x, y: y, w: width, h: depth}
	if !r.within(s.width, s.depth) {
		return true
	}
	for _, b := range s.bins {
		if r.intersects(binRect(b)) {
			return true
		}
	}
	return false
}

// AdjustedDimensions recomputes a bin's real footprint from the actual units
// it would cover. The user selects bins in whole grid-module multiples, but
// boundary units can be narrower than the module; the bin must shrink to the
// covered units' true sizes so the generated geometry matches the available
// space. The result never exceeds the requested dimensions.
//
// When no unit's offset matches the origin exactly, the walk anchors on the
// first covered unit in partition order. When the candidate covers no units
// at all, the requested dimensions are returned unchanged; bounds legality is
// the caller's concern via WouldOverlap.
func (s *Session) AdjustedDimensions(originX, originY, requestedWidth, requestedDepth float64) (float64, float64) {
	intendedW := model.SnapIndex(requestedWidth)
	intendedD := model.SnapIndex(requestedDepth)

	nominal := rect{x: originX, y: originY, w: requestedWidth, h: requestedDepth}
	var covered []model.Unit
	for _, u := range s.units {
		if unitRect(u).intersects(nominal) {
			covered = append(covered, u)
		}
	}
	if len(covered) == 0 {
		return requestedWidth, requestedDepth
	}

	anchor := covered[0]
	for _, u := range covered {
		if almostEqual(u.XOffset, originX) && almostEqual(u.YOffset, originY) {
			anchor = u
			break
		}
	}

	adjustedWidth := walkRow(covered, anchor, intendedW)
	adjustedDepth := walkColumn(covered, anchor, intendedD)

	// A zero-length walk (requested size below half a module) falls back to
	// the requested dimension for that axis.
	if adjustedWidth == 0 {
		adjustedWidth = requestedWidth
	}
	if adjustedDepth == 0 {
		adjustedDepth = requestedDepth
	}

	// A bin can shrink to fit non-standard cells but never grow.
	if adjustedWidth > requestedWidth {
		adjustedWidth = requestedWidth
	}
	if adjustedDepth > requestedDepth {
		adjustedDepth = requestedDepth
	}
	return adjustedWidth, adjustedDepth
}

// walkRow accumulates widths rightward from the anchor along its row,
// following contiguous covered units for at most steps units.
func walkRow(covered []model.Unit, anchor model.Unit, steps int) float64 {
	var total float64
	cur := anchor
	for n := 0; n < steps; n++ {
		total += cur.Width
		next, ok := coveredAt(covered, cur.XOffset+cur.Width, cur.YOffset)
		if !ok {
			break
		}
		cur = next
	}
	return total
}

// walkColumn accumulates depths downward from the anchor along its column.
func walkColumn(covered []model.Unit, anchor model.Unit, steps int) float64 {
	var total float64
	cur := anchor
	for n := 0; n < steps; n++ {
		total += cur.Depth
		next, ok := coveredAt(covered, cur.XOffset, cur.YOffset+cur.Depth)
		if !ok {
			break
		}
		cur = next
	}
	return total
}

func coveredAt(covered []model.Unit, x, y float64) (model.Unit, bool) {
	for _, u := range covered {
		if almostEqual(u.XOffset, x) && almostEqual(u.YOffset, y) {
			return u, true
		}
	}
	return model.Unit{}, false
}

// Request describes a bin the caller wants to place. X and Y name the anchor
// unit's offset; Width and Depth are the nominal requested size in mm. ID is
// optional and generated when empty.
type Request struct {
	ID    string
	Label string
	X     float64
	Y     float64
	Width float64
	Depth float64
}

// Place validates the request and, on success, appends the bin (with
// adjusted dimensions and derived unit-index fields) to the collection and
// returns it. On any failed precondition it returns a *PlacementError and
// leaves the collection unchanged; repeated identical attempts produce
// identical rejections.
func (s *Session) Place(req Request) (model.PlacedBin, error) {
	anchor, ok := s.unitAtOffset(req.X, req.Y)
	if !ok {
		return model.PlacedBin{}, &PlacementError{Reason: ReasonNoUnit, X: req.X, Y: req.Y}
	}
	if !s.IsUnitAvailable(anchor.XOffset, anchor.YOffset) {
		return model.PlacedBin{}, &PlacementError{Reason: ReasonUnitOccupied, X: req.X, Y: req.Y}
	}

	width, depth := s.AdjustedDimensions(req.X, req.Y, req.Width, req.Depth)
	r := rect{x: req.X, y: req.Y, w: width, h: depth}
	if !r.within(s.width, s.depth) {
		return model.PlacedBin{}, &PlacementError{Reason: ReasonOutOfBounds, X: req.X, Y: req.Y}
	}
	for _, b := range s.bins {
		if r.intersects(binRect(b)) {
			return model.PlacedBin{}, &PlacementError{Reason: ReasonOverlap, X: req.X, Y: req.Y}
		}
	}

	bin := model.NewPlacedBin(req.Label, width, depth, req.X, req.Y)
	if req.ID != "" {
		bin.ID = req.ID
	}
	s.bins = append(s.bins, bin)
	return bin, nil
}

// Remove deletes the bin with the given ID. Removing an absent bin is a
// harmless no-op; the return value reports whether a bin was removed.
func (s *Session) Remove(id string) bool {
	for i, b := range s.bins {
		if b.ID == id {
			s.bins = append(s.bins[:i], s.bins[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the placed bin collection.
func (s *Session) Clear() {
	s.bins = s.bins[:0]
}

// CoveredUnits returns the units fully covered by any placed bin, which the
// presentation layer renders as filled.
func (s *Session) CoveredUnits() []model.Unit {
	var out []model.Unit
	for _, u := range s.units {
		ur := unitRect(u)
		for _, b := range s.bins {
			br := binRect(b)
			if br.x <= ur.x+coordEps && br.y <= ur.y+coordEps &&
				br.x+br.w >= ur.x+ur.w-coordEps && br.y+br.h >= ur.y+ur.h-coordEps {
				out = append(out, u)
				break
			}
		}
	}
	return out
}
