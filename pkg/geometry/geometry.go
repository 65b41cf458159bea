// Package geometry provides the pure coordinate math shared by the layout
// editor: converting pointer-device coordinates into document-space
// coordinates under a zoom scale, and applying drag deltas.
//
// Callers guarantee a strictly positive scale and finite inputs; the package
// does not defend against violations of that contract.
package geometry

// Point is a position in either device space or document space, depending on
// context. Document-space coordinates are stable across zoom levels.
type Point struct {
	X float64
	Y float64
}

// ToDocumentSpace converts a pointer-device position into document-space
// coordinates given the canvas origin (in device space) and the current zoom
// scale. A scale of 1.0 means no zoom.
func ToDocumentSpace(pointerX, pointerY float64, origin Point, scale float64) Point {
	return Point{
		X: (pointerX - origin.X) / scale,
		Y: (pointerY - origin.Y) / scale,
	}
}

// ApplyDelta translates a document-space position by a device-space drag
// delta, dividing the delta by the zoom scale so the object tracks the
// pointer regardless of zoom.
func ApplyDelta(x, y, dx, dy, scale float64) (float64, float64) {
	return x + dx/scale, y + dy/scale
}
