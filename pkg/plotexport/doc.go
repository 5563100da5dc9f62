// Package plotexport serializes a computed pathway-map layout to JSON: the
// interchange format an external plotting back-end consumes to draw the
// actual strokes. This module computes geometry (layout.Classic/Default);
// stroke rendering itself is delegated externally, the way spec.md's plot
// commands hand off to a plotting library rather than drawing pixels
// themselves.
package plotexport
