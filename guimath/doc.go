// Package guimath holds the small amount of 2D math the glyph pipeline needs:
// a float32 vector type and the rounding helpers that keep point-space
// metrics aligned to the GUI grid and to physical pixels.
//
// Conventions: X+ is right, Y+ is down, (0, 0) is the top-left corner.
// Distances are in points unless a name says pixels.
package guimath
