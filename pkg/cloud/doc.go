// Package cloud places words on a canvas without overlap.
//
// Placement follows the classic word-cloud spiral: words are processed from
// largest to smallest, each starts near the middle of the canvas and walks
// an Archimedean spiral until its rotated bounding box collides with no
// previously placed word and fits inside the canvas. Words that never fit
// are dropped.
//
// # Sizes
//
// [SizeWords] maps word counts onto font sizes with a logarithmic scale, so
// a word that is ten times as frequent is not drawn ten times as large.
//
// # Rotation
//
// A [RotateFunc] chooses each word's angle. [RandomAngle] picks from a
// stepped range, [RightAngle] picks 0° or 90°.
//
// # Determinism
//
// All randomness comes from the injected *rand.Rand, so a fixed seed always
// yields the same layout.
package cloud
