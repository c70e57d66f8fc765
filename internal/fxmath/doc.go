// Package fxmath provides the integer and fixed-point arithmetic used by
// the rasterizers and the color pipeline.
//
// Trigonometry is table driven: a 91-entry quarter-wave cosine table scaled
// by 256 covers every integer degree. Percentages are carried in basis
// points (hundredths of a percent) so rounding stays exact in integers.
// Nothing in the hot path uses floating point.
package fxmath
