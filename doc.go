// Package colorwheel converts colors between HSV and RGB hex notation and
// computes the classic color harmonies (complementary, monochromatic,
// analogous, split-complementary, triadic and tetradic) of a base color.
//
// All functions are pure and safe for concurrent use. Hues are degrees in
// [0,360); saturation and value are percentages in [0,100].
package colorwheel
