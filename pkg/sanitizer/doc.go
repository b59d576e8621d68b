// Package sanitizer normalizes raw query input before it reaches the
// dashboard engine.
//
// All functions are idempotent and never fail: invalid or blank input is
// dropped rather than reported. Category values are case sensitive, so
// normalization only trims surrounding whitespace.
package sanitizer
