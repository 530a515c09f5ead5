// Package sections counts overlapping section assignments.
//
// Each line pairs two inclusive section ranges:
//
//	2-4,6-8
//	2-8,3-7
//
// CountContained counts pairs where one range fully contains the other;
// CountOverlapping counts pairs that share at least one section.
package sections
