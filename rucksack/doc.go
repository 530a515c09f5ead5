// Package rucksack scores the item types rucksacks have in common.
//
// Each line lists a rucksack's items as ASCII letters. Item priorities are
// a..z = 1..26 and A..Z = 27..52. Two questions are answered:
//
//   - SumCompartments: each rucksack is split into two equal halves; the one
//     item type found in both halves is scored.
//   - SumBadges: rucksacks are taken three at a time; the one item type all
//     three carry is scored.
//
// Item sets are 52-bit masks (bit p-1 for priority p), so intersecting any
// number of rucksacks is a chain of bitwise ANDs.
package rucksack
