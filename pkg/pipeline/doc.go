// Package pipeline composes the [rule.Rule] set into the fixed cleaning
// sequence: image links, date-to-title preamble, trailing attribution, then
// promotional phrases.
//
// The order is part of the contract. The preamble and attribution rules
// depend on literal anchors which no earlier stage removes.
package pipeline
