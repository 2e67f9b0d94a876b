// Package itinerary builds the deterministic day-by-day template used when no
// backend produces a plan, and splits generated plans back into day blocks.
package itinerary
