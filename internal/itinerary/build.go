package itinerary

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDays is used whenever the requested trip length is unusable.
const DefaultDays = 2

// Build returns one line per day, each terminated by a newline:
//
//	Day 1: Paris - Sample activities (morning/afternoon/evening)
func Build(destination string, days int) string {
	var b strings.Builder
	for i := 1; i <= days; i++ {
		fmt.Fprintf(&b, "Day %d: %s - Sample activities (morning/afternoon/evening)\n", i, destination)
	}
	return b.String()
}

// CoerceDays turns raw user input into a positive trip length.
// Input that is not a finite number, is below one after truncation, or does
// not fit in an int32 yields DefaultDays.
func CoerceDays(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultDays
	}
	f = math.Trunc(f)
	switch {
	case f < 1:
		return DefaultDays
	case f > math.MaxInt32:
		return DefaultDays
	}
	return int(f)
}
