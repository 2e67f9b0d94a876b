package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDays_Template(t *testing.T) {
	blocks := SplitDays(Build("Rome", 3))

	require.Len(t, blocks, 3)
	for i, b := range blocks {
		assert.Equal(t, i+1, b.Number)
		assert.NotContains(t, b.Text, "\n")
	}
	assert.Equal(t, "Day 2: Rome - Sample activities (morning/afternoon/evening)", blocks[1].Text)
}

func TestSplitDays_MultiLineBlocks(t *testing.T) {
	text := "Here is your plan.\n\nDay 1: Kyoto\n- Morning: temples\n- Evening: Gion\n\nDay 2: Nara\n- Morning: deer park\n"

	blocks := SplitDays(text)

	require.Len(t, blocks, 2)
	assert.Equal(t, DayBlock{Number: 1, Text: "Day 1: Kyoto\n- Morning: temples\n- Evening: Gion"}, blocks[0])
	assert.Equal(t, DayBlock{Number: 2, Text: "Day 2: Nara\n- Morning: deer park"}, blocks[1])
}

func TestSplitDays_NoHeader(t *testing.T) {
	blocks := SplitDays(`{"status":"ok"}`)

	require.Len(t, blocks, 1)
	assert.Equal(t, DayBlock{Number: 1, Text: `{"status":"ok"}`}, blocks[0])
}

func TestSplitDays_Empty(t *testing.T) {
	assert.Nil(t, SplitDays(""))
	assert.Nil(t, SplitDays(" \n"))
}

func TestSplitDays_DropsPreamble(t *testing.T) {
	blocks := SplitDays("Enjoy 5 nights in Norway.\nDay 1: Oslo\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, "Day 1: Oslo", blocks[0].Text)
}

func TestGuessLocation(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		fallback string
		want     string
	}{
		{"header place", "Day 1: Kyoto\n- Morning: temples", "Japan", "Kyoto"},
		{"dash separator", "Day 3- Lisbon, Alfama", "Portugal", "Lisbon, Alfama"},
		{"stops at punctuation", "Day 1: Paris - Sample activities (morning/afternoon/evening)", "France", "Paris - Sample activities (morning"},
		{"too long", "Day 1: " + longPlace(), "Peru", "Peru"},
		{"no header", "Free day at the beach", "Bali", "Bali"},
		{"empty place", "Day 2: ???", "Chile", "Chile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessLocation(tt.block, tt.fallback))
		})
	}
}

func longPlace() string {
	b := make([]byte, maxLocationLen)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
