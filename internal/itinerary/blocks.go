package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

// maxLocationLen bounds what GuessLocation accepts as a place name.
const maxLocationLen = 60

var (
	dayHeader   = regexp.MustCompile(`\bDay\s*(\d+)\b`)
	dayLocation = regexp.MustCompile(`Day\s*\d+[:\-]?\s*([A-Za-z0-9 ,\-()]+)`)
)

// DayBlock is the text of a single day, header included.
type DayBlock struct {
	Number int
	Text   string
}

// SplitDays cuts text at every "Day N" header. Text before the first header
// is dropped. When there is no header at all the whole text becomes day 1.
func SplitDays(text string) []DayBlock {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	idx := dayHeader.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return []DayBlock{{Number: 1, Text: strings.TrimRight(text, "\n")}}
	}

	blocks := make([]DayBlock, 0, len(idx))
	for i, m := range idx {
		end := len(text)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			n = i + 1
		}
		blocks = append(blocks, DayBlock{
			Number: n,
			Text:   strings.TrimRight(text[m[0]:end], " \t\r\n"),
		})
	}
	return blocks
}

// GuessLocation returns the place named in a "Day N: <place>" header, or
// fallback when there is none or it reads like a sentence.
func GuessLocation(block, fallback string) string {
	m := dayLocation.FindStringSubmatch(block)
	if m == nil {
		return fallback
	}
	loc := strings.TrimSpace(m[1])
	if loc == "" || len(loc) >= maxLocationLen {
		return fallback
	}
	return loc
}
