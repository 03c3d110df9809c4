package manualgen

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading represents one heading line in a Markdown document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

var headingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

// ExtractHeadings scans Markdown and returns the ordered heading outline
// (H1-H6). IDs are slugs of the heading text; duplicates within one document
// get numeric suffixes. Lines inside fenced code blocks are ignored so that
// shell comments never count as headings.
func ExtractHeadings(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	cleaned := removeFencedBlocks(markdown)

	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	idCounts := make(map[string]int)

	for _, match := range matches {
		level := len(match[1])
		text := strings.TrimSpace(match[2])

		id := Slugify(text)
		if count, exists := idCounts[id]; exists {
			idCounts[id]++
			id = id + "-" + strconv.Itoa(count)
		} else {
			idCounts[id] = 1
		}

		headings = append(headings, Heading{Level: level, Text: text, ID: id})
	}

	return headings
}

// removeFencedBlocks removes fenced code blocks from markdown.
func removeFencedBlocks(s string) string {
	fencedBlockRe := regexp.MustCompile("(?s)```.*?```")
	return fencedBlockRe.ReplaceAllString(s, "")
}

// Slugify derives a URL-safe identifier from heading text. Every rune that
// is not a letter, digit, space, or hyphen is dropped, runs of spaces and
// hyphens collapse into a single hyphen, and the result is lowercased.
// Slugifying an already-slugified string returns it unchanged.
func Slugify(text string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
