package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is the human-assigned sentiment label of a post.
// The enumeration is closed: exactly four values are recognized.
type Category int

const (
	CategoryAnti    Category = -1
	CategoryNeutral Category = 0
	CategoryPro     Category = 1
	CategoryNews    Category = 2
)

// Categories returns all recognized categories in ascending label order.
// Iteration over this slice is the canonical ordering for reports and charts.
func Categories() []Category {
	return []Category{CategoryAnti, CategoryNeutral, CategoryPro, CategoryNews}
}

// ParseCategory parses the numeric label used in the source dataset.
// Anything outside {-1, 0, 1, 2} is rejected.
func ParseCategory(raw string) (Category, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid category value %q: %w", raw, err)
	}

	c := Category(v)
	switch c {
	case CategoryAnti, CategoryNeutral, CategoryPro, CategoryNews:
		return c, nil
	default:
		return 0, fmt.Errorf("category value %d outside recognized set", v)
	}
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryAnti:
		return "Anti"
	case CategoryNeutral:
		return "Neutral"
	case CategoryPro:
		return "Pro"
	case CategoryNews:
		return "News"
	default:
		return "Unknown"
	}
}

// BinaryLabel collapses the four categories into Positive/Negative/Neutral.
func (c Category) BinaryLabel() string {
	switch {
	case c > 0:
		return "Positive"
	case c < 0:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Record represents one labeled social-media post.
type Record struct {
	TweetID    string   `json:"tweetid"`
	Text       string   `json:"message"`
	Category   Category `json:"sentiment"`
	TextLength int      `json:"text_length"`
	WordCount  int      `json:"word_count"`
}

// HasText reports whether the record still carries analyzable text
// after load-time cleaning. Records without text count toward category
// distribution but are skipped by theme and pattern statistics.
func (r Record) HasText() bool {
	return r.Text != ""
}

// Corpus is the full ordered collection of records for one analysis run.
// It is immutable after load.
type Corpus struct {
	Records []Record `json:"records"`
	Source  string   `json:"source"`
	Dropped int      `json:"dropped"`
	Deduped int      `json:"deduped"`
}

// Len returns the number of records in the corpus.
func (c *Corpus) Len() int {
	return len(c.Records)
}

// ByCategory returns the records carrying the given label, in corpus order.
func (c *Corpus) ByCategory(cat Category) []Record {
	var out []Record
	for _, r := range c.Records {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}
