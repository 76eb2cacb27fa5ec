// Package domain contains core business entities and rules.
package domain

import "fmt"

// AllCategories is the pseudo-category that selects every quote.
const AllCategories = "all"

// NoQuotesMessage is shown when a filter selects nothing.
const NoQuotesMessage = "No quotes available."

// Quote is a short text tagged with one category.
// Two quotes are the same quote when both fields match exactly.
type Quote struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Equal reports structural equality. Comparison is case-sensitive.
func (q Quote) Equal(other Quote) bool {
	return q.Text == other.Text && q.Category == other.Category
}

// Format renders the quote as `"<text>" — <category>`.
func (q Quote) Format() string {
	return fmt.Sprintf("\"%s\" — %s", q.Text, q.Category)
}

// QuoteSet is an ordered collection of quotes. Duplicates are allowed.
type QuoteSet []Quote

// Clone returns an independent copy. A nil set clones to an empty set.
func (s QuoteSet) Clone() QuoteSet {
	out := make(QuoteSet, len(s))
	copy(out, s)

	return out
}

// Contains reports whether a structurally equal quote is in the set.
func (s QuoteSet) Contains(q Quote) bool {
	for _, existing := range s {
		if existing.Equal(q) {
			return true
		}
	}

	return false
}

// Equal reports whether both sets hold the same quotes in the same order.
func (s QuoteSet) Equal(other QuoteSet) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}

	return true
}

// Missing returns the quotes of s that have no structural match in other,
// preserving the order of s.
func (s QuoteSet) Missing(other QuoteSet) QuoteSet {
	out := QuoteSet{}

	for _, q := range s {
		if !other.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}

// DefaultQuotes returns the seed collection used when nothing is stored yet.
func DefaultQuotes() QuoteSet {
	return QuoteSet{
		{Text: "The best way to get started is to quit talking and begin doing.", Category: "Motivation"},
		{Text: "Success is not in what you have, but who you are.", Category: "Inspiration"},
		{Text: "In the middle of difficulty lies opportunity.", Category: "Wisdom"},
	}
}

// Categories returns the distinct categories of the set in first-seen order,
// with AllCategories prepended.
func Categories(set QuoteSet) []string {
	seen := make(map[string]struct{}, len(set))
	out := []string{AllCategories}

	for _, q := range set {
		if _, ok := seen[q.Category]; ok {
			continue
		}

		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}

	return out
}

// HasCategory reports whether selected is AllCategories or present in the set.
func HasCategory(set QuoteSet, selected string) bool {
	if selected == AllCategories {
		return true
	}

	for _, q := range set {
		if q.Category == selected {
			return true
		}
	}

	return false
}

// Filter returns the quotes matching selected. AllCategories returns a copy
// of the whole set. The result is never nil.
func Filter(set QuoteSet, selected string) QuoteSet {
	if selected == AllCategories {
		return set.Clone()
	}

	out := QuoteSet{}

	for _, q := range set {
		if q.Category == selected {
			out = append(out, q)
		}
	}

	return out
}
