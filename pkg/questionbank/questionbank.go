// Package questionbank holds the fixed diagnosis questionnaire: the
// per-category question catalog and the answer-collection rules that
// turn a completed questionnaire into a submission payload. Both the
// server and the client SDK compile against the same bank, so the two
// sides can never disagree about wording or option lists.
package questionbank

import "fmt"

type Category string

const (
	CategoryProfessional Category = "Professional"
	CategoryStudent      Category = "Student"
)

// Categories lists every supported category in catalog order.
func Categories() []Category {
	return []Category{CategoryProfessional, CategoryStudent}
}

// ParseCategory maps a wire/route value onto a known category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryProfessional, CategoryStudent:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type AnswerType string

const (
	// AnswerSingleChoice requires the answer to be one of Options.
	AnswerSingleChoice AnswerType = "radio"
	// AnswerFreeText accepts any non-empty string.
	AnswerFreeText AnswerType = "text"
)

// Question is one questionnaire item. Identity is (Category, Text);
// the numeric ID only exists as a storage convenience.
type Question struct {
	ID         int64      `json:"id,omitempty"`
	Category   Category   `json:"category"`
	Text       string     `json:"text"`
	AnswerType AnswerType `json:"answer_type"`
	Options    []string   `json:"options,omitempty"`
}

// Answer pairs a question (by its text identity) with the raw value
// the respondent gave.
type Answer struct {
	Question string `json:"question"`
	Value    string `json:"value"`
}

// Submission is the finalized set of answers for one category, ordered
// exactly as the category's bank.
type Submission struct {
	Category Category `json:"category"`
	Answers  []Answer `json:"answers"`
}
