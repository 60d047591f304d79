package questionbank

import "fmt"

// Validation failure kinds for Collect.
const (
	KindIncompleteAnswers = "incomplete_answers"
	KindInvalidOption     = "invalid_option"
)

// ValidationError reports a local answer-validation failure. These are
// resolved before any network or store interaction happens.
type ValidationError struct {
	Kind     string
	Question string
	Value    string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindIncompleteAnswers:
		return fmt.Sprintf("missing answer for %q", e.Question)
	case KindInvalidOption:
		return fmt.Sprintf("answer %q is not an option for %q", e.Value, e.Question)
	}
	return "invalid answers"
}

// IsValidation reports whether err is an answer-validation failure.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Collect validates answers against the category's bank and builds the
// submission payload. Every bank question must be answered; single
// choice answers must be one of the declared options; free text answers
// must be non-empty. Output order matches the bank.
func Collect(cat Category, answers map[string]string) (Submission, error) {
	bank := Bank(cat)
	sub := Submission{Category: cat, Answers: make([]Answer, 0, len(bank))}
	for _, q := range bank {
		v, ok := answers[q.Text]
		if !ok || v == "" {
			return Submission{}, &ValidationError{Kind: KindIncompleteAnswers, Question: q.Text}
		}
		if q.AnswerType == AnswerSingleChoice && !hasOption(q.Options, v) {
			return Submission{}, &ValidationError{Kind: KindInvalidOption, Question: q.Text, Value: v}
		}
		sub.Answers = append(sub.Answers, Answer{Question: q.Text, Value: v})
	}
	return sub, nil
}

func hasOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
