package questionbank

// The catalog is generated from one template so the Professional and
// Student banks cannot drift apart: only the three items that mention
// work vs. study carry per-category wording.

type item struct {
	text       map[Category]string // nil means shared wording
	shared     string
	answerType AnswerType
	options    []string
}

func shared(text string, at AnswerType, opts ...string) item {
	return item{shared: text, answerType: at, options: opts}
}

func perCategory(prof, stud string, at AnswerType, opts ...string) item {
	return item{
		text:       map[Category]string{CategoryProfessional: prof, CategoryStudent: stud},
		answerType: at,
		options:    opts,
	}
}

var ratingOptions = []string{"1", "2", "3", "4", "5"}

var catalogTemplate = []item{
	shared("What is your gender?", AnswerSingleChoice, "Male", "Female"),
	shared("How old are you?", AnswerFreeText),
	perCategory(
		"How would you rate your work-related stress on a scale of 1 to 5?\n1: my job easy peasy!\n2: my job was kinda fine\n3: one day fun, others stressed\n4: it's a big pressure for me\n5: it's killing me!",
		"How would you rate your academic pressure on a scale of 1 to 5?\n1: my education easy peasy!\n2: my education was kinda fine\n3: one day fun, others stressed\n4: it's a big pressure for me\n5: it's killing me!",
		AnswerSingleChoice, ratingOptions...),
	perCategory(
		"How satisfied are you with your job, from 1 to 5?\n1: i wanna quit.\n2: i kinda hate this job :(\n3: it's a love-hate relationship with it\n4: i kinda love this job\n5: i love my job till my bone",
		"How satisfied are you with your studies, from 1 to 5?\n1: i wanna drop out.\n2: i kinda hate this education :(\n3: it's a love-hate relationship with it\n4: i kinda love this education\n5: i love this education till my DNA",
		AnswerSingleChoice, ratingOptions...),
	shared("How many hours do you sleep each night?", AnswerSingleChoice,
		"Less than 5 hours", "5-6 hours", "7-8 hours", " More than 8 hours"),
	shared("How would you describe your eating habits?", AnswerSingleChoice,
		"Healthy", "Moderate", "Unhealthy"),
	shared("Have you ever had thoughts about self-harm or suicide?", AnswerSingleChoice,
		"Yes", "No"),
	perCategory(
		"On average, how many hours do you work each day?",
		"On average, how many hours do you study each day?",
		AnswerFreeText),
	shared("How would you rate your financial stress level on a scale of 1 to 5?\n1. Im Rich.\n2. I rarely struggle with it\n3. its all about up and down\n4. i mostly feel that financial stress\n5. im stressful cz im broke",
		AnswerSingleChoice, ratingOptions...),
	shared("Is there a family history of mental health issues?", AnswerSingleChoice,
		"Yes", "No"),
}

// Bank returns the ordered question bank for one category.
func Bank(cat Category) []Question {
	out := make([]Question, 0, len(catalogTemplate))
	for _, it := range catalogTemplate {
		text := it.shared
		if it.text != nil {
			text = it.text[cat]
		}
		q := Question{Category: cat, Text: text, AnswerType: it.answerType}
		if len(it.options) > 0 {
			q.Options = append(q.Options, it.options...)
		}
		out = append(out, q)
	}
	return out
}

// Catalog returns the full fixed catalog, Professional first, in the
// order questions are presented.
func Catalog() []Question {
	var out []Question
	for _, cat := range Categories() {
		out = append(out, Bank(cat)...)
	}
	return out
}
