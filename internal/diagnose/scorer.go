// Package diagnose turns a validated answer submission into a
// depression risk prediction and records the outcome.
package diagnose

import (
	"strconv"
	"strings"

	"github.com/7innovations/fixu/pkg/questionbank"
)

// strategy maps one raw answer onto a risk contribution in [0,1].
type strategy interface {
	risk(value string) float64
}

// slot ties the strategy for one bank position to its weight. Both
// categories share slot semantics; only wording differs.
type slot struct {
	weight   float64
	strategy strategy
}

type Scorer struct {
	slots []slot
}

// NewScorer installs the per-question strategies in bank order:
// gender, age, stress rating, satisfaction rating, sleep bucket,
// eating habits, self-harm, daily hours, financial stress, family
// history.
func NewScorer() *Scorer {
	return &Scorer{slots: []slot{
		{0, neutralStrategy{}},
		{0, neutralStrategy{}},
		{2.0, ratingStrategy{}},
		{1.5, ratingStrategy{invert: true}},
		{1.0, choiceStrategy{weights: map[string]float64{
			"Less than 5 hours":  1.0,
			"5-6 hours":          0.6,
			"7-8 hours":          0.0,
			" More than 8 hours": 0.3,
		}}},
		{0.5, choiceStrategy{weights: map[string]float64{
			"Healthy":   0.0,
			"Moderate":  0.4,
			"Unhealthy": 1.0,
		}}},
		{3.0, choiceStrategy{weights: map[string]float64{"Yes": 1.0, "No": 0.0}}},
		{1.0, hoursStrategy{}},
		{1.5, ratingStrategy{}},
		{1.0, choiceStrategy{weights: map[string]float64{"Yes": 1.0, "No": 0.0}}},
	}}
}

// Probability scores a submission whose answers are ordered like the
// bank. Result is in [0,1].
func (s *Scorer) Probability(sub questionbank.Submission) float64 {
	var total, max float64
	for i, a := range sub.Answers {
		if i >= len(s.slots) {
			break
		}
		sl := s.slots[i]
		if sl.weight == 0 {
			continue
		}
		total += sl.weight * sl.strategy.risk(a.Value)
		max += sl.weight
	}
	if max == 0 {
		return 0
	}
	return total / max
}

type neutralStrategy struct{}

func (neutralStrategy) risk(string) float64 { return 0 }

// ratingStrategy scales a 1-5 rating onto [0,1]. Inverted ratings
// (satisfaction) count low values as risky.
type ratingStrategy struct {
	invert bool
}

func (r ratingStrategy) risk(value string) float64 {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > 5 {
		return 0.5
	}
	v := float64(n-1) / 4
	if r.invert {
		v = 1 - v
	}
	return v
}

type choiceStrategy struct {
	weights map[string]float64
}

func (c choiceStrategy) risk(value string) float64 {
	if w, ok := c.weights[value]; ok {
		return w
	}
	return 0.5
}

// hoursStrategy reads the free-text daily work/study hours. Anything
// up to eight hours is unremarkable; the risk climbs linearly to 1.0
// at sixteen hours a day.
type hoursStrategy struct{}

func (hoursStrategy) risk(value string) float64 {
	h, ok := parseFloatLoose(value)
	if !ok {
		return 0.5
	}
	if h <= 8 {
		return 0
	}
	if h >= 16 {
		return 1
	}
	return (h - 8) / 8
}

func parseFloatLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	for _, f := range strings.Fields(s) {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
