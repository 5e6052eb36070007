package exam

import (
	"github.com/tlevesque/amfprep/internal/bank"
)

// Outcome is the graded result of a single working-set position.
type Outcome struct {
	Question bank.Question
	Chosen   bank.Choice
	Answered bool
	Correct  bool
}

// CategoryScore is the per-category portion of a report. Percent is
// computed against the configured Required count, not the number of
// questions actually answered, so an incomplete attempt is scored
// against the full target.
type CategoryScore struct {
	Category  bank.Category
	Correct   int
	Answered  int
	Required  int
	Percent   float64
	Threshold float64
	Passed    bool
}

// Report is the full scoring result of one exam attempt.
type Report struct {
	SessionID  string
	User       string
	Categories []CategoryScore
	Total      int
	Required   int
	Percent    float64
	Passed     bool
	Outcomes   []Outcome
}

// OutcomesFor returns the outcomes belonging to one category, in
// presentation order.
func (r *Report) OutcomesFor(c bank.Category) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Question.Category == c {
			out = append(out, o)
		}
	}
	return out
}

// Score grades a working set against the recorded answers. Unanswered
// positions count as incorrect. The function is pure: identical inputs
// always produce an identical report.
//
// The verdict is Pass only when every quota category independently
// reaches its threshold; a strong score in one category cannot make up
// for a weak one in another.
func Score(working []bank.Question, answers map[int]bank.Choice, quotas QuotaSet) *Report {
	correct := make(map[bank.Category]int)
	answered := make(map[bank.Category]int)

	report := &Report{
		Required: quotas.TotalRequired(),
		Outcomes: make([]Outcome, 0, len(working)),
	}

	for pos, q := range working {
		choice, ok := answers[pos]
		outcome := Outcome{
			Question: q,
			Chosen:   choice,
			Answered: ok,
			Correct:  ok && choice == q.Correct,
		}
		if ok {
			answered[q.Category]++
		}
		if outcome.Correct {
			correct[q.Category]++
			report.Total++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.Passed = true
	for _, cat := range quotas.Categories() {
		quota := quotas[cat]
		cs := CategoryScore{
			Category:  cat,
			Correct:   correct[cat],
			Answered:  answered[cat],
			Required:  quota.Required,
			Threshold: quota.Threshold,
		}
		cs.Percent = float64(cs.Correct) / float64(quota.Required) * 100
		cs.Passed = cs.Percent >= quota.Threshold
		if !cs.Passed {
			report.Passed = false
		}
		report.Categories = append(report.Categories, cs)
	}

	if report.Required > 0 {
		report.Percent = float64(report.Total) / float64(report.Required) * 100
	}
	return report
}
