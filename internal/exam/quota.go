package exam

import (
	"fmt"
	"sort"

	"github.com/tlevesque/amfprep/internal/bank"
)

// Quota is the per-category draw size and pass threshold.
type Quota struct {
	Required  int     // questions drawn for the category
	Threshold float64 // pass threshold, percent of Required
}

// QuotaSet maps category codes to their quotas.
type QuotaSet map[bank.Category]Quota

// DefaultQuotas returns the AMF mock-exam configuration:
// 33 category-A and 87 category-C questions, 80% required in each.
func DefaultQuotas() QuotaSet {
	return QuotaSet{
		bank.CategoryA: {Required: 33, Threshold: 80},
		bank.CategoryC: {Required: 87, Threshold: 80},
	}
}

// Validate checks that every quota is usable.
func (qs QuotaSet) Validate() error {
	if len(qs) == 0 {
		return fmt.Errorf("quota set is empty")
	}
	for cat, q := range qs {
		if q.Required <= 0 {
			return fmt.Errorf("category %s: required count %d must be positive", cat, q.Required)
		}
		if q.Threshold <= 0 || q.Threshold > 100 {
			return fmt.Errorf("category %s: threshold %.1f must be in (0, 100]", cat, q.Threshold)
		}
	}
	return nil
}

// TotalRequired returns the working-set size implied by the quotas.
func (qs QuotaSet) TotalRequired() int {
	total := 0
	for _, q := range qs {
		total += q.Required
	}
	return total
}

// Categories returns the quota categories in sorted order, so iteration
// over a QuotaSet is deterministic.
func (qs QuotaSet) Categories() []bank.Category {
	cats := make([]bank.Category, 0, len(qs))
	for c := range qs {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
