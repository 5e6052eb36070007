package exam

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/tlevesque/amfprep/internal/bank"
)

// testBank builds a bank with n questions per category, ids like "A-0".
func testBank(t *testing.T, counts map[bank.Category]int) *bank.Bank {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("id;categorie;question;choix a;choix b;choix c;bonne reponse\n")
	for cat, n := range counts {
		for i := 0; i < n; i++ {
			fmt.Fprintf(&sb, "%s-%d;%s;prompt %s-%d;one;two;three;A\n", cat, i, cat, cat, i)
		}
	}

	b, err := bank.LoadReader(strings.NewReader(sb.String()), bank.DefaultOptions())
	if err != nil {
		t.Fatalf("build test bank: %v", err)
	}
	return b
}

func seededSampler(seed uint64) *Sampler {
	return NewSamplerWithRand(rand.New(rand.NewPCG(seed, seed)))
}

func TestDraw_ExactQuotaCounts(t *testing.T) {
	b := testBank(t, map[bank.Category]int{bank.CategoryA: 10, bank.CategoryC: 20})
	quotas := QuotaSet{
		bank.CategoryA: {Required: 4, Threshold: 80},
		bank.CategoryC: {Required: 7, Threshold: 80},
	}

	working, err := NewSampler().Draw(b, nil, quotas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(working) != 11 {
		t.Fatalf("working set size = %d, want 11", len(working))
	}

	seen := make(map[string]bool)
	perCat := make(map[bank.Category]int)
	for _, q := range working {
		if seen[q.ID] {
			t.Errorf("duplicate question id %s in working set", q.ID)
		}
		seen[q.ID] = true
		perCat[q.Category]++
	}
	if perCat[bank.CategoryA] != 4 || perCat[bank.CategoryC] != 7 {
		t.Errorf("per-category counts = %v, want A:4 C:7", perCat)
	}
}

func TestDraw_InsufficientSupply(t *testing.T) {
	b := testBank(t, map[bank.Category]int{bank.CategoryA: 3, bank.CategoryC: 10})

	tests := []struct {
		name   string
		quotas QuotaSet
		used   map[string]bool
		cat    bank.Category
		have   int
		need   int
	}{
		{
			name: "bank too small",
			quotas: QuotaSet{
				bank.CategoryA: {Required: 5, Threshold: 80},
				bank.CategoryC: {Required: 2, Threshold: 80},
			},
			cat: bank.CategoryA, have: 3, need: 5,
		},
		{
			name: "supply exhausted by ledger",
			quotas: QuotaSet{
				bank.CategoryA: {Required: 1, Threshold: 80},
				bank.CategoryC: {Required: 9, Threshold: 80},
			},
			used: map[string]bool{"C-0": true, "C-1": true},
			cat:  bank.CategoryC, have: 8, need: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSampler().Draw(b, tt.used, tt.quotas)
			var supplyErr *InsufficientSupplyError
			if !errors.As(err, &supplyErr) {
				t.Fatalf("err = %v, want InsufficientSupplyError", err)
			}
			if supplyErr.Category != tt.cat || supplyErr.Have != tt.have || supplyErr.Need != tt.need {
				t.Errorf("got %+v, want {%s %d %d}", supplyErr, tt.cat, tt.have, tt.need)
			}
		})
	}
}

func TestDraw_ExcludesUsedQuestions(t *testing.T) {
	b := testBank(t, map[bank.Category]int{bank.CategoryA: 6})
	quotas := QuotaSet{bank.CategoryA: {Required: 3, Threshold: 80}}
	used := map[string]bool{"A-0": true, "A-1": true, "A-2": true}

	working, err := NewSampler().Draw(b, used, quotas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range working {
		if used[q.ID] {
			t.Errorf("drew already-used question %s", q.ID)
		}
	}
}

func TestDraw_SeededSamplerIsReproducible(t *testing.T) {
	b := testBank(t, map[bank.Category]int{bank.CategoryA: 10, bank.CategoryC: 10})
	quotas := QuotaSet{
		bank.CategoryA: {Required: 5, Threshold: 80},
		bank.CategoryC: {Required: 5, Threshold: 80},
	}

	first, err := seededSampler(42).Draw(b, nil, quotas)
	if err != nil {
		t.Fatalf("first draw: %v", err)
	}
	second, err := seededSampler(42).Draw(b, nil, quotas)
	if err != nil {
		t.Fatalf("second draw: %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("position %d: %s != %s with identical seed", i, first[i].ID, second[i].ID)
		}
	}
}

func TestDraw_InvalidQuotas(t *testing.T) {
	b := testBank(t, map[bank.Category]int{bank.CategoryA: 5})

	tests := []struct {
		name   string
		quotas QuotaSet
	}{
		{"empty set", QuotaSet{}},
		{"zero required", QuotaSet{bank.CategoryA: {Required: 0, Threshold: 80}}},
		{"threshold over 100", QuotaSet{bank.CategoryA: {Required: 1, Threshold: 120}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSampler().Draw(b, nil, tt.quotas); err == nil {
				t.Error("expected error for invalid quotas")
			}
		})
	}
}
