package bank

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const frenchHeader = "ID question;Type;Niveau;Categorie;Question;Réponse A;Réponse B;Réponse C;Bonne réponse"

func frenchRow(id, cat, prompt, correct string) string {
	return strings.Join([]string{id, "QCM", "1", cat, prompt, "opt a", "opt b", "opt c", correct}, ";")
}

func TestLoadReader_FrenchHeaders(t *testing.T) {
	src := strings.Join([]string{
		frenchHeader,
		frenchRow("q1", "A", "first question", "B"),
		frenchRow("q2", "C", "second question", "a"), // lowercase label is accepted
	}, "\n")

	b, err := LoadReader(strings.NewReader(src), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}

	q := b.Questions()[0]
	if q.ID != "q1" || q.Category != CategoryA || q.Prompt != "first question" {
		t.Errorf("unexpected first question: %+v", q)
	}
	if q.ChoiceA != "opt a" || q.ChoiceB != "opt b" || q.ChoiceC != "opt c" {
		t.Errorf("unexpected choices: %+v", q)
	}
	if q.Correct != ChoiceB {
		t.Errorf("Correct = %q, want B", q.Correct)
	}
	if got := b.Questions()[1].Correct; got != ChoiceA {
		t.Errorf("lowercase label: Correct = %q, want A", got)
	}
}

func TestLoadReader_SkipsBadRows(t *testing.T) {
	src := strings.Join([]string{
		frenchHeader,
		frenchRow("q1", "A", "good", "A"),
		frenchRow("", "A", "missing id", "A"),
		frenchRow("q2", "", "missing category", "A"),
		frenchRow("q3", "C", "", "A"),
		frenchRow("q4", "C", "bad label", "D"),
		frenchRow("q1", "A", "duplicate id", "B"),
		"q5;QCM;1", // truncated row
		frenchRow("q6", "C", "also good", "C"),
	}, "\n")

	b, err := LoadReader(strings.NewReader(src), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (bad rows skipped)", b.Len())
	}
	if b.Skipped() != 6 {
		t.Errorf("Skipped = %d, want 6", b.Skipped())
	}
}

func TestLoadReader_MissingColumn(t *testing.T) {
	src := "ID question;Categorie;Question;Réponse A;Réponse B;Réponse C\nq1;A;p;a;b;c"
	_, err := LoadReader(strings.NewReader(src), DefaultOptions())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestLoadReader_NoUsableRows(t *testing.T) {
	src := strings.Join([]string{
		frenchHeader,
		frenchRow("q1", "A", "no label", ""),
		frenchRow("q2", "A", "bad label", "X"),
	}, "\n")
	_, err := LoadReader(strings.NewReader(src), DefaultOptions())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestLoadReader_CommaDelimiter(t *testing.T) {
	src := "id,category,question,choice a,choice b,choice c,answer\nq1,C,prompt,a,b,c,C"
	b, err := LoadReader(strings.NewReader(src), Options{Comma: ','})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if got := b.Questions()[0].Correct; got != ChoiceC {
		t.Errorf("Correct = %q, want C", got)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestByCategory(t *testing.T) {
	src := strings.Join([]string{
		frenchHeader,
		frenchRow("a1", "A", "p1", "A"),
		frenchRow("c1", "C", "p2", "B"),
		frenchRow("a2", "A", "p3", "C"),
	}, "\n")

	b, err := LoadReader(strings.NewReader(src), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(b.ByCategory(CategoryA)); got != 2 {
		t.Errorf("ByCategory(A) = %d questions, want 2", got)
	}
	if got := len(b.ByCategory(CategoryC)); got != 1 {
		t.Errorf("ByCategory(C) = %d questions, want 1", got)
	}
	if got := len(b.ByCategory("Z")); got != 0 {
		t.Errorf("ByCategory(Z) = %d questions, want 0", got)
	}

	cats := b.Categories()
	if len(cats) != 2 || cats[0] != CategoryA || cats[1] != CategoryC {
		t.Errorf("Categories = %v, want [A C]", cats)
	}
}

func TestChoiceText(t *testing.T) {
	q := Question{ChoiceA: "first", ChoiceB: "second", ChoiceC: "third"}
	tests := []struct {
		choice Choice
		want   string
	}{
		{ChoiceA, "first"},
		{ChoiceB, "second"},
		{ChoiceC, "third"},
		{Choice("D"), ""},
	}
	for _, tt := range tests {
		if got := q.ChoiceText(tt.choice); got != tt.want {
			t.Errorf("ChoiceText(%q) = %q, want %q", tt.choice, got, tt.want)
		}
	}
}
