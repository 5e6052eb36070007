package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates the bank file does not exist.
	ErrNotFound = errors.New("bank file not found")

	// ErrMalformed indicates the bank file could not be parsed into any
	// usable question: required columns are missing or every row was bad.
	ErrMalformed = errors.New("malformed bank file")
)

// Options configures how the bank file is read.
type Options struct {
	// Comma is the field delimiter. French spreadsheet exports use ';'.
	Comma rune
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Comma: ';'}
}

// Bank is the loaded, validated question bank.
type Bank struct {
	questions  []Question
	byCategory map[Category][]Question
	skipped    int
}

// logical column names, matched against normalized headers.
const (
	colID      = "id"
	colCat     = "category"
	colPrompt  = "prompt"
	colChoiceA = "choice a"
	colChoiceB = "choice b"
	colChoiceC = "choice c"
	colCorrect = "correct"
)

// headerAliases maps accepted (normalized) header spellings to logical
// columns. The canonical spellings are the French ones from the AMF
// spreadsheet; English equivalents are accepted too.
var headerAliases = map[string]string{
	"id question":      colID,
	"id":               colID,
	"question id":      colID,
	"categorie":        colCat,
	"category":         colCat,
	"question":         colPrompt,
	"intitule":         colPrompt,
	"reponse a":        colChoiceA,
	"choix a":          colChoiceA,
	"choice a":         colChoiceA,
	"reponse b":        colChoiceB,
	"choix b":          colChoiceB,
	"choice b":         colChoiceB,
	"reponse c":        colChoiceC,
	"choix c":          colChoiceC,
	"choice c":         colChoiceC,
	"bonne reponse":    colCorrect,
	"reponse correcte": colCorrect,
	"correct":          colCorrect,
	"answer":           colCorrect,
}

var requiredColumns = []string{colID, colCat, colPrompt, colChoiceA, colChoiceB, colChoiceC, colCorrect}

// accentFold strips the accented characters that appear in the French headers.
var accentFold = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"î", "i", "ï", "i",
	"ô", "o",
	"ù", "u", "û", "u",
	"ç", "c",
)

// Load reads and validates the question bank at path.
func Load(path string, opts Options) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open bank file: %w", err)
	}
	defer f.Close()
	return LoadReader(f, opts)
}

// LoadReader reads and validates a question bank from r.
// Rows that cannot be parsed into a valid Question are skipped; the load
// fails with ErrMalformed only when required columns cannot be located
// or when skipping leaves zero usable rows.
func LoadReader(r io.Reader, opts Options) (*Bank, error) {
	if opts.Comma == 0 {
		opts.Comma = DefaultOptions().Comma
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.FieldsPerRecord = -1 // rows are validated per field, not per width
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %v", ErrMalformed, err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	b := &Bank{byCategory: make(map[Category][]Question)}
	seen := make(map[string]bool)

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed CSV row (bad quoting etc.): skip, not fatal.
			b.skipped++
			continue
		}

		q, ok := parseRow(row, cols)
		if !ok || seen[q.ID] {
			b.skipped++
			continue
		}
		seen[q.ID] = true
		b.questions = append(b.questions, q)
		b.byCategory[q.Category] = append(b.byCategory[q.Category], q)
	}

	if len(b.questions) == 0 {
		return nil, fmt.Errorf("%w: no usable rows", ErrMalformed)
	}
	return b, nil
}

// locateColumns maps logical columns to field indexes using the header row.
func locateColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range header {
		if logical, ok := headerAliases[normalizeHeader(h)]; ok {
			if _, dup := cols[logical]; !dup {
				cols[logical] = i
			}
		}
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformed, required)
		}
	}
	return cols, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = accentFold.Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

// parseRow builds a Question from one CSV row. ok is false when any
// required field is empty or the correct-choice label is not A/B/C.
func parseRow(row []string, cols map[string]int) (Question, bool) {
	field := func(logical string) string {
		i := cols[logical]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	q := Question{
		ID:       field(colID),
		Category: Category(strings.ToUpper(field(colCat))),
		Prompt:   field(colPrompt),
		ChoiceA:  field(colChoiceA),
		ChoiceB:  field(colChoiceB),
		ChoiceC:  field(colChoiceC),
		Correct:  Choice(strings.ToUpper(field(colCorrect))),
	}

	if q.ID == "" || q.Category == "" || q.Prompt == "" {
		return Question{}, false
	}
	if q.ChoiceA == "" || q.ChoiceB == "" || q.ChoiceC == "" {
		return Question{}, false
	}
	if !q.Correct.Valid() {
		return Question{}, false
	}
	return q, true
}

// Questions returns all loaded questions in file order.
func (b *Bank) Questions() []Question {
	return b.questions
}

// ByCategory returns the questions belonging to a category, in file order.
func (b *Bank) ByCategory(c Category) []Question {
	return b.byCategory[c]
}

// Categories returns the distinct category codes present in the bank, sorted.
func (b *Bank) Categories() []Category {
	cats := make([]Category, 0, len(b.byCategory))
	for c := range b.byCategory {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Len returns the number of usable questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Skipped returns the number of rows dropped during loading.
func (b *Bank) Skipped() int {
	return b.skipped
}
