package bank

// Category is a question category code from the bank file.
// The AMF bank uses "A" (regulatory environment) and "C" (financial
// instruments), but any non-empty code found in the file is kept.
type Category string

const (
	CategoryA Category = "A"
	CategoryC Category = "C"
)

// Choice labels one of the three offered answers.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
	ChoiceC Choice = "C"
)

// Choices lists the valid choice labels in presentation order.
var Choices = []Choice{ChoiceA, ChoiceB, ChoiceC}

// Valid reports whether c is one of the three offered labels.
func (c Choice) Valid() bool {
	return c == ChoiceA || c == ChoiceB || c == ChoiceC
}

// Question is one immutable entry of the question bank.
type Question struct {
	ID       string
	Category Category
	Prompt   string
	ChoiceA  string
	ChoiceB  string
	ChoiceC  string
	Correct  Choice
}

// ChoiceText returns the answer text behind a choice label.
func (q Question) ChoiceText(c Choice) string {
	switch c {
	case ChoiceA:
		return q.ChoiceA
	case ChoiceB:
		return q.ChoiceB
	case ChoiceC:
		return q.ChoiceC
	}
	return ""
}
