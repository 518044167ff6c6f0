// Package wizard asks the project questions interactively with huh forms
// and folds the answers into config.Options.
package wizard

import (
	"errors"

	"github.com/simonhull/firebird-suite/raph/internal/config"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string                     // Key the answer is saved under
	Type        QuestionType               // Select or Input
	Title       string                     // Question title
	Description string                     // Additional description
	Options     []Option                   // Options for select questions
	Default     string                     // Default value
	Required    bool                       // Whether the field is required
	Validate    func(string) error         // Extra input validation
	Condition   func(*config.Options) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

var (
	// ErrCancelled is returned when the user aborts the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)

const (
	yes = "yes"
	no  = "no"
)
