package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonhull/firebird-suite/raph/internal/config"
)

// runForm is replaced in tests.
var runForm = func(f *huh.Form) error { return f.Run() }

// Run asks each question in order and returns seed updated with the
// answers. Every question runs as its own huh.Form, so a condition sees
// the answers given before it.
func Run(questions []Question, seed config.Options) (config.Options, error) {
	if len(questions) == 0 {
		return seed, ErrNoQuestions
	}

	answers := seed
	theme := newTheme()

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(&answers) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, &answers)).
			WithTheme(theme).
			WithAccessible(false)

		if err := runForm(form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return seed, ErrCancelled
			}
			return seed, fmt.Errorf("wizard error: %w", err)
		}
	}

	return answers, nil
}

func buildQuestionGroup(q *Question, answers *config.Options) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, answers)
	case QuestionTypeInput:
		field = buildInputField(q, answers)
	}

	return huh.NewGroup(field)
}

func buildSelectField(q *Question, answers *config.Options) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	sel.Validate(func(val string) error {
		saveAnswer(q.ID, val, answers)
		return nil
	})

	return sel
}

func buildInputField(q *Question, answers *config.Options) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	return inp.Validate(func(val string) error {
		v, err := checkInput(q, val)
		if err != nil {
			return err
		}
		saveAnswer(q.ID, v, answers)
		return nil
	})
}

// checkInput trims val, falls back to the default and applies the
// question's own validation.
func checkInput(q *Question, val string) (string, error) {
	v := strings.TrimSpace(val)
	if v == "" {
		v = q.Default
	}
	if q.Required && v == "" {
		return "", errors.New("this field is required")
	}
	if q.Validate != nil {
		if err := q.Validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

// saveAnswer stores an answer in opts. Unknown IDs are ignored.
func saveAnswer(id, value string, opts *config.Options) {
	switch id {
	case IDProjectName:
		opts.ProjectName = value
	case IDLanguage:
		opts.Language = value
	case IDTailwind:
		opts.Tailwind = value == yes
	case IDTRPC:
		opts.TRPC = value == yes
	case IDAuth:
		opts.Auth = value
	case IDORM:
		opts.ORM = value
	case IDDatabase:
		opts.Database = value
	case IDLinter:
		opts.Linter = value
	case IDGit:
		opts.Git = value == yes
	case IDPackageManager:
		opts.PackageManager = value
	}
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
