package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jimschubert/answer/validate"
)

// promptKind identifies what the collected name is for.
type promptKind int

const (
	promptNone promptKind = iota
	promptNewFile
	promptNewFolder
	promptRename
)

// prompt is the embedded single-line input modal used for create and rename.
// Unlike a standalone answer prompt it lives inside the main program, so the
// browse view keeps rendering behind it.
type prompt struct {
	kind     promptKind
	input    textinput.Model
	validate validate.Func
	err      error

	// target is the path being renamed, empty for creates
	target string
}

// nameValidation rejects empty names and path separators; the engine guards
// against collisions itself, the prompt only catches what cannot ever work.
func nameValidation() validate.Func {
	return validate.NewValidation().
		MinLength(1, "name must not be empty").
		And(func(input string) error {
			if strings.ContainsAny(input, "/\x00") {
				return errors.New("name must not contain path separators")
			}
			if input == "." || input == ".." {
				return errors.New("invalid name")
			}
			return nil
		}).
		Build()
}

func newPrompt(kind promptKind, promptText, initial, target string) *prompt {
	input := textinput.New()
	input.Prompt = promptText + " "
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()

	return &prompt{
		kind:     kind,
		input:    input,
		validate: nameValidation(),
		target:   target,
	}
}

func (p *prompt) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.err = p.validate(p.input.Value())
	return cmd
}

func (p *prompt) value() string {
	return strings.TrimSpace(p.input.Value())
}

func (p *prompt) valid() bool {
	return p.validate(p.value()) == nil
}

func (p *prompt) view() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	if p.err != nil && p.input.Value() != "" {
		b.WriteString("\n")
		b.WriteString("✘ " + p.err.Error())
	}
	return b.String()
}
