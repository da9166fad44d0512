package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

func newPassphraseInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.Width = 40
	return in
}

// createKeyModel is the first-run screen: the user picks a master key and
// confirms it before the vault container is created.
type createKeyModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCreateKeyModel() createKeyModel {
	master := newPassphraseInput("Master key")
	master.Focus()
	confirm := newPassphraseInput("Confirm master key")

	return createKeyModel{inputs: []textinput.Model{master, confirm}}
}

func (m createKeyModel) View() string {
	var b strings.Builder
	b.WriteString("Please create a master key to encrypt your data.\n\n")
	b.WriteString("Master key:  " + m.inputs[0].View() + "\n")
	b.WriteString("Confirm:     " + m.inputs[1].View() + "\n")
	if m.submitting {
		b.WriteString("\nDeriving key...")
	}
	return renderPage("CREATE MASTER KEY", strings.TrimRight(b.String(), "\n"), "enter: create │ tab: next field")
}

// enterKeyModel is the unlock screen shown when a container exists.
type enterKeyModel struct {
	input      textinput.Model
	submitting bool
}

func newEnterKeyModel() enterKeyModel {
	in := newPassphraseInput("Master key")
	in.Focus()
	return enterKeyModel{input: in}
}

func (m enterKeyModel) View() string {
	var b strings.Builder
	b.WriteString("Please enter the master key to decrypt your data.\n\n")
	b.WriteString("Master key:  " + m.input.View() + "\n")
	if m.submitting {
		b.WriteString("\nDeriving key...")
	}
	return renderPage("ENTER MASTER KEY", strings.TrimRight(b.String(), "\n"), "enter: unlock")
}

// rejectedModel tells the user the key failed and waits for explicit
// acknowledgement before the next attempt.
type rejectedModel struct{}

func (m rejectedModel) View() string {
	return renderPage(
		"INCORRECT MASTER KEY",
		"The master key is incorrect. Please try again.",
		"enter / esc: back",
	)
}
