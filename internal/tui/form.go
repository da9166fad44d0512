package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/rdp-keeper/models"
)

const (
	formFieldName = iota
	formFieldAddress
	formFieldSecret
)

// formModel is the add/edit screen for one profile. The secret input is
// masked until the user toggles reveal; the buffer lives here, never in
// the session, so cancelling a form discards the typed secret.
type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	index      int
	reveal     bool
	submitting bool
}

func newFormModel(p *models.Profile, index int) formModel {
	name := textinput.New()
	name.Placeholder = "Name"
	name.Width = 40
	name.Focus()

	address := textinput.New()
	address.Placeholder = "Address (host or IP)"
	address.Width = 40

	secret := newPassphraseInput("Password")

	m := formModel{
		inputs: []textinput.Model{name, address, secret},
		index:  index,
	}

	if p != nil {
		m.editing = true
		m.inputs[formFieldName].SetValue(p.Name)
		m.inputs[formFieldAddress].SetValue(p.Address)
		m.inputs[formFieldSecret].SetValue(p.Secret)
	}

	return m
}

func (m formModel) toProfile() models.Profile {
	return models.Profile{
		Name:    strings.TrimSpace(m.inputs[formFieldName].Value()),
		Address: strings.TrimSpace(m.inputs[formFieldAddress].Value()),
		Secret:  m.inputs[formFieldSecret].Value(),
	}
}

func (m *formModel) toggleReveal() {
	m.reveal = !m.reveal
	if m.reveal {
		m.inputs[formFieldSecret].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[formFieldSecret].EchoMode = textinput.EchoPassword
	}
}

func (m formModel) View() string {
	title := "ADD PROFILE"
	if m.editing {
		title = "EDIT PROFILE"
	}

	var b strings.Builder
	b.WriteString("Name:      " + m.inputs[formFieldName].View() + "\n")
	b.WriteString("Address:   " + m.inputs[formFieldAddress].View() + "\n")
	b.WriteString("Password:  " + m.inputs[formFieldSecret].View() + "\n")
	if m.submitting {
		b.WriteString("\nSaving...")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: save │ tab: next field │ ctrl+r: show/hide password │ esc: cancel")
}
