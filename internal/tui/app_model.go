package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/rdp-keeper/internal/crypto"
	"github.com/MKhiriev/rdp-keeper/internal/launcher"
	"github.com/MKhiriev/rdp-keeper/internal/vault"
	"github.com/MKhiriev/rdp-keeper/models"
)

type screen int

const (
	screenCreateKey screen = iota
	screenEnterKey
	screenRejected
	screenList
	screenForm
	screenAbout
)

type appModel struct {
	session    SessionService
	launcher   launcher.Launcher
	legacyPath string

	currentScreen screen

	createKey createKeyModel
	enterKey  enterKeyModel
	rejected  rejectedModel
	list      listModel
	form      formModel
	about     aboutModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingRemove int
}

func newAppModel(session SessionService, l launcher.Launcher, legacyPath string) appModel {
	m := appModel{
		session:    session,
		launcher:   l,
		legacyPath: legacyPath,
		createKey:  newCreateKeyModel(),
		enterKey:   newEnterKeyModel(),
	}

	if session.State() == vault.StateNoContainer {
		m.currentScreen = screenCreateKey
	} else {
		m.currentScreen = screenEnterKey
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdRemove(m.pendingRemove)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
	case unlockDoneMsg:
		m.setSubmitting(false)
		if msg.err == nil {
			m.refreshProfiles()
			m.currentScreen = screenList
			return m, nil
		}
		if errors.Is(msg.err, crypto.ErrAuthentication) {
			m.currentScreen = screenRejected
			return m, nil
		}
		m.showErrorf(msg.err.Error())
		return m, nil
	case savedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshProfiles()
		m.currentScreen = screenList
		m.list.status = "Saved"
		return m, cmdClearStatus()
	case removedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshProfiles()
		m.list.status = "Profile removed"
		return m, cmdClearStatus()
	case connectDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.status = "Secret copied, client started"
		return m, cmdClearStatus()
	case importDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshProfiles()
		m.list.status = fmt.Sprintf("Imported %d profiles", msg.count)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenCreateKey:
		return m.updateCreateKey(msg)
	case screenEnterKey:
		return m.updateEnterKey(msg)
	case screenRejected:
		return m.updateRejected(msg)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenCreateKey:
		body = m.createKey.View()
	case screenEnterKey:
		body = m.enterKey.View()
	case screenRejected:
		body = m.rejected.View()
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	case screenAbout:
		body = m.about.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.createKey.submitting = v
	m.enterKey.submitting = v
	m.form.submitting = v
}

func (m *appModel) refreshProfiles() {
	m.list.profiles = m.session.Profiles()
	if m.list.idx >= len(m.list.profiles) {
		m.list.idx = len(m.list.profiles) - 1
	}
	if m.list.idx < 0 {
		m.list.idx = 0
	}
}

func (m appModel) updateCreateKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.createKey = focusNextCreateKey(m.createKey)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.createKey = focusPrevCreateKey(m.createKey)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			master := m.createKey.inputs[0].Value()
			confirm := m.createKey.inputs[1].Value()
			if master != confirm {
				m.showErrorf("Master keys do not match.")
				return m, nil
			}
			// An empty master key is weak but legal.
			m.createKey.submitting = true
			return m, m.cmdSubmit(master)
		}
	}

	var cmd tea.Cmd
	m.createKey.inputs[m.createKey.focus], cmd = m.createKey.inputs[m.createKey.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateEnterKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if key.Matches(keyMsg, keys.enter) {
			m.enterKey.submitting = true
			return m, m.cmdSubmit(m.enterKey.input.Value())
		}
	}

	var cmd tea.Cmd
	m.enterKey.input, cmd = m.enterKey.input.Update(msg)
	return m, cmd
}

func (m appModel) updateRejected(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
		m.session.Acknowledge()
		m.enterKey = newEnterKeyModel()
		m.currentScreen = screenEnterKey
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.profiles)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.connect):
		p, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdConnect(p)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil, 0)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		p, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormModel(&p, m.list.idx)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		p, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = p.Name
		m.pendingRemove = m.list.idx
	case key.Matches(keyMsg, keys.imprt):
		if m.legacyPath == "" {
			m.showErrorf("No legacy import path configured (-legacy-import).")
			return m, nil
		}
		return m, m.cmdImport()
	case key.Matches(keyMsg, keys.about):
		m.currentScreen = screenAbout
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.reveal):
			m.form.toggleReveal()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			p := m.form.toProfile()
			if p.Name == "" || p.Address == "" {
				m.showErrorf("Name and address are required.")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSave(p, m.form.editing, m.form.index)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
		m.currentScreen = screenList
	}
	return m, nil
}

func (m appModel) cmdSubmit(passphrase string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return unlockDoneMsg{err: session.Submit([]byte(passphrase))}
	}
}

func (m appModel) cmdSave(p models.Profile, editing bool, index int) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		if editing {
			return savedMsg{err: session.Edit(index, p)}
		}
		return savedMsg{err: session.Add(p)}
	}
}

func (m appModel) cmdRemove(index int) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return removedMsg{err: session.Remove(index)}
	}
}

func (m appModel) cmdConnect(p models.Profile) tea.Cmd {
	l := m.launcher
	return func() tea.Msg {
		return connectDoneMsg{err: l.Connect(p)}
	}
}

func (m appModel) cmdImport() tea.Cmd {
	session := m.session
	path := m.legacyPath
	return func() tea.Msg {
		count, err := session.ImportLegacy(path)
		return importDoneMsg{count: count, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextCreateKey(m createKeyModel) createKeyModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevCreateKey(m createKeyModel) createKeyModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
