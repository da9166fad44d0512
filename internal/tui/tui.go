// Package tui renders the terminal UI of rdp-keeper on top of bubbletea.
// It is presentation only: the vault session owns the key and the profile
// list, the launcher owns clipboard and process spawn, and every screen
// talks to them through the narrow interfaces below.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/rdp-keeper/internal/launcher"
	"github.com/MKhiriev/rdp-keeper/internal/logger"
	"github.com/MKhiriev/rdp-keeper/internal/vault"
	"github.com/MKhiriev/rdp-keeper/models"
)

// SessionService is the slice of *vault.Session the UI needs.
type SessionService interface {
	State() vault.State
	Profiles() []models.Profile
	Submit(passphrase []byte) error
	Acknowledge()
	Add(p models.Profile) error
	Edit(i int, p models.Profile) error
	Remove(i int) error
	ImportLegacy(path string) (int, error)
}

// TUI runs the interactive terminal session.
type TUI struct {
	session    SessionService
	launcher   launcher.Launcher
	legacyPath string
	log        *logger.Logger
}

// New constructs the TUI. legacyPath is the default source file for the
// legacy import action; an empty value disables the action.
func New(session SessionService, l launcher.Launcher, legacyPath string, log *logger.Logger) *TUI {
	return &TUI{
		session:    session,
		launcher:   l,
		legacyPath: legacyPath,
		log:        log,
	}
}

// Run drives the UI until the user quits.
func (t *TUI) Run() error {
	model := newAppModel(t.session, t.launcher, t.legacyPath)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
