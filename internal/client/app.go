package client

import (
	"github.com/MKhiriev/rdp-keeper/internal/logger"
	"github.com/MKhiriev/rdp-keeper/internal/tui"
	"github.com/MKhiriev/rdp-keeper/internal/vault"
)

// App owns the vault session and the UI for one interactive run.
type App struct {
	session *vault.Session
	ui      *tui.TUI
	log     *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(session *vault.Session, ui *tui.TUI, log *logger.Logger) *App {
	return &App{session: session, ui: ui, log: log}
}

// Run drives the UI until the user quits, then wipes the session key.
func (a *App) Run() error {
	defer a.session.Close()

	if err := a.ui.Run(); err != nil {
		a.log.Error().Err(err).Msg("ui stopped with error")
		return err
	}

	a.log.Info().Msg("client exited")
	return nil
}
