// Package launcher spawns the external remote-desktop client for a
// selected profile. It is a collaborator of the vault session: the session
// hands it an immutable profile and the launcher copies the secret to the
// system clipboard and starts the client with the profile's address.
package launcher

import (
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/rdp-keeper/internal/logger"
	"github.com/MKhiriev/rdp-keeper/models"
)

// Launcher connects to a remote host using a stored profile.
type Launcher interface {
	// Connect copies the profile's secret to the clipboard and spawns the
	// remote-desktop client with the profile's address. The spawned
	// process is not waited on; the client owns its own window.
	Connect(profile models.Profile) error
}

// execCommand is indirected for tests.
var execCommand = exec.Command

type clientLauncher struct {
	command string
	log     *logger.Logger
}

// New constructs a [Launcher] invoking the given client executable with
// mstsc-style arguments: `<command> /v <address> /prompt`.
func New(command string, log *logger.Logger) Launcher {
	return &clientLauncher{command: command, log: log}
}

func (l *clientLauncher) Connect(p models.Profile) error {
	if err := clipboard.WriteAll(p.Secret); err != nil {
		return fmt.Errorf("copy secret to clipboard: %w", err)
	}

	cmd := execCommand(l.command, connectArgs(p.Address)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start remote-desktop client: %w", err)
	}

	// Profile name and address are fine to log; the secret never is.
	l.log.Info().
		Str("profile", p.Name).
		Str("address", p.Address).
		Msg("remote-desktop client started")

	return nil
}

func connectArgs(address string) []string {
	return []string{"/v", address, "/prompt"}
}
