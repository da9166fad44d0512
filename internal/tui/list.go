package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rdp-keeper/models"
)

type listModel struct {
	profiles []models.Profile
	idx      int
	status   string
}

func (m listModel) current() (models.Profile, bool) {
	if len(m.profiles) == 0 || m.idx < 0 || m.idx >= len(m.profiles) {
		return models.Profile{}, false
	}
	return m.profiles[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder

	if len(m.profiles) == 0 {
		b.WriteString("No profiles yet. Press n to add one.\n")
	} else {
		for i, p := range m.profiles {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-24s %s\n", cursor, fitText(p.Name, 24), fitText(p.Address, 21)))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(
		"REMOTE DESKTOP KEEPER",
		strings.TrimRight(b.String(), "\n"),
		"enter: connect │ n: new │ e: edit │ d: remove │ i: import │ v: about │ q: quit",
	)
}
