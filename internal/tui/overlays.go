package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Remove \"" + m.message + "\"?\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc: close"
	return overlayBoxStyle.Render(content)
}

type aboutModel struct{}

func (m aboutModel) View() string {
	return renderPage(
		"ABOUT",
		"Remote Desktop Keeper\n\nStores connection profiles in a single\nencrypted container on disk.",
		"esc: back",
	)
}
