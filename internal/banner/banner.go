package banner

import (
	"github.com/charmbracelet/lipgloss"
)

var colorBanner = lipgloss.Color("63")

func GetString() string {
	renderer := lipgloss.DefaultRenderer()

	style := renderer.NewStyle().
		Foreground(colorBanner).
		Bold(true)

	ascii := `
                    __  __  __    __           __
   ____ ___  ____ _/ /_/ /_/ /_  / /___ ______/ /_
  / __ '__ \/ __ '/ __/ __/ __ \/ / __ '/ ___/ __/
 / / / / / / /_/ / /_/ /_/ /_/ / / /_/ (__  ) /_
/_/ /_/ /_/\__, /\__/\__/_.___/_/\__,_/____/\__/
             /_/                                  `

	return "\n" + style.Render(ascii) + "\n"
}
