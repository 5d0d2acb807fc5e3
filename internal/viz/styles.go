package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(48)
	popupStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// shadeRunes maps a density in [0,1] to a block character, light to dark.
var shadeRunes = []rune{' ', '░', '▒', '▓', '█'}

func shade(rho float64) rune {
	if rho < 0 {
		rho = 0
	}
	if rho > 1 {
		rho = 1
	}
	idx := int(rho * float64(len(shadeRunes)))
	if idx >= len(shadeRunes) {
		idx = len(shadeRunes) - 1
	}
	return shadeRunes[idx]
}

// Separator renders a muted horizontal rule.
func Separator(width int) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(strings.Repeat("─", width))
}
