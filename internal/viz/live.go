package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/latgas/internal/glauber"
	"github.com/san-kum/latgas/internal/meanfield"
	"github.com/san-kum/latgas/internal/series"
	"github.com/san-kum/latgas/internal/storage"
)

const (
	canvasWidth  = 60
	canvasHeight = 30
	ringCapacity = 1000

	tempStep = 0.01
	tempMin  = 0.01
	muStep   = 0.02
)

// Side panel modes, cycled with the m key.
type panelMode int

const (
	panelStats panelMode = iota
	panelPhase
	panelCurve
)

type TickMsg time.Time

// Model drives the live simulation view. It owns the engine and advances it
// one sweep per tick while running.
type Model struct {
	engine  *glauber.Engine
	params  glauber.Params
	scan    meanfield.ScanConfig
	diagram *meanfield.PhaseDiagram

	canvas  *Canvas
	ring    *series.Ring
	theme   Theme
	panel   panelMode
	popup   bool
	running bool
	fps     int
	status  string
	last    glauber.Result
}

// NewModel builds the live view around an engine. The phase diagram for the
// current coupling is computed up front, as the original did at startup.
func NewModel(engine *glauber.Engine, params glauber.Params, scan meanfield.ScanConfig, fps int) (Model, error) {
	diagram, err := meanfield.Diagram(meanfield.DefaultGridSpec(), params.Coupling, scan)
	if err != nil {
		return Model{}, err
	}
	if fps < 1 {
		fps = 30
	}
	return Model{
		engine:  engine,
		params:  params,
		scan:    scan,
		diagram: diagram,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		ring:    series.NewRing(ringCapacity),
		theme:   ThemePhase,
		running: true,
		fps:     fps,
	}, nil
}

// Run starts the Bubble Tea program.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.params.Temperature += tempStep
		case "down", "j":
			m.params.Temperature -= tempStep
			if m.params.Temperature < tempMin {
				m.params.Temperature = tempMin
			}
		case "right", "l":
			m.params.ChemPotential += muStep
		case "left", "h":
			m.params.ChemPotential -= muStep
		case " ":
			m.engine.Randomize(time.Now().UnixNano())
			m.status = "randomized"
		case "m":
			m.panel = (m.panel + 1) % 3
		case "d":
			m.popup = !m.popup
		case "p":
			m.running = !m.running
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "s":
			name := fmt.Sprintf("simulation_%d_steps.csv", m.engine.StepCount())
			if err := storage.WriteSeriesFile(name, m.engine.Recorder().Export()); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "saved " + name
			}
		}
	case TickMsg:
		if m.running {
			res, err := m.engine.Step(m.params)
			if err != nil {
				m.status = err.Error()
			} else {
				m.last = res
				m.ring.Push(res.Density)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the lattice canvas next to the active side panel.
func (m Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawLattice(m.engine.Lattice())
	lattice := lipgloss.NewStyle().Foreground(m.theme.Primary).Render(m.canvas.String())

	var side string
	switch m.panel {
	case panelPhase:
		side = m.phaseView()
	case panelCurve:
		side = m.curveView()
	default:
		side = m.statsView()
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(lattice), statsStyle.Render(side))
	if m.popup {
		view = lipgloss.JoinVertical(lipgloss.Left, view, popupStyle.Render(m.densityChart()))
	}
	return view
}

func (m Model) statsView() string {
	header := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(header.Render("LATTICE GAS") + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Step") + value.Render(fmt.Sprintf("%d", m.engine.StepCount())) + "\n")
	s.WriteString(labelStyle.Render("Temperature") + value.Render(fmt.Sprintf("%.2f", m.params.Temperature)) + "\n")
	s.WriteString(labelStyle.Render("Chem potential") + value.Render(fmt.Sprintf("%.2f", m.params.ChemPotential)) + "\n")
	s.WriteString(labelStyle.Render("Coupling") + value.Render(fmt.Sprintf("%.2f", m.params.Coupling)) + "\n")
	s.WriteString(labelStyle.Render("Density") + value.Render(fmt.Sprintf("%.3f", m.last.Density)) + "\n")
	s.WriteString(labelStyle.Render("Flips/sweep") + value.Render(fmt.Sprintf("%d", m.last.Flips)) + "\n")
	if m.status != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("\n" + Separator(24) + "\n" +
		"↑↓:Temp ←→:µ SP:Randomize\nM:Panel D:Density S:Save\nP:Pause T:Theme Q:Quit"))
	return s.String()
}

// phaseView shades the precomputed diagram: temperature left to right,
// chemical potential top to bottom, with a marker at the current parameters.
func (m Model) phaseView() string {
	const cols, rows = 40, 18
	g := meanfield.DefaultGridSpec()

	mi := -1
	mk := -1
	tFrac := (m.params.Temperature - g.TempMin) / (g.TempMax - g.TempMin)
	cFrac := (m.params.ChemPotential - g.MuMin) / (g.MuMax - g.MuMin)
	if tFrac >= 0 && tFrac <= 1 && cFrac >= 0 && cFrac <= 1 {
		mi = int(tFrac * (cols - 1))
		mk = int(cFrac * (rows - 1))
	}

	marker := lipgloss.NewStyle().Foreground(m.theme.Error).Render("◉")
	grid := lipgloss.NewStyle().Foreground(m.theme.Secondary)

	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("PHASE DIAGRAM") + "\n\n")
	for r := 0; r < rows; r++ {
		ti := r * len(m.diagram.Mus) / rows
		var line strings.Builder
		for c := 0; c < cols; c++ {
			tk := c * len(m.diagram.Temps) / cols
			rho := m.diagram.Density[tk][ti]
			if math.IsNaN(rho) {
				line.WriteRune('·') // no equilibrium bracketed
				continue
			}
			line.WriteRune(shade(rho))
		}
		row := line.String()
		if r == mk && mi >= 0 {
			cells := []rune(row)
			s.WriteString(grid.Render(string(cells[:mi])) + marker + grid.Render(string(cells[mi+1:])) + "\n")
		} else {
			s.WriteString(grid.Render(row) + "\n")
		}
	}
	return s.String() + helpStyle.Render("\nT → across, µ ↓ down")
}

func (m Model) curveView() string {
	_, f, err := meanfield.Curve(m.params.Temperature, m.params.ChemPotential, m.params.Coupling, 60)
	if err != nil {
		return err.Error()
	}

	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("FREE ENERGY f(ρ)") + "\n\n")
	s.WriteString(asciigraph.Plot(f,
		asciigraph.Height(12),
		asciigraph.Width(36),
		asciigraph.Caption("ρ: 0 → 1"),
	))

	roots := meanfield.StationaryDensities(m.params.Temperature, m.params.ChemPotential, m.params.Coupling, m.scan)
	s.WriteString("\n\nstationary ρ:")
	if len(roots) == 0 {
		s.WriteString(" none")
	}
	for _, r := range roots {
		s.WriteString(fmt.Sprintf(" %.3f", r))
	}
	if rho, ok := meanfield.Equilibrium(m.params.Temperature, m.params.ChemPotential, m.params.Coupling, m.scan); ok {
		s.WriteString(fmt.Sprintf("\nequilibrium ρ*: %.3f", rho))
	}
	return s.String()
}

func (m Model) densityChart() string {
	values := m.ring.Values()
	if len(values) < 2 {
		return "Density vs Time\n(collecting...)"
	}
	min, max := m.ring.Bounds()
	return fmt.Sprintf("Density vs Time  [%.3f, %.3f]\n", min, max) +
		asciigraph.Plot(values,
			asciigraph.Height(6),
			asciigraph.Width(90),
		)
}
