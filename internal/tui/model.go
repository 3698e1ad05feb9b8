package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"smokescatter/internal/chart"
)

// phase is the single, forward-only lifecycle of the view.
type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseRendered
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseLoading:
		return "loading"
	default:
		return "rendered"
	}
}

// Loader fetches the dataset and lays out the chart. It runs once, off the
// event loop.
type Loader func() (*chart.Chart, error)

type (
	startMsg      struct{}
	loadedMsg     struct{ chart *chart.Chart }
	loadFailedMsg struct{ err error }
)

type Model struct {
	width  int
	height int

	phase  phase
	load   Loader
	source string
	chart  *chart.Chart
	err    error
	status string

	spin spinner.Model
	help help.Model

	// pointer state
	hover     int // mark under the pointer, -1 when none
	tooltip   int // mark whose tooltip is shown, -1 when hidden
	pointerIn bool
	pointerX  float64 // data coordinates under the pointer
	pointerY  float64

	// record table
	showTable bool
	tbl       table.Model
}

// New returns an idle model; Init starts the load.
func New(source string, load Loader) Model {
	m := Model{
		phase:   phaseIdle,
		load:    load,
		source:  source,
		status:  "smokescatter ready",
		hover:   -1,
		tooltip: -1,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		help:    help.New(),
	}
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// Err reports why the load failed, if it did.
func (m Model) Err() error { return m.err }

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		c, err := load()
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{chart: c}
	}
}
