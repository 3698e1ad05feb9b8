package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"smokescatter/internal/chart"
	"smokescatter/internal/dataset"
)

var twoStates = []dataset.Record{
	{Abbr: "AL", Poverty: 18, Smokes: 22},
	{Abbr: "AK", Poverty: 12, Smokes: 18},
}

func staticLoader(recs []dataset.Record) Loader {
	return func() (*chart.Chart, error) {
		return chart.Build(recs, chart.DefaultOptions()), nil
	}
}

// drain runs cmd and any batched commands, returning every message produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// rendered walks a model through idle -> loading -> rendered at 120x40.
func rendered(t *testing.T, recs []dataset.Record) Model {
	t.Helper()
	m := New("test.csv", staticLoader(recs))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.phase != phaseIdle {
		t.Fatalf("phase = %v before Init", m.phase)
	}
	var cmd tea.Cmd
	for _, msg := range drain(m.Init()) {
		m, cmd = send(t, m, msg)
	}
	if m.phase != phaseLoading {
		t.Fatalf("phase = %v after start", m.phase)
	}
	for _, msg := range drain(cmd) {
		if _, ok := msg.(loadedMsg); ok {
			m, _ = send(t, m, msg)
		}
	}
	if m.phase != phaseRendered {
		t.Fatalf("phase = %v after load", m.phase)
	}
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func move(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func TestLifecycle(t *testing.T) {
	m := rendered(t, twoStates)
	if len(m.chart.Marks) != 2 {
		t.Fatalf("marks = %d", len(m.chart.Marks))
	}
	if rows := m.tbl.Rows(); len(rows) != 2 || rows[0][1] != "AL" {
		t.Fatalf("table rows = %v", rows)
	}
	// a second start is ignored; there is no way back to loading
	m2, cmd := send(t, m, startMsg{})
	if cmd != nil || m2.phase != phaseRendered {
		t.Fatalf("restart changed phase to %v", m2.phase)
	}
}

func TestLoadFailureQuits(t *testing.T) {
	boom := errors.New("no such file")
	m := New("missing.csv", func() (*chart.Chart, error) { return nil, boom })
	m, cmd := send(t, m, startMsg{})
	var failed tea.Msg
	for _, msg := range drain(cmd) {
		if _, ok := msg.(loadFailedMsg); ok {
			failed = msg
		}
	}
	if failed == nil {
		t.Fatal("loader error was not reported")
	}
	m, cmd = send(t, m, failed)
	if !errors.Is(m.Err(), boom) {
		t.Fatalf("Err() = %v", m.Err())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("load failure should quit the program")
	}
	if m.chart != nil || m.phase == phaseRendered {
		t.Fatal("failure must not render a partial chart")
	}
}

func TestClickShowsTooltipMouseOutHides(t *testing.T) {
	m := rendered(t, twoStates)
	x, y, ok := m.markCell(0)
	if !ok {
		t.Fatal("no cell for mark 0")
	}

	m, _ = send(t, m, move(x, y))
	if m.tooltip != -1 {
		t.Fatal("hovering alone must not show the tooltip")
	}
	if m.hover != 0 {
		t.Fatalf("hover = %d, want 0", m.hover)
	}

	m, _ = send(t, m, click(x, y))
	if m.tooltip != 0 {
		t.Fatalf("tooltip = %d after click, want 0", m.tooltip)
	}
	view := m.View()
	for _, want := range []string{"Poverty: 18", "Smokers: 22"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// moving within the same mark keeps it open
	m, _ = send(t, m, move(x, y))
	if m.tooltip != 0 {
		t.Fatal("tooltip closed while still over the mark")
	}

	// the top-left header cell is well clear of both marks
	m, _ = send(t, m, move(0, 0))
	if m.tooltip != -1 {
		t.Fatal("mouse-out should hide the tooltip")
	}
	if strings.Contains(m.View(), "Poverty: 18") {
		t.Error("tooltip still rendered after mouse-out")
	}
}

func TestClickOtherMarkSwitchesTooltip(t *testing.T) {
	m := rendered(t, twoStates)
	ax, ay, _ := m.markCell(0)
	bx, by, _ := m.markCell(1)
	m, _ = send(t, m, click(ax, ay))
	m, _ = send(t, m, move(bx, by))
	if m.tooltip != -1 {
		t.Fatal("leaving AL should hide its tooltip")
	}
	m, _ = send(t, m, click(bx, by))
	if m.tooltip != 1 {
		t.Fatalf("tooltip = %d, want 1", m.tooltip)
	}
	if !strings.Contains(m.View(), "Poverty: 12") {
		t.Error("AK tooltip not rendered")
	}
}

func TestClickEmptySpace(t *testing.T) {
	m := rendered(t, twoStates)
	_, _, w, h := m.chartArea()
	m, _ = send(t, m, click(w/2, h-2))
	if m.tooltip != -1 {
		t.Fatalf("click on empty canvas opened tooltip %d", m.tooltip)
	}
}

func TestMarkPositions(t *testing.T) {
	m := rendered(t, twoStates)
	ax, ay, _ := m.markCell(0)
	bx, by, _ := m.markCell(1)
	if ax <= bx {
		t.Errorf("AL column %d should be right of AK column %d", ax, bx)
	}
	if ay >= by {
		t.Errorf("AL row %d should be above AK row %d", ay, by)
	}
}

func TestViewShowsAxesAndLabels(t *testing.T) {
	m := rendered(t, twoStates)
	view := m.View()
	for _, want := range []string{"AL", "AK", "Poverty %", "└", "┬", "┤", "18"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// the vertical title is written one rune per row
	if !strings.Contains(view, "#") || !strings.Contains(view, "k") {
		t.Error("y-axis title missing")
	}
}

func TestTableToggle(t *testing.T) {
	m := rendered(t, twoStates)
	x, y, _ := m.markCell(0)
	m, _ = send(t, m, click(x, y))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if !m.showTable {
		t.Fatal("a should open the record table")
	}
	if m.tooltip != -1 {
		t.Fatal("opening the table should drop the tooltip")
	}
	if !strings.Contains(m.View(), "poverty") {
		t.Error("table header not rendered")
	}
	// mouse input is ignored while the table is up
	m, _ = send(t, m, click(x, y))
	if m.tooltip != -1 {
		t.Fatal("click went through the table")
	}
}

func TestQuitKey(t *testing.T) {
	m := rendered(t, twoStates)
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("no command for q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestLoadingView(t *testing.T) {
	m := New("slow.csv", staticLoader(twoStates))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = send(t, m, startMsg{})
	if !strings.Contains(m.View(), "loading slow.csv") {
		t.Error("loading view missing")
	}
}
