package chart

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"smokescatter/internal/dataset"
)

var twoStates = []dataset.Record{
	{Abbr: "AL", Poverty: 18, Smokes: 22},
	{Abbr: "AK", Poverty: 12, Smokes: 18},
}

func TestBuildTwoStates(t *testing.T) {
	c := Build(twoStates, DefaultOptions())
	if len(c.Marks) != 2 {
		t.Fatalf("got %d marks, want 2", len(c.Marks))
	}
	al, ak := c.Marks[0], c.Marks[1]
	if al.Record.Abbr != "AL" || ak.Record.Abbr != "AK" {
		t.Fatalf("marks out of record order: %+v", c.Marks)
	}
	if !(al.CX > ak.CX) {
		t.Errorf("x(AL)=%v should be right of x(AK)=%v", al.CX, ak.CX)
	}
	if !(al.CY < ak.CY) {
		t.Errorf("y(AL)=%v should be above y(AK)=%v", al.CY, ak.CY)
	}
	// the maximum sits at the far end of each range
	if al.CX != 860 || al.CY != 0 {
		t.Errorf("AL at (%v, %v), want (860, 0)", al.CX, al.CY)
	}
}

func TestBuildDomainFloor(t *testing.T) {
	recs := []dataset.Record{{Abbr: "LO", Poverty: 1, Smokes: 2}, {Abbr: "HI", Poverty: 23, Smokes: 23}}
	c := Build(recs, DefaultOptions())
	if d0, _ := c.X.Domain(); d0 != 3 {
		t.Fatalf("x domain starts at %v, want 3", d0)
	}
	if d0, _ := c.Y.Domain(); d0 != 3 {
		t.Fatalf("y domain starts at %v, want 3", d0)
	}
	lo := c.Marks[0]
	if lo.CX >= 0 {
		t.Errorf("poverty=1 should map left of the range start, got %v", lo.CX)
	}
	if lo.CY <= c.Opts.Geometry.InnerHeight() {
		t.Errorf("smokes=2 should map below the plot area, got %v", lo.CY)
	}
}

func TestBuildMonotonic(t *testing.T) {
	var recs []dataset.Record
	for i := 0; i < 40; i++ {
		recs = append(recs, dataset.Record{Abbr: "R", Poverty: float64(i) * 0.7, Smokes: float64(40-i) * 0.6})
	}
	c := Build(recs, DefaultOptions())
	if len(c.Marks) != len(recs) {
		t.Fatalf("got %d marks for %d records", len(c.Marks), len(recs))
	}
	for i := 1; i < len(c.Marks); i++ {
		prev, cur := c.Marks[i-1], c.Marks[i]
		if cur.Record.Poverty >= prev.Record.Poverty && cur.CX < prev.CX {
			t.Errorf("x decreased between %v and %v", prev.Record.Poverty, cur.Record.Poverty)
		}
		if cur.Record.Smokes <= prev.Record.Smokes && cur.CY < prev.CY {
			t.Errorf("y not inverted between %v and %v", prev.Record.Smokes, cur.Record.Smokes)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	c := Build(nil, DefaultOptions())
	if len(c.Marks) != 0 {
		t.Fatalf("got %d marks", len(c.Marks))
	}
	if d0, d1 := c.X.Domain(); d0 != 3 || d1 != 3 {
		t.Errorf("x domain = [%v, %v], want [3, 3]", d0, d1)
	}
}

func TestAxes(t *testing.T) {
	c := Build(twoStates, DefaultOptions())
	if c.XAxis.Label != "Poverty %" || c.YAxis.Label != "# of smokes" {
		t.Fatalf("labels = %q, %q", c.XAxis.Label, c.YAxis.Label)
	}
	var texts []string
	for _, tk := range c.XAxis.Ticks {
		texts = append(texts, tk.Text)
		if tk.Pos < 0 || tk.Pos > c.Opts.Geometry.InnerWidth() {
			t.Errorf("x tick %v at %v outside the plot area", tk.Value, tk.Pos)
		}
	}
	want := []string{"4", "6", "8", "10", "12", "14", "16", "18"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("x ticks = %v, want %v", texts, want)
	}
	for i := 1; i < len(c.YAxis.Ticks); i++ {
		if c.YAxis.Ticks[i].Pos >= c.YAxis.Ticks[i-1].Pos {
			t.Errorf("y ticks should climb the screen: %+v", c.YAxis.Ticks)
			break
		}
	}
}

func TestHitTest(t *testing.T) {
	c := Build(twoStates, DefaultOptions())
	ax, ay := c.Abs(c.Marks[1].CX, c.Marks[1].CY)
	cases := []struct {
		name   string
		px, py float64
		want   int
		ok     bool
	}{
		{"centre", ax, ay, 1, true},
		{"edge", ax + 14, ay, 1, true},
		{"outside", ax + 16, ay, -1, false},
		{"diagonal outside", ax + 12, ay + 12, -1, false},
		{"far away", 0, 0, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.HitTest(tc.px, tc.py, 0, 0)
			if got != tc.want || ok != tc.ok {
				t.Errorf("HitTest(%v, %v) = %v, %v; want %v, %v", tc.px, tc.py, got, ok, tc.want, tc.ok)
			}
		})
	}
	if i, ok := c.HitTest(ax+20, ay, 10, 10); !ok || i != 1 {
		t.Errorf("slack should widen the hit area, got %v, %v", i, ok)
	}
}

func TestHitTestTopmost(t *testing.T) {
	recs := []dataset.Record{
		{Abbr: "A", Poverty: 10, Smokes: 10},
		{Abbr: "B", Poverty: 10.1, Smokes: 10},
		{Abbr: "C", Poverty: 20, Smokes: 20},
	}
	c := Build(recs, DefaultOptions())
	ax, ay := c.Abs(c.Marks[0].CX, c.Marks[0].CY)
	if i, ok := c.HitTest(ax, ay, 0, 0); !ok || i != 1 {
		t.Errorf("overlapping marks should resolve to the later one, got %v, %v", i, ok)
	}
}

func TestTooltip(t *testing.T) {
	c := Build(twoStates, DefaultOptions())
	got := c.TooltipLines(0)
	want := []string{"AL", "Poverty: 18", "Smokers: 22"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TooltipLines = %v, want %v", got, want)
	}

	recs := []dataset.Record{{Abbr: "AZ", Poverty: 17.5, Smokes: 16.25}}
	c = Build(recs, DefaultOptions())
	if got := c.TooltipLines(0)[1]; got != "Poverty: 17.5" {
		t.Errorf("fractional value rendered as %q", got)
	}

	ax, ay := c.Abs(c.Marks[0].CX, c.Marks[0].CY)
	x, y := c.TooltipOrigin(0, 100, 50)
	if x != ax-50-60 || y != ay-15-50+80 {
		t.Errorf("TooltipOrigin = (%v, %v) for mark at (%v, %v)", x, y, ax, ay)
	}
}

func TestTranslucent(t *testing.T) {
	st := DefaultOptions().Style
	got := st.Translucent()
	if got.G != 0x80 || got.A != 153 {
		t.Errorf("Translucent = %+v", got)
	}
	st.Opacity = 2
	if st.Translucent().A != 255 {
		t.Errorf("opacity should clamp to 1")
	}
}

func TestWritePNG(t *testing.T) {
	c := Build(twoStates, DefaultOptions())
	for _, b := range []Backend{BackendGonum, BackendGoChart} {
		t.Run(string(b), func(t *testing.T) {
			var buf bytes.Buffer
			if err := c.Write(&buf, b, "png"); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
				t.Errorf("output is not a PNG (%d bytes)", buf.Len())
			}
		})
	}
}

func TestWriteSVG(t *testing.T) {
	c := Build(twoStates, DefaultOptions())
	for _, b := range []Backend{BackendGonum, BackendGoChart} {
		t.Run(string(b), func(t *testing.T) {
			var buf bytes.Buffer
			if err := c.Write(&buf, b, "svg"); err != nil {
				t.Fatalf("Write: %v", err)
			}
			out := strings.TrimSpace(buf.String())
			if !strings.HasPrefix(out, "<svg") && !strings.HasPrefix(out, "<?xml") {
				t.Errorf("output is not SVG (%d bytes)", buf.Len())
			}
		})
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	c := Build(twoStates, DefaultOptions())
	var buf bytes.Buffer
	if err := c.Write(&buf, BackendGoChart, "pdf"); err == nil {
		t.Fatal("go-chart should refuse pdf")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on refusal", buf.Len())
	}
}

func TestParseBackend(t *testing.T) {
	cases := []struct {
		in   string
		want Backend
		err  bool
	}{
		{"", BackendGonum, false},
		{"gonum", BackendGonum, false},
		{" GoChart ", BackendGoChart, false},
		{"d3", "", true},
	}
	for _, tc := range cases {
		got, err := ParseBackend(tc.in)
		if (err != nil) != tc.err || got != tc.want {
			t.Errorf("ParseBackend(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestFormatOf(t *testing.T) {
	if got := FormatOf("out/Chart.SVG"); got != "svg" {
		t.Errorf("FormatOf = %q", got)
	}
	if got := FormatOf("noext"); got != "" {
		t.Errorf("FormatOf = %q", got)
	}
}
