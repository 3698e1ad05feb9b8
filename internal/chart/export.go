package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Backend selects the library a chart is exported with.
type Backend string

const (
	BackendGonum   Backend = "gonum"
	BackendGoChart Backend = "gochart"
)

var backendFormats = map[Backend][]string{
	BackendGonum:   {"svg", "png", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"},
	BackendGoChart: {"png", "svg"},
}

func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	if b == "" {
		return BackendGonum, nil
	}
	if _, ok := backendFormats[b]; !ok {
		return "", fmt.Errorf("chart: unknown backend %q", s)
	}
	return b, nil
}

// FormatOf returns the lower-case extension of path without the dot.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func supports(b Backend, format string) bool {
	for _, f := range backendFormats[b] {
		if f == format {
			return true
		}
	}
	return false
}

// Write renders the chart in format with backend b.
func (c *Chart) Write(w io.Writer, b Backend, format string) error {
	if !supports(b, format) {
		return fmt.Errorf("chart: backend %s cannot write %q", b, format)
	}
	switch b {
	case BackendGoChart:
		return c.WriteGoChart(w, format)
	default:
		if format == "svg" {
			return c.WriteSVG(w)
		}
		return c.WriteGonum(w, format)
	}
}

// Export writes the chart to path; the format follows the file extension.
// A partially written file is removed on failure.
func (c *Chart) Export(path string, b Backend) error {
	format := FormatOf(path)
	if !supports(b, format) {
		return fmt.Errorf("chart: backend %s cannot write %q", b, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	werr := c.Write(f, b, format)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(path)
		return fmt.Errorf("chart: export %s: %w", path, werr)
	}
	return nil
}
