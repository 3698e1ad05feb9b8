package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"smokescatter/internal/chart"
	"smokescatter/internal/config"
	"smokescatter/internal/dataset"
	"smokescatter/internal/tui"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML chart configuration")
		data    = flag.String("data", "", "dataset CSV (default "+config.DefaultDataPath+")")
		out     = flag.String("o", "", "export the chart to this file (svg, png, pdf, ...) and exit")
		backend = flag.String("backend", "", "export backend: gonum or gochart")
		logPath = flag.String("log", "", "write logs to this file while the UI runs")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: smokescatter [flags] [data.csv]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetPrefix("smokescatter: ")
	log.SetFlags(0)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if flag.NArg() > 0 {
		cfg.Data = flag.Arg(0)
	}
	if *data != "" {
		cfg.Data = *data
	}
	if *backend != "" {
		cfg.Export.Backend = *backend
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	opts, err := cfg.ChartOptions()
	if err != nil {
		log.Fatal(err)
	}
	load := func() (*chart.Chart, error) {
		recs, err := dataset.Load(cfg.Data, cfg.DatasetColumns())
		if err != nil {
			return nil, err
		}
		return chart.Build(recs, opts), nil
	}

	if *out != "" {
		b, err := chart.ParseBackend(cfg.Export.Backend)
		if err != nil {
			log.Fatal(err)
		}
		c, err := load()
		if err != nil {
			log.Fatal(err)
		}
		if err := c.Export(*out, b); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d marks, %s)", *out, len(c.Marks), b)
		return
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "smokescatter")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(tui.New(cfg.Data, load), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(m.Err())
	}
}
