package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"addrstats/internal/app"
	"addrstats/internal/config"
	"addrstats/internal/console"
	"addrstats/internal/source"
)

func main() {
	enableVT()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	con := console.New(os.Stdout, os.Stderr, cfg.NoColor)
	fs := afero.NewOsFs()

	choices := []app.Choice{
		{Key: "1", Label: "XML file", Path: cfg.MarkupPath, Source: source.NewMarkup(fs, con.Warnf)},
		{Key: "2", Label: "CSV file", Path: cfg.DelimitedPath, Source: source.NewDelimited(fs, con.Warnf)},
		{Key: "3", Label: "shapefile", Path: cfg.ShapefilePath, Source: source.NewShapefile(fs, con.Warnf)},
	}

	if err := app.New(fs, os.Stdin, con, choices).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
