package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-andiamo/swatchr"
	"github.com/rs/zerolog"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: asetool [-config asetool.toml] <command> [args]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inspect input.ase                 (list header, colors and warnings)")
	fmt.Fprintln(w, "  png input.ase output.png          (export colors as horizontal strips)")
	fmt.Fprintln(w, "  preset input.ase output.colors    (export a Unity color preset library)")
	fmt.Fprintln(w, "  asset input.ase output.swatch     (save a compressed palette asset)")
}

var commandArgs = map[string]int{
	"inspect": 1,
	"png":     2,
	"preset":  2,
	"asset":   2,
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "asetool: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "asetool").Logger()
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("asetool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	configPath := fs.String("config", "", "path to TOML config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.LogLevel)

	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr)
		return fmt.Errorf("missing command")
	}
	command, rest := rest[0], rest[1:]
	expected, ok := commandArgs[command]
	if !ok {
		usage(stderr)
		return fmt.Errorf("unknown command %q", command)
	}
	if len(rest) != expected {
		usage(stderr)
		return fmt.Errorf("%s: expected %d argument(s), got %d", command, expected, len(rest))
	}
	doc, err := swatchr.ParseFile(rest[0], cfg.parseOptions(&logger))
	if err != nil {
		return err
	}
	logger.Debug().Str("file", rest[0]).Int("colors", doc.NumColors()).Int("warnings", len(doc.Warnings)).Msg("parsed")
	switch command {
	case "inspect":
		inspect(stdout, doc)
		return nil
	case "png":
		return writeOutput(logger, rest[1], func(w io.Writer) error {
			return swatchr.WritePNG(w, swatchr.FromDocument(doc), &cfg.Texture)
		})
	case "preset":
		return writeOutput(logger, rest[1], func(w io.Writer) error {
			return swatchr.WritePresetLibrary(w, swatchr.FromDocument(doc))
		})
	case "asset":
		return writeOutput(logger, rest[1], func(w io.Writer) error {
			return swatchr.SaveAsset(w, swatchr.FromDocument(doc))
		})
	}
	return nil
}

func inspect(w io.Writer, doc *swatchr.Document) {
	fmt.Fprintf(w, "header:   %q v%s (%d blocks)\n", doc.Header.Magic, doc.Header.Version(), doc.Header.BlockCount)
	fmt.Fprintf(w, "title:    %s\n", doc.Title)
	fmt.Fprintf(w, "colors:   %d\n", doc.NumColors())
	for i, e := range doc.Entries {
		fmt.Fprintf(w, "  %3d %s %-5s %-6s %s\n", i, e.Color.Hex(), e.Model, e.SwatchType, e.Name)
	}
	for _, warning := range doc.Warnings {
		fmt.Fprintf(w, "warning:  %s\n", warning)
	}
}

func writeOutput(logger zerolog.Logger, path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = write(f); err != nil {
		return err
	}
	logger.Info().Str("file", path).Msg("exported")
	return nil
}
