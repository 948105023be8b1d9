package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/events-to-kml/config"
	"github.com/theoremus-urban-solutions/events-to-kml/format"
	"github.com/theoremus-urban-solutions/events-to-kml/internal"
	"github.com/theoremus-urban-solutions/events-to-kml/kmlout"
	"github.com/theoremus-urban-solutions/events-to-kml/output"
	"github.com/theoremus-urban-solutions/events-to-kml/record"
)

func main() {
	configPath := flag.String("config", "", "config file path (default config.yml when present)")
	input := flag.String("input", "", "JSONL event stream path, - for stdin (overrides config)")
	outPath := flag.String("output", "", "output document path, - for stdout (overrides config)")
	adapter := flag.String("adapter", "", "output adapter: "+strings.Join(output.Names(), "|")+" (overrides config)")
	encoding := flag.String("encoding", "", "declared output character encoding (overrides config)")
	strict := flag.Bool("strict", false, "abort on a record serialization failure instead of skipping")
	logLevel := flag.String("logLevel", "", "log level: debug|info|warn|error (overrides config)")
	flag.Parse()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		panic(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input.Path = *input
		case "output":
			cfg.Output.Path = *outPath
		case "adapter":
			cfg.Output.Adapter = *adapter
		case "encoding":
			cfg.Output.Encoding = *encoding
		case "strict":
			cfg.Output.Strict = *strict
		case "logLevel":
			cfg.Log.Level = *logLevel
		}
	})

	log, err := internal.NewLogger(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("conversion failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.AppConfig, log *zap.Logger) error {
	in := os.Stdin
	if cfg.Input.Path != "" && cfg.Input.Path != "-" {
		f, err := os.Open(cfg.Input.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var sink io.Writer = os.Stdout
	if cfg.Output.Path != "" && cfg.Output.Path != "-" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}

	w, err := output.New(cfg.Output.Adapter, sink, output.Options{
		Encoding: cfg.Output.Encoding,
		Strict:   cfg.Output.Strict,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	src := record.NewJSONLSource(in, log)
	helper := format.NativeHelper{}

	if err := w.WriteHeader(); err != nil {
		return err
	}

	truncated := false
stream:
	for {
		select {
		case <-ctx.Done():
			// Stop consuming but still emit the footer so the truncated
			// document stays well-formed.
			truncated = true
			break stream
		default:
		}
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if ev.Description == "" {
			ev.Description = helper.FormatEvent(ev)
		}
		if err := w.WriteRecord(ev); err != nil {
			return err
		}
	}

	if err := w.WriteFooter(); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if truncated {
		log.Warn("interrupted: document is well-formed but truncated")
	}
	if kw, ok := w.(*kmlout.Writer); ok {
		st := kw.Stats()
		log.Info("done",
			zap.Int("records", st.Records),
			zap.Int("placemarks", st.Placemarks),
			zap.Int("noCoordinates", st.NoCoordinates),
			zap.Int("dropped", st.Dropped),
			zap.Int("malformedLines", src.Skipped()))
	}
	return nil
}
