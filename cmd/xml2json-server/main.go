package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"

	"github.com/jacoelho/xml2json/internal/config"
	"github.com/jacoelho/xml2json/internal/logging"
	"github.com/jacoelho/xml2json/internal/server"
)

type args struct {
	Config string `arg:"-c,--config,env:XML2JSON_CONFIG" help:"path to YAML configuration file"`
	Listen string `arg:"-l,--listen" help:"listen address, overrides server.listen"`
}

func (args) Description() string {
	return "Serves XML to JSON conversion over HTTP."
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "xml2json-server"}, &a)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	switch err := p.Parse(argv); {
	case err == arg.ErrHelp:
		p.WriteHelp(stdout)
		return 0
	case err != nil:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		p.WriteUsage(stderr)
		return 2
	}

	cfg, err := config.Load(a.Config)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error loading config: %v\n", err)
		return 1
	}
	if a.Listen != "" {
		cfg.Server.Listen = a.Listen
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error building logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return 1
	}
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		return 1
	}
	return 0
}
