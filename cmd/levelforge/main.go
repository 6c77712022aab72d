// Package main is the entry point for levelforge.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/joho/godotenv"

	"github.com/samdwyer/levelforge/internal/i18n"
	"github.com/samdwyer/levelforge/internal/layout"
	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/preview"
	"github.com/samdwyer/levelforge/internal/server"
	"github.com/samdwyer/levelforge/internal/telemetry"
)

const usage = `usage: levelforge <command> [flags]

commands:
  generate    generate a level and print it as ASCII or JSON
  preview     browse generated levels in the terminal
  serve       run the HTTP API
  archetypes  list the available archetypes
`

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_LEVELFORGE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.OptionsFromEnv())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Levels will be generated without observability")
		shutdown = func(context.Context) error { return nil }
	}

	registry, err := presets.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load archetype presets: %v", err)
	}
	director := layout.NewDirector(registry)

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "generate":
		err = runGenerate(ctx, director, registry, args)
	case "preview":
		err = runPreview(ctx, director, registry, args)
	case "serve":
		err = runServe(ctx, director, registry, args)
	case "archetypes":
		err = runArchetypes(director, registry, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		err = fmt.Errorf("unknown command %q", cmd)
	}

	flushTelemetry(shutdown)

	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

// flushTelemetry shuts the tracer provider down, retrying transient export
// failures a few times.
func flushTelemetry(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, shutdown(ctx)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3),
	)
	if err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}
}

func runGenerate(ctx context.Context, director *layout.Director, registry *presets.Registry, args []string) error {
	opts, err := parseGenerateFlags(args)
	if err != nil {
		return err
	}
	catalog := i18n.MustLoad(opts.lang)

	result, err := director.Generate(ctx, opts.cfg, nil)
	if err != nil {
		return err
	}

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := writeResult(out, result, registry, opts.format, opts.color); err != nil {
		return err
	}
	printSummary(os.Stderr, catalog, result)
	return nil
}

func runPreview(ctx context.Context, director *layout.Director, registry *presets.Registry, args []string) error {
	opts, err := parseGenerateFlags(args)
	if err != nil {
		return err
	}
	if _, err := director.Resolve(opts.cfg); err != nil {
		return err
	}

	v, err := preview.New(director, registry, i18n.MustLoad(opts.lang), opts.cfg)
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	return v.Run(ctx)
}

func runServe(ctx context.Context, director *layout.Director, registry *presets.Registry, args []string) error {
	addr, err := parseServeFlags(args)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewHandler(director, registry).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runArchetypes(director *layout.Director, registry *presets.Registry, args []string) error {
	lang, err := parseLangFlag("archetypes", args)
	if err != nil {
		return err
	}
	catalog := i18n.MustLoad(lang)

	for _, id := range registry.IDs() {
		def := registry.GetByID(id)
		hooks := strings.Join(director.Hooks(layout.Archetype(id)), ",")
		fmt.Println(catalog.Get("ARCHETYPE_LINE", def.ID, def.Recipe, hooks))
	}
	return nil
}
