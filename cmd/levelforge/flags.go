package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/samdwyer/levelforge/internal/layout"
)

const defaultAddr = ":8080"

type generateOptions struct {
	cfg    layout.Config
	format string
	color  bool
	output string
	lang   string
}

// parseGenerateFlags builds a level config from an optional -config file and
// explicit flags. Flags override the file.
func parseGenerateFlags(args []string) (generateOptions, error) {
	var opts generateOptions

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a JSON level config")
	levelType := fs.String("type", string(layout.Dungeon), "archetype to generate")
	width := fs.Int("width", 80, "grid width in tiles")
	height := fs.Int("height", 40, "grid height in tiles")
	seed := fs.Int64("seed", 0, "random seed, 0 for a random one (default $LEVELFORGE_SEED)")
	fs.StringVar(&opts.format, "format", "ascii", "output format: ascii or json")
	fs.BoolVar(&opts.color, "color", term.IsTerminal(int(os.Stdout.Fd())), "colour ASCII output")
	fs.StringVar(&opts.output, "o", "", "write output to a file instead of stdout")
	fs.StringVar(&opts.lang, "lang", os.Getenv("LANG"), "language for labels")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return opts, err
		}
		if opts.cfg, err = layout.ParseConfig(data); err != nil {
			return opts, fmt.Errorf("%s: %w", *configPath, err)
		}
	} else {
		opts.cfg = layout.Config{
			LevelType:  layout.Archetype(*levelType),
			Dimensions: layout.Dimensions{Width: *width, Height: *height},
		}
	}

	if opts.cfg.Seed == 0 {
		if env := os.Getenv("LEVELFORGE_SEED"); env != "" {
			s, err := strconv.ParseInt(env, 10, 64)
			if err != nil {
				return opts, fmt.Errorf("LEVELFORGE_SEED: %w", err)
			}
			opts.cfg.Seed = s
		}
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
		switch f.Name {
		case "type":
			opts.cfg.LevelType = layout.Archetype(*levelType)
		case "width":
			opts.cfg.Dimensions.Width = *width
		case "height":
			opts.cfg.Dimensions.Height = *height
		case "seed":
			opts.cfg.Seed = *seed
		}
	})

	if opts.output != "" && !explicit["color"] {
		opts.color = false
	}

	if opts.format != "ascii" && opts.format != "json" {
		return opts, fmt.Errorf("unknown format %q", opts.format)
	}
	return opts, nil
}

// parseServeFlags returns the listen address: -addr, then $LEVELFORGE_ADDR,
// then :8080.
func parseServeFlags(args []string) (string, error) {
	addr := os.Getenv("LEVELFORGE_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&addr, "addr", addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return addr, nil
}

func parseLangFlag(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	lang := fs.String("lang", os.Getenv("LANG"), "language for labels")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *lang, nil
}
