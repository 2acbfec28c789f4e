package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/amterp/color"
	"github.com/scriptdeps/scriptdeps"
	"github.com/scriptdeps/scriptdeps/internal/config"
	"github.com/scriptdeps/scriptdeps/internal/itertools"
	"github.com/scriptdeps/scriptdeps/internal/logging"
)

var (
	cyanf    = color.New(color.FgCyan).SprintfFunc()
	hiblackf = color.New(color.FgHiBlack).SprintfFunc()
)

type outputFn = func(g scriptdeps.Graph, order []scriptdeps.ModuleKey) error

type cliConfig struct {
	configPath string
	sourceDir  string
	bundle     string
	includes   []string
	excludes   []string
	output     *outputFn
}

func ver() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "(devel)" {
		return ""
	}
	return bi.Main.Version
}

var allOutputFuncs = [...]outputFn{
	outputOrder,
	outputExtern,
	outputDot,
}

var allOutput = map[string]*outputFn{
	"order":  &allOutputFuncs[0],
	"extern": &allOutputFuncs[1],
	"dot":    &allOutputFuncs[2],
}

func outputOrder(g scriptdeps.Graph, order []scriptdeps.ModuleKey) error {
	width := len(fmt.Sprint(len(order)))
	for i, key := range itertools.Enumerate[int](slices.Values(order)) {
		fmt.Printf("%s %v\n", hiblackf("%*d.", width, i+1), key)
	}
	return nil
}

func outputExtern(g scriptdeps.Graph, order []scriptdeps.ModuleKey) error {
	for d := range g.ExternalDependencies() {
		fmt.Printf("%s %v\n", cyanf("@%v", d.Kind), d.Key)
	}
	return nil
}

func outputDot(g scriptdeps.Graph, order []scriptdeps.ModuleKey) error {
	fmt.Print("digraph {\n")
	fmt.Print("  node [style=filled,fillcolor=\"white\",shape=box];\n")
	for key := range g.Keys() {
		fmt.Printf("  %q;\n", key)
	}
	for d := range g.ExternalDependencies() {
		fmt.Printf("  %q [fillcolor=\"lightgray\"];\n", d.Key)
	}
	for key := range g.Keys() {
		deps, err := g.DependenciesOf(key)
		if err != nil {
			return err
		}
		for _, d := range deps {
			attrs := []string{}
			if d.Kind == scriptdeps.KindUsed {
				attrs = append(attrs, "style=\"dashed\"")
			}
			fmt.Printf("  %q -> %q [%s];\n", key, d.Key, strings.Join(attrs, ","))
		}
	}
	fmt.Print("}\n")
	return nil
}

func writeBundle(g scriptdeps.Graph, files []*scriptdeps.SourceFile, path string) (retErr error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); retErr == nil {
			retErr = err
		}
	}()
	return scriptdeps.WriteBundle(f, g, files)
}

func run(ctx context.Context, cfg *cliConfig) error {
	proj, err := config.Load(cfg.configPath)
	if err != nil {
		return err
	}
	sourceDir := cfg.sourceDir
	if sourceDir == "" {
		sourceDir = proj.SourceDir
	}
	includes := append(proj.Includes, cfg.includes...)
	excludes := append(proj.Excludes, cfg.excludes...)
	opts := []scriptdeps.ScanOption{scriptdeps.WithExcludes(excludes...)}
	if len(includes) > 0 {
		opts = append(opts, scriptdeps.WithIncludes(includes...))
	}
	files, err := scriptdeps.ScanDir(ctx, sourceDir, opts...)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "scanned source directory", "dir", sourceDir, "files", len(files))
	g := scriptdeps.BuildGraph(files)
	order, err := scriptdeps.Resolve(g)
	if err != nil {
		return err
	}
	if err := (*cfg.output)(g, order); err != nil {
		return err
	}
	bundle := cfg.bundle
	if bundle == "" {
		bundle = proj.Bundle
	}
	if bundle != "" {
		if err := writeBundle(g, files, bundle); err != nil {
			return err
		}
		slog.InfoContext(ctx, "wrote bundle", "path", bundle)
	}
	return nil
}

var slogLevel = func() *slog.LevelVar {
	lvl := &slog.LevelVar{}
	lvl.Set(logging.LevelWarn)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
	return lvl
}()

func choiceFlag[T any](p *T, name string, choices map[string]T, dflt string, usage string) {
	cstr := strings.Join(slices.Sorted(maps.Keys(choices)), ", ")
	var ok bool
	if *p, ok = choices[dflt]; !ok {
		panic(fmt.Errorf("invalid default for %v option: %v", name, dflt))
	}
	usage += fmt.Sprintf(" (one of: %v; default: %v)", cstr, dflt)
	flag.Func(name, usage, func(arg string) error {
		if arg == "" {
			arg = dflt
		}
		v, ok := choices[arg]
		if !ok {
			return fmt.Errorf("expected one of: %v", cstr)
		}
		*p = v
		return nil
	})
}

func parseFlags() *cliConfig {
	cfg := &cliConfig{}

	bumpLogLevel := func(lower bool) {
		slogLevel.Set(logging.BumpLevel(slogLevel.Level(), lower))
	}
	setLogLevel := func(arg string) error {
		lvl, err := logging.ParseLevel(arg)
		if err != nil {
			return err
		}
		slogLevel.Set(lvl)
		return nil
	}
	flag.BoolFunc("v", "Increase log verbosity.", func(arg string) error {
		switch arg {
		case "", "true":
			bumpLogLevel(true)
		default:
			return setLogLevel(arg)
		}
		return nil
	})
	flag.BoolFunc("q", "Decrease log verbosity.", func(arg string) error {
		switch arg {
		case "", "true":
			bumpLogLevel(false)
		default:
			return setLogLevel(arg)
		}
		return nil
	})

	colorChoices := map[string]bool{
		"auto":   color.NoColor,
		"never":  true,
		"always": false,
	}
	choiceFlag(&color.NoColor, "color", colorChoices, "auto",
		"Output colors according to `mode`.")
	choiceFlag(&cfg.output, "format", allOutput, "order",
		"Print the resolved modules according to `mode`.")
	flag.StringVar(&cfg.configPath, "c", config.DefaultFilename,
		"Read project settings from `file`.  A missing file is not an error.")
	flag.StringVar(&cfg.bundle, "o", "",
		"Write a bundle of all modules, in load order, to `file`.")
	flag.Func("include", "Only scan files matching `pattern` (repeatable; default: *.js).",
		func(arg string) error {
			cfg.includes = append(cfg.includes, arg)
			return nil
		})
	flag.Func("exclude", "Skip files matching `pattern` (repeatable).",
		func(arg string) error {
			cfg.excludes = append(cfg.excludes, arg)
			return nil
		})
	help := func(string) error {
		// Help requested explicitly goes to standard output so it can be piped to a pager.
		flag.CommandLine.SetOutput(os.Stdout)
		flag.Usage()
		os.Exit(0)
		return nil
	}
	helpUsage := "Print usage information and exit."
	flag.BoolFunc("h", helpUsage, help)
	flag.BoolFunc("help", helpUsage, help)
	flag.BoolFunc("version", "Print the version and exit.", func(string) error {
		v := ver()
		if v == "" {
			log.Fatal("the Go build information is unavailable; try passing the \"-buildvcs=true\" build option to go")
		}
		fmt.Printf("%s\n", v)
		os.Exit(0)
		return nil
	})
	flag.Parse()
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		cfg.sourceDir = args[0]
	default:
		log.Fatal("at most one source directory is accepted")
	}
	return cfg
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := parseFlags()
	if err := run(ctx, cfg); err != nil {
		slog.ErrorContext(ctx, "failed", "error", err)
		os.Exit(1)
	}
}
