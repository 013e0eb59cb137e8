package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"lumen/internal/config"
	"lumen/internal/debug"
	lerrors "lumen/internal/errors"
	"lumen/internal/interact"
	"lumen/internal/page"
	"lumen/internal/reveal"
	"lumen/internal/store"
	"lumen/internal/theme"
	"lumen/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

//go:embed sample.md
var samplePage string

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	themeDefault := config.GetString(config.KeyTheme)
	storagePathDefault := config.GetString(config.KeyStoragePath)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)
	debugDefault := config.GetBool(config.KeyDebug)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	pageFlag := flag.String("page", "", "Path to the page source (markdown with optional front matter)")
	themeFlag := flag.String("theme", themeDefault, "Theme preference (light, dark, auto)")
	storagePathFlag := flag.String("storage-path", storagePathDefault, "Path to the preference database file")
	outputFormatFlag := flag.String("output-format", outputFormatDefault, "Markdown style (rich, light, plain)")
	debugFlag := flag.Bool("debug", debugDefault, "Write debug logs to ~/.lumen/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		theme:        themeFlag,
		storagePath:  storagePathFlag,
		outputFormat: outputFormatFlag,
		debug:        debugFlag,
	}, visited)

	if runtime.debug {
		if err := debug.Init(true); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug logging disabled: %v\n", err)
		}
		defer debug.Close()
	}

	doc, err := loadDocument(*pageFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st := openStore(runtime.storagePath)
	defer st.Close()

	appCfg := ui.Config{
		Doc:          doc,
		Store:        st,
		Detector:     theme.TerminalScheme{},
		Clipboard:    interact.SystemClipboard{},
		OutputFormat: runtime.outputFormat,
		Reveal: reveal.Options{
			Threshold:    config.GetFloat64(config.KeyRevealThreshold),
			BottomMargin: config.GetInt(config.KeyRevealMargin),
		},
	}

	if err := runProgram(appCfg, runtime.theme, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, themeOverride string, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		if errors.Is(err, ui.ErrNoDocument) {
			return err
		}
		return fmt.Errorf("initialize UI: %w", err)
	}
	if themeOverride != "" {
		app.Controller().SetPreference(theme.ParsePreference(themeOverride))
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// loadDocument parses the page at path, or the embedded sample when no
// path is given.
func loadDocument(path string) (*page.Document, error) {
	src := samplePage
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", path, err)
		}
		src = string(data)
	}
	doc, err := page.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

// openStore opens the preference database, falling back to an in-memory
// store when persistent storage is unavailable. Preferences then last for
// the session only.
func openStore(path string) store.Store {
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			debug.Logf("default storage path: %v", err)
			return store.NewMemoryStore()
		}
		path = p
	}
	st, err := store.OpenSQLite(path)
	if err != nil {
		if lerrors.IsCode(err, lerrors.CodeStorageUnavailable) {
			debug.Logf("storage unavailable at %s, using session store: %v", path, err)
		} else {
			debug.Logf("open storage %s: %v", path, err)
		}
		return store.NewMemoryStore()
	}
	return st
}

type runtimeFlags struct {
	theme        *string
	storagePath  *string
	outputFormat *string
	debug        *bool
}

type runtimeOptions struct {
	theme        string
	storagePath  string
	outputFormat string
	debug        bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	themePref := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themePref = strings.TrimSpace(*flags.theme)
	}

	storagePath := strings.TrimSpace(config.GetString(config.KeyStoragePath))
	if flagWasExplicitlySet("storage-path", visited) {
		storagePath = strings.TrimSpace(*flags.storagePath)
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	debugEnabled := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) {
		debugEnabled = *flags.debug
	}

	return runtimeOptions{
		theme:        themePref,
		storagePath:  storagePath,
		outputFormat: outputFormat,
		debug:        debugEnabled,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
