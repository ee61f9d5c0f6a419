// Package cli implements the planexa command-line interface.
//
// The CLI exposes two main commands: generate, which runs the floor plan
// pipeline and writes artifacts to disk, and serve, which starts the HTTP
// front end. A cache command manages the local plan cache. Logging uses
// charmbracelet/log at info level, or debug with --verbose.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Achu067/PLANEXA/pkg/buildinfo"
	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "planexa"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Planexa generates multi-storey building floor plans",
		Long:         `Planexa is a procedural floor plan generator: it allocates rooms across floors, packs them into the footprint, derives walls, doors and windows, places furniture, and renders the result as SVG, PNG, PDF or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cch, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/planexa/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseRooms parses the --rooms flag, e.g. "bedroom:2,bathroom:1".
func parseRooms(s string) (map[string]int, error) {
	rooms := make(map[string]int)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		typ, countStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"invalid room spec %q (expected type:count, e.g. bedroom:2)", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"invalid room count in %q: %v", part, err)
		}
		rooms[strings.TrimSpace(typ)] += n
	}
	if len(rooms) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"no rooms specified (expected e.g. bedroom:2,bathroom:1)")
	}
	return rooms, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// sortedNames returns artifact names in a stable display order.
func sortedNames(artifacts map[string][]byte) []string {
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
