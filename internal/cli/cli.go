// Package cli provides the command-line interface for the username
// wordlist generator. It collects full names from flags, a file, or stdin,
// assembles the generation options from an optional YAML profile plus
// flags, and writes the sorted wordlist to a file or stdout.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/zierax/usergen/internal/config"
	"github.com/zierax/usergen/internal/generate"
	"github.com/zierax/usergen/internal/wordlist"
)

// ErrNoNames indicates that no name source was provided at all.
var ErrNoNames = errors.New("no names provided: use --names, --input, or pipe names on stdin")

// NewApp creates and configures the main CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:     "usergen",
		Usage:    "Generate username wordlists from personal names",
		Version:  "2.0.0",
		Compiled: time.Now(),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "names",
				Aliases: []string{"n"},
				Usage:   "full names given directly on the command line",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input file with names (First Last format, one per line)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout)",
			},
			&cli.StringSliceFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "username formats to generate (all, standard, dotted, underscored, dashed, initial, reversed)",
			},
			&cli.StringFlag{
				Name:  "numbers",
				Usage: "number suffixes (e.g. \"0-99\", \"1,2,3\", or \"123\")",
			},
			&cli.StringFlag{
				Name:  "years",
				Usage: "year suffixes (e.g. \"2020-2024\" or \"2023,2024\")",
			},
			&cli.StringFlag{
				Name:  "words",
				Usage: "custom word suffixes (comma-separated, e.g. \"admin,user,test\")",
			},
			&cli.BoolFlag{
				Name:  "leet",
				Usage: "add l33t speak variations (a->4, e->3, i->1, o->0, ...)",
			},
			&cli.StringFlag{
				Name:  "caps",
				Usage: "capitalization variations (none, first, upper, all)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML generation profile; flags override profile values",
				EnvVars: []string{"USERGEN_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress progress logging",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level for structured JSON output (debug, info, warn, error)",
				EnvVars: []string{"USERGEN_LOG_LEVEL"},
			},
		},
		Action: generateAction,
	}
}

// generateAction implements the generation pipeline end to end.
func generateAction(c *cli.Context) error {
	logLevel := ParseLogLevelOrDefault(c.String("log-level"))
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	stdout, stderr := NewLoggers(logLevel)

	profile, err := buildProfile(c)
	if err != nil {
		stderr.Error("invalid configuration", "error", err)
		return err
	}
	opts, err := profile.Options()
	if err != nil {
		stderr.Error("invalid configuration", "error", err)
		return err
	}

	names, err := collectNames(c)
	if err != nil {
		stderr.Error("failed to collect names", "error", err)
		return err
	}

	stdout.Info("generating usernames",
		"names", len(names),
		"formats", profile.Formats,
		"leet", opts.Leet,
		"caps", string(opts.Caps))

	usernames, err := generate.Run(names, opts)
	if err != nil {
		stderr.Error("generation failed", "error", err)
		return err
	}

	if outputPath := c.String("output"); outputPath != "" {
		if err := wordlist.WriteFile(outputPath, usernames, stdout); err != nil {
			stderr.Error("failed to write wordlist", "output", outputPath, "error", err)
			return err
		}
		stdout.Info("wordlist written",
			"output", outputPath,
			"usernames", len(usernames))
		return nil
	}

	if err := wordlist.Write(os.Stdout, usernames); err != nil {
		stderr.Error("failed to write wordlist", "error", err)
		return err
	}
	stdout.Info("generation complete", "usernames", len(usernames))
	return nil
}

// buildProfile assembles the effective generation profile: the defaults,
// overlaid by an optional YAML profile, overlaid by any flags the user set.
func buildProfile(c *cli.Context) (*config.Profile, error) {
	profile := config.DefaultProfile()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadProfile(path)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if c.IsSet("format") {
		profile.Formats = c.StringSlice("format")
	}
	if c.IsSet("numbers") {
		profile.Suffixes.Numbers = c.String("numbers")
	}
	if c.IsSet("years") {
		profile.Suffixes.Years = c.String("years")
	}
	if c.IsSet("words") {
		profile.Suffixes.Words = c.String("words")
	}
	if c.IsSet("leet") {
		profile.Leet = c.Bool("leet")
	}
	if c.IsSet("caps") {
		profile.Caps = c.String("caps")
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// collectNames gathers the raw input names. Names given with --names win;
// otherwise an input file is read; otherwise stdin is consumed when piped.
func collectNames(c *cli.Context) ([]string, error) {
	if names := c.StringSlice("names"); len(names) > 0 {
		return names, nil
	}

	if path := c.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		return scanNames(f)
	}

	// Only fall back to stdin when something is actually piped in.
	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		return scanNames(os.Stdin)
	}

	return nil, ErrNoNames
}

// scanNames reads one name per line, skipping blank lines.
func scanNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	return names, nil
}
