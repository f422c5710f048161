// cmd/root.go
/*
Copyright © 2025 AceTeam <dev@aceteam.ai>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aceteam-ai/bikeshare-cli/internal/catalog"
	"github.com/aceteam-ai/bikeshare-cli/internal/tui"
)

// dataDirEnv names the environment variable that points at the trip files.
const dataDirEnv = "BIKESHARE_DATA_DIR"

var cfgFile string
var dataDir string
var debugMode bool
var noColor bool

// debugLogFile is the file handle for debug logging
var debugLogFile *os.File
var debugLogMu sync.Mutex
var debugLogInitOnce sync.Once

// configDir is ~/.bikeshare-cli, or "" when the home directory is unknown.
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".bikeshare-cli")
}

// initDebugLogFile initializes the debug log file
func initDebugLogFile() {
	base := configDir()
	if base == "" {
		return
	}

	logDir := filepath.Join(base, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(logDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	debugLogFile = f

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(debugLogFile, "\n=== Debug session started: %s ===\n", timestamp)
}

// Debug prints a message if debug mode is enabled and writes to log file
func Debug(format string, args ...interface{}) {
	if !debugMode {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	// stderr keeps --json output parseable
	fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)

	debugLogMu.Lock()
	debugLogInitOnce.Do(initDebugLogFile)
	if debugLogFile != nil {
		fmt.Fprintf(debugLogFile, "[%s] %s\n", timestamp, msg)
	}
	debugLogMu.Unlock()
}

// loadCatalog reads --config, else ~/.bikeshare-cli/config.yaml when it
// exists, else the built-in catalog. The data directory is then taken from
// --data-dir, then BIKESHARE_DATA_DIR, then the catalog itself.
func loadCatalog() (*catalog.Catalog, error) {
	path := cfgFile
	if path == "" {
		if base := configDir(); base != "" {
			candidate := filepath.Join(base, "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("could not stat %s: %w", candidate, err)
			}
		}
	}

	cat := catalog.Default()
	if path != "" {
		var err error
		if cat, err = catalog.Load(path); err != nil {
			return nil, err
		}
		Debug("catalog loaded from %s", path)
	}

	cat.DataDir = resolveDataDir(dataDir, os.Getenv(dataDirEnv), cat.DataDir)
	Debug("data dir: %s", cat.DataDir)
	return cat, nil
}

// resolveDataDir picks the first non-empty of flag, env and configured.
func resolveDataDir(flag, env, configured string) string {
	for _, dir := range []string{flag, env, configured} {
		if dir != "" {
			return dir
		}
	}
	return "."
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data from the terminal",
	Long: `An interactive explorer for the Chicago, New York City and Washington
bikeshare trip files. Pick a city, a month and a day of week to see the most
frequent travel times, popular stations, trip durations and rider breakdowns.

Run without a subcommand to start the interactive explorer.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		if debugMode {
			fullCmd := cmd.CommandPath()
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if f.Name == "debug" {
					return
				}
				if f.Value.Type() == "bool" {
					fullCmd += " --" + f.Name
				} else {
					fullCmd += " --" + f.Name + "=" + f.Value.String()
				}
			})
			if len(args) > 0 {
				fullCmd += " " + strings.Join(args, " ")
			}
			Debug("command: %s", fullCmd)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExplore(cmd, &rootExplore)
	},
}

var rootExplore exploreOptions

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "catalog file (default is $HOME/.bikeshare-cli/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the city trip files (env "+dataDirEnv+")")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	addExploreFlags(rootCmd, &rootExplore)
}
