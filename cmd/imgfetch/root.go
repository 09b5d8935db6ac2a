package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"imgfetch/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	noColor    bool
	verbose    bool
)

// rootCmd downloads the built-in image list when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "imgfetch",
	Short: "Download a fixed set of website images into ./images",
	Long: `imgfetch downloads a built-in list of images into the images directory
under the current working directory.

Files that already exist are left untouched, so running it again only
fetches what is missing. A failed download is reported and skipped; the
run always continues with the next image.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd.Context())
	},
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), versionString())
	},
}

func versionString() string {
	return fmt.Sprintf("imgfetch %s (commit: %s, built: %s)\nGo Version: %s\nOS/Arch: %s/%s\n",
		version, gitCommit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Execute runs the root command and exits 1 on a fatal error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("Error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.imgfetch.yaml or ~/.config/imgfetch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// commandLineFlags collects the flags that were set explicitly
func commandLineFlags() map[string]interface{} {
	flags := make(map[string]interface{})
	if logLevel != "" {
		flags["log-level"] = logLevel
	}
	if verbose {
		flags["log-level"] = "debug"
	}
	if noColor {
		flags["no-color"] = true
	}
	return flags
}
