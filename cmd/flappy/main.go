// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as flappy play)
//	flappy play              - Play
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set the pipe gap seed for reproducible layouts
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flap through the gap between the pipes. Every pipe pair you pass
scores a point; touching a pipe, the ceiling or the floor ends the run.

Examples:
  flappy
  flappy --seed 42
  flappy play --config ./my-flappy.yaml
  flappy config > ~/.arcade/configs/flappy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Pipe gap seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
