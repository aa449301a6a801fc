// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in the terminal
//	flappy menu              - Pick a difficulty, play, repeat
//	flappy scores            - Browse high scores and play history
//	flappy sim               - Run the autopilot headless and report scores
//	flappy config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--sound               - Start with sound on
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/app"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	settings   app.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Keep the bird in the air and fly it through the gaps between the pipes.

Available commands:
  play     - Play the game (default)
  menu     - Pick a difficulty, then play
  scores   - View high scores
  sim      - Run the autopilot without a screen
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --difficulty hard --sound
  flappy scores
  flappy sim --frames 10000 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&settings.ConfigPath, "config", "", "Path to custom game config YAML")
	pf.StringVar(&settings.Difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&settings.Sound, "sound", false, "Start with sound on (toggle in game with M)")
	pf.StringVar(&settings.LogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&settings.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
