package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is the classic arcade game, in your terminal",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	backend     = "file"
	backendArgs = ""
	scoreKey    = highscore.DefaultKey
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", backend, "high score backend, as one of: [inmem, file, redis, sql]")
	rootCmd.PersistentFlags().StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")
	rootCmd.PersistentFlags().StringVar(&scoreKey, "key", scoreKey, "key the high score is stored under")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highScoreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
