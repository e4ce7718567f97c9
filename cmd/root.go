package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base for all commands. Bare octochip with no subcommand
// is rejected up front rather than falling through to Run's generic
// message, the way the teacher's own rootCmd.Args does.
var rootCmd = &cobra.Command{
	Use:   "octochip [command]",
	Short: "octochip is a CHIP-8 / SUPER-CHIP / XO-CHIP emulator",
	Long:  "octochip is a CHIP-8 / SUPER-CHIP / XO-CHIP emulator",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires at least 1 argument")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Unknown command. Try `octochip help` for more information")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs octochip according to the user's command/subcommand/flags
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
