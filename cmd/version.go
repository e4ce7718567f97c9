package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// buildVersion is the octochip version string. It defaults to "dev" and
// is meant to be set at build time, e.g.:
//
//	go build -ldflags "-X github.com/rowan-voss/octochip/cmd.buildVersion=v0.1.0"
var buildVersion = "dev"

// versionCmd returns the caller's installed octochip version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed octochip version",
	Long:  "Run `octochip version` to get your current octochip version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		fmt.Println("The version command does not take any arguments")
		os.Exit(1)
	}
	fmt.Println(buildVersion)
}
