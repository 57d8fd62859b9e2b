package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "navmeshbuild",
	Short: "build walkable-region data from level geometry",
	Long: `navmeshbuild voxelizes an OBJ scene, builds a height-field, filters
walkable spans and segments them into regions:
	- generate a build settings file (config),
	- run a build and dump its artifacts to a binary file (build),
	- inspect a previously built dump (infos).`,
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
