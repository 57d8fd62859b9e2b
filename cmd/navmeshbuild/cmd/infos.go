package cmd

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haktan313/navmesh"
)

// infosCmd represents the infos command.
var infosCmd = &cobra.Command{
	Use:   "infos DUMP",
	Short: "show infos about a build dump",
	Long: `Read a build dump written by 'build' and print region count,
voxel grid dimensions and span count on standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)
}

func doInfos(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	check(err)
	defer f.Close()

	var dump navmesh.Dump
	check(gob.NewDecoder(f).Decode(&dump))

	fmt.Printf("regions   : %d\n", dump.RegionCount)
	fmt.Printf("voxel grid: %d x %d x %d\n", dump.Voxels.W, dump.Voxels.H, dump.Voxels.D)
	fmt.Printf("spans     : %d\n", len(dump.Spans))
}
