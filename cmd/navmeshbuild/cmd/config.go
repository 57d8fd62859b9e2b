package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Settings is the YAML-serializable build configuration: one input mesh,
// the grid bounds and cell sizes, and the three agent parameters of
// recast.Config (of which the pipeline reads agentHeight and maxClimb;
// agentRadius is carried but not used).
type Settings struct {
	Input       string     `yaml:"input"`
	BMin        [3]float32 `yaml:"bmin"`
	BMax        [3]float32 `yaml:"bmax"`
	CellSize    float32    `yaml:"cellSize"`
	CellHeight  float32    `yaml:"cellHeight"`
	AgentHeight float32    `yaml:"agentHeight"`
	AgentRadius float32    `yaml:"agentRadius"`
	MaxClimb    float32    `yaml:"maxClimb"`
}

func defaultSettings() Settings {
	return Settings{
		Input:       "",
		BMin:        [3]float32{-50, -10, -50},
		BMax:        [3]float32{50, 10, 50},
		CellSize:    0.3,
		CellHeight:  0.2,
		AgentHeight: 2.0,
		AgentRadius: 0.6,
		MaxClimb:    0.9,
	}
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with
default values. If FILE is not provided, 'navmesh.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "navmesh.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, defaultSettings()))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
