package cmd

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/arl/gogeo/f32/d3"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"

	"github.com/haktan313/navmesh"
	"github.com/haktan313/navmesh/objmesh"
	"github.com/haktan313/navmesh/recast"
)

var cfgVal string

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build OUTFILE",
	Short: "build walkable regions from input geometry",
	Long: `Build walkable region data from level geometry in OBJ. The build
process is controlled by the settings file given with --config. The result
is dumped to OUTFILE in gob binary format, readable with the infos
subcommand.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&cfgVal, "config", "navmesh.yml", "build settings file")
}

func doBuild(cmd *cobra.Command, args []string) {
	outfile := args[0]

	var settings Settings
	check(unmarshalYAMLFile(cfgVal, &settings))
	if settings.Input == "" {
		check(fmt.Errorf("build settings file %q has no 'input' mesh set", cfgVal))
	}

	mesh, err := objmesh.Load(settings.Input)
	check(err)

	var scene navmesh.Scene
	scene.AddObject(settings.Input, &navmesh.Mesh{Verts: mesh.Verts, Tris: mesh.Tris}, mgl32.Ident4())

	cfg := recast.Config{
		BMin:        d3.NewVec3XYZ(settings.BMin[0], settings.BMin[1], settings.BMin[2]),
		BMax:        d3.NewVec3XYZ(settings.BMax[0], settings.BMax[1], settings.BMax[2]),
		Cs:          settings.CellSize,
		Ch:          settings.CellHeight,
		AgentHeight: settings.AgentHeight,
		AgentRadius: settings.AgentRadius,
		MaxClimb:    settings.MaxClimb,
	}

	ctx := recast.NewContext(true)
	var pipeline navmesh.NavigationPipeline
	artifacts, err := pipeline.Build(ctx, &scene, cfg)
	check(err)

	recast.LogBuildTimes(ctx, ctx.AccumulatedTime(recast.TimerTotal))
	for i := 0; i < ctx.LogCount(); i++ {
		fmt.Println(ctx.LogText(i))
	}

	if ok, aerr := confirmIfExists(outfile,
		fmt.Sprintf("file name %s already exists, overwrite? [y/N]", outfile)); !ok {
		if aerr == nil {
			fmt.Println("aborted by user...")
		} else {
			fmt.Println("aborted,", aerr)
		}
		return
	}

	f, err := os.Create(outfile)
	check(err)
	defer f.Close()

	check(gob.NewEncoder(f).Encode(artifacts.Dump()))
	fmt.Printf("%d regions written to '%s'\n", artifacts.RegionCount(), outfile)
}
