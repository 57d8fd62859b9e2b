package main

import "github.com/haktan313/navmesh/cmd/navmeshbuild/cmd"

func main() {
	cmd.Execute()
}
