package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "bricklayer",
	Short: "solve and judge ICFP 2021 'Brick Layer' pose puzzles",
	Long: `bricklayer works with problem and solution files for the ICFP 2021
pose-fitting puzzle:
	- parse a problem file and print it back out,
	- validate a solution against a problem (topology, elasticity, containment),
	- compute a solution's dislikes score,
	- search for a pose that fits the hole (solve),
	- export a problem/solution pair as an OBJ wireframe for inspection.`,
}

// Execute adds all child commands to the root command and parses flags.
// Called once from main.main. Exit code is 0 on success, 1 on any argument
// or I/O error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
