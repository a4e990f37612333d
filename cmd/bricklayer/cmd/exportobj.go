package cmd

import (
	"fmt"
	"os"

	"github.com/kesling/bricklayer"
	"github.com/spf13/cobra"
)

var exportOBJCmd = &cobra.Command{
	Use:   "export-obj PROBLEM [SOLUTION] OUT",
	Short: "export a problem and optional pose as an OBJ wireframe",
	Long: `Write the hole polygon and the figure's edges (posed, if a
solution file is given, otherwise in their original position) as an OBJ
wireframe file, for inspection in any OBJ viewer.`,
	Args: cobra.RangeArgs(2, 3),
	Run:  doExportOBJ,
}

func init() {
	RootCmd.AddCommand(exportOBJCmd)
}

func doExportOBJ(cmd *cobra.Command, args []string) {
	problemData, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("failed to read problem file:", err)
		os.Exit(1)
	}
	problem, err := readProblem(problemData)
	if err != nil {
		fmt.Println("failed to parse problem file:", err)
		os.Exit(1)
	}

	var sol bricklayer.Solution
	outPath := args[1]
	if len(args) == 3 {
		solutionData, err := os.ReadFile(args[1])
		if err != nil {
			fmt.Println("failed to read solution file:", err)
			os.Exit(1)
		}
		sol, err = readSolution(solutionData)
		if err != nil {
			fmt.Println("failed to parse solution file:", err)
			os.Exit(1)
		}
		outPath = args[2]
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Println("failed to create output file:", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := bricklayer.WriteOBJ(out, problem, sol); err != nil {
		fmt.Println("failed to write OBJ file:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", outPath)
}
