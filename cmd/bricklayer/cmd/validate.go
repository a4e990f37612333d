package cmd

import (
	"fmt"
	"os"

	"github.com/kesling/bricklayer"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate PROBLEM SOLUTION",
	Short: "check a solution against a problem",
	Long: `Read a problem file and a solution file, then check the solution
against all three constraints (topology, elasticity, containment), printing
every constraint that fails.`,
	Args: cobra.ExactArgs(2),
	Run:  doValidate,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func doValidate(cmd *cobra.Command, args []string) {
	problem, sol, err := readProblemAndSolution(args[0], args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := bricklayer.Validate(problem, sol); err != nil {
		fmt.Println("invalid:", err)
		os.Exit(1)
	}
	fmt.Println("valid")
}

func readProblemAndSolution(problemPath, solutionPath string) (bricklayer.Problem, bricklayer.Solution, error) {
	problemData, err := os.ReadFile(problemPath)
	if err != nil {
		return bricklayer.Problem{}, bricklayer.Solution{}, fmt.Errorf("reading problem: %w", err)
	}
	solutionData, err := os.ReadFile(solutionPath)
	if err != nil {
		return bricklayer.Problem{}, bricklayer.Solution{}, fmt.Errorf("reading solution: %w", err)
	}
	problem, err := readProblem(problemData)
	if err != nil {
		return bricklayer.Problem{}, bricklayer.Solution{}, fmt.Errorf("parsing problem: %w", err)
	}
	sol, err := readSolution(solutionData)
	if err != nil {
		return bricklayer.Problem{}, bricklayer.Solution{}, fmt.Errorf("parsing solution: %w", err)
	}
	return problem, sol, nil
}
