package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kesling/bricklayer"
	"github.com/spf13/cobra"
)

var (
	solveConfigPath string
	solveVerbose    bool
	solveOutPath    string
)

var solveCmd = &cobra.Command{
	Use:   "solve PROBLEM",
	Short: "search for a pose that fits the hole",
	Long: `Parse a problem file, run the seeded depth-first search for a pose
minimising dislikes, and print the best solution found (or report that none
was found before the search's resource limits were reached).

Search limits are controlled by a YAML settings file; see 'bricklayer config'.`,
	Args: cobra.ExactArgs(1),
	Run:  doSolve,
}

func init() {
	RootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveConfigPath, "config", "bricklayer.yml", "search limits file")
	solveCmd.Flags().BoolVar(&solveVerbose, "verbose", false, "report search progress to stderr")
	solveCmd.Flags().StringVar(&solveOutPath, "out", "", "write the best solution to this file instead of stdout")
}

func doSolve(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("failed to read problem file:", err)
		os.Exit(1)
	}
	problem, err := readProblem(data)
	if err != nil {
		fmt.Println("failed to parse problem file:", err)
		os.Exit(1)
	}

	limits, err := loadSearchLimits(solveConfigPath)
	if err != nil {
		fmt.Println("failed to load search limits:", err)
		os.Exit(1)
	}

	var sctx *bricklayer.SearchContext
	if solveVerbose {
		sctx = bricklayer.NewSearchContext(os.Stderr)
		sctx.StepReport = func(info bricklayer.StepInfo) {
			fmt.Fprintf(os.Stderr, "expansions=%d visited=%d stack=%d best=%v dislikes=%d\n",
				info.Expansions, info.VisitedSize, info.StackDepth, info.HaveSolution, info.BestDislikes)
		}
	}

	sol, dislikes, ok := bricklayer.Solve(context.Background(), problem, limits, sctx)
	if !ok {
		fmt.Println("no solution found")
		os.Exit(1)
	}

	out, err := marshalIndent(sol)
	if err != nil {
		fmt.Println("failed to encode solution:", err)
		os.Exit(1)
	}

	if solveOutPath == "" {
		fmt.Printf("dislikes=%d\n%s\n", dislikes, out)
		return
	}
	if err := os.WriteFile(solveOutPath, out, 0o644); err != nil {
		fmt.Println("failed to write solution file:", err)
		os.Exit(1)
	}
	fmt.Printf("dislikes=%d, solution written to %s\n", dislikes, solveOutPath)
}
