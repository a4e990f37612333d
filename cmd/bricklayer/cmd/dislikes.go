package cmd

import (
	"fmt"
	"os"

	"github.com/kesling/bricklayer"
	"github.com/spf13/cobra"
)

var dislikesCmd = &cobra.Command{
	Use:   "dislikes PROBLEM SOLUTION",
	Short: "compute a solution's dislikes score",
	Args:  cobra.ExactArgs(2),
	Run:   doDislikes,
}

func init() {
	RootCmd.AddCommand(dislikesCmd)
}

func doDislikes(cmd *cobra.Command, args []string) {
	problem, sol, err := readProblemAndSolution(args[0], args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	dislikes, err := bricklayer.ComputeDislikes(problem, sol)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(dislikes)
}
