package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "parse a problem file and print it back out",
	Long: `Read a problem file in JSON format, check it for consistency
(edge index ranges), then print it on standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  doParse,
}

func init() {
	RootCmd.AddCommand(parseCmd)
}

func doParse(cmd *cobra.Command, args []string) {
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

	fmt.Printf("%+v\n", problem)
}
