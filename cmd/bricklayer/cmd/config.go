package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kesling/bricklayer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a search-limits file",
	Long: `Create a search-limits file in YAML format, prefilled with default
values. If FILE is not provided, 'bricklayer.yml' is used.`,
	Run: doConfig,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func doConfig(cmd *cobra.Command, args []string) {
	path := "bricklayer.yml"
	if len(args) >= 1 {
		path = args[0]
	}

	ok, err := confirmIfExists(path, fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
	if err != nil {
		fmt.Println("aborted,", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("aborted by user...")
		return
	}

	data, err := yaml.Marshal(bricklayer.DefaultSearchLimits())
	if err != nil {
		fmt.Println("failed to encode default search limits:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Println("failed to write search limits file:", err)
		os.Exit(1)
	}
	fmt.Printf("search limits written to '%s'\n", path)
}

// loadSearchLimits reads search limits from path, falling back to
// DefaultSearchLimits() if the file doesn't exist.
func loadSearchLimits(path string) (bricklayer.SearchLimits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bricklayer.DefaultSearchLimits(), nil
		}
		return bricklayer.SearchLimits{}, err
	}
	limits := bricklayer.DefaultSearchLimits()
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return bricklayer.SearchLimits{}, err
	}
	return limits, nil
}

// marshalIndent renders v as pretty-printed JSON for CLI output; the wire
// format itself (Position/Edge as tuples) is unaffected by indentation.
func marshalIndent(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
