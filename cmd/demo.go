package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kherve/classplan/infra/datasource"
)

var demoOutputPath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write the bundled demo problem as a JSON file",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoOutputPath, "output", "o", "", "problem file (default stdout)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := os.Stdout
	if demoOutputPath != "" {
		f, err := os.Create(demoOutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return datasource.WriteProblem(out, datasource.DemoProblem())
}
