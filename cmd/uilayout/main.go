// Command uilayout loads layout scenarios from YAML and reports the
// positions and sizes the layout engine computes for them.
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-ui/internal/debug"
	"github.com/spf13/cobra"
)

var (
	debugPath string
	fit       bool
)

var rootCmd = &cobra.Command{
	Use:           "uilayout",
	Short:         "Inspect linear layouts and virtualized lists",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugPath == "" {
			return nil
		}
		return debug.Init(debugPath)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&debugPath, "debug", "", "write debug records to this file (default $"+debug.EnvVar+")")
	rootCmd.PersistentFlags().BoolVar(&fit, "fit", false, "size the label column to the terminal width")

	rootCmd.AddCommand(runCmd, visibleCmd, scrollCmd)
}

// labelWidth returns the label column width for output.
func labelWidth() int {
	if !fit {
		return defaultLabelWidth
	}
	width, ok := terminalWidth(int(os.Stdout.Fd()))
	if !ok {
		return defaultLabelWidth
	}
	// index, four numeric columns and draws take 50 columns.
	return max(8, width-50)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
