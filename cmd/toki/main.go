// Command toki serves the mood tracker API and maintains its local storage.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limbo/toki/internal/service"
	"github.com/limbo/toki/pkg/cleanup"
)

var rootCmd = &cobra.Command{
	Use:   "toki",
	Short: "Mood tracker backend",
	Long: `Mood tracker backend. Without a subcommand the API server is started:

	toki
	toki serve
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
		service.InitValidator()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func main() {
	err := rootCmd.Execute()
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "toki: %v\n", err)
		os.Exit(1)
	}
}
