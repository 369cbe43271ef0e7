package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limbo/toki/internal/repository"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Prints a motivational quote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), repository.NewQuotesRepo().Random())
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
