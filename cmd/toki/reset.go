package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/limbo/toki/internal/repository"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clears stored data",
	Long: `Clears stored data. Mood entries are always removed:

	toki reset
	toki reset --accounts --remembered
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStores()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err = st.moods.ClearAll(ctx); err != nil {
			return err
		}
		slog.Info("mood entries cleared")
		if accounts, _ := cmd.Flags().GetBool("accounts"); accounts {
			if err = st.kv.Clear(ctx, repository.AccountsNamespace); err != nil {
				return errors.New("clearing accounts: " + err.Error())
			}
			slog.Info("accounts cleared")
		}
		if remembered, _ := cmd.Flags().GetBool("remembered"); remembered {
			if err = st.credentials.Forget(ctx); err != nil {
				return err
			}
			slog.Info("remembered login forgotten")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().Bool("accounts", false, "also remove every account")
	resetCmd.Flags().Bool("remembered", false, "also forget the remembered login")
}
