package main

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"

	"github.com/limbo/toki/pkg/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Applies PostgreSQL migrations",
	Long: `Applies PostgreSQL migrations from the given directory:

	toki migrate --dir ./migrations
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		conn, err := sql.Open("postgres", pgConfig(config.New()).ConnString()+"?sslmode=disable")
		if err != nil {
			return errors.New("opening postgres: " + err.Error())
		}
		defer conn.Close()
		if err = goose.SetDialect("postgres"); err != nil {
			return err
		}
		return goose.Up(conn, dir)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().String("dir", "./migrations", "directory with migration files")
}
