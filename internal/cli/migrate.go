package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/migrations"
)

// errNoDatabaseURL is returned when neither --database-url nor DATABASE_URL is set.
var errNoDatabaseURL = errors.New("database url is required: pass --database-url or set DATABASE_URL")

func newMigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.PersistentFlags().StringVar(&dsn, "database-url", "", "Postgres URL (default $DATABASE_URL)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(dsn, func(p *goose.Provider) error {
					results, err := p.Up(cmd.Context())
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					if len(results) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
					}
					for _, r := range results {
						fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(dsn, func(p *goose.Provider) error {
					r, err := p.Down(cmd.Context())
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", r.Source.Path)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(dsn, func(p *goose.Provider) error {
					statuses, err := p.Status(cmd.Context())
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "VERSION\tFILE\tSTATE\tAPPLIED AT")
					for _, s := range statuses {
						applied := "-"
						if !s.AppliedAt.IsZero() {
							applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.Source.Path, s.State, applied)
					}
					return w.Flush()
				})
			},
		},
	)

	return cmd
}

// withProvider opens the database, builds a goose provider over the embedded
// migrations and hands it to fn. The connection is closed afterwards.
func withProvider(dsn string, fn func(*goose.Provider) error) error {
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return errNoDatabaseURL
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	return fn(provider)
}
