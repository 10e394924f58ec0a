package cli

import (
	"fmt"
	"io"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres"
)

// MigrateCmd devuelve el comando migrate con sus subcomandos up, status y down.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Administra el esquema (tablas de la Receita y vistas de consulta)",
	}
	cmd.AddCommand(migrateUpCmd(), migrateStatusCmd(), migrateDownCmd())
	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(e *env, m *postgres.Migrator) error) error {
	e, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	m, err := postgres.NewMigrator(e.pool)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(e, m)
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(e *env, m *postgres.Migrator) error {
				reports, err := m.Up(e.ctx)
				printReports(cmd.OutOrStdout(), reports)
				if err != nil {
					return err
				}
				if len(reports) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Sin migraciones pendientes")
				}
				return nil
			})
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Muestra el estado de cada migración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(e *env, m *postgres.Migrator) error {
				reports, err := m.Status(e.ctx)
				if err != nil {
					return err
				}
				printReports(cmd.OutOrStdout(), reports)
				return nil
			})
		},
	}
}

func migrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revierte la última migración aplicada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(e *env, m *postgres.Migrator) error {
				report, err := m.Down(e.ctx)
				if err != nil {
					return err
				}
				if report == nil {
					fmt.Fprintln(cmd.OutOrStdout(), warnColor.Sprint("no hay migraciones aplicadas"))
					return nil
				}
				printReports(cmd.OutOrStdout(), []postgres.MigrationReport{*report})
				return nil
			})
		},
	}
}

func printReports(w io.Writer, reports []postgres.MigrationReport) {
	for _, r := range reports {
		state := warnColor.Sprint(r.State)
		if r.State == string(goose.StateApplied) {
			state = okColor.Sprint(r.State)
		}
		line := fmt.Sprintf("%05d  %-8s  %s", r.Version, state, r.Source)
		if !r.AppliedAt.IsZero() {
			line += "  " + r.AppliedAt.Format("2006-01-02 15:04:05")
		}
		if r.Duration > 0 {
			line += "  " + r.Duration.String()
		}
		fmt.Fprintln(w, line)
	}
}
