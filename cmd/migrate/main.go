package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/stokaro/ptah/dbschema"
	"github.com/stokaro/ptah/migration/migrator"

	"github.com/jhoicas/gestion-api/migrations"
	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

const (
	databaseURLFlag = "database-url"
	timeoutFlag     = "timeout"
)

var migrateFlags = map[string]cobraflags.Flag{
	databaseURLFlag: &cobraflags.StringFlag{
		Name:       databaseURLFlag,
		Value:      "",
		Usage:      "Connection string de PostgreSQL (por defecto DATABASE_URL / DB_* de la configuración)",
		Persistent: true,
	},
	timeoutFlag: &cobraflags.StringFlag{
		Name:       timeoutFlag,
		Value:      "2m",
		Usage:      "Tiempo máximo de la operación (ej. 30s, 5m)",
		Persistent: true,
		ValidateFunc: func(v string) error {
			_, err := time.ParseDuration(v)
			return err
		},
	},
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migraciones del esquema de gestion-api",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cobraflags.RegisterMap(root, migrateFlags)
	root.AddCommand(
		&cobra.Command{Use: "up", Short: "Aplica todas las migraciones pendientes", RunE: withMigrator(up)},
		&cobra.Command{Use: "down", Short: "Revierte la última migración aplicada", RunE: withMigrator(down)},
		&cobra.Command{Use: "status", Short: "Muestra la versión actual y las pendientes", RunE: withMigrator(status)},
	)
	return root
}

type migrateFunc func(ctx context.Context, m *migrator.Migrator, log *logger.Logger, out io.Writer) error

// withMigrator resuelve los flags, abre la conexión de ptah sobre las migraciones embebidas y ejecuta fn.
func withMigrator(fn migrateFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		rawTimeout, err := migrateFlags[timeoutFlag].GetStringE()
		if err != nil {
			return fmt.Errorf("--%s: %w", timeoutFlag, err)
		}
		timeout, _ := time.ParseDuration(rawTimeout)

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
		if url := migrateFlags[databaseURLFlag].GetString(); url != "" {
			cfg.DB.DatabaseURL = url
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		conn, err := dbschema.ConnectToDatabase(cfg.DB.ConnectionString())
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer conn.Close()

		m, err := migrator.NewFSMigrator(conn, migrations.FS)
		if err != nil {
			return fmt.Errorf("carga de migraciones: %w", err)
		}
		return fn(ctx, m, log, cmd.OutOrStdout())
	}
}

func up(ctx context.Context, m *migrator.Migrator, log *logger.Logger, _ io.Writer) error {
	before, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return err
	}
	if err := m.MigrateUp(ctx); err != nil {
		return err
	}
	after, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return err
	}
	if after == before {
		log.Info().Int("version", after).Msg("esquema al día, nada que aplicar")
		return nil
	}
	log.Info().Int("from", before).Int("to", after).Msg("migraciones aplicadas")
	return nil
}

func down(ctx context.Context, m *migrator.Migrator, log *logger.Logger, _ io.Writer) error {
	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return err
	}
	if current == 0 {
		log.Info().Msg("no hay migraciones que revertir")
		return nil
	}
	if err := m.MigrateDown(ctx); err != nil {
		return err
	}
	log.Info().Int("version", current).Msg("migración revertida")
	return nil
}

func status(ctx context.Context, m *migrator.Migrator, _ *logger.Logger, out io.Writer) error {
	st, err := m.GetMigrationStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "versión actual: %d (%d pendientes de %d)\n", st.CurrentVersion, len(st.PendingMigrations), st.TotalMigrations)
	for _, mig := range m.MigrationProvider().Migrations() {
		state := "aplicada"
		if slices.Contains(st.PendingMigrations, mig.Version) {
			state = "pendiente"
		}
		fmt.Fprintf(out, "  %010d  %-40s %s\n", mig.Version, mig.Description, state)
	}
	return nil
}
