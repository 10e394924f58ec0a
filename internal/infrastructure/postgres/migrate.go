package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres/migrations"
)

// MigrationReport resume una migración aplicada, revertida o pendiente.
type MigrationReport struct {
	Version   int64
	Source    string
	State     string
	Duration  time.Duration
	AppliedAt time.Time
}

// Migrator aplica el esquema embebido (tablas de la Receita y vistas resposta_*) con goose.
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator abre un *sql.DB sobre el pool y prepara el proveedor de goose.
func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return &Migrator{provider: provider}, nil
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up(ctx context.Context) ([]MigrationReport, error) {
	results, err := m.provider.Up(ctx)
	reports := make([]MigrationReport, 0, len(results))
	for _, r := range results {
		reports = append(reports, fromResult(r, goose.StateApplied))
	}
	if err != nil {
		return reports, fmt.Errorf("migrate up: %w", err)
	}
	return reports, nil
}

// Down revierte la última migración aplicada. Sin migraciones aplicadas devuelve (nil, nil).
func (m *Migrator) Down(ctx context.Context) (*MigrationReport, error) {
	result, err := m.provider.Down(ctx)
	if errors.Is(err, goose.ErrNoNextVersion) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("migrate down: %w", err)
	}
	report := fromResult(result, goose.StatePending)
	return &report, nil
}

// Status lista todas las migraciones conocidas y su estado.
func (m *Migrator) Status(ctx context.Context) ([]MigrationReport, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate status: %w", err)
	}
	reports := make([]MigrationReport, 0, len(statuses))
	for _, s := range statuses {
		reports = append(reports, MigrationReport{
			Version:   s.Source.Version,
			Source:    s.Source.Path,
			State:     string(s.State),
			AppliedAt: s.AppliedAt,
		})
	}
	return reports, nil
}

// Close libera el *sql.DB del proveedor.
func (m *Migrator) Close() error {
	return m.provider.Close()
}

func fromResult(r *goose.MigrationResult, state goose.State) MigrationReport {
	if r == nil || r.Source == nil {
		return MigrationReport{State: string(state)}
	}
	return MigrationReport{
		Version:  r.Source.Version,
		Source:   r.Source.Path,
		State:    string(state),
		Duration: r.Duration,
	}
}
