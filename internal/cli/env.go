// Package cli implementa los subcomandos de cnpjctl.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres"
	"github.com/jhoicas/consulta-cnpj/pkg/config"
	"github.com/jhoicas/consulta-cnpj/pkg/logger"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

// env es lo que necesitan los subcomandos que tocan la base: configuración,
// logger en el contexto y pool abierto.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	ctx  context.Context
	pool *pgxpool.Pool
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	// stdout queda para la salida del comando.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	return cfg, log, nil
}

// connect carga la configuración y abre el pool. El llamador cierra con env.close.
func connect(ctx context.Context) (*env, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	ctx = log.WithContext(ctx)
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return &env{cfg: cfg, log: log, ctx: ctx, pool: pool}, nil
}

func (e *env) close() {
	e.pool.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
