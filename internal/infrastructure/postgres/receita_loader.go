package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/jhoicas/consulta-cnpj/internal/domain"
	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/receita"
)

// Copier es el subconjunto de pgx usado por la carga masiva. *pgxpool.Pool y *pgx.Conn lo implementan.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// ReceitaLoader vuelca archivos de datos abiertos de la Receita en las tablas base con COPY.
type ReceitaLoader struct {
	db Copier
}

// NewReceitaLoader construye el cargador.
func NewReceitaLoader(db Copier) *ReceitaLoader {
	return &ReceitaLoader{db: db}
}

// Load copia todos los registros del lector a la tabla de su layout y devuelve cuántos insertó.
// Un error de lectura aborta el COPY completo: no quedan cargas parciales.
func (l *ReceitaLoader) Load(ctx context.Context, r *receita.Reader) (int64, error) {
	layout := r.Layout()
	log := zerolog.Ctx(ctx)
	log.Info().Str("tabla", layout.Table).Msg("Iniciando carga")

	n, err := l.db.CopyFrom(ctx, pgx.Identifier{layout.Table}, layout.Columns(), r)
	if err != nil {
		if readErr := r.Err(); readErr != nil {
			return 0, readErr
		}
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s línea ~%d", domain.ErrDuplicate, layout.Table, r.Line())
		}
		return 0, fmt.Errorf("copy %s: %w", layout.Table, err)
	}
	if err := r.Err(); err != nil {
		return 0, err
	}
	log.Info().Str("tabla", layout.Table).Int64("filas", n).Msg("Carga finalizada")
	return n, nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}
