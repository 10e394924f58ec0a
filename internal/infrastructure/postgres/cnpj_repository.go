package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/consulta-cnpj/internal/domain"
	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
	"github.com/jhoicas/consulta-cnpj/internal/domain/repository"
	"github.com/jhoicas/consulta-cnpj/pkg/cnpj"
)

// Asegura que CNPJRepo implementa repository.CNPJRepository.
var _ repository.CNPJRepository = (*CNPJRepo)(nil)

const (
	companyQuery = `
		SELECT * FROM resposta_cnpj
		WHERE estabelecimento_cnpj_basico = @cnpj_basico
		  AND estabelecimento_cnpj_ordem = @cnpj_ordem
		  AND estabelecimento_cnpj_dv = @cnpj_dv`

	partnersQuery = `
		SELECT * FROM resposta_socios
		WHERE cnpj_basico = @cnpj_basico`
)

// CNPJRepo consulta las vistas resposta_cnpj y resposta_socios. Solo lectura.
type CNPJRepo struct {
	src ConnSource
}

// NewCNPJRepository construye el repositorio sobre una fuente de conexiones.
func NewCNPJRepository(src ConnSource) *CNPJRepo {
	return &CNPJRepo{src: src}
}

// GetCompany devuelve el establecimiento del CNPJ, o (nil, nil) si no existe.
// Con un CNPJ inválido devuelve domain.ErrInvalidCNPJ sin tocar la base de datos.
func (r *CNPJRepo) GetCompany(ctx context.Context, raw string) (*entity.Company, error) {
	if !cnpj.IsValid(raw) {
		return nil, domain.ErrInvalidCNPJ
	}
	basico, ordem, dv := cnpj.Split(raw)
	args := pgx.NamedArgs{"cnpj_basico": basico, "cnpj_ordem": ordem, "cnpj_dv": dv}

	var company *entity.Company
	err := r.query(ctx, companyQuery, args, func(rows pgx.Rows) error {
		if !rows.Next() {
			return rows.Err()
		}
		values, err := rows.Values()
		if err != nil {
			return err
		}
		logRow(ctx, values)
		c := &entity.Company{
			CNPJBasico:                basico,
			CNPJOrdem:                 ordem,
			CNPJDV:                    dv,
			CNPJCompleto:              cnpj.Format(raw),
			CNPJCompletoApenasNumeros: cnpj.OnlyDigits(raw),
		}
		if err := mapRow(companyColumns, newColumnIndex(rows.FieldDescriptions()), values, c); err != nil {
			return err
		}
		company = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}

// GetPartners devuelve el número de socios y la lista en el orden de la consulta.
// El filtro es solo por la raíz (cnpj_basico): los socios son de la empresa, no del establecimiento.
func (r *CNPJRepo) GetPartners(ctx context.Context, raw string) (int, []*entity.Partner, error) {
	if !cnpj.IsValid(raw) {
		return 0, nil, domain.ErrInvalidCNPJ
	}
	basico, ordem, dv := cnpj.Split(raw)
	completo := cnpj.Format(raw)
	digits := cnpj.OnlyDigits(raw)

	partners := []*entity.Partner{}
	err := r.query(ctx, partnersQuery, pgx.NamedArgs{"cnpj_basico": basico}, func(rows pgx.Rows) error {
		idx := newColumnIndex(rows.FieldDescriptions())
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return err
			}
			logRow(ctx, values)
			p := &entity.Partner{
				CNPJBasico:                basico,
				CNPJOrdem:                 ordem,
				CNPJDV:                    dv,
				CNPJCompleto:              completo,
				CNPJCompletoApenasNumeros: digits,
			}
			if err := mapRow(partnerColumns, idx, values, p); err != nil {
				return err
			}
			partners = append(partners, p)
		}
		return rows.Err()
	})
	if err != nil {
		return 0, nil, err
	}
	return len(partners), partners, nil
}

// query adquiere una conexión, ejecuta la consulta y entrega las filas a scan.
// La conexión y las filas se liberan en todas las salidas.
func (r *CNPJRepo) query(ctx context.Context, sql string, args pgx.NamedArgs, scan func(pgx.Rows) error) error {
	conn, err := r.src.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	log := zerolog.Ctx(ctx)
	start := time.Now()
	log.Debug().Str("sql", sql).Interface("args", args).Msg("Starting query")

	rows, err := conn.Query(ctx, sql, args)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := scan(rows); err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("Finished query")
	return nil
}

func logRow(ctx context.Context, values []any) {
	zerolog.Ctx(ctx).Debug().Interface("row", values).Msg("Fetched row")
}
