package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres"
)

// CompanyCmd devuelve el comando empresa: consulta un CNPJ y lo imprime en JSON.
func CompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empresa <cnpj>",
		Short: "Consulta un CNPJ en la base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			repo := postgres.NewCNPJRepository(postgres.NewPoolSource(e.pool))
			company, err := repo.GetCompany(e.ctx, args[0])
			if err != nil {
				return err
			}
			if company == nil {
				return fmt.Errorf("CNPJ %s no encontrado", args[0])
			}
			return writeJSON(cmd.OutOrStdout(), company)
		},
	}
}

// PartnersCmd devuelve el comando socios: imprime el QSA en JSON.
func PartnersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "socios <cnpj>",
		Short: "Lista el quadro de sócios de un CNPJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			repo := postgres.NewCNPJRepository(postgres.NewPoolSource(e.pool))
			total, partners, err := repo.GetPartners(e.ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s sócios\n", warnColor.Sprint(total))
			return writeJSON(cmd.OutOrStdout(), partners)
		},
	}
}
