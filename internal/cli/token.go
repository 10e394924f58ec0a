package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/consulta-cnpj/internal/application/dto"
	"github.com/jhoicas/consulta-cnpj/pkg/jwt"
)

// TokenCmd devuelve el comando token: emite un token de API firmado con JWT_SECRET.
func TokenCmd() *cobra.Command {
	var subject string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "token --subject <cliente>",
		Short: "Emite un token de acceso a la API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.JWT.Enabled() {
				return fmt.Errorf("JWT_SECRET no configurado")
			}
			tok, exp, err := jwt.Generate(cfg.JWT.Secret, subject, cfg.JWT.Issuer, cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.TokenResponse{Token: tok, ExpiresAt: exp})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			fmt.Fprintf(cmd.ErrOrStderr(), "vence: %s\n", warnColor.Sprint(exp.Format("2006-01-02 15:04:05")))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "identificador del cliente de la API")
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida en JSON")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
