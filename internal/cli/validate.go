package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/consulta-cnpj/pkg/cnpj"
)

// ValidateCmd devuelve el comando validar (no usa la base de datos).
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validar <cnpj>...",
		Short: "Valida dígitos verificadores y muestra la forma canónica",
		Long: `Valida uno o más CNPJ sin consultar la base de datos. Acepta el número con o
sin máscara. Termina con error si alguno es inválido.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			out := cmd.OutOrStdout()
			for _, raw := range args {
				shown := cnpj.Format(raw)
				if shown == "" {
					shown = raw
				}
				if cnpj.IsValid(raw) {
					fmt.Fprintf(out, "%s  %s\n", shown, okColor.Sprint("VÁLIDO"))
					continue
				}
				invalid++
				hint := ""
				if d := cnpj.OnlyDigits(raw); len(d) == cnpj.Length {
					hint = fmt.Sprintf(" (DV esperado %s)", cnpj.CheckDigits(d[:cnpj.Length-cnpj.CheckLength]))
				}
				fmt.Fprintf(out, "%s  %s%s\n", shown, errColor.Sprint("INVÁLIDO"), hint)
			}
			if invalid > 0 {
				return fmt.Errorf("%d de %d CNPJ inválidos", invalid, len(args))
			}
			return nil
		},
	}
}
