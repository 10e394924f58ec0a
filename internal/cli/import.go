package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres"
	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/receita"
)

// ImportCmd devuelve el comando importar: carga archivos de datos abiertos de la Receita.
func ImportCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "importar --tipo <tipo> <arquivo.csv>...",
		Short: "Importa archivos CSV de la Receita Federal con COPY",
		Long: `Importa archivos de datos abiertos del CNPJ (separados por ';', ISO-8859-1).
Cada archivo se carga en una única operación COPY: si una línea falla no se carga nada
de ese archivo. Tipos: ` + kindList() + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := receita.LayoutFor(receita.Kind(kind))
			if err != nil {
				return err
			}

			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			loader := postgres.NewReceitaLoader(e.pool)
			var total int64
			for _, path := range args {
				n, err := importFile(cmd, e, loader, layout, path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				total += n
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d registros en %s\n", okColor.Sprint("Importados"), total, layout.Table)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "tipo", "", "tipo de archivo: "+kindList())
	_ = cmd.MarkFlagRequired("tipo")
	return cmd
}

func importFile(cmd *cobra.Command, e *env, loader *postgres.ReceitaLoader, layout receita.Layout, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := loader.Load(e.ctx, receita.NewReader(f, layout))
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %d registros\n", path, n)
	return n, nil
}

func kindList() string {
	kinds := receita.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
