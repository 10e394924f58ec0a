package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/consulta-cnpj/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cnpjctl",
		Short: "cnpjctl - herramientas de la base de consulta CNPJ",
		Long: `cnpjctl valida CNPJ, consulta la base, administra el esquema e importa
los archivos de datos abiertos de la Receita Federal.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.CompanyCmd())
	rootCmd.AddCommand(cli.PartnersCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.TokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
