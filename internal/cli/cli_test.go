package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consulta-cnpj/internal/cli"
	"github.com/jhoicas/consulta-cnpj/pkg/jwt"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// ──────────────────────────────────────────────────────────────────────────────
// validar
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_Validos(t *testing.T) {
	out, _, err := run(t, cli.ValidateCmd(), "11222333000181", "11.444.777/0001-61")
	require.NoError(t, err)
	assert.Contains(t, out, "11.222.333/0001-81  VÁLIDO")
	assert.Contains(t, out, "11.444.777/0001-61  VÁLIDO")
}

func TestValidate_Invalido(t *testing.T) {
	out, _, err := run(t, cli.ValidateCmd(), "11222333000181", "12345678901234", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 de 3")
	assert.Contains(t, out, "12.345.678/9012-34  INVÁLIDO (DV esperado 30)")
	assert.Contains(t, out, "abc  INVÁLIDO")
}

func TestValidate_SinArgumentos(t *testing.T) {
	_, _, err := run(t, cli.ValidateCmd())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// token
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_Emite(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "cli-test")
	t.Setenv("JWT_EXPIRATION_MINUTES", "30")

	out, stderr, err := run(t, cli.TokenCmd(), "--subject", "erp")
	require.NoError(t, err)
	assert.Contains(t, stderr, "vence:")

	sub, err := jwt.Parse("cli-secret", "cli-test", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "erp", sub)
}

func TestToken_JSON(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, _, err := run(t, cli.TokenCmd(), "--subject", "erp", "--json")
	require.NoError(t, err)

	var body struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.NotEmpty(t, body.Token)
	assert.True(t, body.ExpiresAt.After(time.Now()))
}

func TestToken_SinSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := run(t, cli.TokenCmd(), "--subject", "erp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestToken_SubjectRequerido(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	_, _, err := run(t, cli.TokenCmd())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estructura de comandos
// ──────────────────────────────────────────────────────────────────────────────

func TestMigrateCmd_Subcomandos(t *testing.T) {
	var names []string
	for _, sub := range cli.MigrateCmd().Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "status", "down"}, names)
}

func TestImportCmd_TipoDesconocido(t *testing.T) {
	_, _, err := run(t, cli.ImportCmd(), "--tipo", "cnae", "arquivo.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "desconocido")
}

func TestImportCmd_TipoRequerido(t *testing.T) {
	_, _, err := run(t, cli.ImportCmd(), "arquivo.csv")
	assert.Error(t, err)
}
