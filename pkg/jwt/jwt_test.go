package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consulta-cnpj/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "consulta-cnpj-test"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, exp, err := jwt.Generate(testSecret, "integracao-erp", testIssuer, 60)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	sub, err := jwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "integracao-erp", sub)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, _, err := jwt.Generate(testSecret, "a", testIssuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret", testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, _, err := jwt.Generate(testSecret, "a", testIssuer, -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_OtroEmisor(t *testing.T) {
	tok, _, err := jwt.Generate(testSecret, "a", "otro", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)

	_, err = jwt.Parse(testSecret, "", tok)
	assert.NoError(t, err, "sin emisor configurado no se valida")
}

func TestParse_AlcanceDistinto(t *testing.T) {
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "a",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scope: "admin",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, "", tok)
	assert.Error(t, err)
}

func TestGenerate_Validaciones(t *testing.T) {
	_, _, err := jwt.Generate("", "a", testIssuer, 60)
	assert.Error(t, err)
	_, _, err = jwt.Generate(testSecret, "", testIssuer, 60)
	assert.Error(t, err)
}
