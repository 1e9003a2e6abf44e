package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ana@example.com", "gestion-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, testUserID, claims.Subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "gestion-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "gestion-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_SinUserID(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "", "", "gestion-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "", "gestion-test", 60)
	assert.Error(t, err)
}
