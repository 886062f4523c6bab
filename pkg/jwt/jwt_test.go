package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate("secreto", "u-1", "ana", "Tienda Ana", "mi-tienda", 5)
	require.NoError(t, err)

	claims, err := Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "Tienda Ana", claims.StoreName)
	assert.Equal(t, "u-1", claims.Subject)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("secreto", "u-1", "ana", "Tienda", "mi-tienda", 5)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", tok)
	require.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("secreto", "u-1", "ana", "Tienda", "mi-tienda", -1)
	require.NoError(t, err)

	_, err = Parse("secreto", tok)
	require.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u-1", "ana", "Tienda", "mi-tienda", 5)
	require.Error(t, err)
	_, err = Parse("", "x.y.z")
	require.Error(t, err)
}
