package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restostock-api/pkg/textutil"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	cases := map[string]string{
		"Açúcar":   "acucar",
		"JALAPEÑO": "jalapeno",
		"Café":     "cafe",
		"harina":   "harina",
		"":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, textutil.Fold(in), "Fold(%q)", in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Azúcar refinada", "azucar"))
	assert.True(t, textutil.ContainsFold("Queso Añejo", "ANEJO"))
	assert.True(t, textutil.ContainsFold("Leche entera", ""))
	assert.False(t, textutil.ContainsFold("Harina", "azucar"))
}
