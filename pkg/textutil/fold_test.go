package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockify/stockify-api/pkg/textutil"
)

func TestFold_RetireLesDiacritiques(t *testing.T) {
	cases := map[string]string{
		"Écran":       "Ecran",
		"théière":     "theiere",
		"café crème":  "cafe creme",
		"Noël":        "Noel",
		"sans accent": "sans accent",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, textutil.Fold(in), "Fold(%q)", in)
	}
}

func TestFirstLetter_PlieEtMetEnMajuscule(t *testing.T) {
	assert.Equal(t, "E", textutil.FirstLetter("écran"))
	assert.Equal(t, "E", textutil.FirstLetter("Écran"))
	assert.Equal(t, "C", textutil.FirstLetter("clavier"))
}

func TestFirstLetter_ChaineVideRetourneA(t *testing.T) {
	assert.Equal(t, "A", textutil.FirstLetter(""))
	assert.Equal(t, "A", textutil.FirstLetter("   "))
}
