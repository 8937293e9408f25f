// Package textutil normalise les chaînes accentuées pour la recherche et les
// regroupements (les noms d'articles sont en français: "Écran", "Théière"...).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold retire les diacritiques: "Écran" -> "Ecran", "théière" -> "theiere".
// En cas d'échec de transformation, la chaîne d'origine est retournée telle quelle.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// FirstLetter retourne la première lettre de s, pliée et en majuscule,
// pour le regroupement des graphiques. Chaîne vide -> "A".
func FirstLetter(s string) string {
	folded := strings.TrimSpace(Fold(s))
	if folded == "" {
		return "A"
	}
	r := []rune(folded)[0]
	return strings.ToUpper(string(r))
}
