package contrast

import (
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// Terms splits text into lower-cased words made of letters and digits.
func Terms(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Vectors returns term-frequency vectors of a and b over their shared vocabulary.
func Vectors(a, b string) ([]float64, []float64) {
	termsA, termsB := Terms(a), Terms(b)

	vocabulary := map[string]int{}
	for _, term := range append(append([]string{}, termsA...), termsB...) {
		vocabulary[term] = 0
	}
	keys := make([]string, 0, len(vocabulary))
	for term := range vocabulary {
		keys = append(keys, term)
	}
	sort.Strings(keys)
	for i, term := range keys {
		vocabulary[term] = i
	}

	va := make([]float64, len(keys))
	vb := make([]float64, len(keys))
	for _, term := range termsA {
		va[vocabulary[term]]++
	}
	for _, term := range termsB {
		vb[vocabulary[term]]++
	}
	return va, vb
}

// Similarity is the cosine similarity of the term-frequency vectors of a and b,
// in [0, 1]. Text without any word scores 0.
func Similarity(a, b string) float64 {
	va, vb := Vectors(a, b)
	if len(va) == 0 {
		return 0
	}

	normA := floats.Norm(va, 2)
	normB := floats.Norm(vb, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(va, vb) / (normA * normB)
}
