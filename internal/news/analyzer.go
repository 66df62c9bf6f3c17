package news

import (
	"strings"
	"unicode"
)

// Analyzer scores headline polarity against small positive/negative
// word lists. Deliberately naive: one pass, no negation handling, no
// weighting. Scores land in [-1, 1].
type Analyzer struct {
	positiveWords map[string]bool
	negativeWords map[string]bool
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positiveWords: loadPositiveWords(),
		negativeWords: loadNegativeWords(),
	}
}

// ScoreHeadline rates a single headline: (positive − negative) hits
// over total sentiment hits. A headline with no sentiment words is 0.
func (a *Analyzer) ScoreHeadline(headline string) float64 {
	words := tokenize(strings.ToLower(headline))

	pos, neg := 0, 0
	for _, word := range words {
		if a.positiveWords[word] {
			pos++
		}
		if a.negativeWords[word] {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}

// Score averages headline polarities. Empty input is neutral, never an
// error: "no news" has a defined meaning of 0.
func (a *Analyzer) Score(headlines []string) float64 {
	if len(headlines) == 0 {
		return 0
	}
	sum := 0.0
	for _, h := range headlines {
		sum += a.ScoreHeadline(h)
	}
	return sum / float64(len(headlines))
}

// tokenize splits text into words
func tokenize(text string) []string {
	var words []string
	var currentWord strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			currentWord.WriteRune(r)
		} else if currentWord.Len() > 0 {
			words = append(words, currentWord.String())
			currentWord.Reset()
		}
	}
	if currentWord.Len() > 0 {
		words = append(words, currentWord.String())
	}
	return words
}
