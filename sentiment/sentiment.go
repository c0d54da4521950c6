// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sentiment

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jonreiter/govader"
	"github.com/kljensen/snowball/english"

	"github.com/danielhkuo/flight-sentiment/models"
)

// Result is the polarity breakdown for one piece of text
type Result struct {
	Label    string  `json:"label"`
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Analyzer scores review text with the VADER lexicon.
// It holds no per-request state and may be shared between goroutines.
type Analyzer struct {
	vader      *govader.SentimentIntensityAnalyzer
	threshold  float64
	preprocess bool
}

// vader is built once; its lexicon is read-only after construction
var vader = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)

func NewAnalyzer(threshold float64, preprocess bool) *Analyzer {
	return &Analyzer{
		vader:      vader(),
		threshold:  threshold,
		preprocess: preprocess,
	}
}

// Threshold returns the polarity cut-off used for labelling
func (a *Analyzer) Threshold() float64 {
	return a.threshold
}

// Analyze scores text and labels it
func (a *Analyzer) Analyze(text string) Result {
	input := text
	if a.preprocess {
		input = Preprocess(text)
	}

	scores := a.vader.PolarityScores(input)
	return Result{
		Label:    Label(scores.Compound, a.threshold),
		Compound: scores.Compound,
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}
}

// Classify returns only the label for text
func (a *Analyzer) Classify(text string) string {
	return a.Analyze(text).Label
}

// Label maps a compound polarity score to a sentiment label.
// Scores above threshold are positive, below -threshold negative.
func Label(score, threshold float64) string {
	switch {
	case score > threshold:
		return models.SentimentPositive
	case score < -threshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// VADER applies its own negation handling, so these survive stop word removal
var negations = map[string]bool{
	"no":      true,
	"nor":     true,
	"not":     true,
	"don":     true,
	"don't":   true,
	"didn't":  true,
	"doesn't": true,
	"isn't":   true,
	"wasn't":  true,
	"weren't": true,
	"won't":   true,
	"never":   true,
}

// lemmatizer loads the English dictionary on first use
var lemmatizer = sync.OnceValue(func() *golem.Lemmatizer {
	l, err := golem.New(en.New())
	if err != nil {
		slog.Warn("lemmatizer unavailable, tokens kept as written", "error", err)
		return nil
	}
	return l
})

// Preprocess lowercases text, drops English stop words and lemmatizes
// what remains. Punctuation attached to a token is kept since VADER reads
// "!" as emphasis. Words the VADER lexicon already scores are not
// lemmatized: it rates inflections on their own ("complaints" -1.7,
// "complaint" -1.2), while forms it lacks ("delays") gain the base
// form's score.
func Preprocess(text string) string {
	tokens := strings.Fields(strings.ToLower(text))
	kept := make([]string, 0, len(tokens))
	lem := lemmatizer()
	lexicon := vader().Lexicon

	for _, tok := range tokens {
		word := strings.TrimFunc(tok, func(r rune) bool {
			return unicode.IsPunct(r) && r != '\''
		})
		if word == "" || negations[word] {
			kept = append(kept, tok)
			continue
		}
		if english.IsStopWord(word) {
			continue
		}
		if _, scored := lexicon[word]; !scored && lem != nil {
			if lemma := lem.Lemma(word); lemma != "" && lemma != word {
				tok = strings.Replace(tok, word, lemma, 1)
			}
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}
