// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sentiment labels review text as positive, negative or neutral.

Scoring is delegated to govader, a Go port of the VADER lexicon. The
compound score in [-1, 1] is thresholded:

	score >  threshold → positive
	score < -threshold → negative
	otherwise          → neutral

The service default threshold is 0.1. A threshold of 0 labels any nonzero
score.

Before scoring, Preprocess lowercases the text and drops English stop
words, keeping negations. Words missing from the VADER lexicon are
replaced by their golem lemma ("delays" → "delay").
*/
package sentiment
