// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package evaluation

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/danielhkuo/flight-sentiment/models"
)

var ErrNoSamples = errors.New("no samples to evaluate")

// Classifier assigns a sentiment label to text
type Classifier interface {
	Classify(text string) string
}

// Sample is a review text with its expected label
type Sample struct {
	Text  string
	Label string
}

var samples = []Sample{
	{"The flight was amazing and the crew was very helpful.", models.SentimentPositive},
	{"Terrible experience, the flight was delayed for hours.", models.SentimentNegative},
	{"The flight was okay, nothing special.", models.SentimentNeutral},
	{"I loved the comfortable seats and the great service.", models.SentimentPositive},
	{"The food was awful and the staff were rude.", models.SentimentNegative},
}

// Samples returns a copy of the fixed labeled review set
func Samples() []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	return out
}

// Evaluate classifies every sample and scores the predictions.
// Precision, recall and F1 are macro averages over models.Labels.
func Evaluate(c Classifier, set []Sample) (models.MetricsResponse, error) {
	if len(set) == 0 {
		return models.MetricsResponse{}, ErrNoSamples
	}

	type counts struct{ tp, fp, fn, support int }
	perLabel := make(map[string]*counts, len(models.Labels))
	for _, l := range models.Labels {
		perLabel[l] = &counts{}
	}

	correct := 0
	for _, s := range set {
		if !models.IsValidSentiment(s.Label) {
			return models.MetricsResponse{}, fmt.Errorf("sample %q has unknown label %q", s.Text, s.Label)
		}
		predicted := c.Classify(s.Text)

		perLabel[s.Label].support++
		if predicted == s.Label {
			correct++
			perLabel[s.Label].tp++
			continue
		}
		perLabel[s.Label].fn++
		if pc, ok := perLabel[predicted]; ok {
			pc.fp++
		}
	}

	report := models.MetricsResponse{
		Accuracy: float64(correct) / float64(len(set)),
		Samples:  len(set),
		Labels:   make([]models.LabelMetrics, 0, len(models.Labels)),
	}

	var precisions, recalls, f1s stats.Float64Data
	for _, l := range models.Labels {
		c := perLabel[l]
		lm := models.LabelMetrics{
			Label:     l,
			Precision: ratio(c.tp, c.tp+c.fp),
			Recall:    ratio(c.tp, c.tp+c.fn),
			Support:   c.support,
		}
		if lm.Precision+lm.Recall > 0 {
			lm.F1 = 2 * lm.Precision * lm.Recall / (lm.Precision + lm.Recall)
		}

		report.Labels = append(report.Labels, lm)
		precisions = append(precisions, lm.Precision)
		recalls = append(recalls, lm.Recall)
		f1s = append(f1s, lm.F1)
	}

	var err error
	if report.Precision, err = stats.Mean(precisions); err != nil {
		return models.MetricsResponse{}, fmt.Errorf("failed to average precision: %w", err)
	}
	if report.Recall, err = stats.Mean(recalls); err != nil {
		return models.MetricsResponse{}, fmt.Errorf("failed to average recall: %w", err)
	}
	if report.F1, err = stats.Mean(f1s); err != nil {
		return models.MetricsResponse{}, fmt.Errorf("failed to average f1: %w", err)
	}

	return report, nil
}

// ratio returns 0 when the denominator is 0
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
