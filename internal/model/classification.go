// Package model defines the core domain models used throughout the application.
package model

import "encoding/json"

// Prediction is one entry of the classifier's confidence distribution.
type Prediction struct {
	Category   Category
	Confidence float64
}

// Predictions keeps the backend's rank order. The backend sends an object
// whose key order is the ranking, so decoding must not go through a map.
type Predictions []Prediction

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (p *Predictions) UnmarshalJSON(data []byte) error {
	out := Predictions{}
	err := decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var conf float64
		if err := dec.Decode(&conf); err != nil {
			return err
		}
		out = append(out, Prediction{Category: Category(key), Confidence: conf})
		return nil
	})
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// MarshalJSON implements json.Marshaler preserving order.
func (p Predictions) MarshalJSON() ([]byte, error) {
	return encodeOrderedObject(len(p), func(i int) (string, any) {
		return string(p[i].Category), p[i].Confidence
	})
}

// Top returns the first n predictions in their given order. No re-sorting
// happens: the backend's order is authoritative.
func (p Predictions) Top(n int) Predictions {
	if n > len(p) {
		n = len(p)
	}
	if n < 0 {
		n = 0
	}
	out := make(Predictions, n)
	copy(out, p[:n])
	return out
}

// QualityCheck is the backend's assessment of image suitability.
type QualityCheck struct {
	Feedback []string `json:"feedback"`
	Score    float64  `json:"score"`
}

// QualityFeedbackThreshold is the score below which feedback is shown.
const QualityFeedbackThreshold = 80

// NeedsFeedback reports whether the advisory list should be displayed.
func (q *QualityCheck) NeedsFeedback() bool {
	return q != nil && q.Score < QualityFeedbackThreshold
}

// ClassificationResult is the response of the classification endpoint.
//
// Recyclable is tri-state: nil means the backend did not say, which is a
// different signal from an explicit false.
type ClassificationResult struct {
	Recyclable           *bool         `json:"recyclable,omitempty"`
	RecyclableConfidence *float64      `json:"recyclable_confidence,omitempty"`
	EcoScore             *float64      `json:"eco_score,omitempty"`
	QualityCheck         *QualityCheck `json:"quality_check,omitempty"`
	Label                string        `json:"label"`
	RecyclabilityReason  string        `json:"recyclability_reason,omitempty"`
	ImagePath            string        `json:"image_path,omitempty"`
	AllPredictions       Predictions   `json:"all_predictions"`
	NewAchievements      []Achievement `json:"new_achievements"`
	Stats                Stats         `json:"stats"`
	Confidence           float64       `json:"confidence"`
}

// Category returns the lower-cased label as a Category.
func (r ClassificationResult) Category() Category {
	return ParseCategory(r.Label)
}

// RecyclabilityKnown reports whether the backend included a verdict.
func (r ClassificationResult) RecyclabilityKnown() bool {
	return r.Recyclable != nil
}

// IsRecyclable reports an explicit true verdict.
func (r ClassificationResult) IsRecyclable() bool {
	return r.Recyclable != nil && *r.Recyclable
}

// IsNonRecyclable reports an explicit false verdict.
func (r ClassificationResult) IsNonRecyclable() bool {
	return r.Recyclable != nil && !*r.Recyclable
}
