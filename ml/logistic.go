package ml

import (
	"encoding/json"
	"errors"
	"math"
	"os"
)

// LogisticRegression is a binary logistic classifier fitted by an external
// training toolchain and serialized as a JSON artifact.
type LogisticRegression struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func (lr *LogisticRegression) Predict(features []float64) (int, error) {
	proba, err := lr.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if proba[1] > 0.5 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns the class distribution [P(0), P(1)].
func (lr *LogisticRegression) PredictProba(features []float64) ([]float64, error) {
	if len(lr.Weights) == 0 {
		return nil, errors.New("model not loaded")
	}
	if len(features) != len(lr.Weights) {
		return nil, errors.New("feature vector length mismatch")
	}
	z := lr.Intercept
	for i, w := range lr.Weights {
		z += w * features[i]
	}
	positive := sigmoid(z)
	return []float64{1 - positive, positive}, nil
}

func (lr *LogisticRegression) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var loaded LogisticRegression
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return err
	}
	if len(loaded.Weights) == 0 {
		return errors.New("artifact has no weights")
	}
	*lr = loaded
	return nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
