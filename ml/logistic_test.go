package ml

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLogisticPredictProba(t *testing.T) {
	model := &LogisticRegression{Weights: []float64{1, 0}, Intercept: 0}

	proba, err := model.PredictProba([]float64{0.55, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1 / (1 + math.Exp(-0.55))
	if math.Abs(proba[1]-want) > 1e-12 {
		t.Fatalf("expected positive proba %f, got %f", want, proba[1])
	}
	if math.Abs(proba[0]+proba[1]-1) > 1e-12 {
		t.Fatalf("probabilities should sum to 1, got %f", proba[0]+proba[1])
	}
}

func TestLogisticPredictThreshold(t *testing.T) {
	model := &LogisticRegression{Weights: []float64{1}, Intercept: 0}

	label, err := model.Predict([]float64{2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 1 {
		t.Fatalf("expected label 1 for positive score, got %d", label)
	}

	label, err = model.Predict([]float64{-2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 0 {
		t.Fatalf("expected label 0 for negative score, got %d", label)
	}
}

func TestLogisticVectorLengthMismatch(t *testing.T) {
	model := &LogisticRegression{Weights: []float64{1, 2}, Intercept: 0}
	if _, err := model.PredictProba([]float64{1}); err == nil {
		t.Fatal("expected error for vector length mismatch")
	}
}

func TestLogisticNotLoaded(t *testing.T) {
	model := &LogisticRegression{}
	if _, err := model.PredictProba([]float64{1}); err == nil {
		t.Fatal("expected error for unloaded model")
	}
}

func TestLogisticLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	artifact := `{"weights": [0.5, -0.25], "intercept": 0.1}`
	if err := os.WriteFile(path, []byte(artifact), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	model := &LogisticRegression{}
	if err := model.Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.Weights) != 2 || model.Intercept != 0.1 {
		t.Fatalf("unexpected artifact contents: %+v", model)
	}
}

func TestLogisticLoadEmptyWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(`{"intercept": 0.1}`), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	model := &LogisticRegression{}
	if err := model.Load(path); err == nil {
		t.Fatal("expected error for artifact without weights")
	}
}
