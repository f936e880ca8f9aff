package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// StandardScaler standardizes each feature with the mean and scale captured
// at fit time.
type StandardScaler struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

func (s *StandardScaler) Transform(record Record) ([]float64, error) {
	if err := checkColumns(s.FeatureNames, record.Names); err != nil {
		return nil, err
	}
	if len(record.Values) != len(s.Mean) || len(s.Mean) != len(s.Scale) {
		return nil, errors.New("scaler shape mismatch")
	}
	scaled := make([]float64, len(record.Values))
	for i, value := range record.Values {
		if s.Scale[i] == 0 {
			scaled[i] = 0
			continue
		}
		scaled[i] = (value - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}

func (s *StandardScaler) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var loaded StandardScaler
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return err
	}
	if len(loaded.FeatureNames) == 0 {
		return errors.New("artifact has no feature names")
	}
	if len(loaded.Mean) != len(loaded.FeatureNames) || len(loaded.Scale) != len(loaded.FeatureNames) {
		return errors.New("artifact shape mismatch")
	}
	*s = loaded
	return nil
}

// MinMaxScaler rescales each feature into [0, 1] using the minimum and
// maximum captured at fit time.
type MinMaxScaler struct {
	FeatureNames []string  `json:"feature_names"`
	Min          []float64 `json:"min"`
	Max          []float64 `json:"max"`
}

func (s *MinMaxScaler) Transform(record Record) ([]float64, error) {
	if err := checkColumns(s.FeatureNames, record.Names); err != nil {
		return nil, err
	}
	if len(record.Values) != len(s.Min) || len(s.Min) != len(s.Max) {
		return nil, errors.New("scaler shape mismatch")
	}
	scaled := make([]float64, len(record.Values))
	for i, value := range record.Values {
		scaled[i] = normalizeFeature(value, s.Min[i], s.Max[i])
	}
	return scaled, nil
}

func (s *MinMaxScaler) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var loaded MinMaxScaler
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return err
	}
	if len(loaded.FeatureNames) == 0 {
		return errors.New("artifact has no feature names")
	}
	if len(loaded.Min) != len(loaded.FeatureNames) || len(loaded.Max) != len(loaded.FeatureNames) {
		return errors.New("artifact shape mismatch")
	}
	*s = loaded
	return nil
}

func normalizeFeature(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// checkColumns enforces the named-column contract: the record must carry
// exactly the fitted feature names, in the fitted order.
func checkColumns(fitted, got []string) error {
	if len(fitted) != len(got) {
		return fmt.Errorf("expected %d features, got %d", len(fitted), len(got))
	}
	for i, name := range fitted {
		if got[i] != name {
			return fmt.Errorf("feature %d: expected %s, got %s", i, name, got[i])
		}
	}
	return nil
}
