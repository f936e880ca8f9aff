package ml

import (
	"encoding/json"
	"fmt"
)

// featureNames is the column layout the scaler artifact was fitted against.
// The order is fixed; reordering it breaks the scaler contract.
var featureNames = []string{
	"age",
	"anaemia",
	"creatinine_phosphokinase",
	"diabetes",
	"ejection_fraction",
	"high_blood_pressure",
	"platelets",
	"serum_creatinine",
	"serum_sodium",
	"sex",
	"smoking",
	"time",
}

// FeatureNames returns the clinical feature names in canonical order.
func FeatureNames() []string {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return names
}

// Record is a single named row of features. Scalers only accept features in
// this form, so they always receive the named columns they were fitted with.
type Record struct {
	Names  []string
	Values []float64
}

// NewRecord extracts the twelve clinical features from a decoded JSON
// payload, by key, in canonical order. Key order in the payload itself does
// not matter; extra keys are ignored.
func NewRecord(payload map[string]any) (Record, error) {
	values := make([]float64, len(featureNames))
	for i, name := range featureNames {
		raw, ok := payload[name]
		if !ok {
			return Record{}, fmt.Errorf("missing required field: %s", name)
		}
		value, ok := toFloat(raw)
		if !ok {
			return Record{}, fmt.Errorf("field %s must be numeric", name)
		}
		values[i] = value
	}
	return Record{Names: FeatureNames(), Values: values}, nil
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
