package ml

import (
	"errors"
	"fmt"
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Prediction is the result for a single feature record.
type Prediction struct {
	Label       int
	Probability float64
}

// Engine runs the scale-then-classify pipeline over the two artifacts loaded
// at startup. Both artifacts are read-only after construction and the cache
// is internally synchronized, so the engine is safe for concurrent use.
type Engine struct {
	scaler     Scaler
	classifier Classifier
	cache      *lru.Cache[string, Prediction]
}

// NewEngine builds an engine over loaded artifacts. A cacheSize of zero or
// less disables result caching.
func NewEngine(scaler Scaler, classifier Classifier, cacheSize int) (*Engine, error) {
	if scaler == nil || classifier == nil {
		return nil, errors.New("scaler and classifier are required")
	}
	engine := &Engine{scaler: scaler, classifier: classifier}
	if cacheSize > 0 {
		cache, err := lru.New[string, Prediction](cacheSize)
		if err != nil {
			return nil, err
		}
		engine.cache = cache
	}
	return engine, nil
}

// Predict maps a decoded JSON payload to a class label and the positive
// class probability rounded to 4 decimal places.
func (e *Engine) Predict(payload map[string]any) (Prediction, error) {
	record, err := NewRecord(payload)
	if err != nil {
		return Prediction{}, err
	}

	key := cacheKey(record.Values)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
	}

	scaled, err := e.scaler.Transform(record)
	if err != nil {
		return Prediction{}, err
	}
	label, err := e.classifier.Predict(scaled)
	if err != nil {
		return Prediction{}, err
	}
	proba, err := e.classifier.PredictProba(scaled)
	if err != nil {
		return Prediction{}, err
	}
	if len(proba) < 2 {
		return Prediction{}, errors.New("classifier returned no positive class probability")
	}

	result := Prediction{
		Label:       label,
		Probability: roundProbability(proba[1]),
	}
	if e.cache != nil {
		e.cache.Add(key, result)
	}
	return result, nil
}

// roundProbability rounds half away from zero to 4 decimal places.
func roundProbability(p float64) float64 {
	return math.Round(p*1e4) / 1e4
}

func cacheKey(values []float64) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%g", v)
	}
	return b.String()
}
