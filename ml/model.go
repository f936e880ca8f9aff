package ml

// Classifier is a pre-fitted binary classifier artifact. Implementations are
// immutable once loaded.
type Classifier interface {
	Predict(features []float64) (int, error)
	PredictProba(features []float64) ([]float64, error)
	Load(path string) error
}

// Scaler is a pre-fitted feature transformer artifact. Transform requires
// the same named-column layout the scaler was fitted with.
type Scaler interface {
	Transform(record Record) ([]float64, error)
	Load(path string) error
}
