package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"cardiopredict/ml"

	"go.uber.org/zap"
)

// Predictor is the prediction engine surface the handlers need.
type Predictor interface {
	Predict(payload map[string]any) (ml.Prediction, error)
}

var engine Predictor

// SetEngine installs the prediction engine used by the predict handler.
func SetEngine(p Predictor) {
	engine = p
}

func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("POST /predict", handlePredict)
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"message": "Heart Disease Prediction API is running!"})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"})
}

// handlePredict maps a twelve-field clinical payload to a prediction. Every
// in-request failure collapses to the same {"error": ...} envelope with 400.
func handlePredict(w http.ResponseWriter, r *http.Request) {
	if engine == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("model not initialized"))
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := engine.Predict(payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	respondJSON(w, map[string]any{
		"prediction":  result.Label,
		"probability": result.Probability,
	})
}

func respondJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encodeErr != nil {
		zap.L().Error("failed to encode error response", zap.Error(encodeErr))
	}
}
