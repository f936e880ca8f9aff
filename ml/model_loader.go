package ml

import (
	"errors"
)

// LoadClassifier loads a serialized classifier artifact from disk.
func LoadClassifier(modelType, path string) (Classifier, error) {
	switch modelType {
	case "logistic":
		model := &LogisticRegression{}
		if err := model.Load(path); err != nil {
			return nil, err
		}
		return model, nil
	case "decision_tree":
		model := &DecisionTree{}
		if err := model.Load(path); err != nil {
			return nil, err
		}
		return model, nil
	default:
		return nil, errors.New("unsupported model type")
	}
}

// LoadScaler loads a serialized feature scaler artifact from disk.
func LoadScaler(scalerType, path string) (Scaler, error) {
	switch scalerType {
	case "standard":
		scaler := &StandardScaler{}
		if err := scaler.Load(path); err != nil {
			return nil, err
		}
		return scaler, nil
	case "minmax":
		scaler := &MinMaxScaler{}
		if err := scaler.Load(path); err != nil {
			return nil, err
		}
		return scaler, nil
	default:
		return nil, errors.New("unsupported scaler type")
	}
}
