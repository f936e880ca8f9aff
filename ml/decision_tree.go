package ml

import (
	"encoding/json"
	"errors"
	"os"
)

// DecisionTree is a pre-fitted classification tree stored as a flat node
// array. Leaves carry the per-class sample counts captured at fit time,
// which back the class distribution PredictProba returns.
type DecisionTree struct {
	nodes []TreeNode
}

type TreeNode struct {
	FeatureIdx  int     `json:"feature_idx"`
	Threshold   float64 `json:"threshold"`
	LeftChild   int     `json:"left_child"`
	RightChild  int     `json:"right_child"`
	ClassCounts []int   `json:"class_counts"`
	IsLeaf      bool    `json:"is_leaf"`
}

func (dt *DecisionTree) Predict(features []float64) (int, error) {
	counts, err := dt.leafCounts(features)
	if err != nil {
		return 0, err
	}
	bestLabel := 0
	bestCount := -1
	for label, count := range counts {
		if count > bestCount {
			bestCount = count
			bestLabel = label
		}
	}
	return bestLabel, nil
}

// PredictProba returns the empirical class distribution of the matched leaf.
func (dt *DecisionTree) PredictProba(features []float64) ([]float64, error) {
	counts, err := dt.leafCounts(features)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return nil, errors.New("leaf has no samples")
	}
	proba := make([]float64, len(counts))
	for label, count := range counts {
		proba[label] = float64(count) / float64(total)
	}
	return proba, nil
}

func (dt *DecisionTree) leafCounts(features []float64) ([]int, error) {
	if len(dt.nodes) == 0 {
		return nil, errors.New("model not loaded")
	}
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			if len(node.ClassCounts) == 0 {
				return nil, errors.New("leaf has no class counts")
			}
			return node.ClassCounts, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return nil, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(dt.nodes) {
			return nil, errors.New("invalid tree state")
		}
	}
}

func (dt *DecisionTree) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var nodes []TreeNode
	if err := json.Unmarshal(payload, &nodes); err != nil {
		return err
	}
	if len(nodes) == 0 {
		return errors.New("artifact has no nodes")
	}
	dt.nodes = nodes
	return nil
}
