// Package assets lists the asset kinds managed by the platform.
package assets

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Kind identifies one asset kind.
type Kind string

const (
	// Algo is an algorithm
	Algo Kind = "algo"
	// Objective is a learning objective with its metrics
	Objective Kind = "objective"
	// Dataset is a data manager and its opener
	Dataset Kind = "dataset"
	// DataSample is a single registered data sample
	DataSample Kind = "data_sample"
	// Traintuple is a training task
	Traintuple Kind = "traintuple"
	// Testtuple is a testing task
	Testtuple Kind = "testtuple"
	// Model is a trained model
	Model Kind = "model"
	// Node is a platform node
	Node Kind = "node"
)

var known = sets.New(Algo, Objective, Dataset, DataSample, Traintuple, Testtuple, Model, Node)

// urlSegments holds the API route of kinds not served under their own name.
var urlSegments = map[Kind]string{
	Dataset: "data_manager",
}

// All returns every known kind, sorted.
func All() []Kind {
	return sets.List(known)
}

// IsKnown reports whether k is a known kind.
func IsKnown(k Kind) bool {
	return known.Has(k)
}

// Parse converts user input such as "algos", "data-sample" or "Dataset"
// to a known kind.
func Parse(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	if k := Kind(normalized); known.Has(k) {
		return k, nil
	}
	if k := Kind(strings.TrimSuffix(normalized, "s")); known.Has(k) {
		return k, nil
	}
	if normalized == "data_manager" || normalized == "data_managers" {
		return Dataset, nil
	}

	return "", fmt.Errorf("unknown asset %q, expected one of: %s", s, joinKinds(All()))
}

// URLSegment returns the API route segment of k.
func URLSegment(k Kind) string {
	if segment, ok := urlSegments[k]; ok {
		return segment
	}
	return string(k)
}

func joinKinds(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
