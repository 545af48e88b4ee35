package estimator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quoteOptimizer/domain"

	"gopkg.in/yaml.v3"
)

const FormatVersion = 1

const (
	KindLogistic = "logistic"
	KindGBTree   = "gbtree"
)

// Artifact is the on-disk bundle produced by the training job: the fitted
// preprocessing transform plus the classifier behind it.
type Artifact struct {
	FormatVersion int                `json:"format_version" yaml:"format_version"`
	Name          string             `json:"name" yaml:"name"`
	TrainedAt     *time.Time         `json:"trained_at,omitempty" yaml:"trained_at,omitempty"`
	Metrics       map[string]float64 `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Preprocess    PreprocessSpec     `json:"preprocess" yaml:"preprocess"`
	Classifier    ClassifierSpec     `json:"classifier" yaml:"classifier"`
}

type PreprocessSpec struct {
	Numeric     []NumericColumn     `json:"numeric" yaml:"numeric"`
	Categorical []CategoricalColumn `json:"categorical" yaml:"categorical"`
}

// NumericColumn is one standard-scaled input: (x - Mean) / Scale.
type NumericColumn struct {
	Column string  `json:"column" yaml:"column"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Scale  float64 `json:"scale" yaml:"scale"`
}

// CategoricalColumn is one one-hot block, one slot per known category.
type CategoricalColumn struct {
	Column     string   `json:"column" yaml:"column"`
	Categories []string `json:"categories" yaml:"categories"`
}

type ClassifierSpec struct {
	Kind string `json:"kind" yaml:"kind"`

	// logistic
	Intercept    float64   `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`

	// gbtree
	BaseMargin float64 `json:"base_margin,omitempty" yaml:"base_margin,omitempty"`
	Trees      []Tree  `json:"trees,omitempty" yaml:"trees,omitempty"`
}

// Tree is a flat node array; node 0 is the root.
type Tree struct {
	Nodes []TreeNode `json:"nodes" yaml:"nodes"`
}

type TreeNode struct {
	IsLeaf    bool    `json:"is_leaf" yaml:"is_leaf"`
	Leaf      float64 `json:"leaf,omitempty" yaml:"leaf,omitempty"`
	Feature   int     `json:"feature,omitempty" yaml:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Left      int     `json:"left,omitempty" yaml:"left,omitempty"`
	Right     int     `json:"right,omitempty" yaml:"right,omitempty"`
}

// Load reads the artifact at path and returns a validated pipeline. Every
// failure wraps domain.ErrModelLoad.
func Load(path string) (*Pipeline, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: artifact %s not found", domain.ErrModelLoad, path)
		}
		return nil, fmt.Errorf("%w: read artifact %s: %v", domain.ErrModelLoad, path, err)
	}

	art, err := Decode(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	return NewPipeline(art)
}

// Decode parses an artifact; ext selects YAML (".yaml", ".yml") or JSON.
func Decode(raw []byte, ext string) (Artifact, error) {
	var art Artifact

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &art); err != nil {
			return Artifact{}, fmt.Errorf("%w: decode yaml artifact: %v", domain.ErrModelLoad, err)
		}
	default:
		if err := json.Unmarshal(raw, &art); err != nil {
			return Artifact{}, fmt.Errorf("%w: decode json artifact: %v", domain.ErrModelLoad, err)
		}
	}

	return art, nil
}
