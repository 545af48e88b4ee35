package domain

import "time"

// EstimatorInfo describes a loaded win-probability artifact.
type EstimatorInfo struct {
	Name               string             `json:"name" yaml:"name"`
	FormatVersion      int                `json:"format_version" yaml:"format_version"`
	Kind               string             `json:"kind" yaml:"kind"`
	TrainedAt          *time.Time         `json:"trained_at,omitempty" yaml:"trained_at,omitempty"`
	NumericColumns     []string           `json:"numeric_columns" yaml:"numeric_columns"`
	CategoricalColumns []string           `json:"categorical_columns" yaml:"categorical_columns"`
	Width              int                `json:"width" yaml:"width"`
	Metrics            map[string]float64 `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}
