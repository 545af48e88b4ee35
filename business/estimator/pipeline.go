package estimator

import (
	"fmt"
	"math"
	"sort"

	"quoteOptimizer/domain"
)

type numericInput struct {
	name    string
	extract func(domain.DerivedOffer) float64
	mean    float64
	scale   float64
}

type categoricalInput struct {
	name    string
	extract func(domain.DerivedOffer) string
	offset  int
	index   map[string]int
	size    int
}

// Pipeline is a loaded artifact: preprocess followed by classify. It is
// immutable after NewPipeline returns.
type Pipeline struct {
	info        domain.EstimatorInfo
	numeric     []numericInput
	categorical []categoricalInput
	width       int
	clf         classifier
}

// NewPipeline validates art against the offer schema and compiles it.
func NewPipeline(art Artifact) (*Pipeline, error) {
	if art.FormatVersion != FormatVersion {
		return nil, loadErr("unsupported format_version %d, want %d", art.FormatVersion, FormatVersion)
	}

	p := &Pipeline{}
	seen := make(map[string]bool)

	for _, col := range art.Preprocess.Numeric {
		extract, ok := numericExtractors[col.Column]
		if !ok {
			return nil, loadErr("unknown numeric column %q", col.Column)
		}
		if seen[col.Column] {
			return nil, loadErr("duplicate column %q", col.Column)
		}
		seen[col.Column] = true
		if !finite(col.Mean) || !finite(col.Scale) || col.Scale <= 0 {
			return nil, loadErr("column %q: mean and scale must be finite and scale positive", col.Column)
		}
		p.numeric = append(p.numeric, numericInput{
			name:    col.Column,
			extract: extract,
			mean:    col.Mean,
			scale:   col.Scale,
		})
	}
	p.width = len(p.numeric)

	for _, col := range art.Preprocess.Categorical {
		extract, ok := categoricalExtractors[col.Column]
		if !ok {
			return nil, loadErr("unknown categorical column %q", col.Column)
		}
		if seen[col.Column] {
			return nil, loadErr("duplicate column %q", col.Column)
		}
		seen[col.Column] = true

		index := make(map[string]int, len(col.Categories))
		for i, c := range col.Categories {
			if _, dup := index[c]; dup {
				return nil, loadErr("column %q: duplicate category %q", col.Column, c)
			}
			index[c] = i
		}
		p.categorical = append(p.categorical, categoricalInput{
			name:    col.Column,
			extract: extract,
			offset:  p.width,
			index:   index,
			size:    len(col.Categories),
		})
		p.width += len(col.Categories)
	}

	if missing := missingColumns(seen); len(missing) > 0 {
		return nil, loadErr("missing feature columns %v", missing)
	}

	clf, err := newClassifier(art.Classifier, p.width)
	if err != nil {
		return nil, err
	}
	p.clf = clf

	p.info = domain.EstimatorInfo{
		Name:          art.Name,
		FormatVersion: art.FormatVersion,
		Kind:          art.Classifier.Kind,
		TrainedAt:     art.TrainedAt,
		Width:         p.width,
		Metrics:       art.Metrics,
	}
	for _, n := range p.numeric {
		p.info.NumericColumns = append(p.info.NumericColumns, n.name)
	}
	for _, c := range p.categorical {
		p.info.CategoricalColumns = append(p.info.CategoricalColumns, c.name)
	}

	return p, nil
}

func (p *Pipeline) Info() domain.EstimatorInfo {
	return p.info
}

// Preprocess standardizes numeric inputs and one-hot encodes categorical
// ones. A category unseen at training time leaves its block all zero.
func (p *Pipeline) Preprocess(offers []domain.DerivedOffer) ([][]float64, error) {
	rows := make([][]float64, len(offers))
	for i, o := range offers {
		row := make([]float64, p.width)
		for j, n := range p.numeric {
			v := n.extract(o)
			if !finite(v) {
				return nil, fmt.Errorf("offer %d: %s is not finite", i, n.name)
			}
			row[j] = (v - n.mean) / n.scale
		}
		for _, c := range p.categorical {
			if k, ok := c.index[c.extract(o)]; ok {
				row[c.offset+k] = 1
			}
		}
		rows[i] = row
	}
	return rows, nil
}

// PredictProba returns the positive-class probability for each row.
func (p *Pipeline) PredictProba(x [][]float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, row := range x {
		if len(row) != p.width {
			return nil, fmt.Errorf("row %d has %d features, want %d", i, len(row), p.width)
		}
		out[i] = sigmoid(p.clf.margin(row))
	}
	return out, nil
}

func missingColumns(seen map[string]bool) []string {
	var missing []string
	for name := range numericExtractors {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	for name := range categoricalExtractors {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

func sigmoid(m float64) float64 {
	return 1 / (1 + math.Exp(-m))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func loadErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrModelLoad}, args...)...)
}
