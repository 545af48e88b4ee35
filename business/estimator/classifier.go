package estimator

// classifier maps a preprocessed row to a log-odds margin.
type classifier interface {
	margin(x []float64) float64
}

func newClassifier(spec ClassifierSpec, width int) (classifier, error) {
	switch spec.Kind {
	case KindLogistic:
		return newLogistic(spec, width)
	case KindGBTree:
		return newGBTree(spec, width)
	default:
		return nil, loadErr("unknown classifier kind %q", spec.Kind)
	}
}

type logistic struct {
	intercept float64
	coef      []float64
}

func newLogistic(spec ClassifierSpec, width int) (*logistic, error) {
	if len(spec.Coefficients) != width {
		return nil, loadErr("logistic classifier has %d coefficients, preprocess produces %d features", len(spec.Coefficients), width)
	}
	if !finite(spec.Intercept) {
		return nil, loadErr("logistic intercept is not finite")
	}
	for i, c := range spec.Coefficients {
		if !finite(c) {
			return nil, loadErr("logistic coefficient %d is not finite", i)
		}
	}
	coef := make([]float64, width)
	copy(coef, spec.Coefficients)
	return &logistic{intercept: spec.Intercept, coef: coef}, nil
}

func (l *logistic) margin(x []float64) float64 {
	m := l.intercept
	for i, c := range l.coef {
		m += c * x[i]
	}
	return m
}

// gbtree is an additive ensemble of regression trees, as exported from a
// gradient-boosting trainer.
type gbtree struct {
	base  float64
	trees [][]TreeNode
}

func newGBTree(spec ClassifierSpec, width int) (*gbtree, error) {
	if len(spec.Trees) == 0 {
		return nil, loadErr("gbtree classifier has no trees")
	}
	if !finite(spec.BaseMargin) {
		return nil, loadErr("gbtree base_margin is not finite")
	}

	trees := make([][]TreeNode, len(spec.Trees))
	for t, tree := range spec.Trees {
		n := len(tree.Nodes)
		if n == 0 {
			return nil, loadErr("tree %d is empty", t)
		}
		for i, node := range tree.Nodes {
			if node.IsLeaf {
				if !finite(node.Leaf) {
					return nil, loadErr("tree %d node %d: leaf is not finite", t, i)
				}
				continue
			}
			if node.Feature < 0 || node.Feature >= width {
				return nil, loadErr("tree %d node %d: feature %d out of range [0,%d)", t, i, node.Feature, width)
			}
			if !finite(node.Threshold) {
				return nil, loadErr("tree %d node %d: threshold is not finite", t, i)
			}
			// children after parents rules out cycles
			if node.Left <= i || node.Left >= n || node.Right <= i || node.Right >= n {
				return nil, loadErr("tree %d node %d: invalid child links", t, i)
			}
		}
		trees[t] = append([]TreeNode(nil), tree.Nodes...)
	}

	return &gbtree{base: spec.BaseMargin, trees: trees}, nil
}

func (g *gbtree) margin(x []float64) float64 {
	m := g.base
	for _, nodes := range g.trees {
		i := 0
		for !nodes[i].IsLeaf {
			if x[nodes[i].Feature] < nodes[i].Threshold {
				i = nodes[i].Left
			} else {
				i = nodes[i].Right
			}
		}
		m += nodes[i].Leaf
	}
	return m
}
