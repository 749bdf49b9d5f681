package model

import "sort"

// regression tree internals for the forest: variance-reduction CART on a
// subset of row indices. Unexported — only ForestModel uses it.

type treeNode struct {
	feature   int     // split feature; -1 on leaves
	threshold float64 // go left when x[feature] <= threshold
	value     float64 // leaf prediction (mean target)
	left      *treeNode
	right     *treeNode
}

type treeConfig struct {
	maxDepth        int
	minSamplesSplit int
}

// buildTree grows a tree over X[idx] and accumulates each split's weighted
// impurity decrease into importances (length = feature count).
func buildTree(X [][]float64, y []float64, idx []int, depth int, cfg treeConfig, importances []float64) *treeNode {
	node := &treeNode{feature: -1, value: meanAt(y, idx)}

	if len(idx) < cfg.minSamplesSplit || (cfg.maxDepth > 0 && depth >= cfg.maxDepth) {
		return node
	}

	parentSSE := sseAt(y, idx, node.value)
	if parentSSE == 0 {
		return node // pure node, nothing to gain
	}

	bestFeature, bestThreshold, bestGain := -1, 0.0, 0.0
	var bestLeft, bestRight []int

	for f := 0; f < len(X[0]); f++ {
		// Sort the node's rows by this feature to sweep candidate splits.
		order := append([]int(nil), idx...)
		sort.Slice(order, func(a, b int) bool { return X[order[a]][f] < X[order[b]][f] })

		for cut := 1; cut < len(order); cut++ {
			lo, hi := X[order[cut-1]][f], X[order[cut]][f]
			if lo == hi {
				continue // no threshold separates equal values
			}
			left, right := order[:cut], order[cut:]
			gain := parentSSE - sseAt(y, left, meanAt(y, left)) - sseAt(y, right, meanAt(y, right))
			if gain > bestGain {
				bestFeature = f
				bestThreshold = (lo + hi) / 2
				bestGain = gain
				bestLeft = append([]int(nil), left...)
				bestRight = append([]int(nil), right...)
			}
		}
	}

	if bestFeature < 0 {
		return node
	}

	importances[bestFeature] += bestGain
	node.feature = bestFeature
	node.threshold = bestThreshold
	node.left = buildTree(X, y, bestLeft, depth+1, cfg, importances)
	node.right = buildTree(X, y, bestRight, depth+1, cfg, importances)

	return node
}

func (n *treeNode) predict(row []float64) float64 {
	for n.feature >= 0 {
		if row[n.feature] <= n.threshold {
			n = n.left
			continue
		}
		n = n.right
	}

	return n.value
}

func meanAt(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += y[i]
	}

	return sum / float64(len(idx))
}

func sseAt(y []float64, idx []int, mean float64) float64 {
	sum := 0.0
	for _, i := range idx {
		d := y[i] - mean
		sum += d * d
	}

	return sum
}
