package dstat

import (
	"fmt"
	"math"
)

// Result holds the global D-statistic and its weighted-jackknife estimate,
// standard error, and Z-score, along with the per-block intermediates. The
// slices are freshly allocated by Jackknife and indexed by block.
type Result struct {
	// D is the global statistic over all blocks.
	D float64
	// JackknifeD is the bias-corrected weighted jackknife estimate.
	JackknifeD float64
	// StdErr is the jackknife standard error, the square root of Variance.
	StdErr float64
	// Z is D divided by StdErr.
	Z float64

	// Variance is the weighted jackknife variance estimate.
	Variance float64
	// LeaveOneOut[j] is the D-statistic computed with block j removed.
	LeaveOneOut []float64
	// PseudoValues[j] is h_j·D − (h_j−1)·LeaveOneOut[j], where the deletion
	// weight h_j is the total site count divided by block j's site count.
	PseudoValues []float64
	// Weights[j] is block j's site count m_j.
	Weights []float64
}

// Jackknife computes the global D-statistic and its weighted delete-one
// jackknife estimate, variance, standard error, and Z-score. Blocks may hold
// unequal numbers of informative sites; each block's leave-one-out value is
// down-weighted by the fraction of total sites it represents. At least two
// blocks are required for any leave-one-out subset to exist.
//
// Leave-one-out statistics are formed by subtracting each block from the
// aggregate totals rather than re-summing a masked array, so the whole
// estimate costs O(n) in the number of blocks.
func Jackknife(bc BlockCounts) (Result, error) {
	n := bc.Len()
	if n == 0 {
		return Result{}, ErrNoBlocks
	}
	if n < 2 {
		return Result{}, fmt.Errorf("%d block(s): %w", n, ErrInsufficientBlocks)
	}

	agg := bc.Aggregate()

	dGlobal, err := D(bc.ABBA, bc.BABA)
	if err != nil {
		return Result{}, err
	}

	out := Result{
		D:            dGlobal,
		LeaveOneOut:  make([]float64, n),
		PseudoValues: make([]float64, n),
		Weights:      make([]float64, n),
	}

	// Leave-one-out D-values and the bias-correction sum
	// Σ_j (1 − m_j/total)·D_{−j}.
	var biasSum float64
	for j := 0; j < n; j++ {
		m := bc.Sites(j)
		remABBA := agg.ABBA - bc.ABBA[j]
		remBABA := agg.BABA - bc.BABA[j]
		if remABBA+remBABA == 0 {
			return Result{}, fmt.Errorf("leave-one-out D excluding block %d: remaining site total is zero: %w", j, ErrDivisionUndefined)
		}

		dj := (remABBA - remBABA) / (remABBA + remBABA)
		out.LeaveOneOut[j] = dj
		out.Weights[j] = m
		biasSum += (1 - m/agg.Sites) * dj
	}
	out.JackknifeD = float64(n)*dGlobal - biasSum

	// Pseudo-values and the weighted variance,
	// var = (1/n)·Σ_j (pseudo_j − JackknifeD)² / (h_j − 1).
	var varSum float64
	for j := 0; j < n; j++ {
		h := agg.Sites / out.Weights[j]
		if h == 1 {
			return Result{}, fmt.Errorf("deletion weight for block %d: block holds all %v sites: %w", j, agg.Sites, ErrDivisionUndefined)
		}

		pseudo := h*dGlobal - (h-1)*out.LeaveOneOut[j]
		out.PseudoValues[j] = pseudo

		dev := pseudo - out.JackknifeD
		varSum += dev * dev / (h - 1)
	}
	out.Variance = varSum / float64(n)

	if math.IsNaN(out.Variance) || math.IsInf(out.Variance, 0) || out.Variance < 0 {
		return Result{}, fmt.Errorf("jackknife variance %v: %w", out.Variance, ErrDomain)
	}

	out.StdErr = math.Sqrt(out.Variance)
	if out.StdErr == 0 {
		// Every pseudo-value collapsed onto the estimate; D is perfectly
		// stable across blocks and no Z-score is defined.
		return Result{}, fmt.Errorf("z-score: standard error is zero: %w", ErrDivisionUndefined)
	}
	out.Z = dGlobal / out.StdErr

	return out, nil
}
