// Package dstat computes the ABBA/BABA D-statistic over genomic blocks and
// estimates its standard error with a weighted delete-one jackknife that
// tolerates unequal block sizes, following Busing, Meijer & Van der Leeden's
// "Delete-m Jackknife for Unequal m".
package dstat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Aggregate holds whole-dataset count totals.
type Aggregate struct {
	ABBA  float64
	BABA  float64
	Sites float64
}

// Aggregate sums the per-block counts. Sites is positive whenever at least
// one block exists, since zero-total blocks never enter a BlockCounts.
func (bc BlockCounts) Aggregate() Aggregate {
	a := Aggregate{
		ABBA: floats.Sum(bc.ABBA),
		BABA: floats.Sum(bc.BABA),
	}
	a.Sites = a.ABBA + a.BABA

	return a
}

// D computes the global D-statistic over all blocks:
//
//	D = (Σabba − Σbaba) / (Σabba + Σbaba)
//
// D lies in [-1, 1] for well-formed non-negative counts.
func D(abba, baba []float64) (float64, error) {
	return DMasked(abba, baba, nil)
}

// DMasked computes the D-statistic over the blocks for which include is
// true. A nil mask includes every block. The included subset must hold at
// least one informative site, otherwise the statistic is undefined and
// ErrDivisionUndefined is returned.
func DMasked(abba, baba []float64, include []bool) (float64, error) {
	if len(abba) != len(baba) {
		return 0, fmt.Errorf("global D: %d abba blocks vs %d baba blocks", len(abba), len(baba))
	}

	var sumABBA, sumBABA float64
	if include == nil {
		sumABBA = floats.Sum(abba)
		sumBABA = floats.Sum(baba)
	} else {
		if len(include) != len(abba) {
			return 0, fmt.Errorf("global D: mask covers %d of %d blocks", len(include), len(abba))
		}
		for i := range abba {
			if !include[i] {
				continue
			}
			sumABBA += abba[i]
			sumBABA += baba[i]
		}
	}

	if sumABBA+sumBABA == 0 {
		return 0, fmt.Errorf("global D: included site total is zero: %w", ErrDivisionUndefined)
	}

	return (sumABBA - sumBABA) / (sumABBA + sumBABA), nil
}
