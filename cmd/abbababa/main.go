// abbababa computes the ABBA/BABA D-statistic from per-block site-pattern
// counts and estimates its standard error and Z-score with a weighted block
// jackknife.
//
// The input is a whitespace-delimited report with one genomic block per line;
// the last two fields of each line are the BABA count then the ABBA count,
// and any leading fields (such as a chromosome label) are ignored. Input is
// read from the file named by the single optional positional argument, or
// from stdin when the argument is omitted or is "-".
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/dstat"
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "Print per-block diagnostics to stderr.")
	flag.Parse()

	var in io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		defer f.Close()
		in = f
	}

	blocks, err := dstat.ReadBlockCounts(in)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	if blocks.Dropped > 0 {
		log.Printf("Dropped %d block(s) with zero informative sites", blocks.Dropped)
	}
	if blocks.Len() == 0 {
		log.Println("No blocks with informative sites; nothing to compute")
		return
	}

	res, err := dstat.Jackknife(blocks)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if verbose {
		if err := printDiagnostics(os.Stderr, blocks, res); err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	fmt.Println("D\tJackknifeD\tSE\tZ")
	fmt.Printf("%.6f\t%.6f\t%.6f\t%.6f\n", res.D, res.JackknifeD, res.StdErr, res.Z)
}

// printDiagnostics writes the per-block leave-one-out table and a summary of
// block sizes and leave-one-out dispersion. Everything goes to w (stderr) so
// that stdout stays machine-readable.
func printDiagnostics(w io.Writer, blocks dstat.BlockCounts, res dstat.Result) error {
	sizes := make([]float64, blocks.Len())
	for j := range sizes {
		sizes[j] = blocks.Sites(j)
	}

	mean, err := stats.Mean(sizes)
	if err != nil {
		return err
	}
	median, err := stats.Median(sizes)
	if err != nil {
		return err
	}
	smallest, err := stats.Min(sizes)
	if err != nil {
		return err
	}
	largest, err := stats.Max(sizes)
	if err != nil {
		return err
	}

	agg := blocks.Aggregate()
	fmt.Fprintf(w, "Blocks: %d\tSites: %.0f\tBlock sites mean/median/min/max: %.1f/%.1f/%.0f/%.0f\n",
		blocks.Len(), agg.Sites, mean, median, smallest, largest)

	fmt.Fprintln(w, "Block\tABBA\tBABA\tSites\tLeaveOneOutD\tPseudovalue")
	for j := 0; j < blocks.Len(); j++ {
		fmt.Fprintf(w, "%d\t%v\t%v\t%v\t%.6f\t%.6f\n",
			j, blocks.ABBA[j], blocks.BABA[j], res.Weights[j], res.LeaveOneOut[j], res.PseudoValues[j])
	}

	sorted := append([]float64(nil), res.LeaveOneOut...)
	sort.Float64s(sorted)
	fmt.Fprintf(w, "Leave-one-out D dispersion: SD %.6f\t1%%/99%%: %.6f/%.6f\n",
		stat.StdDev(sorted, nil),
		stat.Quantile(0.01, stat.LinInterp, sorted, nil),
		stat.Quantile(0.99, stat.LinInterp, sorted, nil))

	hist := histogram.Hist(10, res.LeaveOneOut)

	return histogram.Fprint(w, hist, histogram.Linear(40))
}
