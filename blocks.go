package dstat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// BlockCounts holds the per-block discordant site-pattern counts. Block
// identity is positional: block j is the jth record with a positive site
// count in the input. The two slices are always the same length.
type BlockCounts struct {
	ABBA []float64
	BABA []float64

	// Dropped counts input records that were excluded for having zero
	// informative sites. It exists for diagnostics only and plays no part
	// in the statistics.
	Dropped int
}

// Len returns the number of retained blocks.
func (bc BlockCounts) Len() int { return len(bc.ABBA) }

// Sites returns block j's informative site count, the jackknife weight m_j.
func (bc BlockCounts) Sites(j int) float64 { return bc.ABBA[j] + bc.BABA[j] }

// ReadBlockCounts parses a whitespace-delimited block report. The last two
// fields of each record are the baba count then the abba count; any leading
// fields (chromosome label, window coordinates) are ignored. Blank lines and
// lines starting with # are skipped. Records where abba+baba == 0 carry no
// information for the D-statistic and are dropped before they can reach the
// estimators.
func ReadBlockCounts(r io.Reader) (BlockCounts, error) {
	out := BlockCounts{}

	sc := bufio.NewScanner(r)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return BlockCounts{}, fmt.Errorf("line %d: expected at least 2 fields, found %d", lineNum, len(fields))
		}

		// The counts sit at the end of the line so that upstream tools can
		// prepend window annotations without breaking consumers.
		baba, err := strconv.ParseFloat(fields[len(fields)-2], 64)
		if err != nil {
			return BlockCounts{}, fmt.Errorf("line %d: baba count: %w", lineNum, err)
		}
		abba, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return BlockCounts{}, fmt.Errorf("line %d: abba count: %w", lineNum, err)
		}
		if abba < 0 || baba < 0 {
			return BlockCounts{}, fmt.Errorf("line %d: negative count (abba %v, baba %v)", lineNum, abba, baba)
		}

		if abba+baba == 0 {
			out.Dropped++
			continue
		}

		out.ABBA = append(out.ABBA, abba)
		out.BABA = append(out.BABA, baba)
	}
	if err := sc.Err(); err != nil {
		return BlockCounts{}, pfx.Err(err)
	}

	return out, nil
}
