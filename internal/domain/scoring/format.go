package scoring

import (
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

// Format selects how fantasy points are derived from a stat line.
type Format string

const (
	FormatStandard Format = "standard"
	FormatPPR      Format = "ppr"
	FormatHalfPPR  Format = "half_ppr"
)

const DefaultFormat = FormatPPR

var Formats = []Format{FormatPPR, FormatHalfPPR, FormatStandard}

func (f Format) Valid() bool {
	switch f {
	case FormatStandard, FormatPPR, FormatHalfPPR:
		return true
	default:
		return false
	}
}

// ParseFormat normalizes user input; anything unrecognised resolves to ppr.
func ParseFormat(raw string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	if f.Valid() {
		return f
	}
	return DefaultFormat
}

// Score returns the fantasy point value of stats under format f.
// Absent values count as zero and a missing PPR value falls back to standard.
func Score(stats player.StatLine, f Format) float64 {
	standard, _ := stats.Float(player.StatFantasyPoints)
	ppr, ok := stats.Float(player.StatFantasyPointsPPR)
	if !ok || ppr == 0 {
		ppr = standard
	}

	switch f {
	case FormatStandard:
		return standard
	case FormatHalfPPR:
		return (standard + ppr) / 2
	default:
		return ppr
	}
}
