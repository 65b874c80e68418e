package analyzers

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/KaramelBytes/dataspot-cli/models"
)

const significanceAlpha = 0.05

// Stats is the statistics collaborator for the compare engine: two counts
// in, a structured significance result out.
type Stats struct{}

// Compare tests whether the difference between two observed counts is
// larger than random fluctuation would explain. The counts are treated as
// Poisson-distributed event totals: the z-score uses the normal
// approximation (c-b)/sqrt(c+b), and a chi-square goodness-of-fit test
// against an equal split backs it up.
func (Stats) Compare(current, baseline int) *models.SignificanceResult {
	c := float64(current)
	b := float64(baseline)

	var z float64
	if c+b > 0 {
		z = (c - b) / math.Sqrt(c+b)
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	pValue := 2 * normal.Survival(math.Abs(z))
	if pValue > 1 {
		pValue = 1
	}

	var chi2, chiP float64
	if c+b > 0 {
		expected := (c + b) / 2
		chi2 = (c-expected)*(c-expected)/expected + (b-expected)*(b-expected)/expected
		chiP = distuv.ChiSquared{K: 1}.Survival(chi2)
	} else {
		chiP = 1
	}

	return &models.SignificanceResult{
		ZScore:          z,
		PValue:          pValue,
		ChiSquare:       chi2,
		ChiSquarePValue: chiP,
		Significant:     pValue < significanceAlpha,
		ConfidenceLevel: 1 - significanceAlpha,
	}
}
