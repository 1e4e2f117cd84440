package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// requireChiSquareFits fails when obs deviates from exp beyond the 99.9%
// quantile of the chi-square distribution with len(obs)-1 degrees of freedom.
func requireChiSquareFits(t testing.TB, obs, exp []float64) {
	t.Helper()
	x2 := stat.ChiSquare(obs, exp)
	crit := distuv.ChiSquared{K: float64(len(obs) - 1)}.Quantile(0.999)
	require.Less(t, x2, crit, "chi-square %.3f exceeds %.3f\nobs=%v\nexp=%v", x2, crit, obs, exp)
}
