package distance

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// residual standardizes each dimension by the donor pool's residual scale
// and shrinks dimensions whose predictions track the observed values almost
// perfectly, which signals near-collinear predictors.
//
// The per-dimension factor is min(|cor(yhat, y)|, maxcor) and the scale is
// max(sd(y - yhat), eps), both over the eligible donor pool.
type residual struct {
	preds [][]float64
	w     []float64
	scale []float64
	cor   []float64
}

func newResidual(preds, data [][]float64, w []float64, donors []int, p Params) (Scorer, error) {
	d := len(preds)
	s := &residual{
		preds: preds,
		w:     w,
		scale: make([]float64, d),
		cor:   make([]float64, d),
	}
	yhat := make([]float64, len(donors))
	y := make([]float64, len(donors))
	res := make([]float64, len(donors))
	for k := 0; k < d; k++ {
		for i, row := range donors {
			yhat[i] = preds[k][row]
			y[i] = data[k][row]
			res[i] = y[i] - yhat[i]
		}
		sd, err := stats.StandardDeviationSample(res)
		if err != nil || math.IsNaN(sd) {
			sd = 0
		}
		s.scale[k] = math.Max(sd, p.Eps)
		c := math.Abs(stat.Correlation(yhat, y, nil))
		if math.IsNaN(c) {
			c = p.MaxCor
		}
		s.cor[k] = math.Min(c, p.MaxCor)
	}
	return s, nil
}

func (s *residual) Distance(recipient, donor int) float64 {
	var d float64
	for k, yhat := range s.preds {
		delta := (yhat[recipient] - yhat[donor]) / s.scale[k]
		d += s.w[k] * s.cor[k] * delta * delta
	}
	return math.Sqrt(d)
}
