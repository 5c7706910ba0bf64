package distance

import "math"

type manhattan struct {
	preds [][]float64
	w     []float64
}

func (s *manhattan) Distance(recipient, donor int) float64 {
	var d float64
	for k, yhat := range s.preds {
		d += s.w[k] * math.Abs(yhat[recipient]-yhat[donor])
	}
	return d
}

type euclidian struct {
	preds [][]float64
	w     []float64
}

func (s *euclidian) Distance(recipient, donor int) float64 {
	var d float64
	for k, yhat := range s.preds {
		delta := yhat[recipient] - yhat[donor]
		d += s.w[k] * delta * delta
	}
	return math.Sqrt(d)
}
