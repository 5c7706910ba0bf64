package distance

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// mahalanobis scores pairs under the inverse of the ridge-regularized
// covariance of the donor pool's predicted values. The Cholesky factor is
// computed once at construction; Distance only performs triangular solves.
type mahalanobis struct {
	preds [][]float64
	w     []float64
	chol  mat.Cholesky
}

func newMahalanobis(preds [][]float64, w []float64, donors []int, ridge float64) (Scorer, error) {
	d := len(preds)
	cov := mat.NewSymDense(d, nil)
	if len(donors) >= 2 {
		x := mat.NewDense(len(donors), d, nil)
		for i, row := range donors {
			for k := 0; k < d; k++ {
				x.Set(i, k, preds[k][row])
			}
		}
		stat.CovarianceMatrix(cov, x, nil)
	}
	// Ridge-load the diagonal. A zero variance dimension gets the raw ridge
	// so the matrix stays positive definite even for constant predictors.
	for k := 0; k < d; k++ {
		v := cov.At(k, k)
		add := ridge * v
		if add == 0 {
			add = ridge
		}
		cov.SetSym(k, k, v+add)
	}
	s := &mahalanobis{preds: preds, w: w}
	jitter := ridge
	for !s.chol.Factorize(cov) {
		// Near-singular even after loading; escalate the diagonal until the
		// factorization succeeds. Terminates because the matrix converges to
		// a dominant diagonal.
		for k := 0; k < d; k++ {
			cov.SetSym(k, k, cov.At(k, k)+jitter)
		}
		jitter *= 2
	}
	return s, nil
}

func (s *mahalanobis) Distance(recipient, donor int) float64 {
	d := len(s.preds)
	delta := mat.NewVecDense(d, nil)
	for k, yhat := range s.preds {
		delta.SetVec(k, s.w[k]*(yhat[recipient]-yhat[donor]))
	}
	var z mat.VecDense
	if err := s.chol.SolveVecTo(&z, delta); err != nil {
		// The factorization is positive definite, so this cannot happen;
		// degrade to the squared weighted difference rather than fail.
		return mat.Dot(delta, delta)
	}
	return mat.Dot(delta, &z)
}
