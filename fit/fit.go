// Package fit estimates the parameters of the Menzerath-Altmann law on an
// xfy table by least squares on the logarithmic scale.
//
//	truncated: y = y1 * x^b      (y1 is the constituent length at the first row)
//	power:     y = a * x^b
//	complete:  y = a * x^b * e^(-c*x)
package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrTooFewPoints = errors.New("too few points")
	ErrNonPositive  = errors.New("non-positive value")
	ErrLength       = errors.New("x and y differ in length")
)

const (
	Truncated = "truncated"
	Power     = "power"
	Complete  = "complete"
)

// Models lists the model names in the order Fit returns them.
func Models() []string {
	return []string{Truncated, Power, Complete}
}

// Result holds the parameters of a fitted model. C is zero for the
// truncated and power models.
type Result struct {
	Model string
	A     float64
	B     float64
	C     float64

	// RSquared is the coefficient of determination on the original scale.
	RSquared float64
}

// Predict evaluates the fitted model at x.
func (r Result) Predict(x float64) float64 {
	return r.A * math.Pow(x, r.B) * math.Exp(-r.C*x)
}

func logs(x, y []float64, min int) (lx, ly []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, ErrLength
	}

	if len(x) < min {
		return nil, nil, fmt.Errorf("%w: %d, need %d", ErrTooFewPoints, len(x), min)
	}

	lx = make([]float64, len(x))
	ly = make([]float64, len(y))
	for i := range x {
		if x[i] <= 0 || y[i] <= 0 {
			return nil, nil, fmt.Errorf("%w at row %d", ErrNonPositive, i)
		}
		lx[i] = math.Log(x[i])
		ly[i] = math.Log(y[i])
	}
	return lx, ly, nil
}

func (r Result) withRSquared(x, y []float64) Result {
	estimates := make([]float64, len(x))
	for i := range x {
		estimates[i] = r.Predict(x[i])
	}
	r.RSquared = stat.RSquaredFrom(estimates, y, nil)
	return r
}

// FitTruncated fixes a to the first y and estimates b by regression through
// the origin.
func FitTruncated(x, y []float64) (Result, error) {
	lx, ly, err := logs(x, y, 2)
	if err != nil {
		return Result{}, err
	}

	for i := range ly {
		ly[i] -= math.Log(y[0])
	}

	_, b := stat.LinearRegression(lx, ly, nil, true)
	return Result{Model: Truncated, A: y[0], B: b}.withRSquared(x, y), nil
}

func FitPower(x, y []float64) (Result, error) {
	lx, ly, err := logs(x, y, 2)
	if err != nil {
		return Result{}, err
	}

	alpha, b := stat.LinearRegression(lx, ly, nil, false)
	return Result{Model: Power, A: math.Exp(alpha), B: b}.withRSquared(x, y), nil
}

// FitComplete solves ln y = ln a + b ln x - c x.
func FitComplete(x, y []float64) (Result, error) {
	lx, ly, err := logs(x, y, 3)
	if err != nil {
		return Result{}, err
	}

	design := mat.NewDense(len(x), 3, nil)
	for i := range x {
		design.Set(i, 0, 1)
		design.Set(i, 1, lx[i])
		design.Set(i, 2, -x[i])
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, mat.NewVecDense(len(ly), ly)); err != nil {
		return Result{}, fmt.Errorf("complete model: %w", err)
	}

	r := Result{
		Model: Complete,
		A:     math.Exp(coef.AtVec(0)),
		B:     coef.AtVec(1),
		C:     coef.AtVec(2),
	}
	return r.withRSquared(x, y), nil
}

// Fit runs every model that has enough points. The error is returned only
// when no model could be fitted.
func Fit(x, y []float64) ([]Result, error) {
	var results []Result
	var errs []error

	for _, f := range []func(x, y []float64) (Result, error){FitTruncated, FitPower, FitComplete} {
		r, err := f(x, y)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		return nil, errors.Join(errs...)
	}
	return results, nil
}
