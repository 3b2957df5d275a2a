package models

import (
	"fmt"

	"github.com/aouyang1/go-lasso/matrix"
)

func ExampleSimpleLasso() {
	data, err := matrix.FromRows([][]float64{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	if err != nil {
		panic(err)
	}
	solution, err := matrix.NewVector([]float64{5, 14, 23})
	if err != nil {
		panic(err)
	}
	initialW, err := matrix.NewVector([]float64{1, 1, 1})
	if err != nil {
		panic(err)
	}

	w, err := SimpleLasso(data, solution, initialW, 0.005, 0.001, 10000)
	if err != nil {
		panic(err)
	}
	for _, v := range w.Data() {
		fmt.Printf("%.2f\n", v)
	}
	// Output:
	// 0.00
	// 0.92
	// 2.07
}

func ExampleLassoRegression() {
	x, err := matrix.FromRows([][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
		{-1, 0.5},
	})
	if err != nil {
		panic(err)
	}
	y, err := matrix.NewVector([]float64{1, 3, 0, 2, -1.5})
	if err != nil {
		panic(err)
	}

	model, err := NewLassoRegression(&LassoOptions{
		StepLength:   0.25,
		Steps:        2000,
		FitIntercept: true,
	})
	if err != nil {
		panic(err)
	}
	if err := model.Fit(x, y); err != nil {
		panic(err)
	}

	r, err := NewReport(model, []string{"a", "b"})
	if err != nil {
		panic(err)
	}
	fmt.Println(r.ModelEq())
	// Output: y ~ 1.00+2.00*a-1.00*b
}
