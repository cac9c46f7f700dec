package sos_test

import (
	"fmt"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

func ExampleDecode() {
	// Single-section table in the flat [b0, b1, b2, a1, a2] layout.
	flat := []float64{0.25, 0.5, 0.25, -0.2, 0.04}

	c, err := sos.Decode(flat, 1)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	state := make([]float64, c.StateLen())

	out, _ := sos.Process(c, state, []float64{1, 0, 0, 0})
	for i, y := range out {
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
}

func ExampleProcessor_ProcessSample() {
	c, _ := sos.NewCascade([]sos.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
	})

	p := sos.NewProcessor(c)
	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}

		fmt.Printf("y[%d] = %.6f\n", i, p.ProcessSample(x))
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
}

func ExampleCascade_Flatten() {
	c, _ := sos.NewCascade([]sos.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	})

	fmt.Printf("sections: %d, state: %d\n", c.NumSections(), c.StateLen())
	fmt.Printf("layout: %.2f\n", c.Flatten())
	// Output:
	// sections: 2, state: 4
	// layout: [0.25 0.50 0.25 -0.20 0.04 0.10 0.20 0.10 -0.50 0.10]
}
