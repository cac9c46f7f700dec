// Package export renders biquad cascade coefficient tables in the formats
// embedded targets consume: CMSIS-DSP C headers for the direct-form biquad
// kernels, plus CSV, MATLAB and Python text for offline verification.
package export

import (
	"fmt"

	"github.com/dowhile98/algo-iir/dsp/core"
)

// Form selects the direct-form structure the coefficients target.
//
// Both forms share the packed {b0, b1, b2, a1, a2} layout with 5
// coefficients per section; they differ only in the per-section state the
// kernel keeps: 4 values for DF1, 2 for DF2T.
type Form int

const (
	DF2T Form = iota
	DF1
)

func (f Form) String() string {
	switch f {
	case DF2T:
		return "DF2T"
	case DF1:
		return "DF1"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// StatePerSection returns the number of state values each section keeps.
func (f Form) StatePerSection() int {
	if f == DF1 {
		return 4
	}
	return 2
}

// ParseForm converts a form name to its Form value.
func ParseForm(s string) (Form, error) {
	switch s {
	case "df2t", "DF2T":
		return DF2T, nil
	case "df1", "DF1":
		return DF1, nil
	default:
		return 0, fmt.Errorf("export: unknown form %q", s)
	}
}

// DataType selects the numeric representation of the emitted coefficients.
type DataType int

const (
	Float32 DataType = iota
	Q15
	Q31
)

func (d DataType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Q15:
		return "q15"
	case Q31:
		return "q31"
	default:
		return fmt.Sprintf("DataType(%d)", int(d))
	}
}

// CType returns the CMSIS-DSP C type name.
func (d DataType) CType() string {
	switch d {
	case Q15:
		return "q15_t"
	case Q31:
		return "q31_t"
	default:
		return "float32_t"
	}
}

// ParseDataType converts a data type name to its DataType value.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "float32", "f32":
		return Float32, nil
	case "q15":
		return Q15, nil
	case "q31":
		return Q31, nil
	default:
		return 0, fmt.Errorf("export: unknown data type %q", s)
	}
}

// Fixed-point conversion clips just inside (-1, 1) before scaling so that
// +1.0 inputs cannot wrap to the most negative code.
const fixedPointClip = 0.9999999

// ToQ15 converts a coefficient to Q15 (1 sign bit, 15 fractional bits).
func ToQ15(x float64) int16 {
	return int16(core.Clamp(x, -fixedPointClip, fixedPointClip) * 32768)
}

// ToQ31 converts a coefficient to Q31 (1 sign bit, 31 fractional bits).
func ToQ31(x float64) int32 {
	return int32(core.Clamp(x, -fixedPointClip, fixedPointClip) * 2147483648)
}

// FormatCoefficient renders one coefficient the way the header table prints
// it for the given data type: 10-decimal float with an f suffix, or hex for
// the fixed-point types.
func FormatCoefficient(x float64, d DataType) string {
	switch d {
	case Q15:
		return fmt.Sprintf("0x%04X", uint16(ToQ15(x)))
	case Q31:
		return fmt.Sprintf("0x%08X", uint32(ToQ31(x)))
	default:
		return fmt.Sprintf("%.10ff", x)
	}
}
