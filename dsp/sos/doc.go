// Package sos defines the second-order-section (biquad) coefficient table
// contract for cascaded IIR filters and a Direct Form II Transposed runtime.
//
// A [Cascade] is an immutable, validated sequence of [Coefficients]. The
// serialized interchange format is a flat slice of numSections*5 values,
// grouped [b0, b1, b2, a1, a2] per section with section 0 first, the same
// layout consumed by CMSIS-DSP biquad cascade kernels. [Decode] parses and
// validates such a layout; [Cascade.Flatten] is its exact inverse.
//
// Processing state lives in a caller-owned buffer of 2 values per section
// ([Cascade.StateLen]). A cascade may be shared read-only across goroutines;
// a state buffer belongs to exactly one processing stream and concurrent use
// from multiple goroutines is a data race. [Processor] bundles a cascade
// with its own state for the common single-stream case.
//
// Coefficient design (Butterworth, Chebyshev, Bessel, etc.) lives in
// dsp/filter/design.
package sos
