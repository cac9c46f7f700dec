// Package design computes biquad cascade coefficients for the classic IIR
// filter families: Butterworth, Chebyshev Type I and II, Bessel, and
// elliptic (Cauer), in lowpass, highpass, bandpass, and bandstop
// configurations.
//
// All designs use the bilinear transform with frequency pre-warping, so the
// digital cutoff lands exactly on the requested frequency. Results are
// returned as [sos.Coefficients] slices or assembled into a [sos.Cascade]
// via [Design], ready for processing or export.
//
// Bandpass and bandstop responses are derived from the corresponding lowpass
// prototype through the Constantinides digital frequency transformation, so
// every family keeps its passband shape in the band configurations.
package design
