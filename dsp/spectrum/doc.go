// Package spectrum analyzes filter cascades and spectrum bins.
//
// Analyze samples the frequency response of a biquad cascade by running its
// impulse response through an FFT backend. The remaining helpers operate on
// complex spectrum bins directly (magnitude, power, phase unwrapping, group
// delay) or evaluate single DFT bins with the Goertzel recurrence.
package spectrum
