// Package loggabor builds frequency-domain monogenic filter banks: an
// isotropic log-Gabor band-pass kernel and its two Riesz companions.
//
// The even kernel at normalized radial frequency f is
//
//	G(f) = exp(-(ln(f/f0))^2 / (2 ln(sigma)^2)),  f0 = 1/wavelength
//
// with G(0) = 0 so the DC response is removed. The odd kernels rotate the
// phase of G by a quarter turn along each frequency axis:
//
//	OddX(u, v) = i * (u/f) * G(f)
//	OddY(u, v) = i * (v/f) * G(f)
//
// Kernels use the unshifted DFT layout that [fft2d] produces, so a bank can
// multiply a spectrum directly without any quadrant swapping.
//
// A [Bank] is immutable after [NewBank]; build one per image size and reuse
// it for every image of that size.
package loggabor
