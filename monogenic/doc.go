// Package monogenic computes the monogenic signal of single-channel images
// and the phase-based feature measures derived from it.
//
// A [Processor] is sized to one image shape. It builds a log-Gabor/Riesz
// filter bank once and reuses it for every image of that shape:
//
//	p, err := monogenic.New(rows, cols, monogenic.DefaultConfig().WithWavelength(16))
//	if err != nil { ... }
//	if err := p.FindMonogenicSignal(img); err != nil { ... }
//	fa, err := p.FeatureAsymmetry()
//
// # Responses
//
// FindMonogenicSignal stores three spatial responses: the even (band-pass)
// response and the vertical and horizontal odd (Riesz) responses. From these,
//
//	localEnergy = sqrt(even^2 + oddY^2 + oddX^2)
//	oddEnergy   = sqrt(oddY^2 + oddX^2)
//	orientation = atan2(oddY, oddX)          in (-pi, pi]
//	localPhase  = atan2(oddEnergy, even)     in [0, pi]
//
// # Feature measures
//
// Symmetry and asymmetry are noise-compensated ratios:
//
//	fs = max(|even|     - T, 0) / (localEnergy + Epsilon)
//	fa = max(oddEnergy  - T, 0) / (localEnergy + Epsilon)
//	T  = SymThresh * NoiseScale * max(localEnergy)
//
// Both lie in [0, 1]. Lines give high symmetry, edges high asymmetry.
// [Processor.SignedSymmetry] splits fs by the sign of the even response
// (bright versus dark lines) and [Processor.OrientedAsymmetry] pairs fa with
// the edge orientation.
//
// # State
//
// A new Processor is in [StateConstructed]; every getter returns
// [ErrNotReady] until a FindMonogenicSignal call succeeds. A failing call
// leaves earlier responses and the state untouched.
//
// A Processor is not safe for concurrent use. Independent processors share
// nothing and may run in parallel.
package monogenic
