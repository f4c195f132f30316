// Package specfun supplies the special functions the distribution families
// are built on.
//
// The heavy lifting is done by gonum's mathext package and the standard math
// package; this package fixes the argument order used throughout the library
// and turns out-of-domain arguments into NaN instead of panics.
//
//	p := specfun.LowerGammaReg(2.5, 1.2)      // P(a, x)
//	q := specfun.UpperGammaReg(2.5, 1.2)      // Q(a, x) = 1 - P(a, x)
//	i := specfun.IncompleteBetaReg(0.3, 2, 5) // I_z(x, y)
package specfun
