// Package distributions implements continuous and discrete probability
// distributions with mutable, validated parameters.
//
// Every family satisfies Distribution; continuous families add Pdf and
// discrete ones Pmf.
//
// # Creating a Distribution
//
//	d, err := distributions.NewCauchy(0, 1)
//	g, err := distributions.NewInverseGamma(3, 2)
//
//	// loosely typed, e.g. from configuration
//	d, err := distributions.New("StudentT", 9)
//
// Non-positive scales or shapes are errkind.ErrInvalidValue. Non-numeric
// arguments to New and SetParameter are errkind.ErrInvalidType.
//
// # Quantiles
//
// Families with a closed-form inverse CDF (Gaussian, Z, Cauchy, Levy,
// Exponential) implement Qf directly. All others invert Cdf numerically: a
// bracket is taken from the support, widened geometrically on unbounded
// sides, then narrowed by Newton steps safeguarded with bisection. The
// settings live in InversionConfig; a failed inversion is reported as
// ErrNotConverged.
//
//	x, err := g.Qf(0.95)
//	q, err := g.Quantile(1, 10) // first decile
//
// # Derived Properties
//
// Mean, Var, Skew, Kurt and friends use closed forms. A moment that does not
// exist for the current parameters is the Undefined sentinel:
//
//	c, _ := distributions.NewCauchy(0, 1)
//	distributions.IsUndefined(c.Mean()) // true
//
// Median, Q1 and Q3 of families without closed forms are computed by
// inversion once and cached. Any successful parameter change clears the
// cache.
//
// # Histograms and Sampling
//
//	bins, err := g.Histogram(0, 5, 20) // probability mass per bin
//	g.Seed(42)
//	x, err := g.Random()
//
// Instances are not safe for concurrent use.
package distributions
