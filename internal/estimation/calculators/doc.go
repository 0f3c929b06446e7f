// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator itemizes one line of a paint estimate (primer, paint, labor). Calculators are
// composed via the estimation.Engine and accept input through estimation.Param slices built by Params.
package calculators
