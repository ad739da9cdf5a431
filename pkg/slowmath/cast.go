package slowmath

import "github.com/eigerco/slowmath/internal/safemath"

// IntegralCast converts src to Dst, failing unless the value is
// preserved exactly.
//
//	n, err := slowmath.IntegralCast[uint8](v)
func IntegralCast[Dst, Src Integer](src Src) (Dst, error) {
	return safemath.Raise("integral_cast", safemath.Cast[Dst](safemath.Checked{}, src))
}

func TryIntegralCast[Dst, Src Integer](src Src) Result[Dst] {
	return safemath.Cast[Dst](safemath.Try{}, src)
}

func MustIntegralCast[Dst, Src Integer](src Src) Dst {
	return safemath.Cast[Dst](safemath.FailFast{}, src).Value
}
