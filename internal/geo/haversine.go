// Package geo computes great-circle distances.
//
// The haversine formula is written once, over an abstract set of arithmetic
// capabilities, so the identical formula can be evaluated as a plain float64
// function or lowered into a SQL expression for set-level filtering in the
// database. See Ops.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius the distance computation uses.
// The SF dataset's calibrated search-radius expectations assume this value;
// do not swap it for the 6371km convention without re-deriving those.
const EarthRadiusMeters = 6378000

// Ops is the arithmetic capability set the haversine formula needs.
// T is either a concrete number (float64) or a symbolic expression.
type Ops[T any] interface {
	// Lit lifts a constant into T.
	Lit(v float64) T
	Radians(x T) T
	Sin(x T) T
	Cos(x T) T
	Asin(x T) T
	Sqrt(x T) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
}

// Haversine evaluates the great-circle distance between (lat1, lon1) and
// (lat2, lon2), in meters, over the given capability set:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	c = 2·asin(√a)
//	d = c · R
//
// Coordinates are decimal degrees.
func Haversine[T any](m Ops[T], lat1, lon1, lat2, lon2 T) T {
	rlat1 := m.Radians(lat1)
	rlat2 := m.Radians(lat2)
	rlon1 := m.Radians(lon1)
	rlon2 := m.Radians(lon2)

	half := m.Lit(0.5)
	sinLat := m.Sin(m.Mul(m.Sub(rlat2, rlat1), half))
	sinLon := m.Sin(m.Mul(m.Sub(rlon2, rlon1), half))

	a := m.Add(
		m.Mul(sinLat, sinLat),
		m.Mul(m.Mul(m.Cos(rlat1), m.Cos(rlat2)), m.Mul(sinLon, sinLon)),
	)
	c := m.Mul(m.Lit(2), m.Asin(m.Sqrt(a)))

	return m.Mul(c, m.Lit(EarthRadiusMeters))
}

// floatOps evaluates the formula on concrete float64 values.
type floatOps struct{}

func (floatOps) Lit(v float64) float64     { return v }
func (floatOps) Radians(x float64) float64 { return x * math.Pi / 180 }
func (floatOps) Sin(x float64) float64     { return math.Sin(x) }
func (floatOps) Cos(x float64) float64     { return math.Cos(x) }
func (floatOps) Asin(x float64) float64    { return math.Asin(x) }
func (floatOps) Sqrt(x float64) float64    { return math.Sqrt(x) }
func (floatOps) Add(a, b float64) float64  { return a + b }
func (floatOps) Sub(a, b float64) float64  { return a - b }
func (floatOps) Mul(a, b float64) float64  { return a * b }

// Distance returns the great-circle distance in meters between two
// coordinates given in decimal degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return Haversine[float64](floatOps{}, lat1, lon1, lat2, lon2)
}
