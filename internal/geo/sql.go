package geo

import (
	"fmt"
	"strconv"
)

// sqlOps builds a PostgreSQL scalar expression instead of evaluating the
// formula. T is the SQL fragment; operands are either column names or
// literals produced by Lit, so the output contains no caller-supplied
// strings beyond formatted float64 values.
type sqlOps struct{}

func (sqlOps) Lit(v float64) string     { return strconv.FormatFloat(v, 'f', -1, 64) }
func (sqlOps) Radians(x string) string  { return fmt.Sprintf("radians(%s)", x) }
func (sqlOps) Sin(x string) string      { return fmt.Sprintf("sin(%s)", x) }
func (sqlOps) Cos(x string) string      { return fmt.Sprintf("cos(%s)", x) }
func (sqlOps) Asin(x string) string     { return fmt.Sprintf("asin(%s)", x) }
func (sqlOps) Sqrt(x string) string     { return fmt.Sprintf("sqrt(%s)", x) }
func (sqlOps) Add(a, b string) string   { return fmt.Sprintf("(%s + %s)", a, b) }
func (sqlOps) Sub(a, b string) string   { return fmt.Sprintf("(%s - %s)", a, b) }
func (sqlOps) Mul(a, b string) string   { return fmt.Sprintf("(%s * %s)", a, b) }

// DistanceSQL lowers the haversine formula into a PostgreSQL expression that
// computes the distance in meters between the fixed point (lat, lon) and the
// coordinate held in the named columns. latCol and lonCol must be trusted
// identifiers, never user input.
func DistanceSQL(lat, lon float64, latCol, lonCol string) string {
	m := sqlOps{}
	return Haversine[string](m, m.Lit(lat), m.Lit(lon), latCol, lonCol)
}
