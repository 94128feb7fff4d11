// Package binning discretizes positions and ratios into a fixed number of
// buckets so feature vectors keep the same shape regardless of table size.
package binning

// Linspace returns n evenly spaced edges over [start, stop]. The last edge is
// exactly stop.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	edges := make([]float64, n)
	if n == 1 {
		edges[0] = start
		return edges
	}
	step := (stop - start) / float64(n-1)
	for i := range edges {
		edges[i] = start + float64(i)*step
	}
	edges[n-1] = stop
	return edges
}

// Digitize returns how many edges are less than or equal to x, which is the
// index of the half-open interval [edges[i-1], edges[i]) holding x.
func Digitize(x float64, edges []float64) int {
	n := 0
	for _, e := range edges {
		if e <= x {
			n++
		}
	}
	return n
}

// Bucket maps x to a bucket id in [0, len(edges)-1].
func Bucket(x float64, edges []float64) int {
	b := Digitize(x, edges) - 1
	if b < 0 {
		return 0
	}
	if b > len(edges)-1 {
		return len(edges) - 1
	}
	return b
}
