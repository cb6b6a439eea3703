package location

import "math"

// HeadingOffset rotates atan2's result so the route marker icon points
// forward along the route. It is a rendering convention tuned for the
// marker artwork, not a geodesic bearing correction.
const HeadingOffset = math.Pi

// Bearing returns the marker angle in radians for travel from a to b.
func Bearing(a, b Cluster) float64 {
	return HeadingOffset + math.Atan2(a.Latitude-b.Latitude, b.Longitude-a.Longitude)
}

// Heading returns the direction of travel through clusters[i]: the mean of
// the incoming and outgoing bearings, or the single one that exists at
// either end of the route. A one-cluster route has no direction and
// returns NaN.
func Heading(clusters []Cluster, i int) float64 {
	var sum float64
	n := 0
	if i < len(clusters)-1 {
		sum += Bearing(clusters[i], clusters[i+1])
		n++
	}
	if i > 0 {
		sum += Bearing(clusters[i-1], clusters[i])
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Headings computes Heading for every index.
func Headings(clusters []Cluster) []float64 {
	out := make([]float64, len(clusters))
	for i := range clusters {
		out[i] = Heading(clusters, i)
	}
	return out
}
