package colour

import (
	"context"
	"math"
	"math/rand"
)

// kmeans clustering parameters. Convergence is deliberately loose: the
// palette only needs representative centroids, not exact cluster optima.
const (
	kmeansMaxIterations = 20
	kmeansConvergence   = 2.0
)

// extractKMeans clusters the pixel set into count groups by Euclidean
// distance in RGB space and returns the rounded centroids. The RNG seed makes
// centroid initialisation (and therefore the whole run) deterministic.
func extractKMeans(ctx context.Context, pixels []RGB, count int, seed int64) ([]RGB, error) {
	unique := uniqueColours(pixels)
	if count >= len(unique) {
		return unique, nil
	}

	rng := rand.New(rand.NewSource(seed))

	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
	}

	centroids := initialCentroids(points, count, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		// Under 1% reassignment counts as converged.
		if float64(changed)/float64(len(points)) < 0.01 && iter > 0 {
			break
		}

		next := recomputeCentroids(points, assignments, count, rng)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(count) < kmeansConvergence {
			break
		}
	}

	out := make([]RGB, len(centroids))
	for i, c := range centroids {
		out[i] = RGB{
			R: uint8(math.Round(math.Min(255, math.Max(0, c.R)))),
			G: uint8(math.Round(math.Min(255, math.Max(0, c.G)))),
			B: uint8(math.Round(math.Min(255, math.Max(0, c.B)))),
		}
	}
	return out, nil
}

// point3D is a point in RGB space.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// initialCentroids seeds the clusters using k-means++: the first centroid is
// drawn uniformly, the rest with probability proportional to squared distance
// from the nearest existing centroid.
func initialCentroids(points []point3D, k int, rng *rand.Rand) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every remaining point coincides with a centroid; perturb the
			// last one slightly rather than looping forever.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p.
func nearestCentroid(p point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recomputeCentroids moves each centroid to the mean of its assigned points.
// Empty clusters are reseeded from the point set.
func recomputeCentroids(points []point3D, assignments []int, k int, rng *rand.Rand) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, p := range points {
		cluster := assignments[i]
		sums[cluster].R += p.R
		sums[cluster].G += p.G
		sums[cluster].B += p.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}
	return centroids
}
