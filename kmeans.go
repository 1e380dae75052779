/*
 *  kmeans.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// KMeans partitions equal-length vectors into K groups by Lloyd iterations
// from k-means++ seeds. NInit independent runs are made and the one with the
// lowest inertia wins. The same Seed and input always give the same labels.
type KMeans struct {
	K       int
	Seed    int64
	MaxIter int
	NInit   int
	Tol     float64
}

// KMeansResult holds the winning run
type KMeansResult struct {
	Labels    []int
	Centroids *mat64.Dense
	Inertia   float64
	NIter     int
}

// Fit clusters the vectors and returns one label in [0, K) per vector
func (r *KMeans) Fit(vectors []ImputedVector) (*KMeansResult, error) {
	if r.K <= 0 {
		return nil, fmt.Errorf("%w: k = %d, must be at least 1", ErrInvalidK, r.K)
	}
	N := len(vectors)
	if N == 0 {
		return nil, ErrInsufficientData
	}
	if r.K > N {
		return nil, fmt.Errorf("%w: k = %d exceeds the %d vectors available", ErrInvalidK, r.K, N)
	}
	D := len(vectors[0])
	data := make([]float64, 0, N*D)
	for i, v := range vectors {
		if len(v) != D {
			return nil, fmt.Errorf("%w: vector %d has length %d, expected %d",
				ErrValidation, i, len(v), D)
		}
		data = append(data, v...)
	}
	X := mat64.NewDense(N, D, data)

	maxIter := r.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	nInit := r.NInit
	if nInit <= 0 {
		nInit = 1
	}
	tol := r.Tol * meanVariance(X)

	rng := rand.New(rand.NewSource(r.Seed))
	var best *KMeansResult
	for run := 0; run < nInit; run++ {
		res := r.lloyd(X, r.seedCentroids(X, rng), maxIter, tol)
		log.Debugf("k-means run %d: inertia = %.4f after %d iterations", run, res.Inertia, res.NIter)
		if best == nil || res.Inertia < best.Inertia {
			best = res
		}
	}
	log.Noticef("k-means converged with k = %d, inertia = %.4f", r.K, best.Inertia)
	return best, nil
}

// seedCentroids picks K rows of X by k-means++: each next centroid is drawn
// with probability proportional to its squared distance to the nearest chosen one
func (r *KMeans) seedCentroids(X *mat64.Dense, rng *rand.Rand) *mat64.Dense {
	N, D := X.Dims()
	C := mat64.NewDense(r.K, D, nil)
	C.SetRow(0, X.RawRowView(rng.Intn(N)))

	d2 := make([]float64, N)
	for i := 0; i < N; i++ {
		d2[i] = sqDist(X.RawRowView(i), C.RawRowView(0))
	}
	for c := 1; c < r.K; c++ {
		total := floats.Sum(d2)
		pick := 0
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i, w := range d2 {
				acc += w
				pick = i
				if acc > target {
					break
				}
			}
		} else {
			pick = rng.Intn(N)
		}
		C.SetRow(c, X.RawRowView(pick))
		for i := 0; i < N; i++ {
			if d := sqDist(X.RawRowView(i), C.RawRowView(c)); d < d2[i] {
				d2[i] = d
			}
		}
	}
	return C
}

// lloyd alternates assignment and centroid updates until labels are stable,
// the centroid shift drops under tol, or maxIter is reached
func (r *KMeans) lloyd(X, C *mat64.Dense, maxIter int, tol float64) *KMeansResult {
	N, D := X.Dims()
	labels := make([]int, N)
	for i := range labels {
		labels[i] = -1
	}

	iter := 0
	for iter < maxIter {
		iter++
		changed := assign(X, C, labels)

		sums := mat64.NewDense(r.K, D, nil)
		counts := make([]int, r.K)
		for i := 0; i < N; i++ {
			floats.Add(sums.RawRowView(labels[i]), X.RawRowView(i))
			counts[labels[i]]++
		}
		if r.reseedEmpty(X, C, sums, counts, labels) {
			changed = true
		}

		shift := 0.0
		for c := 0; c < r.K; c++ {
			row := sums.RawRowView(c)
			if counts[c] == 0 {
				copy(row, C.RawRowView(c))
				continue
			}
			floats.Scale(1/float64(counts[c]), row)
			shift += sqDist(row, C.RawRowView(c))
		}
		C.Copy(sums)
		if !changed || shift <= tol {
			break
		}
	}
	// Labels must agree with the final centroids
	assign(X, C, labels)

	inertia := 0.0
	for i := 0; i < N; i++ {
		inertia += sqDist(X.RawRowView(i), C.RawRowView(labels[i]))
	}
	return &KMeansResult{Labels: labels, Centroids: C, Inertia: inertia, NIter: iter}
}

// reseedEmpty moves the points farthest from their centroid into empty clusters
func (r *KMeans) reseedEmpty(X, C, sums *mat64.Dense, counts []int, labels []int) bool {
	N, _ := X.Dims()
	moved := false
	taken := make(map[int]bool)
	for c := 0; c < r.K; c++ {
		if counts[c] > 0 {
			continue
		}
		far, farDist := -1, -1.0
		for i := 0; i < N; i++ {
			if taken[i] || counts[labels[i]] <= 1 {
				continue
			}
			if d := sqDist(X.RawRowView(i), C.RawRowView(labels[i])); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			continue
		}
		taken[far] = true
		old := labels[far]
		row := X.RawRowView(far)
		floats.Sub(sums.RawRowView(old), row)
		counts[old]--
		floats.Add(sums.RawRowView(c), row)
		counts[c]++
		labels[far] = c
		moved = true
		log.Debugf("Cluster %d was empty, reseeded with vector %d", c, far)
	}
	return moved
}

// assign labels each row of X with its nearest centroid, returns true if any label changed
func assign(X, C *mat64.Dense, labels []int) bool {
	N, _ := X.Dims()
	K, _ := C.Dims()
	changed := false
	for i := 0; i < N; i++ {
		row := X.RawRowView(i)
		best, bestDist := 0, math.Inf(1)
		for c := 0; c < K; c++ {
			if d := sqDist(row, C.RawRowView(c)); d < bestDist {
				best, bestDist = c, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}
	return changed
}

// sqDist is the squared Euclidean distance
func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// meanVariance is the average of the per-column variances of X, used to
// scale the convergence tolerance
func meanVariance(X *mat64.Dense) float64 {
	N, D := X.Dims()
	if N == 0 || D == 0 {
		return 0
	}
	total := 0.0
	col := make([]float64, N)
	for j := 0; j < D; j++ {
		mat64.Col(col, j, X)
		mean := floats.Sum(col) / float64(N)
		for _, x := range col {
			total += (x - mean) * (x - mean)
		}
	}
	return total / float64(N) / float64(D)
}
