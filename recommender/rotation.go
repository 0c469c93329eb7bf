package recommender

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/saludarte/saludarte-api/catalog/entities"
)

// RotationCounter tracks how many times each product has been shown across
// the process lifetime, so repeat queries surface varied products instead of
// always the top match. It is safe for concurrent use; construct one per
// process and inject it where selection happens.
type RotationCounter struct {
	mu     sync.Mutex
	counts map[string]int
	rng    *rand.Rand
}

func NewRotationCounter() *RotationCounter {
	return &RotationCounter{
		counts: make(map[string]int),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Count returns the current show-count for a product name.
func (r *RotationCounter) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}

// Select picks up to maxCount products from the scored candidates, draining
// one band per distinct score in descending order, so a boosted score always
// outranks lower tiers. Within a band the least-shown products go first, with
// random tie-break among equally-shown ones. Every selected product's
// show-count is incremented. Fewer than minCount candidates are returned
// as-is; padding is the caller's fallback concern.
func (r *RotationCounter) Select(candidates []entities.ScoredProduct, minCount, maxCount int) []entities.Product {
	if maxCount <= 0 || len(candidates) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bands := make(map[int][]entities.ScoredProduct)
	var scores []int
	for _, c := range candidates {
		if _, seen := bands[c.Score]; !seen {
			scores = append(scores, c.Score)
		}
		bands[c.Score] = append(bands[c.Score], c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	selected := make([]entities.Product, 0, maxCount)
	for _, score := range scores {
		if len(selected) >= maxCount {
			break
		}
		band := bands[score]
		r.sortByRotation(band)
		for _, c := range band {
			if len(selected) >= maxCount {
				break
			}
			selected = append(selected, c.Product)
			r.counts[c.Product.Name]++
		}
	}
	return selected
}

// sortByRotation orders a band least-shown first. Shuffling before the stable
// sort randomizes the order of equally-shown candidates.
func (r *RotationCounter) sortByRotation(band []entities.ScoredProduct) {
	r.rng.Shuffle(len(band), func(i, j int) {
		band[i], band[j] = band[j], band[i]
	})
	sort.SliceStable(band, func(i, j int) bool {
		return r.counts[band[i].Product.Name] < r.counts[band[j].Product.Name]
	})
}
