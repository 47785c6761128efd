package analysis

import (
	"sort"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// frequency counts string occurrences and remembers first-seen order.
type frequency struct {
	index  map[string]int
	counts []models.CategoryCount
}

func newFrequency() *frequency {
	return &frequency{index: make(map[string]int)}
}

func (f *frequency) Add(key string) {
	if i, ok := f.index[key]; ok {
		f.counts[i].Count++
		return
	}
	f.index[key] = len(f.counts)
	f.counts = append(f.counts, models.CategoryCount{Name: key, Count: 1})
}

func (f *frequency) Count(key string) (int, bool) {
	i, ok := f.index[key]
	if !ok {
		return 0, false
	}
	return f.counts[i].Count, true
}

func (f *frequency) Len() int {
	return len(f.counts)
}

// MostCommon returns the key with the highest count. Ties go to the key that
// was added first.
func (f *frequency) MostCommon() (string, bool) {
	if len(f.counts) == 0 {
		return "", false
	}
	best := 0
	for i := 1; i < len(f.counts); i++ {
		if f.counts[i].Count > f.counts[best].Count {
			best = i
		}
	}
	return f.counts[best].Name, true
}

// Counts returns a copy of the table in first-seen order.
func (f *frequency) Counts() []models.CategoryCount {
	return append([]models.CategoryCount(nil), f.counts...)
}

// median of values, averaging the two middle values for even lengths.
// values is not modified.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
