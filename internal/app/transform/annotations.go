package transform

import (
	"sort"
	"sync"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
)

// Annotations is the concurrency-safe side channel of one traversal. It maps
// node paths to the errors and warnings recorded there, keeping them out of
// the payload itself.
type Annotations struct {
	mu    sync.Mutex
	items []domain.Annotation
}

// NewAnnotations returns an empty side channel.
func NewAnnotations() *Annotations {
	return &Annotations{}
}

// Add records an annotation.
func (a *Annotations) Add(an domain.Annotation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = append(a.items, an)
}

// Len returns the number of recorded annotations.
func (a *Annotations) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}

// List returns a copy of the annotations ordered by path. Annotations at the
// same path keep their recording order.
func (a *Annotations) List() []domain.Annotation {
	a.mu.Lock()
	out := make([]domain.Annotation, len(a.items))
	copy(out, a.items)
	a.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// At returns the annotations recorded at path.
func (a *Annotations) At(path domain.Path) []domain.Annotation {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []domain.Annotation
	for _, an := range a.items {
		if an.Path == path {
			out = append(out, an)
		}
	}
	return out
}

// Has reports whether an annotation with severity sev was recorded at path.
func (a *Annotations) Has(path domain.Path, sev domain.Severity) bool {
	for _, an := range a.At(path) {
		if an.Severity == sev {
			return true
		}
	}
	return false
}
