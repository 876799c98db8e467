package transform

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
)

func TestAnnotations_ConcurrentAdd(t *testing.T) {
	t.Parallel()

	a := NewAnnotations()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Add(domain.Annotation{Path: domain.Path(fmt.Sprintf("activity.children[%02d]", i)), Severity: domain.SeverityError})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, a.Len())
}

func TestAnnotations_ListSortedByPath(t *testing.T) {
	t.Parallel()

	a := NewAnnotations()
	a.Add(domain.Annotation{Path: "b", Message: "first at b"})
	a.Add(domain.Annotation{Path: "a", Message: "a"})
	a.Add(domain.Annotation{Path: "b", Message: "second at b"})

	got := a.List()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Message)
	assert.Equal(t, "first at b", got[1].Message)
	assert.Equal(t, "second at b", got[2].Message)
}

func TestAnnotations_AtAndHas(t *testing.T) {
	t.Parallel()

	a := NewAnnotations()
	a.Add(domain.Annotation{Path: "share.displayName", Severity: domain.SeverityWarning})

	assert.Len(t, a.At("share.displayName"), 1)
	assert.Empty(t, a.At("share.scr"))
	assert.True(t, a.Has("share.displayName", domain.SeverityWarning))
	assert.False(t, a.Has("share.displayName", domain.SeverityError))
}
