package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemorySequencerIncrements(t *testing.T) {
	seq := NewMemorySequencer()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := seq.Next(ctx, "INC-2025")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMemorySequencerScopesAreIndependent(t *testing.T) {
	seq := NewMemorySequencer()
	ctx := context.Background()

	_, _ = seq.Next(ctx, "INC-2025")
	_, _ = seq.Next(ctx, "INC-2025")
	got, err := seq.Next(ctx, "REQ-2025")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMemorySequencerConcurrentNext(t *testing.T) {
	seq := NewMemorySequencer()
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	seen := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := seq.Next(ctx, "CHG-2025")
			assert.NoError(t, err)
			seen <- n
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[int64]bool{}
	for n := range seen {
		assert.False(t, unique[n], "duplicate sequence number %d", n)
		unique[n] = true
	}
	assert.Len(t, unique, workers)
}
