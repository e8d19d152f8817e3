package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopWaitsForWorkers(t *testing.T) {
	lc := New()
	assert.False(t, lc.ShouldStop())

	finished := false
	lc.Started()
	go func() {
		defer lc.Done()
		<-lc.Stopped()
		finished = true
	}()

	lc.Stop()
	assert.True(t, lc.ShouldStop())
	assert.True(t, finished)
}
