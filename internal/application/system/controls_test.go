package system

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlState_Setters(t *testing.T) {
	cs := NewControlState()
	assert.Equal(t, Controls{}, cs.Snapshot())

	cs.SetLeft(true)
	assert.Equal(t, Controls{Left: true}, cs.Snapshot())

	cs.SetRight(true)
	cs.SetJump(true)
	assert.Equal(t, Controls{Left: true, Right: true, Jump: true}, cs.Snapshot())

	cs.SetLeft(false)
	assert.Equal(t, Controls{Right: true, Jump: true}, cs.Snapshot())

	cs.Reset()
	assert.Equal(t, Controls{}, cs.Snapshot())
}

func TestControlState_LastWriteWins(t *testing.T) {
	cs := NewControlState()

	// Two sources press the same control; one release clears it
	cs.Set(ControlJump, true)
	cs.Set(ControlJump, true)
	cs.Set(ControlJump, false)

	assert.False(t, cs.Snapshot().Jump)
}

func TestControlState_SetUnknownIsIgnored(t *testing.T) {
	cs := NewControlState()
	cs.Set(Control("dash"), true)
	assert.Equal(t, Controls{}, cs.Snapshot())
}

func TestControlState_ConcurrentWriters(t *testing.T) {
	cs := NewControlState()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				cs.SetLeft(j%2 == 0)
				cs.SetRight(i%2 == 0)
				_ = cs.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	cs.SetLeft(true)
	assert.True(t, cs.Snapshot().Left)
}

func TestControls_Held(t *testing.T) {
	c := Controls{Left: true, Jump: true}
	assert.True(t, c.Held(ControlLeft))
	assert.False(t, c.Held(ControlRight))
	assert.True(t, c.Held(ControlJump))
	assert.False(t, c.Held(Control("dash")))
}
