package fn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type racer int32

func (r racer) Call(x int32) int32 { return int32(r) + x }

type heavy struct{ a, b int64 }

func (h heavy) Call(x int32) int32 { return int32(h.a+h.b) + x }

func TestForType_SingletonUnderConcurrentFirstUse(t *testing.T) {
	const goroutines = 32

	var wg sync.WaitGroup
	got := make([]*opTable[int32, int32], goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = forType[racer, int32, int32]()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for i := 1; i < goroutines; i++ {
		assert.Same(t, got[0], got[i])
	}
}

func TestForType_DistinctPerTypeAndSignature(t *testing.T) {
	a := forType[racer, int32, int32]()
	b := forType[heavy, int32, int32]()
	assert.NotSame(t, a, b)

	// stable across calls
	assert.Same(t, a, forType[racer, int32, int32]())
}

func TestEmptyTable_SingletonPerSignature(t *testing.T) {
	assert.Same(t, emptyTable[int32, int32](), emptyTable[int32, int32]())
	assert.NotSame(t, emptyTable[int32, int32](), emptyTable[int64, int64]())

	e := emptyTable[int32, int32]()
	assert.NotSame(t, e, forType[racer, int32, int32]())
}

func TestNewTable_StorageModeSelection(t *testing.T) {
	assert.True(t, forType[racer, int32, int32]().inline, "4-byte value type should live inline")
	assert.False(t, forType[heavy, int32, int32]().inline, "16-byte value type should be boxed")
	assert.False(t, emptyTable[int32, int32]().inline)
}

func TestEmptyTable_InvokeNeverReadsStorage(t *testing.T) {
	e := emptyTable[int32, int32]()
	_, err := e.invoke(nil, 1)
	assert.ErrorIs(t, err, ErrNoTarget)
}
