package locked

import (
	"context"
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perlin-network/ringbuffer"
)

func newLocked(t *testing.T, elements int, overwrite bool) *Buffer {
	t.Helper()

	b, err := New(ringbuffer.Config{Region: make([]byte, elements*8), ElementSize: 8, Overwrite: overwrite})
	require.NoError(t, err)

	return b
}

func encode(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

func TestNewInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(ringbuffer.Config{Region: nil, ElementSize: 8})
	assert.Equal(t, ringbuffer.ErrInvalidArgument, errors.Cause(err))
}

func TestDelegates(t *testing.T) {
	t.Parallel()

	b := newLocked(t, 2, false)

	require.NoError(t, b.Insert(encode(1)))
	require.NoError(t, b.Insert(encode(2)))
	assert.Equal(t, ringbuffer.ErrBufferFull, b.Insert(encode(3)))

	full, err := b.IsFull()
	require.NoError(t, err)
	assert.True(t, full)

	require.NoError(t, b.Replace(1, encode(20)))

	out := make([]byte, 8)
	require.NoError(t, b.Peek(1, out))
	assert.Equal(t, uint64(20), binary.LittleEndian.Uint64(out))

	require.NoError(t, b.Retrieve(out))
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(out))

	free, err := b.FreeElements()
	require.NoError(t, err)
	assert.Equal(t, 1, free)

	size, err := b.ElementSize()
	require.NoError(t, err)
	assert.Equal(t, 8, size)

	empty, err := b.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	require.NoError(t, b.Deinit())
	assert.Equal(t, ringbuffer.ErrNotInitialized, b.Insert(encode(4)))
}

func TestDo(t *testing.T) {
	t.Parallel()

	b := newLocked(t, 4, false)
	require.NoError(t, b.Insert(encode(5)))

	err := b.Do(func(engine ringbuffer.Engine) error {
		out := make([]byte, 8)
		if err := engine.Peek(0, out); err != nil {
			return err
		}
		return engine.Replace(0, encode(binary.LittleEndian.Uint64(out)*2))
	})
	require.NoError(t, err)

	out := make([]byte, 8)
	require.NoError(t, b.Retrieve(out))
	assert.Equal(t, uint64(10), binary.LittleEndian.Uint64(out))
}

func TestConcurrentProducersConsumers(t *testing.T) {
	defer leaktest.Check(t)()

	const (
		producers   = 4
		perProducer = 2000
	)

	b := newLocked(t, 16, false)
	ctx := context.Background()

	var seen sync.Map
	wg := &sync.WaitGroup{}

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				assert.NoError(t, b.InsertWait(ctx, encode(uint64(p*perProducer+i))))
			}
		}(p)
	}

	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		out := make([]byte, 8)
		for i := 0; i < producers*perProducer; i++ {
			if !assert.NoError(t, b.RetrieveWait(ctx, out)) {
				return
			}
			_, dup := seen.LoadOrStore(binary.LittleEndian.Uint64(out), true)
			assert.False(t, dup, "element retrieved twice")
		}
	}()

	wg.Wait()
	glog.Infof("Inserted %d items\n", producers*perProducer)
	<-consumed

	empty, err := b.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestProducerOrderIsPreserved(t *testing.T) {
	defer leaktest.Check(t)()

	b := newLocked(t, 3, false)
	ctx := context.Background()

	const n = 1000

	go func() {
		for i := 0; i < n; i++ {
			assert.NoError(t, b.InsertWait(ctx, encode(uint64(i))))
		}
	}()

	out := make([]byte, 8)
	for i := 0; i < n; i++ {
		require.NoError(t, b.RetrieveWait(ctx, out))
		require.Equal(t, uint64(i), binary.LittleEndian.Uint64(out))
	}
}

func TestRetrieveWaitCancelled(t *testing.T) {
	defer leaktest.Check(t)()

	b := newLocked(t, 2, false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := b.RetrieveWait(ctx, make([]byte, 8))
	assert.Equal(t, context.DeadlineExceeded, err)
}

func TestInsertWaitBlocksUntilRoom(t *testing.T) {
	defer leaktest.Check(t)()

	b := newLocked(t, 1, false)
	require.NoError(t, b.Insert(encode(1)))

	done := make(chan error, 1)
	go func() {
		done <- b.InsertWait(context.Background(), encode(2))
	}()

	select {
	case <-done:
		t.Fatal("InsertWait returned while the buffer was full")
	case <-time.After(5 * time.Millisecond):
	}

	out := make([]byte, 8)
	require.NoError(t, b.Retrieve(out))
	require.NoError(t, <-done)

	require.NoError(t, b.Retrieve(out))
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(out))
}

func TestWaitReturnsOnDeinit(t *testing.T) {
	defer leaktest.Check(t)()

	b := newLocked(t, 1, false)

	done := make(chan error, 1)
	go func() {
		done <- b.RetrieveWait(context.Background(), make([]byte, 8))
	}()

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, b.Deinit())

	assert.Equal(t, ringbuffer.ErrNotInitialized, <-done)
}

func TestInsertWaitOverwriteNeverBlocks(t *testing.T) {
	t.Parallel()

	b := newLocked(t, 1, true)
	for i := 0; i < 5; i++ {
		require.NoError(t, b.InsertWait(context.Background(), encode(uint64(i))))
	}

	out := make([]byte, 8)
	require.NoError(t, b.Retrieve(out))
	assert.Equal(t, uint64(4), binary.LittleEndian.Uint64(out))
}
