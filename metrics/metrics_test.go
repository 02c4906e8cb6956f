package metrics

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perlin-network/ringbuffer"
	"github.com/perlin-network/ringbuffer/mocks"
)

func newInstrumented(t *testing.T, elements int, overwrite bool) (*Buffer, *Metrics) {
	t.Helper()

	rb, err := ringbuffer.New(ringbuffer.Config{Region: make([]byte, elements), ElementSize: 1, Overwrite: overwrite})
	require.NoError(t, err)

	m := NewMetrics("test", "ring")
	return Wrap(rb, m), m
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	m := NewMetrics("test", "ring")
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg), "registering twice must fail")

	families, err := reg.Gather()
	require.NoError(t, err)

	// The counter vector has no children yet, so it is not gathered.
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"test_ring_overwrites_total", "test_ring_free_elements"}, names)
}

func TestOperationsByStatus(t *testing.T) {
	b, m := newInstrumented(t, 2, false)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FreeElements))

	require.NoError(t, b.Insert([]byte{1}))
	require.NoError(t, b.Insert([]byte{2}))
	assert.Equal(t, ringbuffer.ErrBufferFull, b.Insert([]byte{3}))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FreeElements))

	out := make([]byte, 1)
	require.NoError(t, b.Peek(1, out))
	require.NoError(t, b.Replace(0, []byte{9}))
	require.NoError(t, b.Retrieve(out))
	assert.Equal(t, byte(9), out[0])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FreeElements))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("insert", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("insert", "buffer_full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("peek", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("replace", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("retrieve", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Overwrites))

	require.NoError(t, b.Deinit())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FreeElements))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("deinit", "ok")))
}

func TestOverwritesCounted(t *testing.T) {
	b, m := newInstrumented(t, 3, true)

	for i := 0; i < 7; i++ {
		require.NoError(t, b.Insert([]byte{byte(i)}))
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(m.Overwrites))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FreeElements))

	full, err := b.IsFull()
	require.NoError(t, err)
	assert.True(t, full)
}

func TestQueriesAreNotCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mocks.NewMockEngine(ctrl)
	engine.EXPECT().FreeElements().Return(4, nil)
	engine.EXPECT().IsEmpty().Return(true, nil)
	engine.EXPECT().IsFull().Return(false, nil)
	engine.EXPECT().ElementSize().Return(1, nil)
	engine.EXPECT().FreeElements().Return(4, nil)

	m := NewMetrics("test", "ring")
	b := Wrap(engine, m)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.FreeElements))

	_, _ = b.IsEmpty()
	_, _ = b.IsFull()
	_, _ = b.ElementSize()
	_, _ = b.FreeElements()

	assert.Equal(t, 0, testutil.CollectAndCount(m.Operations))
}
