// Package metrics instruments a ringbuffer.Engine with Prometheus metrics.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/perlin-network/ringbuffer"
)

// Metrics holds the collectors updated by an instrumented Buffer. One Metrics value may be shared by several
// buffers; use distinct namespaces/subsystems to tell buffers apart.
type Metrics struct {
	Operations   *prometheus.CounterVec
	Overwrites   prometheus.Counter
	FreeElements prometheus.Gauge
}

// NewMetrics creates the collectors. They are not registered; see Register.
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Ring buffer operations by operation and result status",
		}, []string{"op", "status"}),
		Overwrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "overwrites_total",
			Help:      "Elements evicted by inserting into a full buffer",
		}),
		FreeElements: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "free_elements",
			Help:      "Elements that can be inserted before the buffer is full",
		}),
	}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Operations, m.Overwrites, m.FreeElements} {
		if err := reg.Register(c); err != nil {
			return errors.Wrap(err, "failed to register ring buffer metrics")
		}
	}
	return nil
}

var _ ringbuffer.Engine = (*Buffer)(nil)

// Buffer forwards to an Engine and records every call in Metrics.
type Buffer struct {
	engine  ringbuffer.Engine
	metrics *Metrics
}

// Wrap instruments engine. The free elements gauge is primed from engine's current state.
func Wrap(engine ringbuffer.Engine, metrics *Metrics) *Buffer {
	b := &Buffer{engine: engine, metrics: metrics}
	b.refresh()
	return b
}

func (b *Buffer) Deinit() error {
	err := b.observe("deinit", b.engine.Deinit())
	if err == nil {
		b.metrics.FreeElements.Set(0)
	}
	return err
}

// Insert counts an overwrite when the engine was full before a successful insert.
func (b *Buffer) Insert(src []byte) error {
	full, _ := b.engine.IsFull()

	err := b.observe("insert", b.engine.Insert(src))
	if err == nil {
		if full {
			b.metrics.Overwrites.Inc()
		}
		b.refresh()
	}

	return err
}

func (b *Buffer) Retrieve(dst []byte) error {
	err := b.observe("retrieve", b.engine.Retrieve(dst))
	if err == nil {
		b.refresh()
	}
	return err
}

func (b *Buffer) Peek(index int, dst []byte) error {
	return b.observe("peek", b.engine.Peek(index, dst))
}

func (b *Buffer) Replace(index int, src []byte) error {
	return b.observe("replace", b.engine.Replace(index, src))
}

func (b *Buffer) IsEmpty() (bool, error) {
	return b.engine.IsEmpty()
}

func (b *Buffer) IsFull() (bool, error) {
	return b.engine.IsFull()
}

func (b *Buffer) FreeElements() (int, error) {
	return b.engine.FreeElements()
}

func (b *Buffer) ElementSize() (int, error) {
	return b.engine.ElementSize()
}

func (b *Buffer) observe(op string, err error) error {
	b.metrics.Operations.WithLabelValues(op, ringbuffer.StatusOf(err).String()).Inc()
	return err
}

func (b *Buffer) refresh() {
	if free, err := b.engine.FreeElements(); err == nil {
		b.metrics.FreeElements.Set(float64(free))
	}
}
