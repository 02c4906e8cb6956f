package main

import (
	"flag"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/perlin-network/ringbuffer"
	"github.com/perlin-network/ringbuffer/locked"
	"github.com/perlin-network/ringbuffer/metrics"
)

type config struct {
	region    int
	element   int
	count     int
	overwrite bool
	locked    bool
	metrics   bool
}

func main() {
	// glog defaults to logging to a file, override this flag to log to console.
	flag.Set("logtostderr", "true")

	cfg := config{}

	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags.IntVar(&cfg.region, "region", 1024*1024, "size of the backing region in bytes")
	flags.IntVar(&cfg.element, "element", 1, "element size in bytes")
	flags.IntVar(&cfg.count, "count", 1024*1024, "number of elements to insert")
	flags.BoolVar(&cfg.overwrite, "overwrite", true, "evict the oldest element when full")
	flags.BoolVar(&cfg.locked, "locked", false, "serialize operations through a mutex")
	flags.BoolVar(&cfg.metrics, "metrics", false, "instrument operations with prometheus metrics")
	flags.AddGoFlagSet(flag.CommandLine)
	flags.Parse(os.Args[1:])

	defer glog.Flush()

	if err := run(cfg); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cfg config) error {
	region := make([]byte, cfg.region)

	core, err := ringbuffer.New(ringbuffer.Config{Region: region, ElementSize: cfg.element, Overwrite: cfg.overwrite})
	if err != nil {
		return err
	}

	var engine ringbuffer.Engine = core
	if cfg.locked {
		engine = locked.Wrap(engine)
	}

	if cfg.metrics {
		m := metrics.NewMetrics("ringbench", "")
		if err := m.Register(prometheus.NewRegistry()); err != nil {
			return err
		}
		engine = metrics.Wrap(engine, m)
	}

	glog.Infof("Region %d byte(s), element %d byte(s), capacity %d element(s), overwrite %t.",
		cfg.region, cfg.element, core.Cap(), cfg.overwrite)

	elem := make([]byte, cfg.element)

	inserted, full := 0, 0
	start := time.Now()
	for i := 0; i < cfg.count; i++ {
		elem[0] = byte(i)

		switch err := engine.Insert(elem); err {
		case nil:
			inserted++
		case ringbuffer.ErrBufferFull:
			full++
		default:
			return err
		}
	}
	report("insert", cfg.count, time.Since(start))

	if full > 0 {
		glog.Warningf("%d insert(s) rejected, buffer full.", full)
	}

	retrieved := 0
	start = time.Now()
	for {
		err := engine.Retrieve(elem)
		if err == ringbuffer.ErrBufferEmpty {
			break
		}
		if err != nil {
			return err
		}
		retrieved++
	}
	report("retrieve", retrieved, time.Since(start))

	glog.Infof("Inserted %d element(s), retrieved %d element(s).", inserted, retrieved)

	return engine.Deinit()
}

func report(op string, n int, elapsed time.Duration) {
	if n == 0 {
		glog.Infof("%s: no operations.", op)
		return
	}
	glog.Infof("%s: %d op(s) in %s (%.1f ns/op).", op, n, elapsed, float64(elapsed.Nanoseconds())/float64(n))
}
