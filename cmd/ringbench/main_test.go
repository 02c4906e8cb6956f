package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/perlin-network/ringbuffer"
)

func TestRun(t *testing.T) {
	for _, cfg := range []config{
		{region: 1024, element: 1, count: 1024, overwrite: true},
		{region: 1000, element: 7, count: 500, overwrite: true, locked: true, metrics: true},
		{region: 64, element: 8, count: 100, overwrite: false},
	} {
		assert.NoError(t, run(cfg), "%+v", cfg)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	err := run(config{region: 4, element: 8, count: 1})
	assert.Equal(t, ringbuffer.ErrInvalidArgument, errors.Cause(err))
}
