package scheduler

import (
	"context"
	"testing"

	"github.com/amaumene/gocatalog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddValidatesSchedule(t *testing.T) {
	s := New(logger.Discard())
	defer s.Stop()

	noop := func(context.Context) {}

	require.NoError(t, s.Add(Job{Name: "genres", Schedule: "@every 12h", Run: noop}))
	require.NoError(t, s.Add(Job{Name: "cleanup", Schedule: "@hourly", Run: noop}))
	require.NoError(t, s.Add(Job{Name: "disabled", Schedule: "", Run: noop}))
	assert.Equal(t, 2, s.Len())

	err := s.Add(Job{Name: "broken", Schedule: "every tuesday", Run: noop})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestStopCancelsJobContext(t *testing.T) {
	s := New(logger.Discard())
	s.Start()
	s.Stop()

	assert.Error(t, s.ctx.Err())
}
