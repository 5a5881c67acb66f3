package joblog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSections(t *testing.T) {
	var s State
	assert.Zero(t, s.depth())

	_, ok := s.pop()
	assert.False(t, ok)

	s.push("A")
	s.push("B")
	assert.Equal(t, 2, s.depth())

	title, ok := s.pop()
	assert.True(t, ok)
	assert.Equal(t, "B", title)

	title, ok = s.pop()
	assert.True(t, ok)
	assert.Equal(t, "A", title)
	assert.Zero(t, s.depth())
}

func TestStateSinks(t *testing.T) {
	var s State
	assert.False(t, s.initialized())

	s.sinks = []SinkRef{ConsoleSink(), FileSink("/var/log/run.log")}
	assert.True(t, s.initialized())
	assert.True(t, s.hasSink(ConsoleSink()))
	assert.False(t, s.hasSink(FileSink("/var/log/other.log")))

	file, ok := s.fileSink()
	assert.True(t, ok)
	assert.Equal(t, "/var/log/run.log", file.Path)

	s.push("A")
	s.reportMemory = true
	s.reportDisk = true
	s.reset()

	assert.Equal(t, State{}, s)
	_, ok = s.fileSink()
	assert.False(t, ok)
}
