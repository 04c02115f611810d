package midi

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	in := bytes.Join([][]byte{
		headerBytes(1, 2, 480),
		trackBytes(
			metaBytes(0, MetaSetTempo, 0x03, 0xD0, 0x90), // 250000
			eventBytes(480, 0x90, 64, 90),
			endOfTrack(960),
		),
		trackBytes(
			eventBytes(0, 0x91, 60, 100),
			eventBytes(480, 0x81, 60, 0),
			eventBytes(960, 0x91, 62, 100),
			endOfTrack(0),
		),
	}, nil)

	f, err := Decode(bytes.NewReader(in))
	require.NoError(t, err)

	tl, err := NewTimeline(f)
	require.NoError(t, err)

	want := []struct {
		track   int
		tick    uint64
		msgType uint8
		time    time.Duration
		quarter int
	}{
		{0, 0, System, 0, 0},
		{1, 0, NoteOn, 0, 0},
		{0, 480, NoteOn, 250 * time.Millisecond, 1},
		{1, 480, NoteOff, 250 * time.Millisecond, 1},
		{0, 1440, System, 750 * time.Millisecond, 3},
		{1, 1440, NoteOn, 750 * time.Millisecond, 3},
		{1, 1440, System, 750 * time.Millisecond, 3},
	}

	for i, w := range want {
		e, ok := tl.Next()
		require.True(t, ok, "event %d", i)
		assert.Equal(t, w.track, e.Track, "event %d", i)
		assert.Equal(t, w.tick, e.Tick, "event %d", i)
		assert.Equal(t, w.msgType, e.MsgType, "event %d", i)
		assert.Equal(t, w.time, e.Time, "event %d", i)
		assert.Equal(t, w.quarter, e.Quarter, "event %d", i)
	}

	for i := 0; i < 2; i++ {
		_, ok := tl.Next()
		assert.False(t, ok)
	}

	// the timeline uses its own cursors
	_, ok := f.Tracks[0].NextEvent()
	assert.True(t, ok)
}

func TestTimeline_DefaultTempo(t *testing.T) {
	track := &TrackChunk{Events: []*Event{
		{TimeDelta: 96, MsgType: NoteOn, Data: []byte{60, 100}},
		{TimeDelta: 48, MsgType: NoteOff, Data: []byte{60, 0}},
	}}
	tl := newTimeline([]*TrackChunk{track}, 96)

	e, ok := tl.Next()
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, e.Time)

	e, ok = tl.Next()
	require.True(t, ok)
	assert.Equal(t, 750*time.Millisecond, e.Time)
	assert.Equal(t, uint64(144), e.Tick)
}

func TestNewTimeline_TimeCode(t *testing.T) {
	f := &File{Header: &HeaderChunk{Length: 6, TrackCount: 0, TimeDivision: 0xE728}}
	tl, err := NewTimeline(f)
	assert.Nil(t, tl)
	assert.Equal(t, ErrFmtNotSupported, errors.Cause(err))
}
