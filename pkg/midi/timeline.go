package midi

import (
	"time"

	"github.com/Garik-/smf/config"
)

// TimedEvent is an event placed on the file's absolute time axis.
type TimedEvent struct {
	*Event

	// Track is the index of the track the event came from.
	Track int
	// Tick is the absolute tick, the sum of all deltas on the event's track.
	Tick uint64
	// Time is the wall-clock offset of the event, following set-tempo events.
	Time time.Duration
	// Quarter is the beat (0-3) of the bar the event falls on.
	Quarter int
}

// Timeline merges the events of several tracks in absolute tick order.
// Events with the same tick are returned in track order.
// Tempo changes apply to every track, as in format 0 and 1 files.
type Timeline struct {
	cursors []*EventCursor
	heads   []*Event
	ticks   []uint64

	ticksPerQuarterNote uint16
	tempo               uint32
	lastTick            uint64
	elapsed             time.Duration
}

// NewTimeline returns a timeline over all tracks of f.
// Files with a time code division are not supported.
func NewTimeline(f *File) (*Timeline, error) {
	tpq, err := f.Header.TicksPerQuarterNote()
	if err != nil {
		return nil, err
	}
	return newTimeline(f.Tracks, tpq), nil
}

func newTimeline(tracks []*TrackChunk, ticksPerQuarterNote uint16) *Timeline {
	t := &Timeline{
		cursors:             make([]*EventCursor, len(tracks)),
		heads:               make([]*Event, len(tracks)),
		ticks:               make([]uint64, len(tracks)),
		ticksPerQuarterNote: ticksPerQuarterNote,
		tempo:               config.DefaultTempo,
	}

	for i, track := range tracks {
		t.cursors[i] = track.Cursor()
		t.heads[i], _ = t.cursors[i].Next()
	}

	return t
}

// Next returns the earliest pending event across all tracks.
// When every track is exhausted it keeps returning false.
func (t *Timeline) Next() (TimedEvent, bool) {
	idx := -1
	var minTick uint64

	for i, e := range t.heads {
		if e == nil {
			continue
		}
		at := t.ticks[i] + uint64(e.TimeDelta)
		if idx == -1 || at < minTick {
			idx, minTick = i, at
		}
	}

	if idx == -1 {
		return TimedEvent{}, false
	}

	e := t.heads[idx]
	t.ticks[idx] = minTick
	t.heads[idx], _ = t.cursors[idx].Next()

	t.elapsed += ticksToDuration(minTick-t.lastTick, t.tempo, t.ticksPerQuarterNote)
	t.lastTick = minTick

	if tempo, ok := e.Tempo(); ok {
		t.tempo = tempo
	}

	return TimedEvent{
		Event:   e,
		Track:   idx,
		Tick:    minTick,
		Time:    t.elapsed,
		Quarter: quarterPosition(minTick, t.ticksPerQuarterNote),
	}, true
}

// ticks / ticksPerQuarterNote * tempo microseconds
func ticksToDuration(ticks uint64, tempo uint32, ticksPerQuarterNote uint16) time.Duration {
	if ticksPerQuarterNote == 0 {
		return 0
	}
	micros := float64(ticks) * float64(tempo) / float64(ticksPerQuarterNote)
	return time.Duration(micros * float64(time.Microsecond))
}
