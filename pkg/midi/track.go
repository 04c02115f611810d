package midi

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// TrackChunk is an MTrk record with all of its events decoded.
// Events is filled once while decoding and must be treated as read-only afterwards.
type TrackChunk struct {
	Length uint32
	Events []*Event

	cursor EventCursor
}

func (*TrackChunk) ID() [4]byte    { return trackChunkID }
func (t *TrackChunk) Size() uint32 { return t.Length }
func (*TrackChunk) chunk()         {}

// NextEvent returns the track's events in decode order, one per call.
// Once the events are exhausted it keeps returning false.
func (t *TrackChunk) NextEvent() (*Event, bool) {
	t.cursor.events = t.Events
	return t.cursor.Next()
}

// Cursor returns a new cursor over the track's events, independent of NextEvent
// and of any other cursor.
func (t *TrackChunk) Cursor() *EventCursor {
	return newEventCursor(t.Events)
}

func (t *TrackChunk) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Track: %d bytes, %d events", t.Length, len(t.Events))
	for _, e := range t.Events {
		b.WriteString("\n  ")
		b.WriteString(e.String())
	}
	return b.String()
}

// EventCursor is a forward-only iterator over a fixed slice of events.
type EventCursor struct {
	events []*Event
	pos    int
}

func newEventCursor(events []*Event) *EventCursor {
	return &EventCursor{events: events}
}

// Next returns the next event, or false when there are no more.
func (c *EventCursor) Next() (*Event, bool) {
	if c.pos >= len(c.events) {
		return nil, false
	}
	e := c.events[c.pos]
	c.pos++
	return e, true
}

// decodeTrack reads events until the sum of their encoded lengths reaches the
// declared chunk length. The cursor is positioned right after the tag.
func decodeTrack(r *Reader) (Chunk, error) {
	log := decoderLog.Named("track")

	l, err := readChunkLen(r)
	if err != nil {
		return nil, err
	}

	t := &TrackChunk{Length: l}

	var consumed uint32
	for consumed < l {
		e, err := decodeEvent(r)
		if err != nil {
			return nil, err
		}
		consumed += e.Len
		t.Events = append(t.Events, e)
	}

	if consumed > l {
		log.Warn("events overrun track length",
			zap.Uint32("length", l),
			zap.Uint32("consumed", consumed),
			zap.Int64("offset", r.Offset()))
	}

	log.Debug("track decoded", zap.Uint32("length", l), zap.Int("events", len(t.Events)))

	return t, nil
}
