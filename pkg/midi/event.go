package midi

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Event types, the high nibble of a status byte.
const (
	NoteOff               uint8 = 0x8
	NoteOn                uint8 = 0x9
	PolyphonicKeyPressure uint8 = 0xA
	ControlChange         uint8 = 0xB
	ProgramChange         uint8 = 0xC
	ChannelPressure       uint8 = 0xD
	PitchBend             uint8 = 0xE
	System                uint8 = 0xF
)

// metaChannel is the low nibble that turns a 0xF status into a meta event.
const metaChannel = 0xF

// EventKind is the payload shape of an event.
type EventKind int

const (
	// KindVoice covers note-off, note-on, polyphonic pressure, control change and pitch bend: two data bytes.
	KindVoice EventKind = iota + 1
	// KindVoiceShort covers program change and channel pressure: one data byte.
	KindVoiceShort
	// KindSysEx is a system-exclusive event: a length-prefixed raw payload.
	KindSysEx
	// KindMeta is a meta event: a meta-type byte followed by a length-prefixed payload.
	KindMeta
)

func (k EventKind) String() string {
	switch k {
	case KindVoice:
		return "voice"
	case KindVoiceShort:
		return "voice-short"
	case KindSysEx:
		return "sysex"
	case KindMeta:
		return "meta"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// kindOf maps a split status byte to its payload shape.
// Types 0x0-0x7 are data bytes, not statuses, and have no kind.
func kindOf(msgType, channel uint8) (EventKind, bool) {
	switch msgType {
	case NoteOff, NoteOn, PolyphonicKeyPressure, ControlChange, PitchBend:
		return KindVoice, true
	case ProgramChange, ChannelPressure:
		return KindVoiceShort, true
	case System:
		if channel == metaChannel {
			return KindMeta, true
		}
		return KindSysEx, true
	}
	return 0, false
}

// Event is one decoded track event.
type Event struct {
	// TimeDelta is the number of ticks since the previous event on the same track.
	TimeDelta uint32
	MsgType   uint8
	// Channel is meaningful only when MsgType is below 0xF.
	Channel uint8
	// Data holds the payload. For meta events the first byte is the meta type.
	Data []byte
	// Len is the number of bytes the event occupied in the stream.
	Len uint32
	// Offset is the stream position of the first byte of the event.
	Offset int64
}

// Kind returns the payload shape of e.
func (e *Event) Kind() EventKind {
	k, _ := kindOf(e.MsgType, e.Channel)
	return k
}

// Status rebuilds the status byte.
func (e *Event) Status() byte {
	return e.MsgType<<4 | e.Channel&0x0F
}

// decodeEvent reads one event record: delta time, status byte and payload.
func decodeEvent(r *Reader) (*Event, error) {
	e := &Event{Offset: r.Offset()}

	timeDelta, n, err := varLen(r)
	if err != nil {
		return nil, readErr(err, "delta time")
	}
	e.TimeDelta = timeDelta
	e.Len = n

	// status byte give us the msg type and channel.
	statusByte, err := r.ReadByte()
	if err != nil {
		return nil, readErr(err, "status byte")
	}
	e.Len++

	e.MsgType = statusByte >> 4
	e.Channel = statusByte & 0x0F

	kind, ok := kindOf(e.MsgType, e.Channel)
	if !ok {
		return nil, errors.Wrapf(ErrUnrecognizedEventType, "status %#02x at offset %d", statusByte, e.Offset)
	}

	switch kind {
	case KindVoice:
		if e.Data, err = readPayload(r, 2, "voice data"); err != nil {
			return nil, err
		}
		e.Len += 2

	case KindVoiceShort:
		if e.Data, err = readPayload(r, 1, "voice data"); err != nil {
			return nil, err
		}
		e.Len++

	case KindSysEx:
		l, n, err := varLen(r)
		if err != nil {
			return nil, readErr(err, "sysex length")
		}
		e.Len += n

		if e.Data, err = readPayload(r, l, "sysex data"); err != nil {
			return nil, err
		}
		e.Len += l

	case KindMeta:
		metaType, err := r.ReadByte()
		if err != nil {
			return nil, readErr(err, "meta type")
		}
		e.Len++

		l, n, err := varLen(r)
		if err != nil {
			return nil, readErr(err, "meta length")
		}
		e.Len += n

		data, err := readPayload(r, l, "meta data")
		if err != nil {
			return nil, err
		}
		e.Len += l

		e.Data = make([]byte, 0, len(data)+1)
		e.Data = append(e.Data, metaType)
		e.Data = append(e.Data, data...)
	}

	return e, nil
}

func (e *Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "delta=%d type=%#x", e.TimeDelta, e.MsgType)

	switch e.Kind() {
	case KindMeta:
		fmt.Fprintf(&b, " meta=%#02x data=% x", e.Data[0], e.Data[1:])
	case KindSysEx:
		fmt.Fprintf(&b, " sysex=%q", e.Data)
	default:
		fmt.Fprintf(&b, " channel=%d data=%v", e.Channel, e.Data)
	}

	return b.String()
}
