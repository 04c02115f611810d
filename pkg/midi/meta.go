package midi

// Meta event types this package gives meaning to. Every other meta type is
// still decoded, its payload is just left uninterpreted.
const (
	MetaTrackName  uint8 = 0x03
	MetaEndOfTrack uint8 = 0x2F
	MetaSetTempo   uint8 = 0x51
)

// MetaType returns the meta type byte of a meta event.
func (e *Event) MetaType() (uint8, bool) {
	if e.Kind() != KindMeta || len(e.Data) == 0 {
		return 0, false
	}
	return e.Data[0], true
}

// MetaData returns the payload of a meta event without the meta type byte.
func (e *Event) MetaData() []byte {
	if _, ok := e.MetaType(); !ok {
		return nil
	}
	return e.Data[1:]
}

// Tempo returns the microseconds per quarter note carried by a set-tempo meta event.
func (e *Event) Tempo() (uint32, bool) {
	t, ok := e.MetaType()
	if !ok || t != MetaSetTempo {
		return 0, false
	}

	data := e.MetaData()
	if len(data) != 3 {
		return 0, false
	}

	return uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2]), true
}

// IsEndOfTrack reports whether e is the end-of-track meta event.
func (e *Event) IsEndOfTrack() bool {
	t, ok := e.MetaType()
	return ok && t == MetaEndOfTrack
}

// Note returns the note number and velocity of a note-on, note-off or
// polyphonic pressure event.
func (e *Event) Note() (note uint8, velocity uint8, ok bool) {
	if len(e.Data) < 2 {
		return 0, 0, false
	}

	switch e.MsgType {
	case NoteOff, NoteOn, PolyphonicKeyPressure:
		return e.Data[0] & 0x7f, e.Data[1] & 0x7f, true
	}
	return 0, 0, false
}

// IsNoteOn reports whether e starts a note. A note-on with velocity 0 is a note-off.
func (e *Event) IsNoteOn() bool {
	_, velocity, ok := e.Note()
	return ok && e.MsgType == NoteOn && velocity > 0
}
