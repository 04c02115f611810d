package config

// BufioSize is the read buffer placed in front of every decoded file.
const BufioSize = 1024 * 64

// MaxGoroutines is the default number of files decoded in parallel by cmd/scan.
const MaxGoroutines = 10

// DefaultTempo is the tempo in microseconds per quarter note assumed until a set-tempo meta event is seen.
const DefaultTempo uint32 = 500000

const BeatsPerBar = 4
