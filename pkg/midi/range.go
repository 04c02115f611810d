package midi

import "github.com/Garik-/smf/config"

// beatRange is a half-open window of ticks one beat wide, counting how many
// beats it has been stepped forward.
type beatRange struct {
	cnt int

	lowerBound uint64
	upperBound uint64
}

func newBeatRange(lowerBound uint64, upperBound uint64) *beatRange {
	return &beatRange{
		lowerBound: lowerBound,
		upperBound: upperBound,
	}
}

func (m *beatRange) stepBy(n int) {
	m.cnt += n
	step := m.upperBound - m.lowerBound

	m.upperBound += step * uint64(n)
	m.lowerBound += step * uint64(n)
}

func (m *beatRange) contains(tick uint64) bool {
	return tick >= m.lowerBound && tick < m.upperBound
}

func (m *beatRange) position() int {
	return m.cnt % config.BeatsPerBar
}

// quarterPosition returns which beat of its bar (0-3) an absolute tick falls on.
func quarterPosition(absTicks uint64, ticksPerQuarterNote uint16) int {
	if ticksPerQuarterNote == 0 {
		return 0
	}

	r := newBeatRange(0, uint64(ticksPerQuarterNote))
	if !r.contains(absTicks) {
		r.stepBy(int(absTicks / uint64(ticksPerQuarterNote)))
	}

	return r.position()
}
