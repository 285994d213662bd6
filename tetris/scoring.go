package tetris

import "time"

// SoftDropPoints is awarded for every accepted manual downward step.
const SoftDropPoints = 5

var lineClearPoints = [...]int{0, 100, 250, 500, 800}

// LineClearPoints returns the score for clearing n lines with one lock.
func LineClearPoints(n int) int {
	if n <= 0 {
		return 0
	}
	if n < len(lineClearPoints) {
		return lineClearPoints[n]
	}
	return n * 250
}

// HardDropPoints returns the score for a hard drop that fell distance rows.
func HardDropPoints(distance int) int {
	return max(2, distance*2)
}

// Rules holds the gravity timings of a game.
type Rules struct {
	DropIntervalStart time.Duration
	DropIntervalMin   time.Duration
	// DropAcceleration is subtracted from the interval for every cleared line.
	DropAcceleration time.Duration
}

// DefaultRules returns the standard timings.
func DefaultRules() Rules {
	return Rules{
		DropIntervalStart: 900 * time.Millisecond,
		DropIntervalMin:   120 * time.Millisecond,
		DropAcceleration:  35 * time.Millisecond,
	}
}

// NextInterval returns the drop interval after clearing lines, never going
// below the minimum.
func (r Rules) NextInterval(current time.Duration, lines int) time.Duration {
	return max(r.DropIntervalMin, current-r.DropAcceleration*time.Duration(lines))
}
