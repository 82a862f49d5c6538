package tetris

import (
	"math"
	"time"
)

// lineScores is the base award per number of lines cleared by a single lock.
// The final award is base * level. A tetromino spans at most 4 rows, so no
// other counts are possible.
var lineScores = map[int]int{
	1: 40,
	2: 100,
	3: 300,
	4: 1200,
}

// Scoring tracks score, level and cleared-line totals. Score is mutated only
// here and never decreases. Level drives the gravity interval, which is why
// the two live in one component.
type Scoring struct {
	score         int
	level         int
	lines         int
	linesPerLevel int
	linesLeft     int
}

// NewScoring creates a scoring tracker starting at the given level, leveling
// up every linesPerLevel cumulative cleared lines.
func NewScoring(startLevel, linesPerLevel int) *Scoring {
	if startLevel < 1 {
		startLevel = 1
	}
	if linesPerLevel < 1 {
		linesPerLevel = 10
	}
	return &Scoring{
		level:         startLevel,
		linesPerLevel: linesPerLevel,
		linesLeft:     linesPerLevel,
	}
}

// Score returns the current score.
func (s *Scoring) Score() int { return s.score }

// Level returns the current level.
func (s *Scoring) Level() int { return s.level }

// Lines returns the cumulative number of cleared lines.
func (s *Scoring) Lines() int { return s.lines }

// ScoreLines awards points for a single lock event that cleared n lines and
// advances the level counter. Returns the points awarded.
func (s *Scoring) ScoreLines(n int) int {
	if n <= 0 {
		return 0
	}

	points := lineScores[n] * s.level
	s.score += points
	s.lines += n

	for i := 0; i < n; i++ {
		s.linesLeft--
		if s.linesLeft == 0 {
			s.level++
			s.linesLeft = s.linesPerLevel
		}
	}
	return points
}

// AddSoftDropPoints awards 1 point per row descended while soft drop is
// held. Applied the instant the descent happens, independent of level.
func (s *Scoring) AddSoftDropPoints(rows int) {
	if rows > 0 {
		s.score += rows
	}
}

// FallInterval returns how long a piece rests on each row before gravity
// pulls it down one, for the given level. The curve is the guideline one:
// (0.8 - (level-1)*0.007)^(level-1) seconds, clamped to floor so very high
// levels stay playable and the interval never reaches zero.
func FallInterval(level int, floor time.Duration) time.Duration {
	if level < 1 {
		level = 1
	}
	base := 0.8 - float64(level-1)*0.007
	if base < 0 {
		base = 0
	}
	seconds := math.Pow(base, float64(level-1))
	d := time.Duration(seconds * float64(time.Second))
	if d < floor {
		return floor
	}
	return d
}
