package core

// ClearResult classifies what a lock achieved.
type ClearResult uint8

const (
	ClearNone ClearResult = iota
	ClearSingle
	ClearDouble
	ClearTriple
	ClearTetris
	ClearMiniSpin
	ClearSpinSingle
	ClearSpinDouble
	ClearSpinTriple
)

// String returns the HUD label for a clear result.
func (c ClearResult) String() string {
	switch c {
	case ClearSingle:
		return "Single"
	case ClearDouble:
		return "Double"
	case ClearTriple:
		return "Triple"
	case ClearTetris:
		return "Tetris"
	case ClearMiniSpin:
		return "Mini Spin"
	case ClearSpinSingle:
		return "Spin Single"
	case ClearSpinDouble:
		return "Spin Double"
	case ClearSpinTriple:
		return "Spin Triple"
	default:
		return ""
	}
}

// BasePoints returns the award before the level multiplier.
func (c ClearResult) BasePoints() int {
	switch c {
	case ClearSingle:
		return 100
	case ClearDouble:
		return 300
	case ClearTriple:
		return 500
	case ClearTetris:
		return 800
	case ClearMiniSpin:
		return 100
	case ClearSpinSingle:
		return 800
	case ClearSpinDouble:
		return 1200
	case ClearSpinTriple:
		return 1600
	default:
		return 0
	}
}

// BackToBackEligible reports whether the result extends a back-to-back streak.
func (c ClearResult) BackToBackEligible() bool {
	switch c {
	case ClearTetris, ClearSpinSingle, ClearSpinDouble, ClearSpinTriple:
		return true
	default:
		return false
	}
}

// Classify maps a row count and spin flag to a clear result.
func Classify(rows int, spin bool) ClearResult {
	if spin {
		switch rows {
		case 0:
			return ClearMiniSpin
		case 1:
			return ClearSpinSingle
		case 2:
			return ClearSpinDouble
		case 3:
			return ClearSpinTriple
		}
		return ClearNone
	}
	switch rows {
	case 1:
		return ClearSingle
	case 2:
		return ClearDouble
	case 3:
		return ClearTriple
	case 4:
		return ClearTetris
	}
	return ClearNone
}

// Award computes the points for a result at the given level and the new
// back-to-back flag.
func Award(result ClearResult, level int, backToBack bool) (points int, b2b bool) {
	points = result.BasePoints() * level
	if !result.BackToBackEligible() {
		return points, false
	}
	if backToBack {
		points += points / 2
	}
	return points, true
}

// LevelFor returns the level reached after clearing lines in total.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}
