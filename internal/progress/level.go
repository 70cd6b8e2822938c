package progress

// Level is a gamification tier derived from experience.
type Level string

const (
	LevelNovice      Level = "Novice"
	LevelApprentice  Level = "Apprentice"
	LevelUXArchitect Level = "UX Architect"
)

// tier is one row of the threshold table. Min is inclusive, Max exclusive.
// The last tier has Max == 0 and is unbounded above.
type tier struct {
	Level Level
	Min   int
	Max   int
}

var tiers = []tier{
	{LevelNovice, 0, 200},
	{LevelApprentice, 200, 500},
	{LevelUXArchitect, 500, 0},
}

// topBandDisplayCeiling is the nominal end of the unbounded top band, used
// only to draw a progress bar.
const topBandDisplayCeiling = 1000

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	out := make([]Level, len(tiers))
	for i, t := range tiers {
		out[i] = t.Level
	}
	return out
}

// LevelFor returns the level whose range contains xp. Boundary values belong
// to the higher tier. Negative input is treated as zero.
func LevelFor(xp int) Level {
	return tierFor(xp).Level
}

func tierFor(xp int) tier {
	for i := len(tiers) - 1; i >= 0; i-- {
		if xp >= tiers[i].Min {
			return tiers[i]
		}
	}
	return tiers[0]
}

// LevelProgress returns how far xp is through its current band, in [0, 1].
func LevelProgress(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	t := tierFor(xp)
	max := t.Max
	if max == 0 {
		max = topBandDisplayCeiling
	}
	p := float64(xp-t.Min) / float64(max-t.Min)
	if p > 1 {
		return 1
	}
	return p
}

// NextLevel returns the level after the one containing xp and how much more
// experience it takes to reach it. ok is false at the top tier.
func NextLevel(xp int) (next Level, remaining int, ok bool) {
	if xp < 0 {
		xp = 0
	}
	for _, t := range tiers {
		if t.Min > xp {
			return t.Level, t.Min - xp, true
		}
	}
	return "", 0, false
}

// Icon returns the badge shown next to the level name.
func (l Level) Icon() string {
	switch l {
	case LevelNovice:
		return "★"
	case LevelApprentice:
		return "⚡"
	case LevelUXArchitect:
		return "🏆"
	default:
		return "✦"
	}
}
