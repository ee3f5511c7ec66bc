package monster

// Level is the agent's aggression tier. It starts at Docile, only escalates
// during simulation, and de-escalates solely through an explicit external
// reset (SetLevel / CycleLevel).
type Level int

const (
	LevelDocile Level = iota + 1
	LevelCautious
	LevelCurious
	LevelBold
	LevelHostile
)

func (l Level) String() string {
	switch l {
	case LevelDocile:
		return "docile"
	case LevelCautious:
		return "cautious"
	case LevelCurious:
		return "curious"
	case LevelBold:
		return "bold"
	case LevelHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

func (l Level) valid() bool {
	return l >= LevelDocile && l <= LevelHostile
}

// levelParams are the per-tier tuning constants. A zero DetectRange means
// "limited only by the raycast range" (Docile's forward-cone sensing); a
// zero FleeDist means the tier never flees.
type levelParams struct {
	SpeedMult   float64
	DetectRange float64
	EngageDist  float64
	FleeDist    float64
}

// levelTable is immutable; index with params(level).
var levelTable = [5]levelParams{
	{SpeedMult: 1.5, DetectRange: 0, EngageDist: 0, FleeDist: 0},
	{SpeedMult: 2.0, DetectRange: 20, EngageDist: 5, FleeDist: 0},
	{SpeedMult: 2.5, DetectRange: 20, EngageDist: 12, FleeDist: 10},
	{SpeedMult: 3.0, DetectRange: 20, EngageDist: 1, FleeDist: 0},
	{SpeedMult: 4.0, DetectRange: 20, EngageDist: 0, FleeDist: 0},
}

func params(l Level) levelParams {
	if !l.valid() {
		return levelTable[0]
	}
	return levelTable[l-1]
}
