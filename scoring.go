package yatsy

const (
	smallStraightScore = 15
	largeStraightScore = 20
	yatsyScore         = 50
)

// handStats is computed once per hand and shared by all the
// per-category scoring rules.
type handStats struct {
	counts [numSides]int
	sum    int
}

func newHandStats(h Hand) handStats {
	return handStats{counts: h.Counts(), sum: h.Sum()}
}

func (s handStats) count(face int) int {
	return s.counts[face-1]
}

// Highest face appearing at least n times, or 0 if none does.
func (s handStats) highestWithCount(n int) int {
	for face := numSides; face >= 1; face-- {
		if s.count(face) >= n {
			return face
		}
	}
	return 0
}

// Whether every face in [lo, hi] appears exactly once.
func (s handStats) isRun(lo, hi int) bool {
	for face := lo; face <= hi; face++ {
		if s.count(face) != 1 {
			return false
		}
	}
	return true
}

type scoringRule func(s handStats) int

func faceRule(face int) scoringRule {
	return func(s handStats) int {
		return face * s.count(face)
	}
}

func ofAKindRule(n int) scoringRule {
	return func(s handStats) int {
		return n * s.highestWithCount(n)
	}
}

func twoPairs(s handStats) int {
	pairs := make([]int, 0, 2)
	for face := 1; face <= numSides; face++ {
		if s.count(face) >= 2 {
			pairs = append(pairs, face)
		}
	}
	// Five of a kind is a single distinct face and does not count.
	if len(pairs) != 2 {
		return 0
	}
	return 2 * (pairs[0] + pairs[1])
}

func smallStraight(s handStats) int {
	if s.isRun(1, 5) {
		return smallStraightScore
	}
	return 0
}

func largeStraight(s handStats) int {
	if s.isRun(2, 6) {
		return largeStraightScore
	}
	return 0
}

func fullHouse(s handStats) int {
	triple, double := 0, 0
	for face := 1; face <= numSides; face++ {
		switch s.count(face) {
		case 3:
			triple = face
		case 2:
			double = face
		}
	}
	if triple == 0 || double == 0 {
		return 0
	}
	return 3*triple + 2*double
}

func chance(s handStats) int {
	return s.sum
}

func yatsy(s handStats) int {
	if s.highestWithCount(NumDice) != 0 {
		return yatsyScore
	}
	return 0
}

var scoringRules = [NumCategories]scoringRule{
	Ones:          faceRule(1),
	Twos:          faceRule(2),
	Threes:        faceRule(3),
	Fours:         faceRule(4),
	Fives:         faceRule(5),
	Sixes:         faceRule(6),
	Pair:          ofAKindRule(2),
	TwoPairs:      twoPairs,
	ThreeOfAKind:  ofAKindRule(3),
	FourOfAKind:   ofAKindRule(4),
	SmallStraight: smallStraight,
	LargeStraight: largeStraight,
	FullHouse:     fullHouse,
	Chance:        chance,
	Yatsy:         yatsy,
}

// Score returns what the hand would earn in category c, which may be 0.
func Score(h Hand, c Category) int {
	return scoringRules[c](newHandStats(h))
}

// ScoreAll returns the score of the hand in every category, indexed
// by Category.
func ScoreAll(h Hand) [NumCategories]int {
	stats := newHandStats(h)
	var result [NumCategories]int
	for c, rule := range scoringRules {
		result[c] = rule(stats)
	}
	return result
}

// Evaluate returns the categories the hand scores in, in canonical
// order. Categories the hand would score 0 in are left out.
func Evaluate(h Hand) []CategoryScore {
	scores := ScoreAll(h)
	result := make([]CategoryScore, 0, NumCategories)
	for c, score := range scores {
		if score > 0 {
			result = append(result, CategoryScore{Category: Category(c), Score: score})
		}
	}
	return result
}
