package store

import "math"

// LevelForXP determines the level a total XP amount maps to. Levels are
// zero-based: a fresh profile with 0 XP is level 0, and the first level
// costs LevelBaseXP.
func LevelForXP(totalXP int64) int {
	level, _ := levelAndNextXP(totalXP)
	return level
}

// XPForLevel returns the cumulative XP required to reach a specific level.
func XPForLevel(level int) int64 {
	if level <= 0 {
		return 0
	}

	cumulative := int64(0)
	for i := 1; i <= level; i++ {
		cumulative += int64(LevelBaseXP * math.Pow(float64(i), LevelExponent))
	}

	return cumulative
}

// XPProgress returns the current level and the XP still needed for the next one.
func XPProgress(totalXP int64) (currentLevel int, xpToNext int64) {
	var xpForNext int64
	currentLevel, xpForNext = levelAndNextXP(totalXP)
	xpToNext = xpForNext - totalXP
	return
}

// levelAndNextXP computes the level and the cumulative XP required for the
// NEXT level in a single pass over the threshold curve.
func levelAndNextXP(totalXP int64) (int, int64) {
	if totalXP <= 0 {
		return 0, int64(LevelBaseXP)
	}

	level := 0
	cumulative := int64(0)

	for level < MaxIterationLevel {
		nextLevel := level + 1
		xpForNextLevel := int64(LevelBaseXP * math.Pow(float64(nextLevel), LevelExponent))

		if cumulative+xpForNextLevel > totalXP {
			return level, cumulative + xpForNextLevel
		}
		cumulative += xpForNextLevel
		level = nextLevel
	}

	nextLevel := level + 1
	xpForNextLevel := int64(LevelBaseXP * math.Pow(float64(nextLevel), LevelExponent))
	return level, cumulative + xpForNextLevel
}
