package balance

import "github.com/samber/lo"

// LoopHPMult is the HP multiplier once the player has cleared every stage once.
const LoopHPMult = 3

func HPMult(loop bool) int {
	return lo.Ternary(loop, LoopHPMult, 1)
}

// SegmentBaseHP is the HP of a melee monster in a normal segment.
func SegmentBaseHP(stage, hpMult int) int {
	// 57 = floor(32 * 1.8)
	base := 57 + int(float64(stage*24)*1.8)
	return base * hpMult
}

// RangedHP applies the ranged HP discount.
func RangedHP(hp int) int {
	return lo.Max([]int{1, int(float64(hp) * 0.8)})
}

func BossHP(stage, hpMult int) int {
	return int(float64(340+stage*220)*1.5) * hpMult
}

func MinRangedPerSegment(stage int) int {
	switch stage {
	case 0:
		return 2
	case 1:
		return 4
	default:
		return 6
	}
}

func MaxRangedPerSegment(stage int) int {
	switch stage {
	case 0:
		return 3
	case 1:
		return 6
	default:
		return 9
	}
}

func RangedChance(stage int) float64 {
	return lo.Min([]float64{0.40 + float64(stage)*0.12, 0.80})
}

// ShotCooldownMs is the reload of a ranged monster after it fires.
func ShotCooldownMs(stage int) int64 {
	switch stage {
	case 0:
		return 980
	case 1:
		return 760
	default:
		return 620
	}
}

// ShotSpeed is the downward speed of a monster shot in px per tick.
func ShotSpeed(stage int, kind ShotKind) float64 {
	var base float64
	switch stage {
	case 0:
		base = 6.8
	case 1:
		base = 7.8
	default:
		base = 9.0
	}
	if kind.Fast() {
		return base * 1.22
	}
	return base * 0.86
}

func ShotRadius(kind ShotKind) float64 {
	return lo.Ternary(kind.Fast(), 9.0, 16.0)
}

// ScrollSpeed is the auto-scroll advance per tick.
func ScrollSpeed(stageIndex int) float64 {
	return 5.2 + float64(stageIndex)*1.2
}

// BossCoinReward is paid when a stage boss dies.
func BossCoinReward(stageIndex int) int {
	return (stageIndex + 1) * 15
}

// CoinDropMax is the largest amount a single coin drop can pay on a stage.
func CoinDropMax(stageIndex int) int {
	switch stageIndex {
	case 0:
		return 5
	case 1:
		return 20
	default:
		return 50
	}
}
