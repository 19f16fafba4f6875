package weapon

import (
	"fmt"

	"github.com/samber/lo"
)

// ShopItem is one of the six persistent meta upgrades.
type ShopItem int

const (
	ShopDamage ShopItem = iota
	ShopRate
	ShopCount
	ShopPierce
	ShopBurst
	ShopRange
)

var ShopItems = []ShopItem{ShopDamage, ShopRate, ShopCount, ShopPierce, ShopBurst, ShopRange}

type shopEntry struct {
	name     string
	maxLevel int
	baseCost int
}

var shopTable = map[ShopItem]shopEntry{
	ShopDamage: {"DAMAGE", 10, 20},
	ShopRate:   {"RATE", 8, 20},
	ShopCount:  {"COUNT", 6, 30},
	ShopPierce: {"PIERCE", 5, 60},
	ShopBurst:  {"BURST", 4, 70},
	ShopRange:  {"RANGE", 6, 20},
}

func (i ShopItem) entry() shopEntry {
	e, ok := shopTable[i]
	if !ok {
		panic(fmt.Sprintf("weapon: unknown shop item %d", int(i)))
	}
	return e
}

func (i ShopItem) String() string { return i.entry().name }

func (i ShopItem) MaxLevel() int { return i.entry().maxLevel }

// Cost is the price of buying the next level when the item is at level:
// floor(base * (level+1) * (1 + 0.35*level)), kept in integers.
func (i ShopItem) Cost(level int) int {
	return i.entry().baseCost * (level + 1) * (20 + 7*level) / 20
}

// MetaLevels are the purchased shop levels.
type MetaLevels struct {
	Damage int `json:"damage"`
	Rate   int `json:"rate"`
	Count  int `json:"count"`
	Pierce int `json:"pierce"`
	Burst  int `json:"burst"`
	Range  int `json:"range"`
}

func (m MetaLevels) Level(i ShopItem) int {
	switch i {
	case ShopDamage:
		return m.Damage
	case ShopRate:
		return m.Rate
	case ShopCount:
		return m.Count
	case ShopPierce:
		return m.Pierce
	case ShopBurst:
		return m.Burst
	case ShopRange:
		return m.Range
	}
	panic(fmt.Sprintf("weapon: unknown shop item %d", int(i)))
}

// WithLevel returns a copy with the item set to level.
func (m MetaLevels) WithLevel(i ShopItem, level int) MetaLevels {
	switch i {
	case ShopDamage:
		m.Damage = level
	case ShopRate:
		m.Rate = level
	case ShopCount:
		m.Count = level
	case ShopPierce:
		m.Pierce = level
	case ShopBurst:
		m.Burst = level
	case ShopRange:
		m.Range = level
	default:
		panic(fmt.Sprintf("weapon: unknown shop item %d", int(i)))
	}
	return m
}

const shopScale = 0.7

// ApplyMeta adds the shop levels onto a freshly acquired weapon at 70% of
// their nominal value. It must be applied once per acquisition.
func ApplyMeta(w State, m MetaLevels) State {
	laser := w.Type == Laser

	dmg := 0
	if m.Damage > 0 {
		dmg = lo.Max([]int{1, int(float64(m.Damage) * DamageScale(w.Type) * shopScale)})
	}
	if laser {
		dmg += int(float64(m.Pierce+m.Burst) * 0.8)
	}
	w.Damage += dmg
	w.BulletCount += int(float64(m.Count) * shopScale)
	w.Pierce += int(float64(m.Pierce) * shopScale)
	w.BurstCount += int(float64(m.Burst) * shopScale)

	rateCut := int64(float64(m.Rate) * 10 * shopScale)
	if laser {
		w.LaserWidth += float64(m.Range) * 3.2 * shopScale
		rateCut += int64(float64(m.Burst) * 6 * shopScale)
		w.FireRateMs = lo.Max([]int64{420, w.FireRateMs - rateCut})
	} else {
		w.FireRateMs = lo.Max([]int64{180, w.FireRateMs - rateCut})
	}
	return Normalize(w)
}
