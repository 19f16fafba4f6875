package sim

import (
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-gate-runner/weapon"
	"github.com/tsujio/game-util/mathutil"
)

const laneCount = 2

var blockFractions = []float64{0.34, 0.70}

// SpawnNormalSegment appends the gate pairs and monster blocks of one
// normal segment above the current scroll position.
func (s *RunState) SpawnNormalSegment() {
	stage := s.stage()
	h := s.cfg.Height
	stride := h * 1.2
	left, right := s.cfg.PathLeft(), s.cfg.PathRight()
	center := s.cfg.PathCenter()
	laneWidth := s.cfg.PathWidth() / laneCount

	gateYs := make([]float64, s.cfg.GatesPerStage)
	for i := range gateYs {
		y := -s.ScrollY - h*0.10 - float64(i)*stride
		gateYs[i] = y
		gateH := h * 0.08
		const gap = 6.0
		pair := &GatePair{
			Left:  &Gate{Rect: geom.NewRect(left, y-gateH, center-gap, y)},
			Right: &Gate{Rect: geom.NewRect(center+gap, y-gateH, right, y)},
		}
		if s.Weapon == nil && i == 0 {
			perm := s.rng.Perm(len(weapon.Types))
			pair.Left.Offer = weapon.WeaponOffer(weapon.Types[perm[0]])
			pair.Right.Offer = weapon.WeaponOffer(weapon.Types[perm[1]])
		} else {
			pool := s.upgradeSource()
			pair.Left.Offer = weapon.RandomUpgradeOffer(pool, s.rng)
			pair.Right.Offer = weapon.RandomUpgradeOffer(pool, s.rng)
		}
		s.GatePairs = append(s.GatePairs, pair)
	}

	var segment []*Monster
	ranged := 0
	maxRanged := balance.MaxRangedPerSegment(stage)
	for i, gateY := range gateYs {
		for blockIdx, frac := range blockFractions {
			count := lo.Ternary(s.randFloat() < 0.62, 1, 2)
			usedLanes := map[int]bool{}
			prevLane := s.randIntn(laneCount)
			for m := 0; m < count; m++ {
				var lane int
				switch stage {
				case 1:
					lane = (i + m + blockIdx) % laneCount
				case 2:
					lane = lo.Ternary(m == 0, prevLane, laneCount-1-prevLane)
				default:
					lane = s.randIntn(laneCount)
				}
				if count == 2 && usedLanes[lane] {
					continue
				}
				usedLanes[lane] = true
				prevLane = lane

				laneCenter := left + laneWidth*float64(lane) + laneWidth/2
				var jitter float64
				switch stage {
				case 1:
					jitter = laneWidth * 0.12 * lo.Ternary(m == 0, -1.0, 1.0)
				case 2:
					jitter = laneWidth * 0.16 * lo.Ternary(i%2 == 0, 1.0, -1.0)
				default:
					jitter = laneWidth * 0.08 * (s.randFloat()*2 - 1)
				}
				cx := geom.Clamp(laneCenter+jitter, left+laneWidth*0.2, right-laneWidth*0.2)
				y := gateY - stride*frac - float64(m)*(h*0.06)

				isRanged := ranged < maxRanged && s.randFloat() < balance.RangedChance(stage)
				mon := s.newMonster(cx, y, laneWidth*0.20, isRanged)
				segment = append(segment, mon)
				if isRanged {
					ranged++
				}
			}
		}
	}

	s.ensureRangedFloor(segment, ranged)
	s.Monsters = append(s.Monsters, segment...)
}

func (s *RunState) newMonster(x, y, radius float64, ranged bool) *Monster {
	stage := s.stage()
	role := balance.PickRoleForStage(stage, s.rng)
	if ranged {
		role = balance.PickRangedRoleForStage(stage, s.rng)
	}
	hp := balance.SegmentBaseHP(stage, s.hpMult())
	if s.cfg.RoleBasedHP {
		hp = balance.HPForRole(role, stage, s.hpMult())
	} else if ranged {
		hp = balance.RangedHP(hp)
	}
	m := &Monster{
		ID:              s.nextMonsterID,
		Pos:             mathutil.NewVector2D(x, y),
		Radius:          radius,
		HP:              hp,
		Ranged:          ranged,
		Role:            role,
		ShotKind:        balance.ShotKindForRole(role),
		SpriteIndex:     balance.PickMonsterSpriteIndex(stage, role, s.rng, s.cfg.SpriteLabels),
		ShotCooldownMs:  max(420, int64(900+s.randIntn(800)-stage*120)),
		BaseX:           x,
		ZigzagPhase:     s.randFloat() * 6.28,
		DashCooldownMs:  int64(520 + s.randIntn(360)),
		DodgeCooldownMs: int64(460 + s.randIntn(320)),
	}
	s.nextMonsterID++
	return m
}

// ensureRangedFloor converts random melee monsters of the segment to
// ranged until the stage minimum is met or no melee monster is left.
func (s *RunState) ensureRangedFloor(segment []*Monster, ranged int) {
	stage := s.stage()
	need := balance.MinRangedPerSegment(stage) - ranged
	if need <= 0 {
		return
	}
	melee := lo.Filter(segment, func(m *Monster, _ int) bool { return !m.Ranged })
	s.rng.Shuffle(len(melee), func(i, j int) { melee[i], melee[j] = melee[j], melee[i] })
	for _, m := range melee[:min(need, len(melee))] {
		m.Ranged = true
		m.Role = balance.PickRangedRoleForStage(stage, s.rng)
		m.ShotKind = balance.ShotKindForRole(m.Role)
		m.HP = balance.RangedHP(m.HP)
		m.ShotCooldownMs = max(380, int64(820+s.randIntn(620)-stage*100))
	}
}

// upgradeSource is the weapon whose pool rolls gate upgrades. Without a
// weapon the projectile pool is used.
func (s *RunState) upgradeSource() weapon.State {
	if s.Weapon != nil {
		return *s.Weapon
	}
	return weapon.Base(weapon.Multi)
}

// ConvertRemainingGates turns every unused queued gate pair into upgrade
// gates rolled from the held weapon's pool.
func (s *RunState) ConvertRemainingGates() {
	if s.Weapon == nil {
		return
	}
	for _, p := range s.GatePairs {
		if p.Used() {
			continue
		}
		p.Left.Offer = weapon.RandomUpgradeOffer(*s.Weapon, s.rng)
		p.Right.Offer = weapon.RandomUpgradeOffer(*s.Weapon, s.rng)
	}
}

// SpawnBoss places the stage boss across the path just above the screen.
func (s *RunState) SpawnBoss() {
	stage := s.stage()
	hp := balance.BossHP(stage, s.hpMult())
	h := s.cfg.Height
	bossH := h * 0.18
	y := -s.ScrollY - h*0.2
	s.Boss = &Boss{
		Rect:  geom.NewRect(s.cfg.PathLeft(), y-bossH, s.cfg.PathRight(), y),
		HP:    hp,
		MaxHP: hp,
	}
	s.log.Info("boss spawned", "stage", s.StageIndex, "hp", hp, "label", balance.BossLabelForStage(stage))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
