package session

import (
	"math"

	"github.com/rotmg-fleet/clientless/internal/gametypes"
)

// moveSpeed computes the client's current move speed from the SPEED stat
// (transported as a bit-cast float in a signed int field), the SLOWED/
// SPEEDY effects, and the movement multiplier.
func (s *Session) moveSpeed() float32 {
	if s.stats.HasEffect(gametypes.Slowed) {
		return MinMoveSpeed
	}
	speedBits := uint32(s.stats.Int(gametypes.Speed))
	speed := MinMoveSpeed + math.Float32frombits(speedBits)/75.0*(MaxMoveSpeed-MinMoveSpeed)
	if s.stats.HasEffect(gametypes.Speedy) {
		speed *= 1.5
	}
	return speed * s.movement.MoveMultiplier
}

func (s *Session) atkFreq() float32 {
	if s.stats.HasEffect(gametypes.Dazed) {
		return MinAtkFreq
	}
	dexBits := uint32(s.stats.Int(gametypes.Dexterity))
	freq := MinAtkFreq + math.Float32frombits(dexBits)/75.0*(MaxAtkFreq-MinAtkFreq)
	if s.stats.HasEffect(gametypes.Berserk) {
		freq *= 1.5
	}
	return freq
}

func (s *Session) atkMult() float32 {
	if s.stats.HasEffect(gametypes.Weak) {
		return MinAtkMult
	}
	atkBits := uint32(s.stats.Int(gametypes.Attack))
	mult := MinAtkMult + math.Float32frombits(atkBits)/75.0*(MaxAtkMult-MinAtkMult)
	if s.stats.HasEffect(gametypes.Damaging) {
		mult *= 1.5
	}
	return mult
}

// moveTo integrates the client's simulated position one step toward
// target. PAUSED freezes the client at its last known server position
// rather than reproducing the original's sentinel-coordinate write, which
// spec review flagged as dead-code-adjacent and not worth preserving.
func (s *Session) moveTo(target gametypes.WorldPosition) {
	if s.movement.OutOfBounds(target) {
		return
	}
	if s.stats.HasEffect(gametypes.Paused) {
		s.movement.Last = s.movement.Current
		s.movement.Current = s.movement.ServerPosition
		return
	}

	elapsed := float32(s.time.CurrentTickTime - s.time.LastTickTime)
	if elapsed < 200 {
		elapsed = 200
	}
	step := s.moveSpeed() * elapsed

	if s.movement.Current.SqDistanceTo(target) > step*step {
		angle := s.movement.Current.AngleTo(target)
		s.movement.Last = s.movement.Current
		s.movement.Current = gametypes.WorldPosition{
			X: s.movement.Current.X + float32(math.Cos(float64(angle)))*step,
			Y: s.movement.Current.Y + float32(math.Sin(float64(angle)))*step,
		}
	} else {
		s.movement.Last = s.movement.Current
		s.movement.Current = target
	}
}
