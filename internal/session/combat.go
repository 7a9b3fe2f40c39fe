package session

import (
	"math"

	"github.com/rotmg-fleet/clientless/internal/gametypes"
	"github.com/rotmg-fleet/clientless/internal/protocol"
)

// shoot emits a single PlayerShoot at the given angle, gated by the
// STUNNED/PAUSED effects and the attack-cooldown derived from atkFreq.
// The original bot's per-weapon arc/projectile-count handling (item data
// this client doesn't load) always resolves to a single straight shot; that
// simplification is preserved here.
func (s *Session) shoot(angle float32) {
	if s.stats.HasEffect(gametypes.Stunned) || s.stats.HasEffect(gametypes.Paused) {
		return
	}
	now := s.time.Now()
	attackPeriodBits := math.Float32bits(1.0 / s.atkFreq() * 0.01)
	if now < s.combat.LastAttackTime+int32(attackPeriodBits) {
		return
	}
	s.combat.LastAttackTime = now

	pos := s.movement.Current
	pos.X += float32(math.Cos(float64(angle))) * 0.3
	pos.Y += float32(math.Sin(float64(angle))) * 0.3

	ps := protocol.PlayerShoot{
		Time:          now,
		BulletID:      s.combat.NextBulletID(),
		ContainerType: int16(s.stats.Int(gametypes.Inventory0)),
		Position:      pos,
		Angle:         angle,
	}
	s.sendCommand(ps)
}
