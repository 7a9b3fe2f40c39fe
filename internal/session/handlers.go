package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/rotmg-fleet/clientless/internal/metrics"
	"github.com/rotmg-fleet/clientless/internal/protocol"
)

// dispatch routes one decoded inbound packet to its handler. Every id named
// in the packet table has a case here, even when the original bot's own
// handler was a no-op — the goal is a real dispatch target for every kind,
// not a silently-dropped id.
func (s *Session) dispatch(pkt protocol.Inbound) {
	switch p := pkt.(type) {
	case protocol.Failure:
		s.onFailure(p)
	case protocol.MapInfo:
		s.onMapInfo(p)
	case protocol.CreateSuccess:
		s.onCreateSuccess(p)
	case protocol.Update:
		s.onUpdate(p)
	case protocol.NewTick:
		s.onNewTick(p)
	case protocol.Ping:
		s.onPing(p)
	case protocol.Reconnect:
		s.onReconnect(p)
	case protocol.AoE:
		s.onAoE(p)
	case protocol.Goto:
		s.onGoto(p)
	case protocol.AllyShoot:
		// No client-side effect: allies' shots don't require an ack and
		// don't feed movement/combat state.
	case protocol.ServerPlayerShoot:
		s.onServerPlayerShoot(p)
	case protocol.Notification:
		// Cosmetic; nothing to simulate.
	case protocol.GlobalNotification:
		// Cosmetic; nothing to simulate.
	case protocol.EnemyShoot:
		s.onEnemyShoot(p)
	case protocol.TradeRequested:
		s.onTradeRequested(p)
	case protocol.Death:
		s.onDeath(p)
	case protocol.Text:
		s.onText(p)
	case protocol.RawPacket:
		s.onRawPacket(p)
	}
}

func (s *Session) onFailure(f protocol.Failure) {
	s.log.Warn("server failure", zap.Int32("failure_id", f.FailureID), zap.String("message", f.FailureMessage))
}

func (s *Session) onMapInfo(mp protocol.MapInfo) {
	s.movement.MapWidth = mp.Width
	s.movement.MapHeight = mp.Height
	s.currentMap = mp.Name
	s.phase = Loading
	_ = s.sendOutbound(protocol.Load{CharID: s.account.CharID})
}

func (s *Session) onCreateSuccess(cs protocol.CreateSuccess) {
	s.objectID = cs.ObjectID
	s.recon.Reset()
	s.phase = InWorld
	s.log.Info("joined world", zap.String("map", s.currentMap), zap.Int32("object_id", s.objectID))
}

func (s *Session) onUpdate(u protocol.Update) {
	_ = s.sendOutbound(protocol.UpdateAck{})
	s.parseUpdate(u)
}

func (s *Session) onNewTick(nt protocol.NewTick) {
	start := time.Now()

	s.time.LastTickTime = s.time.CurrentTickTime
	s.time.CurrentTickTime = s.time.Now()
	s.movement.TickCount++

	if s.currentMap != "Nexus" {
		_ = s.sendOutbound(protocol.Escape{})
	}
	s.moveTo(s.movement.Target)
	if s.movement.Current.SqDistanceTo(s.movement.Target) < 0.01 {
		s.movement.NextTarget()
	}

	_ = s.sendOutbound(protocol.Move{
		TickID:      nt.TickID,
		Time:        s.time.Now(),
		NewPosition: s.movement.Current,
	})

	s.parseNewTick(nt)
	s.movement.LastTickID = nt.TickID

	metrics.TickLatency.Observe(time.Since(start).Seconds())
}

func (s *Session) onPing(p protocol.Ping) {
	_ = s.sendOutbound(protocol.Pong{Serial: p.Serial, Time: s.time.Now()})
}

func (s *Session) onReconnect(r protocol.Reconnect) {
	if s.recon.Blocking {
		return
	}
	if r.Host != "" {
		s.recon.PreviousServer = s.recon.CurrentServer
		s.recon.CurrentServer = r.Host
	}
	s.log.Info("reconnect requested", zap.String("name", r.Name), zap.String("host", r.Host))
	s.queueRecon(r.GameID, r.Key, uint32(r.KeyTime))
}

func (s *Session) onAoE(a protocol.AoE) {
	_ = s.sendOutbound(protocol.AoEAck{Time: s.time.Now(), Position: s.movement.Current})
}

func (s *Session) onGoto(gt protocol.Goto) {
	_ = s.sendOutbound(protocol.GotoAck{Time: s.time.Now()})
	if gt.ObjectID == s.objectID {
		s.movement.Current = gt.Position
	}
}

func (s *Session) onServerPlayerShoot(sp protocol.ServerPlayerShoot) {
	if sp.OwnerID == s.objectID {
		_ = s.sendOutbound(protocol.ShootAck{Time: s.time.Now()})
	}
}

func (s *Session) onEnemyShoot(e protocol.EnemyShoot) {
	_ = s.sendOutbound(protocol.ShootAck{Time: s.time.Now()})
}

func (s *Session) onTradeRequested(tr protocol.TradeRequested) {
	s.log.Info("trade requested", zap.String("from", tr.Name))
	_ = s.sendOutbound(protocol.RequestTrade{PlayerName: tr.Name})
}

func (s *Session) onDeath(d protocol.Death) {
	s.log.Warn("character died", zap.String("killed_by", d.KilledBy))
}

func (s *Session) onText(t protocol.Text) {
	s.handleText(t)
}

func (s *Session) onRawPacket(p protocol.RawPacket) {
	metrics.UnknownPacketIDs.Inc()
	s.log.Debug("unhandled packet id", zap.Uint8("id", p.ID), zap.String("name", protocol.Name(p.ID)), zap.Int("len", len(p.Payload)))
}
