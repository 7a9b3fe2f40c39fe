// Package session implements the per-account client: the state machine,
// movement integration, reconnect policy, and chat-command subprotocol
// described for the protocol engine. One Session owns exactly one
// transport.Worker at a time and is never touched by more than one
// goroutine — its own Run loop.
package session

import (
	"time"

	"github.com/rotmg-fleet/clientless/internal/gametypes"
)

// Phase is the session's connection lifecycle state.
type Phase int

const (
	Disconnected Phase = iota
	Connecting
	HelloSent
	Loading
	InWorld
	ReconnectPending
	Dead
)

func (p Phase) String() string {
	switch p {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case HelloSent:
		return "hello_sent"
	case Loading:
		return "loading"
	case InWorld:
		return "in_world"
	case ReconnectPending:
		return "reconnect_pending"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Movement speed/attack tuning constants, bit-for-bit the values the
// original bot used.
const (
	MinMoveSpeed = 0.0041
	MaxMoveSpeed = 0.00961
	MinAtkMult   = 0.5
	MaxAtkMult   = 2.0
	MinAtkFreq   = 0.0015
	MaxAtkFreq   = 0.008
)

// defaultWaypoints mirrors the four hardcoded patrol targets used when no
// explicit target has been set via a chat command.
func defaultWaypoints() []gametypes.WorldPosition {
	return []gametypes.WorldPosition{
		{X: 127.5, Y: 179.0},
		{X: 132.0, Y: 183.0},
		{X: 127.5, Y: 187.0},
		{X: 123.0, Y: 183.0},
	}
}

// Movement tracks the client's simulated position and the data needed to
// integrate it tick over tick.
type Movement struct {
	Current        gametypes.WorldPosition
	Target         gametypes.WorldPosition
	Last           gametypes.WorldPosition
	ServerPosition gametypes.WorldPosition
	MoveMultiplier float32
	TickCount      uint64
	LastTickID     int32
	MapWidth       int32
	MapHeight      int32
	Targets        []gametypes.WorldPosition
	TargetCode     int
	Tiles          map[gametypes.GroundTile]uint16
}

func newMovement() Movement {
	m := Movement{
		MoveMultiplier: 0.8,
		Targets:        defaultWaypoints(),
		Tiles:          make(map[gametypes.GroundTile]uint16, 4096),
	}
	m.NextTarget()
	return m
}

// NextTarget advances to the next waypoint in the patrol, wrapping back to
// the first once the list is exhausted.
func (m *Movement) NextTarget() {
	if m.TargetCode >= len(m.Targets) {
		m.TargetCode = 0
	}
	if len(m.Targets) == 0 {
		return
	}
	m.Target = m.Targets[m.TargetCode]
	m.TargetCode++
}

// OutOfBounds replicates the original movement bound check, including its
// known bug: both axes are compared against map width, not height.
func (m *Movement) OutOfBounds(pos gametypes.WorldPosition) bool {
	return pos.OutOfBounds(float32(m.MapWidth))
}

// TimeKeeper tracks session-relative wall clock time and tick bookkeeping.
type TimeKeeper struct {
	startup         time.Time
	LastTickID      int32
	CurrentTickTime int32
	LastTickTime    int32
}

func newTimeKeeper() TimeKeeper {
	return TimeKeeper{startup: time.Now()}
}

// Now returns milliseconds elapsed since the timekeeper was created or last
// reset, matching the original client's monotonic session clock.
func (t *TimeKeeper) Now() int32 {
	return int32(time.Since(t.startup).Milliseconds())
}

// ResetClock restarts the session clock, used when switching servers.
func (t *TimeKeeper) ResetClock() {
	t.startup = time.Now()
}

// ReconnectBase tracks the server-redirect and backoff state machine for
// reconnection.
type ReconnectBase struct {
	CurrentServer    string
	PreviousServer   string
	Blocking         bool
	Queued           bool
	Attempts         uint32
	WaitMultiplier   uint64
	AllowedAttempts  uint32
	GameID           int32
	GameKey          []byte
	GameKeyTime      uint32
}

func newReconnectBase(serverIP string) ReconnectBase {
	return ReconnectBase{
		CurrentServer:   serverIP,
		AllowedAttempts: 3,
		WaitMultiplier:  1,
		GameID:          -2,
		GameKeyTime:     0xFFFFFFFF,
	}
}

// Reset clears attempt counters, called on CreateSuccess.
func (r *ReconnectBase) Reset() {
	r.Blocking = false
	r.Attempts = 0
	r.WaitMultiplier = 1
}

// Increment records one reconnect attempt. If w, the backoff multiplier
// also grows. Once attempts exceeds AllowedAttempts, Queued is cleared —
// the caller must still check Exhausted to transition to Dead.
func (r *ReconnectBase) Increment(w bool) {
	if r.Attempts > r.AllowedAttempts {
		r.Queued = false
	}
	r.Attempts++
	if w {
		r.WaitMultiplier++
	}
}

// Exhausted reports whether the reconnect budget has been used up.
func (r *ReconnectBase) Exhausted() bool {
	return r.Attempts > r.AllowedAttempts
}

// StatBase holds the client's own object's known stats, keyed by wire
// stat byte.
type StatBase struct {
	stats map[gametypes.Stat]gametypes.StatData
}

func newStatBase() StatBase {
	return StatBase{stats: make(map[gametypes.Stat]gametypes.StatData, 102)}
}

func (s *StatBase) Set(d gametypes.StatData) {
	s.stats[d.Type] = d
}

func (s *StatBase) Int(stat gametypes.Stat) int32 {
	return s.stats[stat].Value
}

func (s *StatBase) HasEffect(e gametypes.Effect) bool {
	return gametypes.HasEffect(e, s.Int(gametypes.Effects), s.Int(gametypes.Effects2))
}

func (s *StatBase) Clear() {
	for k := range s.stats {
		delete(s.stats, k)
	}
}

// CombatBase tracks the bullet-id counter and attack cooldown.
type CombatBase struct {
	CurrentBulletID uint8
	LastAttackTime  int32
}

// NextBulletID returns the current bullet id and advances the counter,
// wrapping modulo 128 as the wire format requires (bullet ids share a byte
// with other per-shot flags upstream).
func (c *CombatBase) NextBulletID() uint8 {
	id := c.CurrentBulletID
	c.CurrentBulletID = (c.CurrentBulletID + 1) % 128
	return id
}

// TradeBase tracks recently observed ground-drop object ids.
type TradeBase struct {
	Drops []int32
}

// GameObjects is the session's entity index: every currently-visible
// object plus the tracked "target" (followed entity) and "stored" (most
// recently grabbed-by-range) object.
type GameObjects struct {
	Entities     map[int32]gametypes.ObjectData
	TargetObject gametypes.ObjectStatusData
	StoredObject gametypes.ObjectStatusData
}

func newGameObjects() GameObjects {
	return GameObjects{
		Entities:     make(map[int32]gametypes.ObjectData, 256),
		TargetObject: gametypes.NewObjectStatusData(),
		StoredObject: gametypes.NewObjectStatusData(),
	}
}

func (g *GameObjects) ByType(t uint16) (gametypes.ObjectData, bool) {
	for _, obj := range g.Entities {
		if obj.ObjectType == t {
			return obj, true
		}
	}
	return gametypes.ObjectData{}, false
}

func (g *GameObjects) ByID(id int32) (gametypes.ObjectData, bool) {
	obj, ok := g.Entities[id]
	return obj, ok
}

func (g *GameObjects) ByName(name string) (gametypes.ObjectStatusData, bool) {
	for _, obj := range g.Entities {
		for _, st := range obj.Status.Stats {
			if st.Type.IsStringStat() && st.StrValue == name {
				return obj.Status, true
			}
		}
	}
	return gametypes.ObjectStatusData{}, false
}

// InRange returns every entity within 1.0 tile of pos, excluding ignore,
// and remembers the first match as StoredObject (mirroring the original
// "grab nearest" semantics used by the enter/teleport commands).
func (g *GameObjects) InRange(pos gametypes.WorldPosition, ignore int32) []gametypes.ObjectData {
	var out []gametypes.ObjectData
	for _, obj := range g.Entities {
		if obj.Status.ObjectID == ignore {
			continue
		}
		if pos.DistanceTo(obj.Status.Position) < 1.0 {
			out = append(out, obj)
		}
	}
	if len(out) > 0 {
		g.StoredObject = out[0].Status
	}
	return out
}

func (g *GameObjects) Clear() {
	for k := range g.Entities {
		delete(g.Entities, k)
	}
}
