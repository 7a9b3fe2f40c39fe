package protocol

import (
	"github.com/rotmg-fleet/clientless/internal/buffer"
	"github.com/rotmg-fleet/clientless/internal/gametypes"
)

// Outbound marks every packet type this client can emit. Encode renders the
// packet to a finalized, framed byte slice ready for the transport worker.
type Outbound interface {
	Encode() []byte
}

// Hello is the first packet sent on every (re)connection. The three
// encrypted fields (Guid, Password, Secret) must already be RSA+base64
// encrypted by the caller (see internal/creds) before this struct is built.
type Hello struct {
	BuildVersion  string
	GameID        int32
	Guid          string
	Random1       int32
	Password      string
	Random2       int32
	Secret        string
	KeyTime       uint32
	Key           []byte
	MapJSON       string
	EntryTag      string
	GameNet       string
	GameNetUserID string
	PlayPlatform  string
	PlatformToken string
	UserToken     string
	ClientToken   string
}

func (h Hello) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteString(h.BuildVersion)
	b.WriteI32(h.GameID)
	b.WriteString(h.Guid)
	b.WriteI32(h.Random1)
	b.WriteString(h.Password)
	b.WriteI32(h.Random2)
	b.WriteString(h.Secret)
	b.WriteU32(h.KeyTime)
	b.WriteU16(uint16(len(h.Key)))
	b.WriteBytes(h.Key)
	b.WriteUTFString(h.MapJSON)
	b.WriteString(h.EntryTag)
	b.WriteString(h.GameNet)
	b.WriteString(h.GameNetUserID)
	b.WriteString(h.PlayPlatform)
	b.WriteString(h.PlatformToken)
	b.WriteString(h.UserToken)
	b.WriteString(h.ClientToken)
	return b.Finalize(IDHello)
}

// Create requests a new character of the given class/skin.
type Create struct {
	ClassType    uint16
	SkinType     uint16
	IsChallenger bool
}

func (c Create) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteU16(c.ClassType)
	b.WriteU16(c.SkinType)
	b.WriteBool(c.IsChallenger)
	return b.Finalize(IDCreate)
}

// Load requests an existing character be loaded into the session.
type Load struct {
	CharID       int32
	IsFromArena  bool
	IsChallenger bool
}

func (l Load) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(l.CharID)
	b.WriteBool(l.IsFromArena)
	b.WriteBool(l.IsChallenger)
	return b.Finalize(IDLoad)
}

// Move reports the client's claimed position for a tick, along with a
// history trail of intermediate timestamps the server uses to validate it.
type Move struct {
	TickID      int32
	Time        int32
	NewPosition gametypes.WorldPosition
	Records     []gametypes.PositionRecords
}

func (m Move) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(m.TickID)
	b.WriteI32(m.Time)
	writeWorldPosition(b, m.NewPosition)
	b.WriteU16(uint16(len(m.Records)))
	for _, r := range m.Records {
		writePositionRecord(b, r)
	}
	return b.Finalize(IDMove)
}

// UpdateAck acknowledges receipt of an Update packet. It carries no payload.
type UpdateAck struct{}

func (UpdateAck) Encode() []byte {
	b := buffer.NewWithHeader()
	return b.Finalize(IDUpdateAck)
}

// Pong answers a server Ping, echoing its serial and the client's clock.
type Pong struct {
	Serial int32
	Time   int32
}

func (p Pong) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(p.Serial)
	b.WriteI32(p.Time)
	return b.Finalize(IDPong)
}

// AoEAck acknowledges an area-of-effect packet, reporting the client's
// position at the time it was applied.
type AoEAck struct {
	Time     int32
	Position gametypes.WorldPosition
}

func (a AoEAck) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(a.Time)
	writeWorldPosition(b, a.Position)
	return b.Finalize(IDAoEAck)
}

// ShootAck acknowledges a ServerPlayerShoot/EnemyShoot/AllyShoot.
type ShootAck struct {
	Time int32
}

func (s ShootAck) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(s.Time)
	return b.Finalize(IDShootAck)
}

// GotoAck acknowledges a Goto packet.
type GotoAck struct {
	Time int32
}

func (g GotoAck) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(g.Time)
	return b.Finalize(IDGotoAck)
}

// PlayerShoot emits an attack from the client's current position.
type PlayerShoot struct {
	Time          int32
	BulletID      uint8
	ContainerType int16
	Position      gametypes.WorldPosition
	Angle         float32
}

func (p PlayerShoot) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(p.Time)
	b.WriteU8(p.BulletID)
	b.WriteI16(p.ContainerType)
	writeWorldPosition(b, p.Position)
	b.WriteF32(p.Angle)
	return b.Finalize(IDPlayerShoot)
}

// UsePortal enters the portal identified by ObjectID.
type UsePortal struct {
	ObjectID int32
}

func (u UsePortal) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(u.ObjectID)
	return b.Finalize(IDUsePortal)
}

// PlayerText sends a chat line, which the server may echo back as a Text
// packet or interpret as a command (e.g. "/whisper").
type PlayerText struct {
	Message string
}

func (p PlayerText) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteString(p.Message)
	return b.Finalize(IDPlayerText)
}

// Escape leaves the current character back to the character-select screen.
type Escape struct{}

func (Escape) Encode() []byte {
	b := buffer.NewWithHeader()
	return b.Finalize(IDEscape)
}

// RequestTrade asks another player by name to begin a trade.
type RequestTrade struct {
	PlayerName string
}

func (r RequestTrade) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteString(r.PlayerName)
	return b.Finalize(IDRequestTrade)
}

// Teleport requests the server relocate the client to the given object.
type Teleport struct {
	ObjectID int32
}

func (t Teleport) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteI32(t.ObjectID)
	return b.Finalize(IDTeleport)
}

// GuildRemove kicks a player from the client's guild.
type GuildRemove struct {
	PlayerName string
}

func (g GuildRemove) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteString(g.PlayerName)
	return b.Finalize(IDGuildRemove)
}

// ChangeGuildRank requests a rank change for a guild member.
type ChangeGuildRank struct {
	Name string
	Rank int32
}

func (c ChangeGuildRank) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteString(c.Name)
	b.WriteI32(c.Rank)
	return b.Finalize(IDChangeGuildRank)
}

// JoinGuild requests membership in the named guild.
type JoinGuild struct {
	GuildName string
}

func (j JoinGuild) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteString(j.GuildName)
	return b.Finalize(IDJoinGuild)
}

// CancelTrade aborts the in-progress trade.
type CancelTrade struct{}

func (CancelTrade) Encode() []byte {
	b := buffer.NewWithHeader()
	return b.Finalize(IDCancelTrade)
}

// AcceptTrade finalizes a trade with both sides' accepted-slot bitmaps.
type AcceptTrade struct {
	MyOffers    []bool
	TheirOffers []bool
}

func (a AcceptTrade) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteU16(uint16(len(a.MyOffers)))
	for _, v := range a.MyOffers {
		b.WriteBool(v)
	}
	b.WriteU16(uint16(len(a.TheirOffers)))
	for _, v := range a.TheirOffers {
		b.WriteBool(v)
	}
	return b.Finalize(IDAcceptTrade)
}

// ChangeTrade updates the client's own offered-slot bitmap mid-trade.
type ChangeTrade struct {
	MyOffers []bool
}

func (c ChangeTrade) Encode() []byte {
	b := buffer.NewWithHeader()
	b.WriteU16(uint16(len(c.MyOffers)))
	for _, v := range c.MyOffers {
		b.WriteBool(v)
	}
	return b.Finalize(IDChangeTrade)
}
