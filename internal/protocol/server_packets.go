package protocol

import (
	"github.com/rotmg-fleet/clientless/internal/buffer"
	"github.com/rotmg-fleet/clientless/internal/gametypes"
)

// Inbound is a decoded frame from the server, ready for session handling.
type Inbound interface {
	isInbound()
}

// RawPacket is the fallback decode for any packet id without a typed
// decoder: its payload is preserved untouched and the session logs it
// rather than crashing or dropping the byte stream's framing.
type RawPacket struct {
	ID      uint8
	Payload []byte
}

func (RawPacket) isInbound() {}

type Failure struct {
	FailureID      int32
	FailureMessage string
}

func (Failure) isInbound() {}

func decodeFailure(b *buffer.Buffer) (Failure, error) {
	id, err := b.ReadI32()
	if err != nil {
		return Failure{}, err
	}
	msg, err := b.ReadString()
	if err != nil {
		return Failure{}, err
	}
	return Failure{FailureID: id, FailureMessage: msg}, nil
}

type MapInfo struct {
	Width               int32
	Height              int32
	Name                string
	DisplayName         string
	RealmName           string
	Difficulty          int32
	FP                  uint32
	Background          int32
	AllowPlayerTeleport bool
	ShowDisplays        bool
	ClientXML           []string
	ExtraXML            []string
}

func (MapInfo) isInbound() {}

func decodeMapInfo(b *buffer.Buffer) (MapInfo, error) {
	var m MapInfo
	var err error
	if m.Width, err = b.ReadI32(); err != nil {
		return MapInfo{}, err
	}
	if m.Height, err = b.ReadI32(); err != nil {
		return MapInfo{}, err
	}
	if m.Name, err = b.ReadString(); err != nil {
		return MapInfo{}, err
	}
	if m.DisplayName, err = b.ReadString(); err != nil {
		return MapInfo{}, err
	}
	if m.RealmName, err = b.ReadString(); err != nil {
		return MapInfo{}, err
	}
	if m.Difficulty, err = b.ReadI32(); err != nil {
		return MapInfo{}, err
	}
	if m.FP, err = b.ReadU32(); err != nil {
		return MapInfo{}, err
	}
	if m.Background, err = b.ReadI32(); err != nil {
		return MapInfo{}, err
	}
	if m.AllowPlayerTeleport, err = b.ReadBool(); err != nil {
		return MapInfo{}, err
	}
	if m.ShowDisplays, err = b.ReadBool(); err != nil {
		return MapInfo{}, err
	}
	n, err := b.ReadU16()
	if err != nil {
		return MapInfo{}, err
	}
	for i := uint16(0); i < n; i++ {
		s, err := b.ReadUTFString()
		if err != nil {
			return MapInfo{}, err
		}
		m.ClientXML = append(m.ClientXML, s)
	}
	n, err = b.ReadU16()
	if err != nil {
		return MapInfo{}, err
	}
	for i := uint16(0); i < n; i++ {
		s, err := b.ReadUTFString()
		if err != nil {
			return MapInfo{}, err
		}
		m.ExtraXML = append(m.ExtraXML, s)
	}
	return m, nil
}

type CreateSuccess struct {
	ObjectID int32
	CharID   int32
}

func (CreateSuccess) isInbound() {}

func decodeCreateSuccess(b *buffer.Buffer) (CreateSuccess, error) {
	objID, err := b.ReadI32()
	if err != nil {
		return CreateSuccess{}, err
	}
	charID, err := b.ReadI32()
	if err != nil {
		return CreateSuccess{}, err
	}
	return CreateSuccess{ObjectID: objID, CharID: charID}, nil
}

type Update struct {
	Tiles   []gametypes.GroundTile
	NewObjs []gametypes.ObjectData
	Drops   []int32
}

func (Update) isInbound() {}

func decodeUpdate(b *buffer.Buffer) (Update, error) {
	var u Update
	n, err := b.ReadU16()
	if err != nil {
		return Update{}, err
	}
	for i := uint16(0); i < n; i++ {
		t, err := readGroundTile(b)
		if err != nil {
			return Update{}, err
		}
		u.Tiles = append(u.Tiles, t)
	}
	n, err = b.ReadU16()
	if err != nil {
		return Update{}, err
	}
	for i := uint16(0); i < n; i++ {
		o, err := readObjectData(b)
		if err != nil {
			return Update{}, err
		}
		u.NewObjs = append(u.NewObjs, o)
	}
	n, err = b.ReadU16()
	if err != nil {
		return Update{}, err
	}
	for i := uint16(0); i < n; i++ {
		d, err := b.ReadI32()
		if err != nil {
			return Update{}, err
		}
		u.Drops = append(u.Drops, d)
	}
	return u, nil
}

type NewTick struct {
	TickID   int32
	TickTime int32
	Statuses []gametypes.ObjectStatusData
}

func (NewTick) isInbound() {}

func decodeNewTick(b *buffer.Buffer) (NewTick, error) {
	tickID, err := b.ReadI32()
	if err != nil {
		return NewTick{}, err
	}
	tickTime, err := b.ReadI32()
	if err != nil {
		return NewTick{}, err
	}
	n, err := b.ReadU16()
	if err != nil {
		return NewTick{}, err
	}
	nt := NewTick{TickID: tickID, TickTime: tickTime}
	for i := uint16(0); i < n; i++ {
		s, err := readObjectStatusData(b)
		if err != nil {
			return NewTick{}, err
		}
		nt.Statuses = append(nt.Statuses, s)
	}
	return nt, nil
}

type Ping struct {
	Serial int32
}

func (Ping) isInbound() {}

func decodePing(b *buffer.Buffer) (Ping, error) {
	s, err := b.ReadI32()
	if err != nil {
		return Ping{}, err
	}
	return Ping{Serial: s}, nil
}

type Reconnect struct {
	Name        string
	Host        string
	Stats       string
	Port        int32
	GameID      int32
	KeyTime     int32
	IsFromArena bool
	Key         []byte
}

func (Reconnect) isInbound() {}

func decodeReconnect(b *buffer.Buffer) (Reconnect, error) {
	var r Reconnect
	var err error
	if r.Name, err = b.ReadString(); err != nil {
		return Reconnect{}, err
	}
	if r.Host, err = b.ReadString(); err != nil {
		return Reconnect{}, err
	}
	if r.Stats, err = b.ReadString(); err != nil {
		return Reconnect{}, err
	}
	if r.Port, err = b.ReadI32(); err != nil {
		return Reconnect{}, err
	}
	if r.GameID, err = b.ReadI32(); err != nil {
		return Reconnect{}, err
	}
	if r.KeyTime, err = b.ReadI32(); err != nil {
		return Reconnect{}, err
	}
	if r.IsFromArena, err = b.ReadBool(); err != nil {
		return Reconnect{}, err
	}
	n, err := b.ReadU16()
	if err != nil {
		return Reconnect{}, err
	}
	if n > 0 {
		key, err := b.ReadBytes(int(n))
		if err != nil {
			return Reconnect{}, err
		}
		r.Key = key
	}
	return r, nil
}

type AoE struct {
	Position       gametypes.WorldPosition
	Radius         float32
	Damage         uint16
	EffectsBitmask uint8
	EffectDuration float32
	OriginType     int16
	Color          int32
	ArmorPierce    bool
}

func (AoE) isInbound() {}

func decodeAoE(b *buffer.Buffer) (AoE, error) {
	var a AoE
	var err error
	if a.Position, err = readWorldPosition(b); err != nil {
		return AoE{}, err
	}
	if a.Radius, err = b.ReadF32(); err != nil {
		return AoE{}, err
	}
	if a.Damage, err = b.ReadU16(); err != nil {
		return AoE{}, err
	}
	if a.EffectsBitmask, err = b.ReadU8(); err != nil {
		return AoE{}, err
	}
	if a.EffectDuration, err = b.ReadF32(); err != nil {
		return AoE{}, err
	}
	if a.OriginType, err = b.ReadI16(); err != nil {
		return AoE{}, err
	}
	if a.Color, err = b.ReadI32(); err != nil {
		return AoE{}, err
	}
	if a.ArmorPierce, err = b.ReadBool(); err != nil {
		return AoE{}, err
	}
	return a, nil
}

type Goto struct {
	ObjectID int32
	Position gametypes.WorldPosition
}

func (Goto) isInbound() {}

func decodeGoto(b *buffer.Buffer) (Goto, error) {
	objID, err := b.ReadI32()
	if err != nil {
		return Goto{}, err
	}
	pos, err := readWorldPosition(b)
	if err != nil {
		return Goto{}, err
	}
	return Goto{ObjectID: objID, Position: pos}, nil
}

type AllyShoot struct {
	BulletID      uint8
	OwnerID       int32
	ContainerType int16
	Angle         float32
}

func (AllyShoot) isInbound() {}

func decodeAllyShoot(b *buffer.Buffer) (AllyShoot, error) {
	var a AllyShoot
	var err error
	if a.BulletID, err = b.ReadU8(); err != nil {
		return AllyShoot{}, err
	}
	if a.OwnerID, err = b.ReadI32(); err != nil {
		return AllyShoot{}, err
	}
	if a.ContainerType, err = b.ReadI16(); err != nil {
		return AllyShoot{}, err
	}
	if a.Angle, err = b.ReadF32(); err != nil {
		return AllyShoot{}, err
	}
	return a, nil
}

type Text struct {
	Name          string
	ObjectID      int32
	Stars         int32
	BubbleTime    uint8
	Recipient     string
	Message       string
	CleanMessage  string
	Supporter     bool
}

func (Text) isInbound() {}

func decodeText(b *buffer.Buffer) (Text, error) {
	var t Text
	var err error
	if t.Name, err = b.ReadString(); err != nil {
		return Text{}, err
	}
	if t.ObjectID, err = b.ReadI32(); err != nil {
		return Text{}, err
	}
	if t.Stars, err = b.ReadI32(); err != nil {
		return Text{}, err
	}
	if t.BubbleTime, err = b.ReadU8(); err != nil {
		return Text{}, err
	}
	if t.Recipient, err = b.ReadString(); err != nil {
		return Text{}, err
	}
	if t.Message, err = b.ReadString(); err != nil {
		return Text{}, err
	}
	if t.CleanMessage, err = b.ReadString(); err != nil {
		return Text{}, err
	}
	if t.Supporter, err = b.ReadBool(); err != nil {
		return Text{}, err
	}
	return t, nil
}

type ServerPlayerShoot struct {
	BulletID      uint8
	OwnerID       int32
	ContainerType int32
	StartingPos   gametypes.WorldPosition
	Angle         float32
	Damage        int16
}

func (ServerPlayerShoot) isInbound() {}

func decodeServerPlayerShoot(b *buffer.Buffer) (ServerPlayerShoot, error) {
	var s ServerPlayerShoot
	var err error
	if s.BulletID, err = b.ReadU8(); err != nil {
		return ServerPlayerShoot{}, err
	}
	if s.OwnerID, err = b.ReadI32(); err != nil {
		return ServerPlayerShoot{}, err
	}
	if s.ContainerType, err = b.ReadI32(); err != nil {
		return ServerPlayerShoot{}, err
	}
	if s.StartingPos, err = readWorldPosition(b); err != nil {
		return ServerPlayerShoot{}, err
	}
	if s.Angle, err = b.ReadF32(); err != nil {
		return ServerPlayerShoot{}, err
	}
	if s.Damage, err = b.ReadI16(); err != nil {
		return ServerPlayerShoot{}, err
	}
	return s, nil
}

type Notification struct {
	ObjectID int32
	Message  string
	Color    int32
}

func (Notification) isInbound() {}

func decodeNotification(b *buffer.Buffer) (Notification, error) {
	objID, err := b.ReadI32()
	if err != nil {
		return Notification{}, err
	}
	msg, err := b.ReadString()
	if err != nil {
		return Notification{}, err
	}
	color, err := b.ReadI32()
	if err != nil {
		return Notification{}, err
	}
	return Notification{ObjectID: objID, Message: msg, Color: color}, nil
}

type GlobalNotification struct {
	TypeID int32
	Text   string
}

func (GlobalNotification) isInbound() {}

func decodeGlobalNotification(b *buffer.Buffer) (GlobalNotification, error) {
	typeID, err := b.ReadI32()
	if err != nil {
		return GlobalNotification{}, err
	}
	text, err := b.ReadString()
	if err != nil {
		return GlobalNotification{}, err
	}
	return GlobalNotification{TypeID: typeID, Text: text}, nil
}

type EnemyShoot struct {
	BulletID   uint8
	OwnerID    int32
	BulletType uint8
	Location   gametypes.WorldPosition
	Angle      float32
	Damage     int16
	NumShots   uint8
	AngleInc   float32
}

func (EnemyShoot) isInbound() {}

func decodeEnemyShoot(b *buffer.Buffer) (EnemyShoot, error) {
	var e EnemyShoot
	var err error
	if e.BulletID, err = b.ReadU8(); err != nil {
		return EnemyShoot{}, err
	}
	if e.OwnerID, err = b.ReadI32(); err != nil {
		return EnemyShoot{}, err
	}
	if e.BulletType, err = b.ReadU8(); err != nil {
		return EnemyShoot{}, err
	}
	if e.Location, err = readWorldPosition(b); err != nil {
		return EnemyShoot{}, err
	}
	if e.Angle, err = b.ReadF32(); err != nil {
		return EnemyShoot{}, err
	}
	if e.Damage, err = b.ReadI16(); err != nil {
		return EnemyShoot{}, err
	}
	// num_shots/angle_inc are only present when the server includes
	// multi-shot spread data; default to a single shot with no spread.
	e.NumShots = 1
	if b.Remaining() > 0 {
		if e.NumShots, err = b.ReadU8(); err != nil {
			return EnemyShoot{}, err
		}
		if e.AngleInc, err = b.ReadF32(); err != nil {
			return EnemyShoot{}, err
		}
	}
	return e, nil
}

type TradeRequested struct {
	Name string
}

func (TradeRequested) isInbound() {}

func decodeTradeRequested(b *buffer.Buffer) (TradeRequested, error) {
	name, err := b.ReadString()
	if err != nil {
		return TradeRequested{}, err
	}
	return TradeRequested{Name: name}, nil
}

type Death struct {
	AccountID  string
	CharID     int32
	KilledBy   string
	ZombieType int32
	ZombieID   int32
}

func (Death) isInbound() {}

func decodeDeath(b *buffer.Buffer) (Death, error) {
	var d Death
	var err error
	if d.AccountID, err = b.ReadString(); err != nil {
		return Death{}, err
	}
	if d.CharID, err = b.ReadI32(); err != nil {
		return Death{}, err
	}
	if d.KilledBy, err = b.ReadString(); err != nil {
		return Death{}, err
	}
	if d.ZombieType, err = b.ReadI32(); err != nil {
		return Death{}, err
	}
	if d.ZombieID, err = b.ReadI32(); err != nil {
		return Death{}, err
	}
	return d, nil
}
