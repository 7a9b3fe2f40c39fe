package gametypes

// ObjectStatusData is the per-object stat snapshot carried in NewTick and
// Update packets: an object id, its current position, and a sparse map of
// stat values keyed by Stat.
type ObjectStatusData struct {
	ObjectID int32
	Position WorldPosition
	Stats    map[Stat]StatData
}

// NewObjectStatusData returns an ObjectStatusData with its stat map
// preallocated to the full stat table size, mirroring the original
// client's HashMap::with_capacity(101) sizing hint.
func NewObjectStatusData() ObjectStatusData {
	return ObjectStatusData{Stats: make(map[Stat]StatData, 101)}
}

// Int finds a numeric stat's value, returning (0, false) if absent or if
// the stat is string-typed.
func (o ObjectStatusData) Int(s Stat) (int32, bool) {
	d, ok := o.Stats[s]
	if !ok || s.IsStringStat() {
		return 0, false
	}
	return d.Value, true
}

// Str finds a string stat's value, returning ("", false) if absent or if
// the stat is not string-typed.
func (o ObjectStatusData) Str(s Stat) (string, bool) {
	d, ok := o.Stats[s]
	if !ok || !s.IsStringStat() {
		return "", false
	}
	return d.StrValue, true
}

// ObjectData is an entity's static type plus its current status snapshot,
// as reported by a NewTick's new-object list.
type ObjectData struct {
	ObjectType uint16
	Status     ObjectStatusData
}

// SlotObjectData identifies an item occupying an inventory/trade slot.
type SlotObjectData struct {
	ObjectID   int32
	SlotID     uint8
	ObjectType int32
}

// TradeItem describes one item's state within an active trade offer.
type TradeItem struct {
	Item       int32
	SlotType   int32
	Tradeable  bool
	Included   bool
}

// MoveRecord is one waypoint in a Move packet's position-history trail,
// used by the server to validate a client's claimed movement path.
type MoveRecord struct {
	Time int32
	X, Y float32
}

// PositionRecords is the Move packet's wrapper around a MoveRecord list,
// named separately because the wire format nests a record count ahead of
// the MoveRecord slice.
type PositionRecords struct {
	Time int32
}
