package protocol

import (
	"github.com/rotmg-fleet/clientless/internal/buffer"
	"github.com/rotmg-fleet/clientless/internal/gametypes"
)

func writeWorldPosition(b *buffer.Buffer, p gametypes.WorldPosition) {
	b.WriteF32(p.X)
	b.WriteF32(p.Y)
}

func readWorldPosition(b *buffer.Buffer) (gametypes.WorldPosition, error) {
	x, err := b.ReadF32()
	if err != nil {
		return gametypes.WorldPosition{}, err
	}
	y, err := b.ReadF32()
	if err != nil {
		return gametypes.WorldPosition{}, err
	}
	return gametypes.WorldPosition{X: x, Y: y}, nil
}

func writePositionRecord(b *buffer.Buffer, r gametypes.PositionRecords) {
	b.WriteI32(r.Time)
}

func readGroundTile(b *buffer.Buffer) (gametypes.GroundTile, error) {
	x, err := b.ReadI16()
	if err != nil {
		return gametypes.GroundTile{}, err
	}
	y, err := b.ReadI16()
	if err != nil {
		return gametypes.GroundTile{}, err
	}
	tt, err := b.ReadU16()
	if err != nil {
		return gametypes.GroundTile{}, err
	}
	return gametypes.GroundTile{X: x, Y: y, TileType: tt}, nil
}

func readStatData(b *buffer.Buffer) (gametypes.StatData, error) {
	raw, err := b.ReadU8()
	if err != nil {
		return gametypes.StatData{}, err
	}
	stat := gametypes.StatFromByte(raw)
	d := gametypes.StatData{Type: stat}
	if stat.IsStringStat() {
		s, err := b.ReadString()
		if err != nil {
			return gametypes.StatData{}, err
		}
		d.StrValue = s
		return d, nil
	}
	v, err := b.ReadI32()
	if err != nil {
		return gametypes.StatData{}, err
	}
	d.Value = v
	return d, nil
}

func readObjectStatusData(b *buffer.Buffer) (gametypes.ObjectStatusData, error) {
	objID, err := b.ReadI32()
	if err != nil {
		return gametypes.ObjectStatusData{}, err
	}
	pos, err := readWorldPosition(b)
	if err != nil {
		return gametypes.ObjectStatusData{}, err
	}
	n, err := b.ReadU16()
	if err != nil {
		return gametypes.ObjectStatusData{}, err
	}
	status := gametypes.NewObjectStatusData()
	status.ObjectID = objID
	status.Position = pos
	for i := uint16(0); i < n; i++ {
		s, err := readStatData(b)
		if err != nil {
			return gametypes.ObjectStatusData{}, err
		}
		status.Stats[s.Type] = s
	}
	return status, nil
}

func readObjectData(b *buffer.Buffer) (gametypes.ObjectData, error) {
	objType, err := b.ReadU16()
	if err != nil {
		return gametypes.ObjectData{}, err
	}
	status, err := readObjectStatusData(b)
	if err != nil {
		return gametypes.ObjectData{}, err
	}
	return gametypes.ObjectData{ObjectType: objType, Status: status}, nil
}
