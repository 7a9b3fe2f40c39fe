package protocol

import "github.com/rotmg-fleet/clientless/internal/buffer"

// Decode reads a complete frame (including its 5-byte header) and returns
// the typed Inbound packet for its id. Any id without a typed decoder
// returns a RawPacket carrying the untouched payload — unknown or
// not-yet-implemented ids are a logging concern for the caller, never a
// decode error.
func Decode(frame []byte) (Inbound, error) {
	if len(frame) < buffer.HeaderSize {
		return nil, buffer.ErrShortBuffer
	}
	id := frame[4]
	b := buffer.NewFromBytes(frame)
	b.Advance(buffer.HeaderSize)

	switch id {
	case IDFailure:
		return decodeFailure(b)
	case IDMapInfo:
		return decodeMapInfo(b)
	case IDCreateSuccess:
		return decodeCreateSuccess(b)
	case IDUpdate:
		return decodeUpdate(b)
	case IDNewTick:
		return decodeNewTick(b)
	case IDPing:
		return decodePing(b)
	case IDReconnect:
		return decodeReconnect(b)
	case IDAoE:
		return decodeAoE(b)
	case IDGoto:
		return decodeGoto(b)
	case IDAllyShoot:
		return decodeAllyShoot(b)
	case IDText:
		return decodeText(b)
	case IDServerPlayerShoot:
		return decodeServerPlayerShoot(b)
	case IDNotification:
		return decodeNotification(b)
	case IDGlobalNotification:
		return decodeGlobalNotification(b)
	case IDEnemyShoot:
		return decodeEnemyShoot(b)
	case IDTradeRequested:
		return decodeTradeRequested(b)
	case IDDeath:
		return decodeDeath(b)
	default:
		return RawPacket{ID: id, Payload: frame[buffer.HeaderSize:]}, nil
	}
}
