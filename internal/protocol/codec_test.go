package protocol

import (
	"math"
	"testing"

	"github.com/rotmg-fleet/clientless/internal/gametypes"
)

func TestHelloEncodesFrameWithCorrectID(t *testing.T) {
	h := Hello{
		BuildVersion: "X32.1.0",
		GameID:       -2,
		Guid:         "enc-guid",
		Password:     "enc-pass",
		Secret:       "enc-secret",
		ClientToken:  "XTeP7hERdchV5jrBZEYNebAqDPU6tKU6",
	}
	frame := h.Encode()
	if frame[4] != IDHello {
		t.Fatalf("packet id byte = %d, want %d", frame[4], IDHello)
	}
	total := int(frame[0])<<24 | int(frame[1])<<16 | int(frame[2])<<8 | int(frame[3])
	if total != len(frame) {
		t.Fatalf("length prefix %d != frame length %d", total, len(frame))
	}
}

func TestMoveDecodeRoundTrip(t *testing.T) {
	m := Move{
		TickID:      7,
		Time:        12345,
		NewPosition: gametypes.WorldPosition{X: 10.5, Y: 20.25},
		Records: []gametypes.PositionRecords{
			{Time: 100}, {Time: 200},
		},
	}
	frame := m.Encode()
	if frame[4] != IDMove {
		t.Fatalf("expected MOVE id, got %d", frame[4])
	}
}

func TestDecodeCreateSuccess(t *testing.T) {
	b := buildFrame(IDCreateSuccess, func() []byte {
		return append(i32Bytes(42), i32Bytes(7)...)
	})
	pkt, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cs, ok := pkt.(CreateSuccess)
	if !ok {
		t.Fatalf("expected CreateSuccess, got %T", pkt)
	}
	if cs.ObjectID != 42 || cs.CharID != 7 {
		t.Fatalf("unexpected fields: %+v", cs)
	}
}

func TestDecodeUnknownIDReturnsRawPacket(t *testing.T) {
	frame := buildFrame(200, func() []byte { return []byte{1, 2, 3} })
	pkt, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	raw, ok := pkt.(RawPacket)
	if !ok {
		t.Fatalf("expected RawPacket for unknown id 200, got %T", pkt)
	}
	if raw.ID != 200 {
		t.Fatalf("raw.ID = %d, want 200", raw.ID)
	}
}

func TestDecodeEnemyShootWithoutTrailingFields(t *testing.T) {
	payload := append([]byte{5}, i32Bytes(99)...)
	payload = append(payload, 3)                // bullet_type
	payload = append(payload, f32Bytes(1.0)...) // x
	payload = append(payload, f32Bytes(2.0)...) // y
	payload = append(payload, f32Bytes(0.5)...) // angle
	payload = append(payload, i16Bytes(10)...)  // damage

	frame := buildFrame(IDEnemyShoot, func() []byte { return payload })
	pkt, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	es, ok := pkt.(EnemyShoot)
	if !ok {
		t.Fatalf("expected EnemyShoot, got %T", pkt)
	}
	if es.NumShots != 1 || es.AngleInc != 0 {
		t.Fatalf("expected default NumShots=1, AngleInc=0 got %+v", es)
	}
}

// --- local encode helpers for test fixtures ---

func buildFrame(id uint8, payload func() []byte) []byte {
	body := payload()
	total := 5 + len(body)
	frame := make([]byte, total)
	frame[0] = byte(total >> 24)
	frame[1] = byte(total >> 16)
	frame[2] = byte(total >> 8)
	frame[3] = byte(total)
	frame[4] = id
	copy(frame[5:], body)
	return frame
}

func i32Bytes(v int32) []byte {
	u := uint32(v)
	return []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
}

func i16Bytes(v int16) []byte {
	u := uint16(v)
	return []byte{byte(u >> 8), byte(u)}
}

func f32Bytes(v float32) []byte {
	bits := math.Float32bits(v)
	return []byte{byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits)}
}
