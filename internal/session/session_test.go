package session

import (
	"context"
	"io"
	"math"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rotmg-fleet/clientless/internal/config"
	"github.com/rotmg-fleet/clientless/internal/gametypes"
	"github.com/rotmg-fleet/clientless/internal/protocol"
	"github.com/rotmg-fleet/clientless/internal/rc4"
	"github.com/rotmg-fleet/clientless/internal/transport"
)

func TestReconnectConvergenceAfterFourFailures(t *testing.T) {
	r := newReconnectBase("10.0.0.1")
	r.AllowedAttempts = 3

	for i := 0; i < 4; i++ {
		if r.Exhausted() {
			t.Fatalf("reported exhausted after only %d attempts", i)
		}
		r.Increment(true)
	}
	if r.Attempts != 4 {
		t.Fatalf("Attempts = %d, want 4", r.Attempts)
	}
	if !r.Exhausted() {
		t.Fatal("expected exhausted after 4th increment with allowed=3")
	}
}

func TestReconnectResetRestoresDefaults(t *testing.T) {
	r := newReconnectBase("10.0.0.1")
	r.Increment(true)
	r.Increment(true)
	r.Blocking = true

	r.Reset()
	if r.Attempts != 0 || r.WaitMultiplier != 1 || r.Blocking {
		t.Fatalf("Reset left stale state: %+v", r)
	}
}

func TestMovementIntegrationOneTickStep(t *testing.T) {
	s := &Session{
		movement: newMovement(),
		stats:    newStatBase(),
	}
	s.movement.Current = gametypes.WorldPosition{X: 127.5, Y: 183.0}
	s.movement.Target = gametypes.WorldPosition{X: 127.5, Y: 179.0}
	s.movement.MapWidth = 1000
	s.movement.MapHeight = 1000
	s.movement.MoveMultiplier = 1.0
	s.time.CurrentTickTime = 200
	s.time.LastTickTime = 0

	s.stats.Set(gametypes.StatData{Type: gametypes.Speed, Value: int32(math.Float32bits(75))})

	s.moveTo(s.movement.Target)

	wantY := 183.0 - MaxMoveSpeed*200
	if math.Abs(float64(s.movement.Current.Y-float32(wantY))) > 1e-4 {
		t.Fatalf("Current.Y = %v, want %v", s.movement.Current.Y, wantY)
	}
	if s.movement.Current.X != 127.5 {
		t.Fatalf("Current.X drifted: %v", s.movement.Current.X)
	}
}

func TestMovementSlowedClampsToMinSpeed(t *testing.T) {
	s := &Session{movement: newMovement(), stats: newStatBase()}
	s.stats.Set(gametypes.StatData{Type: gametypes.Effects, Value: 1 << (uint8(gametypes.Slowed) - 1)})
	s.movement.MoveMultiplier = 1.0

	if got := s.moveSpeed(); got != MinMoveSpeed {
		t.Fatalf("moveSpeed() = %v, want MinMoveSpeed under SLOWED", got)
	}
}

// TestOneMovePerTick drives a real Session through onNewTick over a piped
// transport.Worker and asserts exactly one Move frame reaches the wire per
// NewTick, matching the tick-cadence testable property.
func TestOneMovePerTick(t *testing.T) {
	client, server := net.Pipe()
	t.Cleanup(func() { client.Close(); server.Close() })

	log := zap.NewNop()
	account := config.Account{Email: "test@example.com", Password: "hunter2", ServerIP: "127.0.0.1"}
	settings := &config.Settings{GameVersion: "X.X.X", ThreadDelayMs: 100}
	s := New(account, settings, "", log)
	s.phase = InWorld
	s.currentMap = "TestRealm"
	s.objectID = 7
	s.worker = transport.NewWorker(client, log, 8)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = s.worker.Run(ctx) }()

	readCh := make(chan []byte, 4)
	go func() {
		peerCipher := rc4.New(rc4.OutgoingKey[:])
		for {
			id, payload, err := readFrame(server, peerCipher)
			if err != nil {
				return
			}
			if id == protocol.IDMove {
				readCh <- payload
			}
		}
	}()

	s.onNewTick(protocol.NewTick{TickID: 1, TickTime: 100})

	select {
	case <-readCh:
	case <-time.After(2 * time.Second):
		t.Fatal("expected one Move frame, got none")
	}
	select {
	case <-readCh:
		t.Fatal("expected exactly one Move frame per tick, got a second")
	case <-time.After(100 * time.Millisecond):
	}
}

// readFrame reads one RC4-ciphered frame off conn and returns its packet id
// and decrypted payload.
func readFrame(conn net.Conn, cipher *rc4.Cipher) (uint8, []byte, error) {
	header := make([]byte, 5)
	if _, err := io.ReadFull(conn, header); err != nil {
		return 0, nil, err
	}
	total := int(header[0])<<24 | int(header[1])<<16 | int(header[2])<<8 | int(header[3])
	frame := make([]byte, total)
	copy(frame, header)
	if total > 5 {
		if _, err := io.ReadFull(conn, frame[5:]); err != nil {
			return 0, nil, err
		}
	}
	payload := frame[5:]
	cipher.XORKeyStream(payload, payload)
	return frame[4], payload, nil
}

func TestOutOfBoundsReplicatesOriginalBug(t *testing.T) {
	m := Movement{MapWidth: 100, MapHeight: 9999}
	// y exceeds map_width (100) though well within map_height: the original
	// bug compares both axes to map_width, not map_height.
	pos := gametypes.WorldPosition{X: 50, Y: 500}
	if !m.OutOfBounds(pos) {
		t.Fatal("expected OutOfBounds bug to flag y > map_width as out of bounds")
	}
}
