package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
)

func pipePair(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()
	a, b := net.Pipe()
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})
	return a, b
}

func TestWorkerAssemblesCompleteFrame(t *testing.T) {
	client, server := pipePair(t)
	w := NewWorker(client, zap.NewNop(), 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	payload := []byte{9, 9, 9}
	frame := make([]byte, 5+len(payload))
	total := len(frame)
	frame[0] = byte(total >> 24)
	frame[1] = byte(total >> 16)
	frame[2] = byte(total >> 8)
	frame[3] = byte(total)
	frame[4] = 42
	copy(frame[5:], payload)

	go func() { _, _ = server.Write(frame) }()

	select {
	case got := <-w.Inbound:
		if len(got) != len(frame) {
			t.Fatalf("got frame len %d, want %d", len(got), len(frame))
		}
		if got[4] != 42 {
			t.Fatalf("got id %d, want 42", got[4])
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for assembled frame")
	}

	cancel()
	<-runErr
}

func TestWorkerReturnsErrKilledOnKillByte(t *testing.T) {
	client, server := pipePair(t)
	w := NewWorker(client, zap.NewNop(), 4)

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(context.Background()) }()

	go func() {
		_, _ = server.Write([]byte{0xFF, 0, 0, 0, 0})
	}()

	select {
	case err := <-runErr:
		if err != ErrKilled {
			t.Fatalf("expected ErrKilled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for worker to exit")
	}
}

func TestWorkerDrainsOutboundToSocket(t *testing.T) {
	client, server := pipePair(t)
	w := NewWorker(client, zap.NewNop(), 4)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	frame := []byte{0, 0, 0, 6, 7, 1, 2}
	if err := w.Send(ctx, frame, time.Second); err != nil {
		t.Fatalf("Send: %v", err)
	}

	readBuf := make([]byte, len(frame))
	done := make(chan struct{})
	go func() {
		_, _ = server.Read(readBuf)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for write to reach the peer")
	}

	cancel()
	<-runErr
}
