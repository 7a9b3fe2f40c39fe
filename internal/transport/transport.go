// Package transport owns the raw socket for one session: dialing (direct
// or through a SOCKS5 proxy), frame-boundary reassembly on the read side,
// and a drain loop on the write side. It has no knowledge of packet ids or
// session state — that lives in internal/session.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/proxy"

	"github.com/rotmg-fleet/clientless/internal/buffer"
)

// ErrKilled is returned when the server sends the 0xFF kill byte or a
// zero-length frame, both of which signal an intentional disconnect rather
// than a network error.
var ErrKilled = errors.New("transport: connection killed by server")

// Dial opens a TCP connection to addr, optionally routed through a SOCKS5
// proxy, and enables TCP_NODELAY on the resulting socket — matching the
// original client's unconditional set_nodelay(true) on both connection
// paths.
func Dial(ctx context.Context, addr, socksProxy string) (net.Conn, error) {
	if socksProxy == "" {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
		}
		if tc, ok := conn.(*net.TCPConn); ok {
			_ = tc.SetNoDelay(true)
		}
		return conn, nil
	}

	dialer, err := proxy.SOCKS5("tcp", socksProxy, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("transport: build socks5 dialer: %w", err)
	}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: socks5 dial %s via %s: %w", addr, socksProxy, err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	return conn, nil
}

// Worker is the transport half of a session: one goroutine drains Outbound
// onto the socket, another assembles inbound bytes into complete frames
// and delivers them on Inbound. Both channels carry fully-framed,
// still-RC4-ciphered payloads — encryption is the session's job.
type Worker struct {
	conn   net.Conn
	log    *zap.Logger
	Inbound  chan []byte
	Outbound chan []byte
	Done     chan struct{}
	errOnce  error
}

// NewWorker wraps an established connection. queueDepth bounds both
// channels so a stalled session can't let the read loop allocate without
// limit.
func NewWorker(conn net.Conn, log *zap.Logger, queueDepth int) *Worker {
	if queueDepth <= 0 {
		queueDepth = 32
	}
	return &Worker{
		conn:     conn,
		log:      log,
		Inbound:  make(chan []byte, queueDepth),
		Outbound: make(chan []byte, queueDepth),
		Done:     make(chan struct{}),
	}
}

// Run blocks, pumping both directions until ctx is canceled or the
// connection dies. It closes Inbound and Done before returning so the
// owning session can detect the end of the stream.
func (w *Worker) Run(ctx context.Context) error {
	writeDone := make(chan struct{})
	go w.writeLoop(ctx, writeDone)

	err := w.readLoop(ctx)

	_ = w.conn.Close()
	<-writeDone
	close(w.Inbound)
	close(w.Done)
	return err
}

func (w *Worker) writeLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-w.Outbound:
			if !ok {
				return
			}
			if _, err := w.conn.Write(frame); err != nil {
				if isBenignWriteError(err) {
					continue
				}
				w.log.Warn("transport write error", zap.Error(err))
				return
			}
		}
	}
}

func (w *Worker) readLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		header := buffer.NewWithHeader()
		if err := w.readFull(header.Data); err != nil {
			return err
		}
		if header.Data[0] == 0xFF || (header.Data[3] == 0 && header.Data[4] == 0) {
			return ErrKilled
		}
		total, err := header.Resize()
		if err != nil {
			return err
		}
		if total > buffer.HeaderSize {
			if err := w.readFull(header.Data[buffer.HeaderSize:]); err != nil {
				return err
			}
		}

		select {
		case w.Inbound <- header.Data:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) readFull(dst []byte) error {
	_, err := io.ReadFull(w.conn, dst)
	if err != nil {
		if errors.Is(err, net.ErrClosed) {
			return err
		}
		return err
	}
	return nil
}

func isBenignWriteError(err error) bool {
	// Mirrors the original client's tolerance for ConnectionReset/BrokenPipe
	// on write: the socket is already going away, no need to log noise.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}

// Timeout wraps a send on Outbound with a deadline so a dead write loop
// cannot wedge the caller forever, mirroring recv_timeout on the client
// side of the original channel pair.
func (w *Worker) Send(ctx context.Context, frame []byte, timeout time.Duration) error {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case w.Outbound <- frame:
		return nil
	case <-t.C:
		return fmt.Errorf("transport: send timed out after %s", timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
