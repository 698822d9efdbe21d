// Package netio implements A7: the thin reliable-datagram transport
// collaborator sitting behind the core's external interface. It reuses
// go-raknet purely as a generic reliable-UDP substrate (the teacher uses the
// same Dialer for its own query listener in server/query_protocol.go) with
// a length-prefixed framing layer of its own on top. It does not know
// anything about the proprietary game's wire format; that assembly belongs
// to the external network collaborator named in spec §6.
package netio

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/sandertv/go-raknet"
)

const maxFrameSize = 16 * 1024 * 1024

// Conn is a single reliable-datagram connection carrying length-prefixed
// frames in both directions.
type Conn interface {
	// SendFrame writes one frame, prefixed with its length.
	SendFrame(payload []byte) error
	// Frames yields inbound frames in arrival order. It is closed once the
	// connection's read loop exits, whether from Close or a network error.
	Frames() <-chan []byte
	Close() error
}

// Transport dials a remote address and returns a framed Conn over it.
type Transport interface {
	Dial(ctx context.Context, addr string) (Conn, error)
}

// RakNetTransport dials with go-raknet's reliable-UDP Dialer.
type RakNetTransport struct {
	Log *slog.Logger
}

// NewRakNetTransport returns a Transport that logs dial errors through log
// (or slog.Default() if nil).
func NewRakNetTransport(log *slog.Logger) *RakNetTransport {
	if log == nil {
		log = slog.Default()
	}
	return &RakNetTransport{Log: log}
}

// Dial opens a RakNet connection to addr and wraps it in length-prefix
// framing.
func (t *RakNetTransport) Dial(ctx context.Context, addr string) (Conn, error) {
	dialer := raknet.Dialer{ErrorLog: t.Log.With("net", "raknet")}
	nc, err := dialer.DialContext(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("netio: dial %s: %w", addr, err)
	}
	return newFramedConn(nc, t.Log), nil
}

// framedConn frames an arbitrary net.Conn with a 4-byte big-endian length
// prefix per message, since go-raknet only guarantees ordered reliable
// byte delivery, not message boundaries.
type framedConn struct {
	nc     net.Conn
	log    *slog.Logger
	frames chan []byte

	closeOnce sync.Once
}

func newFramedConn(nc net.Conn, log *slog.Logger) *framedConn {
	c := &framedConn{nc: nc, log: log, frames: make(chan []byte, 64)}
	go c.readLoop()
	return c
}

func (c *framedConn) readLoop() {
	defer close(c.frames)
	var lenBuf [4]byte
	for {
		if _, err := io.ReadFull(c.nc, lenBuf[:]); err != nil {
			if err != io.EOF {
				c.log.Warn("netio: frame length read failed", "err", err)
			}
			return
		}
		n := binary.BigEndian.Uint32(lenBuf[:])
		if n > maxFrameSize {
			c.log.Warn("netio: oversized frame, closing connection", "size", n)
			return
		}
		payload := make([]byte, n)
		if _, err := io.ReadFull(c.nc, payload); err != nil {
			c.log.Warn("netio: frame body read failed", "err", err)
			return
		}
		c.frames <- payload
	}
}

// SendFrame writes payload prefixed with its 4-byte big-endian length.
func (c *framedConn) SendFrame(payload []byte) error {
	if len(payload) > maxFrameSize {
		return fmt.Errorf("netio: frame of %d bytes exceeds max %d", len(payload), maxFrameSize)
	}
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := c.nc.Write(header[:]); err != nil {
		return fmt.Errorf("netio: write frame header: %w", err)
	}
	if _, err := c.nc.Write(payload); err != nil {
		return fmt.Errorf("netio: write frame body: %w", err)
	}
	return nil
}

func (c *framedConn) Frames() <-chan []byte { return c.frames }

func (c *framedConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.nc.Close()
	})
	return err
}
