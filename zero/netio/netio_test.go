package netio

import (
	"io"
	"log/slog"
	"net"
	"testing"
	"time"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pipePair() (*framedConn, *framedConn) {
	a, b := net.Pipe()
	return newFramedConn(a, discardLog()), newFramedConn(b, discardLog())
}

func TestSendFrameRoundTrip(t *testing.T) {
	a, b := pipePair()
	defer a.Close()
	defer b.Close()

	want := []byte("hello frame")
	errCh := make(chan error, 1)
	go func() { errCh <- a.SendFrame(want) }()

	select {
	case got := <-b.Frames():
		if string(got) != string(want) {
			t.Fatalf("expected %q, got %q", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for frame")
	}
	if err := <-errCh; err != nil {
		t.Fatalf("SendFrame: %v", err)
	}
}

func TestMultipleFramesPreserveOrder(t *testing.T) {
	a, b := pipePair()
	defer a.Close()
	defer b.Close()

	msgs := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	go func() {
		for _, m := range msgs {
			_ = a.SendFrame(m)
		}
	}()

	for _, want := range msgs {
		select {
		case got := <-b.Frames():
			if string(got) != string(want) {
				t.Fatalf("expected %q, got %q", want, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for frame %q", want)
		}
	}
}

func TestCloseStopsReadLoop(t *testing.T) {
	a, b := pipePair()
	a.Close()
	b.Close()

	select {
	case _, ok := <-b.Frames():
		if ok {
			t.Fatalf("expected the frame channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for frame channel to close")
	}
}

func TestSendFrameRejectsOversizedPayload(t *testing.T) {
	a, b := pipePair()
	defer a.Close()
	defer b.Close()

	if err := a.SendFrame(make([]byte, maxFrameSize+1)); err == nil {
		t.Fatalf("expected an error for an oversized frame")
	}
}
