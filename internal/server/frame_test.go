package server

import (
	"net"
	"sync"
	"testing"

	"github.com/cookpit/cookpit/common"
)

func TestIntBytesRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 255, 4096, common.MaxMessageSize} {
		if got := bytesToInt(intToBytes(v)); got != v {
			t.Fatalf("round trip of %d gave %d", v, got)
		}
	}
}

func TestFrameRoundTrip(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	var rmu, wmu sync.Mutex
	payload := []byte(`{"method":"get-cookies"}`)

	errc := make(chan error, 1)
	go func() {
		errc <- write(&wmu, client, payload)
	}()

	got, err := read(&rmu, srv)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("expected %q, got %q", payload, got)
	}
	if err := <-errc; err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestFrameReadRejectsOversize(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	go func() {
		_, _ = client.Write(intToBytes(common.MaxMessageSize + 1))
	}()

	var mu sync.Mutex
	if _, err := read(&mu, srv); err == nil {
		t.Fatalf("expected an error for an oversized frame header")
	}
}

func TestFrameWriteRejectsOversize(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	var mu sync.Mutex
	if err := write(&mu, client, make([]byte, common.MaxMessageSize+1)); err == nil {
		t.Fatalf("expected an error for an oversized payload")
	}
}
