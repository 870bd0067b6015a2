package server

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/cookpit/cookpit/common"
)

// Frames are a 4-byte little-endian length prefix followed by a JSON payload.
// Both directions of a connection share the framing; the length guard bounds
// what a single frame may carry.

func intToBytes(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func bytesToInt(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func read(mu *sync.Mutex, conn net.Conn) ([]byte, error) {
	mu.Lock()
	defer mu.Unlock()
	head := make([]byte, 4)
	if _, err := io.ReadFull(conn, head); err != nil {
		return nil, err
	}
	size := bytesToInt(head)
	if size > common.MaxMessageSize {
		return nil, fmt.Errorf("frame of %d bytes exceeds limit of %d", size, common.MaxMessageSize)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func write(mu *sync.Mutex, conn net.Conn, b []byte) error {
	mu.Lock()
	defer mu.Unlock()
	if len(b) > common.MaxMessageSize {
		return fmt.Errorf("frame of %d bytes exceeds limit of %d", len(b), common.MaxMessageSize)
	}
	if _, err := conn.Write(intToBytes(uint32(len(b)))); err != nil {
		return err
	}
	if _, err := conn.Write(b); err != nil {
		return err
	}
	return nil
}
