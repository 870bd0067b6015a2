package logger

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestStandardLoggerPrefixes(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewStandardLogger(log.New(buf, "", 0))

	l.Info("started on %s", "socket")
	l.Warning("session %d detached", 2)
	l.Error("accept failed: %v", "closed")

	out := buf.String()
	for _, want := range []string{
		"[INFO] started on socket",
		"[WARNING] session 2 detached",
		"[ERROR] accept failed: closed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
	if err := l.Close(); err != nil {
		t.Errorf("expected nil close error, got: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info("test")
	l.Warning("test")
	l.Error("test")
	if err := l.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}

func TestMockLoggerRecordsCalls(t *testing.T) {
	l := NewMockLogger()
	l.Info("info %d", 1)
	l.Warning("warn %s", "x")
	l.Error("err %v", "fail")

	if len(l.InfoCalls) != 1 || l.InfoCalls[0] != "info 1" {
		t.Errorf("unexpected info calls: %v", l.InfoCalls)
	}
	if len(l.WarningCalls) != 1 || l.WarningCalls[0] != "warn x" {
		t.Errorf("unexpected warning calls: %v", l.WarningCalls)
	}
	if len(l.ErrorCalls) != 1 || l.ErrorCalls[0] != "err fail" {
		t.Errorf("unexpected error calls: %v", l.ErrorCalls)
	}
	if l.CloseCalled {
		t.Error("CloseCalled should be false before Close()")
	}
	if err := l.Close(); err != nil || !l.CloseCalled {
		t.Errorf("expected recorded close, got err=%v called=%v", err, l.CloseCalled)
	}
}

func TestMultiLoggerBroadcastsToAll(t *testing.T) {
	mock1 := NewMockLogger()
	mock2 := NewMockLogger()
	multi := NewMultiLogger(mock1, mock2)

	multi.Info("info msg")
	multi.Error("error msg")

	for i, m := range []*MockLogger{mock1, mock2} {
		if len(m.InfoCalls) != 1 || m.InfoCalls[0] != "info msg" {
			t.Errorf("backend %d missed info message", i)
		}
		if len(m.ErrorCalls) != 1 || m.ErrorCalls[0] != "error msg" {
			t.Errorf("backend %d missed error message", i)
		}
	}
}

type failingCloseLogger struct {
	NopLogger
	closeErr error
}

func (f *failingCloseLogger) Close() error {
	return f.closeErr
}

func TestMultiLoggerCloseReturnsFirstError(t *testing.T) {
	err1 := errors.New("backend one failed")
	err2 := errors.New("backend two failed")
	mock := NewMockLogger()

	multi := NewMultiLogger(&failingCloseLogger{closeErr: err1}, mock, &failingCloseLogger{closeErr: err2})

	if err := multi.Close(); !errors.Is(err, err1) {
		t.Errorf("expected first error %v, got %v", err1, err)
	}
	if !mock.CloseCalled {
		t.Error("all backends must be closed even after a failure")
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	multi := NewMultiLogger()
	multi.Info("test")
	if err := multi.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}
