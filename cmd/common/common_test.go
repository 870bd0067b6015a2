package common

import (
	"io"
	"testing"

	"github.com/vbauerster/mpb/v8"
)

func TestBeaut(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"ab", 4, " ab "},
		{"ab", 5, " ab  "},
		{"abcd", 4, "abcd"},
	}
	for _, tc := range tests {
		if got := Beaut(tc.s, tc.n); got != tc.want {
			t.Errorf("Beaut(%q, %d) = %q, want %q", tc.s, tc.n, got, tc.want)
		}
	}
}

func TestInitBarCompletes(t *testing.T) {
	p := mpb.New(mpb.WithOutput(io.Discard), mpb.WithWidth(64))
	bar := InitBar(p, "Clearing", 3)
	for i := 0; i < 3; i++ {
		bar.Increment()
	}
	bar.SetTotal(3, true)
	p.Wait()
	if !bar.Completed() {
		t.Fatal("bar must complete once every removal is counted")
	}
}
