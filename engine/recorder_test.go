package engine

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecorderRoundTrip(t *testing.T) {
	e, err := New(DefaultParams(), 31)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	rec := NewRecorder(e, &buf)
	want := make([]uint64, 0, 3)
	for i := 0; i < 3; i++ {
		snap, an := rec.Tick()
		if snap == nil || an == nil {
			t.Fatalf("tick %d: recorder returned nils", i+1)
		}
		want = append(want, snap.Tick)
	}
	if rec.Base() != e {
		t.Error("Base did not return the wrapped engine")
	}

	p, err := NewPlayer(&buf)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("replayed %d frames, want 3", p.Len())
	}
	if p.Base() != nil {
		t.Error("player Base should be nil")
	}
	for i, tick := range want {
		snap, an := p.Tick()
		if snap == nil {
			t.Fatalf("frame %d: nil snapshot", i)
		}
		if snap.Tick != tick {
			t.Errorf("frame %d: tick %d, want %d", i, snap.Tick, tick)
		}
		if an == nil {
			t.Errorf("frame %d: analysis not preserved", i)
		}
	}

	// Past the end the player yields nils, not a wraparound.
	if snap, _ := p.Tick(); snap != nil {
		t.Error("Tick past end returned a frame")
	}
}

func TestPlayerSkipsMalformedLines(t *testing.T) {
	e, err := New(DefaultParams(), 33)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	rec := NewRecorder(e, &buf)
	rec.Tick()
	rec.Tick()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	damaged := lines[0] + "\n{not json\n" + lines[1] + "\n"

	p, err := NewPlayer(strings.NewReader(damaged))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if p.Len() < 1 {
		t.Fatalf("replayed %d frames from damaged recording, want at least 1", p.Len())
	}
}

func TestPlayerSeekClamps(t *testing.T) {
	e, err := New(DefaultParams(), 35)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	rec := NewRecorder(e, &buf)
	for i := 0; i < 4; i++ {
		rec.Tick()
	}
	p, err := NewPlayer(&buf)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	tests := []struct {
		name string
		seek int
		want uint64
	}{
		{"in range", 2, 3},
		{"below zero", -5, 1},
		{"past end", 99, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, _ := p.Seek(tt.seek)
			if snap == nil {
				t.Fatal("Seek returned nil snapshot")
			}
			if snap.Tick != tt.want {
				t.Errorf("Seek(%d) landed on tick %d, want %d", tt.seek, snap.Tick, tt.want)
			}
		})
	}
}

func TestPlayerEmptyRecording(t *testing.T) {
	p, err := NewPlayer(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if p.Len() != 0 {
		t.Fatalf("Len = %d, want 0", p.Len())
	}
	if snap, an := p.Seek(0); snap != nil || an != nil {
		t.Error("Seek on empty recording returned a frame")
	}
	if snap, an := p.Tick(); snap != nil || an != nil {
		t.Error("Tick on empty recording returned a frame")
	}
}
