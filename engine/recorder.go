package engine

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/structureguard/structguard/model"
)

// frame is one tick written to a recording.
type frame struct {
	Snapshot model.Snapshot  `json:"snapshot"`
	Analysis *model.Analysis `json:"analysis,omitempty"`
}

// Recorder wraps an engine and appends every tick to a JSON-lines stream.
type Recorder struct {
	inner  *Engine
	writer *json.Encoder
	mu     sync.Mutex
}

// NewRecorder creates a recorder that writes frames to w.
func NewRecorder(eng *Engine, w io.Writer) *Recorder {
	return &Recorder{
		inner:  eng,
		writer: json.NewEncoder(w),
	}
}

// Base returns the underlying engine.
func (r *Recorder) Base() *Engine {
	return r.inner
}

// Tick advances the wrapped engine and records the resulting frame.
func (r *Recorder) Tick() (*model.Snapshot, *model.Analysis) {
	snap, an := r.inner.Tick()
	if snap != nil {
		r.mu.Lock()
		// An encode error loses the frame but never fails the tick.
		_ = r.writer.Encode(frame{Snapshot: *snap, Analysis: an})
		r.mu.Unlock()
	}
	return snap, an
}

// Player replays recorded frames in tick order.
type Player struct {
	mu     sync.Mutex
	frames []frame
	idx    int
}

// NewPlayer loads a recording (JSON lines). Malformed lines are skipped so a
// truncated recording still replays up to the damage.
func NewPlayer(r io.Reader) (*Player, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var frames []frame
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var f frame
		if err := json.Unmarshal(line, &f); err != nil {
			continue
		}
		frames = append(frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Player{frames: frames}, nil
}

// Base returns nil: a replay has no live engine to act on.
func (p *Player) Base() *Engine {
	return nil
}

// Tick returns the next recorded frame, or nils at the end.
func (p *Player) Tick() (*model.Snapshot, *model.Analysis) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.idx >= len(p.frames) {
		return nil, nil
	}
	f := p.frames[p.idx]
	p.idx++
	return &f.Snapshot, f.Analysis
}

// Seek jumps to frame i (clamped) and returns it without advancing.
func (p *Player) Seek(i int) (*model.Snapshot, *model.Analysis) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.frames) == 0 {
		return nil, nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.frames) {
		i = len(p.frames) - 1
	}
	p.idx = i
	f := p.frames[i]
	return &f.Snapshot, f.Analysis
}

// Index returns the current frame position.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idx
}

// Len returns the number of recorded frames.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}
