package game

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ReplayFrame is one step of a recorded game: the history records emitted
// since the previous frame plus the checksum of the state they produced.
type ReplayFrame struct {
	Turn     int
	Checksum string
	Records  []HistoryRecord
}

// Replay is the recorded change log of one game, navigable for playback.
type Replay struct {
	GameID       string
	Frames       []ReplayFrame
	CurrentIndex int
	mu           sync.RWMutex
}

// replayMetadata is the header written ahead of the frames.
type replayMetadata struct {
	GameID     string
	Timestamp  time.Time
	Version    int
	FrameCount int
}

const replayVersion = 1

// NewReplay creates an empty replay for a game.
func NewReplay(gameID string) *Replay {
	return &Replay{GameID: gameID}
}

// RecordFrame appends a frame to the recording.
func (r *Replay) RecordFrame(f ReplayFrame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Frames = append(r.Frames, f)
}

// CaptureFrame snapshots the history records the game appended at or after
// from, stamps them with the current turn and checksum, and records them.
// Returns the log length to pass as from next time.
func (r *Replay) CaptureFrame(g *Game, from int) int {
	records := g.History().DrainSince(from)
	frame := ReplayFrame{
		Turn:     g.Turn,
		Checksum: g.Checksum(),
		Records:  append([]HistoryRecord(nil), records...),
	}
	r.RecordFrame(frame)
	return g.History().Len()
}

// Start resets playback to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CurrentIndex = 0
}

// Next advances playback and returns the frame, nil past the end.
func (r *Replay) Next() *ReplayFrame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex < len(r.Frames) {
		f := &r.Frames[r.CurrentIndex]
		r.CurrentIndex++
		return f
	}
	return nil
}

// Previous steps playback back and returns the frame, nil at the start.
func (r *Replay) Previous() *ReplayFrame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		return &r.Frames[r.CurrentIndex]
	}
	return nil
}

// Skip moves playback by count frames in either direction, clamped to the
// recording, and returns the frame at the new position.
func (r *Replay) Skip(count int) *ReplayFrame {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.CurrentIndex + count
	if idx >= len(r.Frames) {
		idx = len(r.Frames) - 1
	}
	if idx < 0 {
		idx = 0
	}
	r.CurrentIndex = idx
	if idx < len(r.Frames) {
		return &r.Frames[idx]
	}
	return nil
}

// Size returns the number of recorded frames.
func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Frames)
}

// FrameAt returns the frame at index, nil when out of range.
func (r *Replay) FrameAt(index int) *ReplayFrame {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index >= 0 && index < len(r.Frames) {
		return &r.Frames[index]
	}
	return nil
}

// EncodeTo writes the replay as gzipped gob: metadata first, then each
// frame. The same stream feeds both file storage and the database archive.
func (r *Replay) EncodeTo(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gz := gzip.NewWriter(w)
	enc := gob.NewEncoder(gz)

	meta := replayMetadata{
		GameID:     r.GameID,
		Timestamp:  time.Now(),
		Version:    replayVersion,
		FrameCount: len(r.Frames),
	}
	if err := enc.Encode(&meta); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	for i := range r.Frames {
		if err := enc.Encode(&r.Frames[i]); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	return gz.Close()
}

// DecodeReplay reads a replay previously written by EncodeTo.
func DecodeReplay(rd io.Reader) (*Replay, error) {
	gz, err := gzip.NewReader(rd)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer gz.Close()

	dec := gob.NewDecoder(gz)

	var meta replayMetadata
	if err := dec.Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if meta.Version != replayVersion {
		return nil, fmt.Errorf("unsupported replay version: %d", meta.Version)
	}

	replay := NewReplay(meta.GameID)
	for i := 0; i < meta.FrameCount; i++ {
		var frame ReplayFrame
		if err := dec.Decode(&frame); err != nil {
			return nil, fmt.Errorf("decode frame %d: %w", i, err)
		}
		replay.Frames = append(replay.Frames, frame)
	}
	return replay, nil
}

// SaveToFile writes the replay to <directory>/<gameID>.replay.
func (r *Replay) SaveToFile(directory string) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", r.GameID))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()
	return r.EncodeTo(file)
}

// LoadReplayFromFile reads a replay saved by SaveToFile.
func LoadReplayFromFile(directory, gameID string) (*Replay, error) {
	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", gameID))
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()
	return DecodeReplay(file)
}
