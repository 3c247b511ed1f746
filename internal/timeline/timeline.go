// Package timeline turns a raw match timeline payload into an indexed,
// immutable structure and derives summary statistics from it: team gold/XP
// leads, objective participation and a filtered objective event log.
// Everything here is a pure function of the raw payload; nothing mutates
// state after New returns, so a Timeline is safe for concurrent readers.
package timeline

import (
	"errors"
	"sort"
	"strconv"

	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

// ErrMalformedTimeline signals a payload with no usable frames. Callers
// should treat it as "no data available" rather than a hard failure.
var ErrMalformedTimeline = errors.New("timeline: payload has no frames")

const (
	// DefaultFrameInterval is the vendor's nominal frame spacing.
	DefaultFrameInterval int64 = 60000

	// DefaultTeamSize drives the positional team split: slots 1..TeamSize
	// are the blue side, the rest red. Holds for standard 5v5 queues; it
	// is an assumption about the vendor convention, not a derived fact.
	DefaultTeamSize = 5

	// SeriesTolerance is the nearest-frame tolerance for minute-interval
	// lookups. CheckpointTolerance is the wider tolerance for single
	// checkpoint lookups (e.g. the 15 minute mark). They are intentionally
	// different constants.
	SeriesTolerance     int64 = 30000
	CheckpointTolerance int64 = 90000
)

// Timeline is an ordered-by-time index over the frames of one match.
type Timeline struct {
	frameInterval int64
	teamSize      int
	frames        []riot.TimelineFrame // ascending by timestamp, unique
	byTimestamp   map[int64]int        // timestamp -> index into frames
}

// New builds a Timeline with the default 5v5 team split.
func New(info *riot.TimelineInfo) (*Timeline, error) {
	return NewWithTeamSize(info, DefaultTeamSize)
}

// NewWithTeamSize builds a Timeline using a custom team size for the
// positional slot partition (non-standard modes).
func NewWithTeamSize(info *riot.TimelineInfo, teamSize int) (*Timeline, error) {
	if info == nil || len(info.Frames) == 0 {
		return nil, ErrMalformedTimeline
	}
	if teamSize <= 0 {
		teamSize = DefaultTeamSize
	}

	frames := make([]riot.TimelineFrame, len(info.Frames))
	copy(frames, info.Frames)
	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].Timestamp < frames[j].Timestamp
	})

	// Timestamps key frames uniquely; on duplicates the first occurrence
	// wins and later ones are dropped.
	byTimestamp := make(map[int64]int, len(frames))
	unique := frames[:0]
	for _, f := range frames {
		if _, seen := byTimestamp[f.Timestamp]; seen {
			continue
		}
		byTimestamp[f.Timestamp] = len(unique)
		unique = append(unique, f)
	}

	interval := info.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return &Timeline{
		frameInterval: interval,
		teamSize:      teamSize,
		frames:        unique,
		byTimestamp:   byTimestamp,
	}, nil
}

// FrameInterval returns the nominal spacing between frames in milliseconds.
func (t *Timeline) FrameInterval() int64 { return t.frameInterval }

// TeamSize returns the slot count per team used by the positional split.
func (t *Timeline) TeamSize() int { return t.teamSize }

// Len returns the number of indexed frames.
func (t *Timeline) Len() int { return len(t.frames) }

// Timestamps returns all frame timestamps in ascending order.
func (t *Timeline) Timestamps() []int64 {
	out := make([]int64, len(t.frames))
	for i, f := range t.frames {
		out[i] = f.Timestamp
	}
	return out
}

// FrameAt returns the frame with the exact timestamp, if present.
func (t *Timeline) FrameAt(timestampMs int64) (*riot.TimelineFrame, bool) {
	i, ok := t.byTimestamp[timestampMs]
	if !ok {
		return nil, false
	}
	return &t.frames[i], true
}

// Resolve returns the frame whose timestamp is closest to targetMs, or
// false when the closest frame is further away than toleranceMs. On an
// exact distance tie the earlier frame wins, so resolution is
// deterministic.
func (t *Timeline) Resolve(targetMs, toleranceMs int64) (*riot.TimelineFrame, bool) {
	if len(t.frames) == 0 {
		return nil, false
	}

	// Frames are sorted ascending, so binary-search the insertion point
	// and compare the two neighbours.
	i := sort.Search(len(t.frames), func(i int) bool {
		return t.frames[i].Timestamp >= targetMs
	})

	best := -1
	var bestDist int64
	for _, cand := range []int{i - 1, i} {
		if cand < 0 || cand >= len(t.frames) {
			continue
		}
		dist := t.frames[cand].Timestamp - targetMs
		if dist < 0 {
			dist = -dist
		}
		// Strict < keeps the earlier candidate on ties.
		if best == -1 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}

	if best == -1 || bestDist > toleranceMs {
		return nil, false
	}
	return &t.frames[best], true
}

// eachEvent visits every event across all frames in frame order.
func (t *Timeline) eachEvent(visit func(ev riot.TimelineEvent)) {
	for _, f := range t.frames {
		for _, ev := range f.Events {
			visit(ev)
		}
	}
}

// slotNumber parses a participantFrames key ("1".."10") into a slot.
// The embedded participantId is preferred when present since some payload
// versions omit it from the key only.
func slotNumber(key string, pf riot.ParticipantFrame) int {
	if pf.ParticipantID > 0 {
		return pf.ParticipantID
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0
	}
	return n
}
