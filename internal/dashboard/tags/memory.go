package tags

import (
	"context"
	"hash/fnv"
	"math"
	"sort"
	"sync"
	"time"

	"gridboard/internal/dashboard/model"
)

const historyCapacity = 1000 // samples retained per tag

// MemoryDirectory is an in-memory Directory guarded by a RWMutex. Tags
// are registered once (typically from the seed file) and samples are
// recorded into a bounded per-tag buffer.
type MemoryDirectory struct {
	mu      sync.RWMutex
	tags    map[string]*model.Tag
	history map[string][]model.TagSample
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		tags:    make(map[string]*model.Tag),
		history: make(map[string][]model.TagSample),
	}
}

// Register adds or replaces a tag in the directory.
func (d *MemoryDirectory) Register(tag model.Tag) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if tag.Status == "" {
		tag.Status = model.TagStatusActive
	}
	d.tags[tag.ID] = &tag
}

// Record appends a sample for the tag and updates its last known value.
// The oldest sample is dropped once the buffer is full.
func (d *MemoryDirectory) Record(id string, value float64, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tag, ok := d.tags[id]
	if !ok {
		return ErrTagNotFound
	}

	buf := d.history[id]
	if len(buf) >= historyCapacity {
		buf = buf[1:]
	}
	d.history[id] = append(buf, model.TagSample{Timestamp: ts, Value: value})

	tag.LastValue = value
	t := ts
	tag.LastUpdated = &t
	return nil
}

func (d *MemoryDirectory) GetTag(_ context.Context, id string) (*model.Tag, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tag, ok := d.tags[id]
	if !ok {
		return nil, ErrTagNotFound
	}
	copied := *tag
	return &copied, nil
}

func (d *MemoryDirectory) ListTags(_ context.Context) ([]*model.Tag, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*model.Tag, 0, len(d.tags))
	for _, tag := range d.tags {
		copied := *tag
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (d *MemoryDirectory) GetTagHistory(_ context.Context, id string, timeRange time.Duration, pointCount int) (*model.TagHistory, error) {
	if pointCount <= 0 {
		pointCount = 100
	}
	if timeRange <= 0 {
		timeRange = time.Hour
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	tag, ok := d.tags[id]
	if !ok {
		return nil, ErrTagNotFound
	}

	cutoff := time.Now().Add(-timeRange)
	var window []model.TagSample
	for _, s := range d.history[id] {
		if s.Timestamp.After(cutoff) {
			window = append(window, s)
		}
	}

	if len(window) == 0 {
		// Nothing recorded in range: synthesize a deterministic series
		// and say so, rather than passing fixture data off as real.
		return &model.TagHistory{
			TagID:    id,
			Points:   synthesize(tag, timeRange, pointCount),
			Fallback: true,
		}, nil
	}

	if len(window) > pointCount {
		window = downsample(window, pointCount)
	}
	points := make([]model.TagSample, len(window))
	copy(points, window)

	return &model.TagHistory{TagID: id, Points: points, Fallback: false}, nil
}

// synthesize produces a deterministic wave within the tag's bounds so a
// fallback series is stable across calls for the same tag.
func synthesize(tag *model.Tag, timeRange time.Duration, pointCount int) []model.TagSample {
	lo, hi := 0.0, 100.0
	if tag.Min != nil {
		lo = *tag.Min
	}
	if tag.Max != nil {
		hi = *tag.Max
	}
	if hi <= lo {
		hi = lo + 1
	}

	h := fnv.New32a()
	h.Write([]byte(tag.ID))
	phase := float64(h.Sum32()%360) * math.Pi / 180

	now := time.Now()
	step := timeRange / time.Duration(pointCount)
	points := make([]model.TagSample, 0, pointCount)
	for i := 0; i < pointCount; i++ {
		frac := (math.Sin(phase+float64(i)/8) + 1) / 2
		points = append(points, model.TagSample{
			Timestamp: now.Add(-timeRange + time.Duration(i)*step),
			Value:     lo + frac*(hi-lo),
		})
	}
	return points
}

// downsample keeps a roughly even spread of count samples, always
// retaining the newest one.
func downsample(samples []model.TagSample, count int) []model.TagSample {
	if len(samples) <= count {
		return samples
	}
	if count == 1 {
		return samples[len(samples)-1:]
	}
	out := make([]model.TagSample, 0, count)
	stride := float64(len(samples)-1) / float64(count-1)
	for i := 0; i < count; i++ {
		out = append(out, samples[int(float64(i)*stride)])
	}
	out[len(out)-1] = samples[len(samples)-1]
	return out
}
