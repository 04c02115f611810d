package main

import (
	"context"

	"github.com/Garik-/smf/pkg/midi"
	"go.uber.org/zap"
)

type fileReport struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Error    string         `json:"error,omitempty"`
	Format   uint16         `json:"format"`
	Division uint16         `json:"division"`
	Tracks   int            `json:"tracks"`
	Unknown  int            `json:"unknown_chunks"`
	Events   int            `json:"events"`
	Kinds    map[string]int `json:"kinds,omitempty"`
	Notes    int            `json:"notes"`

	// DurationMs is the time of the last event, -1 when the division is a time code.
	DurationMs int64 `json:"duration_ms"`
}

type report struct {
	Files  []*fileReport `json:"files"`
	Failed int           `json:"failed"`
}

func summarize(r *result) *fileReport {
	out := &fileReport{ID: r.id, Name: r.name}
	if r.err != nil {
		out.Error = r.err.Error()
		return out
	}

	f := r.file
	out.Format = f.Header.Format
	out.Division = f.Header.TimeDivision
	out.Tracks = len(f.Tracks)
	out.Unknown = len(f.Unknown)
	out.Kinds = make(map[string]int)

	for _, track := range f.Tracks {
		out.Events += len(track.Events)
		for _, e := range track.Events {
			out.Kinds[e.Kind().String()]++
			if e.IsNoteOn() {
				out.Notes++
			}
		}
	}

	tl, err := midi.NewTimeline(f)
	if err != nil {
		out.DurationMs = -1
		return out
	}
	for {
		e, ok := tl.Next()
		if !ok {
			break
		}
		out.DurationMs = e.Time.Milliseconds()
	}

	return out
}

func newReport(parent context.Context, paths <-chan string, cntRoutines int) *report {
	log := reportLog.Named("newReport")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	rep := &report{}

	for result := range results {
		fr := summarize(result)
		if fr.Error != "" {
			rep.Failed++
			log.Warn("decode failed", zap.String("id", fr.ID), zap.String("name", fr.Name), zap.String("error", fr.Error))
		} else {
			log.Debug("result",
				zap.String("id", fr.ID),
				zap.String("name", fr.Name),
				zap.Int("tracks", fr.Tracks),
				zap.Int("events", fr.Events))
		}
		rep.Files = append(rep.Files, fr)
	}

	return rep
}
