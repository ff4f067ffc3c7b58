// Package store persists episode traces produced by rollouts.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"

	"github.com/zeu5/player-selector/types"
	"github.com/zeu5/player-selector/util"
)

// TraceStore records traces and releases its resources on Close
type TraceStore interface {
	types.TraceRecorder
	Close() error
}

// Record is the stored form of a trace
type Record struct {
	Experiment string       `json:"experiment"`
	Run        int          `json:"run"`
	Episode    int          `json:"episode"`
	Return     float64      `json:"return"`
	Done       bool         `json:"done"`
	Steps      *types.Trace `json:"steps"`
}

func newRecord(experiment string, run, episode int, trace *types.Trace) Record {
	return Record{
		Experiment: experiment,
		Run:        run,
		Episode:    episode,
		Return:     trace.Return(),
		Done:       trace.Done(),
		Steps:      trace,
	}
}

// FileStore appends one JSON line per trace to <dir>/traces/<experiment>_<run>.jsonl
type FileStore struct {
	dir string
}

var _ TraceStore = &FileStore{}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) Path(experiment string, run int) string {
	return path.Join(f.dir, "traces", experiment+"_"+strconv.Itoa(run)+".jsonl")
}

func (f *FileStore) Record(_ context.Context, experiment string, run, episode int, trace *types.Trace) error {
	bs, err := json.Marshal(newRecord(experiment, run, episode, trace))
	if err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return util.AppendLines(f.Path(experiment, run), string(bs))
}

func (f *FileStore) Close() error {
	return nil
}
