package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/pages/pkg/progress"
)

const (
	layoutISO   = "2006-01-02"
	progressKey = "stoic_progress.json"
)

// ProgressStore keeps the stoic prompt position as a small JSON document
// in the reference directory.
type ProgressStore struct {
	d *diskv.Diskv
}

var _ progress.Store = (*ProgressStore)(nil)

// LoadProgress opens the progress store under dir.
func LoadProgress(dir string) *ProgressStore {
	return &ProgressStore{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 0,
	})}
}

type progressDoc struct {
	Day       *int    `json:"day"`
	UpdatedOn *string `json:"updated_on"`
}

// Load returns the persisted state, or progress.Bootstrap() when there is
// none or it cannot be understood.
func (p *ProgressStore) Load() progress.State {
	val, err := p.d.Read(progressKey)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", progressKey, err)
		}
		return progress.Bootstrap()
	}
	state, err := decodeProgress(val)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v, starting from day 1\n", progressKey, err)
		return progress.Bootstrap()
	}
	return state
}

func decodeProgress(val []byte) (progress.State, error) {
	doc := progressDoc{}
	if err := json.Unmarshal(val, &doc); err != nil {
		return progress.State{}, err
	}
	if doc.Day == nil || doc.UpdatedOn == nil {
		return progress.State{}, errors.New("missing day or updated_on")
	}
	if *doc.Day < 1 {
		return progress.State{}, fmt.Errorf("invalid day %d", *doc.Day)
	}
	on, err := time.ParseInLocation(layoutISO, *doc.UpdatedOn, time.Local)
	if err != nil {
		return progress.State{}, err
	}
	return progress.State{Day: *doc.Day, UpdatedOn: on}, nil
}

// Save writes state.
func (p *ProgressStore) Save(state progress.State) error {
	data, err := EncodeProgress(state)
	if err != nil {
		return err
	}
	if err := p.d.Write(progressKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", progressKey, err)
	}
	return nil
}

// EncodeProgress renders state as the stored JSON document.
func EncodeProgress(state progress.State) ([]byte, error) {
	on := state.UpdatedOn.Format(layoutISO)
	return json.Marshal(progressDoc{Day: &state.Day, UpdatedOn: &on})
}

// Path is where the state is kept.
func (p *ProgressStore) Path() string {
	return filepath.Join(p.d.BasePath, progressKey)
}
