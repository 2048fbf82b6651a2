// Package save keeps the player's records between runs. Without a usable
// data directory it degrades to an in-memory store.
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "climber"

	recordObject   = "records"
	recordProperty = "best"
)

type Record struct {
	BestLevel int `yaml:"best_level"`
	Runs      int `yaml:"runs"`
	Clears    int `yaml:"clears"`
}

type Store struct {
	manager *gdata.Manager // nil in degraded mode
	record  Record
}

// Open returns a store backed by the platform data directory for appName.
// A manager that cannot be opened is logged and the store runs in memory.
func Open(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("save: open %s: %v (records will not persist)", appName, err)
		manager = nil
	}
	return NewStore(manager)
}

// NewStore wraps manager, which may be nil, and loads any saved record.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager}
	if err := s.Load(); err != nil {
		log.Printf("save: %v (starting fresh)", err)
	}
	return s
}

func (s *Store) Persistent() bool {
	return s != nil && s.manager != nil
}

func (s *Store) Record() Record {
	if s == nil {
		return Record{}
	}
	return s.record
}

func (s *Store) Load() error {
	s.record = Record{}
	if s.manager == nil || !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("save: load record: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("save: unmarshal record: %w", err)
	}
	s.record = rec
	return nil
}

func (s *Store) Save() error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("save: marshal record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("save: save record: %w", err)
	}
	return nil
}

// FinishRun records a run that ended on level and persists the result. It
// reports whether level beat the previous best.
func (s *Store) FinishRun(level int, cleared bool) (bool, error) {
	if s == nil {
		return false, nil
	}
	s.record.Runs++
	if cleared {
		s.record.Clears++
	}
	improved := level > s.record.BestLevel
	if improved {
		s.record.BestLevel = level
	}
	return improved, s.Save()
}
