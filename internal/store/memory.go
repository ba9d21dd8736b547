package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Store used by tests and by local development when
// no Mongo URI is configured. All reads return deep copies so callers can
// never alias live documents.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]map[string]any)}
}

var _ Store = (*Memory)(nil)

func (m *Memory) Now() int64 { return time.Now().Unix() }

func (m *Memory) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

func (m *Memory) collection(path string) map[string]map[string]any {
	coll, ok := m.collections[path]
	if !ok {
		coll = make(map[string]map[string]any)
		m.collections[path] = coll
	}
	return coll
}

func (m *Memory) List(_ context.Context, path string) ([]Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	coll := m.collections[path]
	docs := make([]Doc, 0, len(coll))
	for id, data := range coll {
		docs = append(docs, Doc{ID: id, Data: deepCopy(data)})
	}
	return docs, nil
}

func (m *Memory) Get(_ context.Context, path, id string) (Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.collections[path][id]
	if !ok {
		return Doc{}, ErrNotFound
	}
	return Doc{ID: id, Data: deepCopy(data)}, nil
}

func (m *Memory) FindByField(_ context.Context, path, field string, value any) ([]Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var docs []Doc
	for id, data := range m.collections[path] {
		// Typed equality, matching the Mongo filter semantics: a phone
		// stored as a number does not match its string form.
		if reflect.DeepEqual(data[field], value) {
			docs = append(docs, Doc{ID: id, Data: deepCopy(data)})
		}
	}
	return docs, nil
}

func (m *Memory) Add(_ context.Context, path string, data map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.NewID()
	m.collection(path)[id] = deepCopy(data)
	return id, nil
}

func (m *Memory) Set(_ context.Context, path, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collection(path)[id] = deepCopy(data)
	return nil
}

func (m *Memory) Update(_ context.Context, path, id string, patch map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyPatch(path, id, patch)
}

func (m *Memory) UpdateIfExists(_ context.Context, path, id string, patch map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.collections[path][id]; !ok {
		return nil
	}
	return m.applyPatch(path, id, patch)
}

func (m *Memory) Delete(_ context.Context, path, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[path], id)
	return nil
}

// Batch validates every op before applying any, so a bad update leaves the
// collection untouched — same all-or-nothing contract as a Mongo transaction.
func (m *Memory) Batch(_ context.Context, path string, ops []BatchOp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	coll := m.collection(path)
	for _, op := range ops {
		if op.ID == "" {
			return fmt.Errorf("batch: operacion sin id")
		}
		if op.Kind == BatchUpdate {
			if _, ok := coll[op.ID]; !ok {
				return fmt.Errorf("batch: %w: %s", ErrNotFound, op.ID)
			}
		}
	}
	for _, op := range ops {
		switch op.Kind {
		case BatchCreate:
			coll[op.ID] = deepCopy(op.Data)
		case BatchUpdate:
			for k, v := range op.Data {
				coll[op.ID][k] = deepCopyValue(v)
			}
		}
	}
	return nil
}

func (m *Memory) applyPatch(path, id string, patch map[string]any) error {
	data, ok := m.collections[path][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range patch {
		data[k] = deepCopyValue(v)
	}
	return nil
}

func deepCopy(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopy(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = deepCopyValue(item)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}
