package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/example/lifexp/internal/ports/secondary"
)

// fakeKV is an in-memory KeyValueStore with injectable failures.
type fakeKV struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeKV) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	for k := range f.data {
		keys = append(keys, k)
	}
	return keys, nil
}

var _ secondary.KeyValueStore = (*fakeKV)(nil)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRepositoryRoundtrip(t *testing.T) {
	kv := newFakeKV()
	repo := NewRepository[payload](kv, "test.payload")
	ctx := context.Background()

	if err := repo.Save(ctx, payload{Name: "hello", Count: 3}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "hello" || got.Count != 3 {
		t.Errorf("Load() = %+v, want {hello 3}", got)
	}
}

func TestRepositoryMissingKeyYieldsZero(t *testing.T) {
	repo := NewRepository[payload](newFakeKV(), "test.payload")

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing key", err)
	}
	if got != (payload{}) {
		t.Errorf("Load() = %+v, want zero value", got)
	}
}

func TestRepositoryCorruptBlobYieldsZero(t *testing.T) {
	kv := newFakeKV()
	kv.data["test.payload"] = []byte("{not json")
	repo := NewRepository[payload](kv, "test.payload")

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for corrupt blob", err)
	}
	if got != (payload{}) {
		t.Errorf("Load() = %+v, want zero value", got)
	}
}

func TestRepositoryStorageErrorSurfaces(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("disk on fire")
	repo := NewRepository[payload](kv, "test.payload")

	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("Load() should surface storage errors")
	}

	kv2 := newFakeKV()
	kv2.setErr = errors.New("disk still on fire")
	repo2 := NewRepository[payload](kv2, "test.payload")
	if err := repo2.Save(context.Background(), payload{}); err == nil {
		t.Error("Save() should surface storage errors")
	}
}

func TestRepositoryClear(t *testing.T) {
	kv := newFakeKV()
	repo := NewRepository[[]string](kv, "test.list")
	ctx := context.Background()

	if err := repo.Save(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() after Clear = %v, want nil", got)
	}
}
