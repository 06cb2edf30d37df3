package store

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// ErrUnknownID is returned when an id is not present in the index.
var ErrUnknownID = errors.New("unknown id")

// Ref records where an entry lives: its year file name and the visible
// day-heading label it was filed under.
type Ref struct {
	File  string `json:"file"`
	Label string `json:"label"`
}

// Registry is the global id index. Every entry id maps to exactly one
// Ref; ids are assigned once at entry creation and never reused.
type Registry interface {
	Get(id string) (Ref, error)
	Put(id string, ref Ref) error
	Delete(id string) error
	All(ctx context.Context) map[string]Ref
	NewID(t time.Time) string
}

// Load creates a Registry backed by diskv using the provided config.
func Load(cfg Config) (Registry, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &registry{d: diskv.New(diskv.Options{
		BasePath:     cfg.IndexPath(),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type registry struct {
	d *diskv.Diskv
}

func (r *registry) Get(id string) (Ref, error) {
	val, err := r.d.Read(id)
	if err != nil {
		if os.IsNotExist(err) {
			return Ref{}, fmt.Errorf("%q: %w", id, ErrUnknownID)
		}
		return Ref{}, err
	}
	ref := Ref{}
	if err := json.Unmarshal(val, &ref); err != nil {
		return Ref{}, fmt.Errorf("index entry %q: %w", id, err)
	}
	return ref, nil
}

func (r *registry) Put(id string, ref Ref) error {
	data, err := json.Marshal(ref)
	if err != nil {
		return err
	}
	return r.d.Write(id, data)
}

func (r *registry) Delete(id string) error {
	return r.d.Erase(id)
}

func (r *registry) All(ctx context.Context) map[string]Ref {
	all := make(map[string]Ref)
	for id := range r.d.Keys(ctx.Done()) {
		ref, err := r.Get(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", id, err)
			continue
		}
		all[id] = ref
	}
	return all
}

const idChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID mints a fresh entry id from the creation instant plus a random
// suffix, retrying on the unlikely collision with an indexed id.
func (r *registry) NewID(t time.Time) string {
	for {
		suffix := make([]byte, 5)
		for i := range suffix {
			n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(idChars))))
			suffix[i] = idChars[n.Int64()]
		}
		id := fmt.Sprintf("%s-%s", t.Format("20060102-150405"), string(suffix))
		if !r.d.Has(id) {
			return id
		}
	}
}
