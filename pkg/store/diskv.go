package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/fitlog/pkg/session"
)

// DefaultDraft is the draft name used when none is given.
const DefaultDraft = "current"

const (
	draftsBucket  = "drafts"
	currentSchema = "v1"
)

// Config locates the store on disk. config.Config satisfies it.
type Config interface {
	BasePath() string
}

// Persistence keeps in-progress session drafts between invocations.
type Persistence interface {
	Load(name string) (session.Draft, bool, error)
	Store(name string, d session.Draft) error
	Delete(name string) error
	List(ctx context.Context) []Saved
	Watch(ctx context.Context) (<-chan Event, error)
}

// Saved describes one stored draft.
type Saved struct {
	Name   string        `json:"name"`
	Saved  time.Time     `json:"saved"`
	Draft  session.Draft `json:"draft"`
	Schema string        `json:"schema"`
}

// Load creates a Persistence backed by diskv under cfg.BasePath().
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (Saved, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return Saved{}, err
	}
	s := Saved{}
	if err := json.Unmarshal(val, &s); err != nil {
		return Saved{}, err
	}
	if s.Schema == "" {
		s.Schema = currentSchema
	}
	if s.Name == "" {
		s.Name = fromName(keyToPathTransform(key).FileName)
	}
	return s, nil
}

func (p *persistence) Load(name string) (session.Draft, bool, error) {
	key := toKey(name)
	if !p.d.Has(key) {
		return session.Draft{}, false, nil
	}
	s, err := p.read(key)
	if err != nil {
		return session.Draft{}, false, fmt.Errorf("store: read draft %q: %w", normalize(name), err)
	}
	return s.Draft, true, nil
}

func (p *persistence) Store(name string, d session.Draft) error {
	s := Saved{
		Name:   normalize(name),
		Saved:  time.Now().UTC(),
		Draft:  d,
		Schema: currentSchema,
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode draft %q: %w", s.Name, err)
	}
	if err := p.d.Write(toKey(name), data); err != nil {
		return fmt.Errorf("store: write draft %q: %w", s.Name, err)
	}
	return nil
}

// Delete removes a draft. A missing draft is not an error.
func (p *persistence) Delete(name string) error {
	key := toKey(name)
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase draft %q: %w", normalize(name), err)
	}
	return nil
}

func (p *persistence) List(ctx context.Context) []Saved {
	all := make([]Saved, 0)
	for key := range p.d.KeysPrefix(draftsBucket+"-", ctx.Done()) {
		s, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, s)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultDraft
	}
	return name
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `drafts-<encoded name>`
func toKey(name string) string {
	return fmt.Sprintf("%s-%s", draftsBucket, toName(normalize(name)))
}

func toName(s string) string {
	return hex.EncodeToString([]byte(s))
}

func fromName(s string) string {
	name, err := hexName(s)
	if err != nil {
		return fmt.Sprintf("fromName: %s", err)
	}
	return name
}

func hexName(s string) (string, error) {
	name, err := hex.DecodeString(s)
	return string(name), err
}
