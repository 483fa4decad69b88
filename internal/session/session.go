// Package session wires one user's strategy canvas together: the factor
// store, the drag controller, the display preferences and the renderers.
//
// Every mutating method performs the mutation and then builds the snapshot
// the view renders from, under one lock. Concurrent HTTP requests therefore
// observe the same total order a single event loop would give.
package session

import (
	"bytes"
	"context"
	"sync"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/chart"
	"github.com/banshee-data/strategy.canvas/internal/export"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
	"github.com/banshee-data/strategy.canvas/internal/monitoring"
)

// LanguagePreference is the persistent language collaborator.
type LanguagePreference interface {
	Get(ctx context.Context) (i18n.Language, bool, error)
	Set(ctx context.Context, lang i18n.Language) error
}

// Config is the immutable configuration a session starts from.
type Config struct {
	Viewport canvas.Viewport
	Theme    chart.Theme
	ShowGrid bool
}

// Snapshot is the rendered state after an operation.
type Snapshot struct {
	Factors  []canvas.Factor `json:"factors"`
	Stats    chart.Stats     `json:"stats"`
	Language i18n.Language   `json:"language"`
	Dir      string          `json:"dir"`
	Theme    chart.Theme     `json:"theme"`
	ShowGrid bool            `json:"show_grid"`
	Dragging string          `json:"dragging,omitempty"`
}

// Session is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	store    *canvas.Store
	drag     *canvas.DragController
	prefs    LanguagePreference
	viewport canvas.Viewport
	theme    chart.Theme
	showGrid bool
	lang     i18n.Language
}

// New creates a session seeded with the default factors, named in the
// stored language.
func New(ctx context.Context, cfg Config, prefs LanguagePreference, opts ...canvas.StoreOption) (*Session, error) {
	if err := cfg.Viewport.Validate(); err != nil {
		return nil, err
	}
	lang, _, err := prefs.Get(ctx)
	if err != nil {
		return nil, err
	}

	store := canvas.NewStore(opts...)
	msg := i18n.Catalog(lang)
	if err := store.Reset(canvas.DefaultFactors([4]string{msg.Price, msg.Quality, msg.Service, msg.Marketing})); err != nil {
		return nil, err
	}

	theme := cfg.Theme
	if theme == "" {
		theme = chart.Light
	}
	return &Session{
		store:    store,
		drag:     canvas.NewDragController(store, cfg.Viewport),
		prefs:    prefs,
		viewport: cfg.Viewport,
		theme:    theme,
		showGrid: cfg.ShowGrid,
		lang:     lang,
	}, nil
}

// snapshot must be called with mu held.
func (s *Session) snapshot() Snapshot {
	factors := s.store.List()
	active, _ := s.drag.Active()
	return Snapshot{
		Factors:  factors,
		Stats:    chart.Summarize(factors),
		Language: s.lang,
		Dir:      s.lang.Dir(),
		Theme:    s.theme,
		ShowGrid: s.showGrid,
		Dragging: active,
	}
}

// options must be called with mu held.
func (s *Session) options() chart.Options {
	active, _ := s.drag.Active()
	return chart.Options{
		Viewport: s.viewport,
		Theme:    s.theme,
		Language: s.lang,
		ShowGrid: s.showGrid,
		Active:   active,
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Viewport returns the chart size the session renders at.
func (s *Session) Viewport() canvas.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// Messages returns the UI strings for the current language.
func (s *Session) Messages() i18n.Messages {
	s.mu.Lock()
	defer s.mu.Unlock()
	return i18n.Catalog(s.lang)
}

// CreateFactor appends a factor named name.
func (s *Session) CreateFactor(name string) (canvas.Factor, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.store.Create(name)
	if err != nil {
		return canvas.Factor{}, Snapshot{}, err
	}
	monitoring.Logf("created factor %s (%q)", f.ID, f.Name)
	return f, s.snapshot(), nil
}

// RenameFactor renames the factor with id.
func (s *Session) RenameFactor(id, name string) (canvas.Factor, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.store.Rename(id, name)
	if err != nil {
		return canvas.Factor{}, Snapshot{}, err
	}
	return f, s.snapshot(), nil
}

// RemoveFactor deletes the factor with id. A drag on it is abandoned.
func (s *Session) RemoveFactor(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Remove(id); err != nil {
		return Snapshot{}, err
	}
	if active, ok := s.drag.Active(); ok && active == id {
		s.drag.PointerUp()
	}
	monitoring.Logf("removed factor %s", id)
	return s.snapshot(), nil
}

// SetScore is the slider path: it clamps score onto the factor with id.
func (s *Session) SetScore(id string, score float64) (canvas.Factor, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.store.SetScore(id, score)
	if err != nil {
		return canvas.Factor{}, Snapshot{}, err
	}
	return f, s.snapshot(), nil
}

// PointerDown starts dragging the factor with id. Unknown ids are rejected
// so the controller never tracks a factor that does not exist.
func (s *Session) PointerDown(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.store.Get(id); err != nil {
		return Snapshot{}, err
	}
	s.drag.PointerDown(id)
	monitoring.Debugf("drag start %s", id)
	return s.snapshot(), nil
}

// PointerMove forwards a pointer offset, measured from the top of the chart
// surface, to the drag controller. moved is false when no drag is active.
func (s *Session) PointerMove(y float64) (moved bool, snap Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, moved, err := s.drag.PointerMove(y)
	if err != nil {
		return false, Snapshot{}, err
	}
	if moved {
		monitoring.Debugf("drag %s to %.2f", f.ID, f.Score)
	}
	return moved, s.snapshot(), nil
}

// PointerUp ends any drag.
func (s *Session) PointerUp() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.PointerUp()
	return s.snapshot()
}

// PointerLeave ends any drag when the pointer leaves the chart surface.
func (s *Session) PointerLeave() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.PointerLeave()
	return s.snapshot()
}

// SetLanguage persists lang and switches the session to it. Factor names
// are left as they are.
func (s *Session) SetLanguage(ctx context.Context, lang i18n.Language) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prefs.Set(ctx, lang); err != nil {
		return Snapshot{}, err
	}
	s.lang = lang
	monitoring.Logf("language set to %s (%s)", lang, lang.Dir())
	return s.snapshot(), nil
}

// SetTheme switches the palette.
func (s *Session) SetTheme(theme chart.Theme) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return s.snapshot()
}

// ToggleTheme flips between light and dark.
func (s *Session) ToggleTheme() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	return s.snapshot()
}

// SetShowGrid toggles the background grid.
func (s *Session) SetShowGrid(on bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showGrid = on
	return s.snapshot()
}

// SVG renders the current chart.
func (s *Session) SVG() ([]byte, error) {
	s.mu.Lock()
	factors, opts := s.store.List(), s.options()
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := chart.Render(&buf, factors, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNG rasterizes the current chart. Failures leave the session untouched.
func (s *Session) PNG() ([]byte, error) {
	s.mu.Lock()
	factors, opts := s.store.List(), s.options()
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := export.PNG(&buf, factors, opts); err != nil {
		monitoring.Logf("png export failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// Preview renders the echarts HTML view of the current chart.
func (s *Session) Preview() ([]byte, error) {
	s.mu.Lock()
	factors, opts := s.store.List(), s.options()
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := export.Preview(&buf, factors, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
