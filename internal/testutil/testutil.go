// Package testutil provides shared test fixtures for packages that build on
// the factor store.
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/banshee-data/strategy.canvas/internal/canvas"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

// SequentialIDs makes a store hand out f1, f2, ... instead of UUIDs.
func SequentialIDs() canvas.StoreOption {
	var mu sync.Mutex
	n := 0
	return canvas.WithIDGenerator(func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("f%d", n)
	})
}

// MemoryLanguage is an in-memory language preference. SetErr, when set,
// is returned from Set without storing anything.
type MemoryLanguage struct {
	mu     sync.Mutex
	Lang   i18n.Language
	Stored bool
	SetErr error
}

func (m *MemoryLanguage) Get(context.Context) (i18n.Language, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Stored {
		return i18n.Default, false, nil
	}
	return m.Lang, true, nil
}

func (m *MemoryLanguage) Set(_ context.Context, lang i18n.Language) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Lang, m.Stored = lang, true
	return nil
}

// Current returns the stored language.
func (m *MemoryLanguage) Current() i18n.Language {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Lang
}

// AssertStatusCode checks that the response status code matches expected.
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// NewJSONRequest creates a test request carrying body as JSON. An empty
// body sends no payload.
func NewJSONRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
