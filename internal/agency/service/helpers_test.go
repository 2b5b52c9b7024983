package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/harborview/doorstep/internal/agency/blob"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/internal/agency/store/drivers/sqlite"
	"github.com/harborview/doorstep/pkg/cryptox"
	"github.com/harborview/doorstep/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-pepper")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestAuth(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	keys, err := jwtx.NewKeyPair("doorstep-test")
	require.NoError(t, err)

	return &AuthService{
		Store:      st,
		Signer:     keys,
		Mailer:     LogMailer{},
		AccessTTL:  15 * time.Minute,
		SessionTTL: 24 * time.Hour,
		ResetTTL:   time.Hour,
	}
}

// memBlobs is an in-memory blob.Store that counts removals, so tests can
// assert an avatar delete happened exactly once.
type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	removes int
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}}
}

func (m *memBlobs) Upload(_ context.Context, path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = data
	return nil
}

func (m *memBlobs) Open(_ context.Context, path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[path]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memBlobs) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[path]; !ok {
		return blob.ErrNotFound
	}
	delete(m.objects, path)
	m.removes++
	return nil
}

func (m *memBlobs) removeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removes
}
