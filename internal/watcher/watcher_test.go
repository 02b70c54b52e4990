package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(0)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Equal(t, DefaultDebounce, watcher.debouncer.delay)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)
}

func TestFilters(t *testing.T) {
	exclude := ExcludeFilter([]string{"*.bak.html"})

	testCases := []struct {
		path    string
		html    bool
		visible bool
		kept    bool
	}{
		{"templates/components/counter.html", true, true, true},
		{"templates/components/COUNTER.HTML", true, true, true},
		{"templates/components/counter.bak.html", true, true, false},
		{"templates/.cache/counter.html", true, false, true},
		{"templates/.counter.html.swp", false, false, true},
		{"templates/components/notes.txt", false, true, true},
		{"../templates/x.html", true, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.html, HTMLFilter(tc.path))
			assert.Equal(t, tc.visible, NoHiddenFilter(tc.path))
			assert.Equal(t, tc.kept, exclude(tc.path))
		})
	}
}

func TestDebouncer(t *testing.T) {
	debouncer := &Debouncer{
		delay:   50 * time.Millisecond,
		events:  make(chan ChangeEvent, 100),
		output:  make(chan []ChangeEvent, 10),
		pending: make(map[string]ChangeEvent),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go debouncer.start(ctx)

	debouncer.events <- ChangeEvent{Path: "b.html", Type: EventTypeCreated}
	debouncer.events <- ChangeEvent{Path: "a.html", Type: EventTypeModified}
	debouncer.events <- ChangeEvent{Path: "b.html", Type: EventTypeModified}

	select {
	case events := <-debouncer.output:
		require.Len(t, events, 2)
		assert.Equal(t, "a.html", events[0].Path)
		assert.Equal(t, "b.html", events[1].Path)
		assert.Equal(t, EventTypeModified, events[1].Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no debounced batch delivered")
	}
}

func TestAddRecursive(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"components", "layouts/partials", ".git/objects"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	watcher, err := NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.AddRecursive(root))

	list := watcher.WatchList()
	assert.Contains(t, list, root)
	assert.Contains(t, list, filepath.Join(root, "components"))
	assert.Contains(t, list, filepath.Join(root, "layouts", "partials"))
	assert.NotContains(t, list, filepath.Join(root, ".git"))
	assert.NotContains(t, list, filepath.Join(root, ".git", "objects"))
}

func TestAddPath_Missing(t *testing.T) {
	watcher, err := NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Error(t, watcher.AddPath(filepath.Join(t.TempDir(), "absent")))
}

func TestFileWatcher_DeliversFilteredBatches(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewFileWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer watcher.Stop()

	watcher.AddFilter(HTMLFilter)
	watcher.AddFilter(NoHiddenFilter)
	require.NoError(t, watcher.AddPath(dir))

	var (
		mu       sync.Mutex
		received []ChangeEvent
	)
	watcher.AddHandler(func(ctx context.Context, events []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, events...)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "card.html"), []byte("x"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) > 0
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, e := range received {
		assert.Equal(t, filepath.Join(dir, "card.html"), e.Path)
	}
}

func TestIsNotExist(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.html")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o644))

	assert.True(t, IsNotExist(ChangeEvent{Type: EventTypeDeleted, Path: filepath.Join(dir, "gone.html")}))
	assert.False(t, IsNotExist(ChangeEvent{Type: EventTypeRenamed, Path: present}))
	assert.False(t, IsNotExist(ChangeEvent{Type: EventTypeModified, Path: filepath.Join(dir, "gone.html")}))
}
