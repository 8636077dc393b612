package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newCache(t *testing.T) *ImageCache {
	t.Helper()
	ic, err := NewImageCache(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)
	return ic
}

func TestLoadLocalPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 4, 3), 0o644))

	ic := newCache(t)
	img, err := ic.Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Same(t, img, ic.Get(path))

	img, err = ic.Load("file://" + path)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestLoadRemoteCachesOnDisk(t *testing.T) {
	var hits atomic.Int32
	body := pngBytes(t, 8, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(body)
	}))
	defer srv.Close()

	ic := newCache(t)
	src := srv.URL + "/photo.png"
	_, err := ic.Load(src)
	require.NoError(t, err)
	assert.FileExists(t, ic.diskPath(src))

	// A fresh memory cache still hits the disk copy.
	ic.Clear()
	assert.Nil(t, ic.Get(src))
	img, err := ic.Load(src)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoadFailureRecorded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	ic := newCache(t)
	src := srv.URL + "/missing.png"
	_, err := ic.Load(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, err, ic.Failed(src))
	assert.NoFileExists(t, ic.diskPath(src))

	ic.Clear()
	assert.NoError(t, ic.Failed(src))
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	ic := newCache(t)
	_, err := ic.Load(path)
	require.Error(t, err)
	assert.Error(t, ic.Failed(path))
}

func TestLoadEntryLateJoiner(t *testing.T) {
	e := &loadEntry{}
	var first int
	require.True(t, e.join(func(image.Image, error) { first++ }))

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	cbs := e.finish(img, nil)
	require.Len(t, cbs, 1)
	cbs[0](img, nil)
	assert.Equal(t, 1, first)

	// Joining between finish and removal from the in-flight map must still
	// deliver the result.
	assert.False(t, e.join(func(image.Image, error) { t.Fatal("queued after finish") }))
	assert.NoError(t, e.err)
	assert.Same(t, img, e.img)
	assert.Empty(t, e.finish(img, nil), "waiters are handed out once")
}

func TestLoadAsyncJoinsFinishedEntry(t *testing.T) {
	ic := newCache(t)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	e := &loadEntry{}
	e.finish(img, nil)
	ic.loading.Store("late.png", e)

	var got image.Image
	ic.LoadAsync("late.png", func(i image.Image, err error) {
		assert.NoError(t, err)
		got = i
	})
	assert.Same(t, img, got, "called back synchronously")
}

func TestLoadAsyncManyWaiters(t *testing.T) {
	body := pngBytes(t, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	ic := newCache(t)
	src := srv.URL + "/shared.png"

	const n = 200
	var wg sync.WaitGroup
	var calls atomic.Int32
	wg.Add(n)
	for range n {
		go ic.LoadAsync(src, func(img image.Image, err error) {
			defer wg.Done()
			if err == nil && img != nil {
				calls.Add(1)
			}
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("only %d of %d callbacks ran", calls.Load(), n)
	}
	assert.Equal(t, int32(n), calls.Load())
}

func TestLoadAsyncDedup(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int32
	body := pngBytes(t, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write(body)
	}))
	defer srv.Close()

	ic := newCache(t)
	src := srv.URL + "/slow.png"

	var wg sync.WaitGroup
	results := make(chan image.Image, 3)
	for range 3 {
		wg.Add(1)
		ic.LoadAsync(src, func(img image.Image, err error) {
			defer wg.Done()
			assert.NoError(t, err)
			results <- img
		})
	}
	close(release)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callbacks did not run")
	}
	close(results)
	for img := range results {
		assert.NotNil(t, img)
	}
	assert.Equal(t, int32(1), hits.Load())

	// Cached now: the callback runs synchronously.
	called := false
	ic.LoadAsync(src, func(img image.Image, err error) { called = img != nil && err == nil })
	assert.True(t, called)
}

func TestLoadAsyncReportsFailure(t *testing.T) {
	ic := newCache(t)
	src := filepath.Join(t.TempDir(), "nope.png")
	_, err := ic.Load(src)
	require.Error(t, err)

	var got error
	ic.LoadAsync(src, func(_ image.Image, err error) { got = err })
	assert.Equal(t, err, got)
}

func TestLocalPath(t *testing.T) {
	for _, tc := range []struct {
		src   string
		path  string
		local bool
	}{
		{"/tmp/a.png", "/tmp/a.png", true},
		{"photos/a.jpg", "photos/a.jpg", true},
		{"file:///srv/a.jpg", "/srv/a.jpg", true},
		{"https://example.com/a.jpg", "", false},
		{"HTTP://example.com/a.jpg", "", false},
	} {
		path, ok := localPath(tc.src)
		assert.Equal(t, tc.local, ok, tc.src)
		assert.Equal(t, tc.path, path, tc.src)
	}
}

func TestClearDisk(t *testing.T) {
	ic := newCache(t)
	require.DirExists(t, ic.CacheDir())
	require.NoError(t, ic.ClearDisk())
	assert.NoDirExists(t, ic.CacheDir())
}
