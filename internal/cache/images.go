package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache provides disk + memory caching for gallery images. Remote
// sources (http/https) are cached on disk; local paths and file:// URLs are
// read directly.
type ImageCache struct {
	cacheDir string
	client   *http.Client
	memory   sync.Map // src -> image.Image
	failed   sync.Map // src -> error
	loading  sync.Map // src -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// LoadFunc receives a loaded image or the reason it could not be loaded.
type LoadFunc func(img image.Image, err error)

// loadEntry tracks in-flight loads and their waiters. Once done, late
// joiners get the stored result instead of being queued.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []LoadFunc
	done      bool
	img       image.Image
	err       error
}

// join queues cb. It returns false when the load has already finished; the
// result fields are final by then.
func (e *loadEntry) join(cb LoadFunc) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return false
	}
	e.callbacks = append(e.callbacks, cb)
	return true
}

// finish records the result and returns the waiters to notify.
func (e *loadEntry) finish(img image.Image, err error) []LoadFunc {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done, e.img, e.err = true, img, err
	cbs := e.callbacks
	e.callbacks = nil
	return cbs
}

// NewImageCache creates a new image cache with the given disk directory.
func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		client:   httpClient,
		sem:      make(chan struct{}, 6),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(src string) image.Image {
	if v, ok := ic.memory.Load(src); ok {
		return v.(image.Image)
	}
	return nil
}

// Failed returns the error from the last failed load of src, or nil.
func (ic *ImageCache) Failed(src string) error {
	if v, ok := ic.failed.Load(src); ok {
		return v.(error)
	}
	return nil
}

// LoadAsync starts loading src in the background. The callback runs once with
// the image or the error (may be called from a goroutine).
func (ic *ImageCache) LoadAsync(src string, callback LoadFunc) {
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(image.Image), nil)
		return
	}
	if err := ic.Failed(src); err != nil {
		callback(nil, err)
		return
	}

	// Dedup in-flight requests: join an existing entry or create a new one
	entry := &loadEntry{callbacks: []LoadFunc{callback}}
	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		if e := existing.(*loadEntry); !e.join(callback) {
			callback(e.img, e.err)
		}
		return
	}

	go func() {
		img, err := ic.Load(src)

		cbs := entry.finish(img, err)
		ic.loading.Delete(src)
		for _, cb := range cbs {
			cb(img, err)
		}
	}()
}

// Load loads src synchronously, using and filling the caches.
func (ic *ImageCache) Load(src string) (image.Image, error) {
	if img := ic.Get(src); img != nil {
		return img, nil
	}

	// Limit concurrent decodes and downloads
	ic.sem <- struct{}{}
	img, err := ic.loadImage(src)
	<-ic.sem

	if err != nil {
		log.Printf("image %s: %v", src, err)
		ic.failed.Store(src, err)
		return nil, err
	}
	ic.failed.Delete(src)
	ic.memory.Store(src, img)
	return img, nil
}

func (ic *ImageCache) loadImage(src string) (image.Image, error) {
	if path, ok := localPath(src); ok {
		return decodeFile(path)
	}

	diskPath := ic.diskPath(src)

	// Try disk cache first
	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !os.IsNotExist(err) {
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := ic.client.Get(src)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}

	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// localPath reports whether src names a file rather than a remote URL.
func localPath(src string) (string, bool) {
	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain path (a one-letter scheme is a Windows drive).
		return src, true
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return u.Path, true
	case "http", "https":
		return "", false
	}
	return src, true
}

func (ic *ImageCache) diskPath(src string) string {
	h := sha256.Sum256([]byte(src))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear forgets all loaded images and failures.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
	ic.failed.Range(func(k, _ any) bool {
		ic.failed.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
