// Package fetch is the source-fetching collaborator: it retrieves module
// source from disk or network, keeps a durable cache for remote modules, and
// lets callers seed synthetic modules without a real round-trip.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"moddoc/internal/graph"
)

// ErrNotFound reports that a module does not exist at its specifier.
var ErrNotFound = errors.New("module not found")

// File is one fetched module: source plus any transport headers.
type File struct {
	Specifier graph.Specifier
	Source    []byte
	Headers   map[string]string
}

// Permissions gates which specifier schemes a fetch may touch.
type Permissions struct {
	AllowRead bool
	AllowNet  bool
}

// AllowAll grants disk and network access.
func AllowAll() Permissions {
	return Permissions{AllowRead: true, AllowNet: true}
}

// Options configures a Fetcher.
type Options struct {
	// Cache holds remote module sources across runs. Nil disables caching.
	Cache *Cache
	// Reload bypasses the cache for remote modules.
	Reload bool
	// Logger receives fetch diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// Fetcher retrieves module source. Memory-seeded files take priority over
// everything else, which is how synthetic roots bypass normal fetching.
type Fetcher struct {
	client *http.Client
	cache  *Cache
	reload bool
	logger *log.Logger

	mu     sync.RWMutex
	memory map[string]*File
}

// New creates a Fetcher.
func New(opts Options) *Fetcher {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{
		client: &http.Client{Timeout: 2 * time.Minute},
		cache:  opts.Cache,
		reload: opts.Reload,
		logger: logger,
		memory: make(map[string]*File),
	}
}

// InsertCached seeds a file so subsequent fetches of its specifier return it
// without touching disk or network. The seed lives only for this run.
func (f *Fetcher) InsertCached(file *File) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memory[file.Specifier.String()] = file
}

// Fetch retrieves the source for a specifier, honoring permissions.
// Returns ErrNotFound (possibly wrapped) when the module does not exist.
func (f *Fetcher) Fetch(ctx context.Context, spec graph.Specifier, perms Permissions) (*File, error) {
	f.mu.RLock()
	seeded, ok := f.memory[spec.String()]
	f.mu.RUnlock()
	if ok {
		return seeded, nil
	}

	switch spec.Scheme() {
	case "file":
		if !perms.AllowRead {
			return nil, fmt.Errorf("read access to %s denied", spec)
		}
		return f.fetchLocal(spec)
	case "http", "https":
		if !perms.AllowNet {
			return nil, fmt.Errorf("network access to %s denied", spec)
		}
		return f.fetchRemote(ctx, spec)
	default:
		return nil, fmt.Errorf("unsupported scheme %q in %s: %w", spec.Scheme(), spec, ErrNotFound)
	}
}

func (f *Fetcher) fetchLocal(spec graph.Specifier) (*File, error) {
	path, err := spec.FilePath()
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", spec, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &File{Specifier: spec, Source: source}, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, spec graph.Specifier) (*File, error) {
	key := spec.String()
	if f.cache != nil && !f.reload {
		source, headers, ok, err := f.cache.Get(ctx, key)
		if err != nil {
			f.logger.Warn("cache lookup failed", "specifier", key, "err", err)
		} else if ok {
			f.logger.Debug("cache hit", "specifier", key)
			return &File{Specifier: spec, Source: source, Headers: headers}, nil
		}
	}

	f.logger.Debug("download", "specifier", key)
	source, headers, err := f.download(ctx, key)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		if err := f.cache.Put(ctx, key, headers, source); err != nil {
			f.logger.Warn("cache write failed", "specifier", key, "err", err)
		}
	}
	return &File{Specifier: spec, Source: source, Headers: headers}, nil
}

// download performs the HTTP request with retries.
func (f *Fetcher) download(ctx context.Context, url string) ([]byte, map[string]string, error) {
	const maxRetries = 3
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt*attempt) * time.Second
			f.logger.Debug("retrying download", "attempt", attempt, "backoff", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, nil, err
		}

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			return nil, nil, fmt.Errorf("%s: %w", url, ErrNotFound)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
			continue
		}

		source, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		headers := make(map[string]string, len(resp.Header))
		for name := range resp.Header {
			headers[strings.ToLower(name)] = resp.Header.Get(name)
		}
		return source, headers, nil
	}

	return nil, nil, fmt.Errorf("download failed after %d attempts: %w", maxRetries, lastErr)
}

// Loader adapts a Fetcher to the graph.Loader capability.
type Loader struct {
	Fetcher     *Fetcher
	Permissions Permissions
}

func (l Loader) Load(ctx context.Context, spec graph.Specifier) (*graph.LoadResponse, error) {
	file, err := l.Fetcher.Fetch(ctx, spec, l.Permissions)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &graph.LoadResponse{Content: file.Source, Headers: file.Headers}, nil
}
