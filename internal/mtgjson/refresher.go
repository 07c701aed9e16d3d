package mtgjson

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// AtomicCardsURL serves every card keyed by canonical name
	AtomicCardsURL = "https://mtgjson.com/api/v5/AtomicCards.json.gz"

	// SetListURL serves the list of every set
	SetListURL = "https://mtgjson.com/api/v5/SetList.json.gz"

	// DefaultStaleAge is how old a cached file may get before it is downloaded again
	DefaultStaleAge = 7 * 24 * time.Hour

	userAgent = "mtgdc/1.0"
)

// Kind selects which bulk file a refresh targets.
type Kind string

const (
	KindCards Kind = "cards"
	KindSets  Kind = "sets"
)

// FetchError reports a failed download. The cached file, if any, is left as it was.
type FetchError struct {
	Kind Kind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s from %s: %v", e.Kind, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Refresher keeps the local MTGJSON files up to date.
type Refresher struct {
	httpClient *http.Client
	urls       map[Kind]string
	staleAge   time.Duration
	force      bool
	now        func() time.Time
	logger     *log.Logger
}

// RefresherOptions configures a Refresher.
type RefresherOptions struct {
	// CardsURL overrides AtomicCardsURL
	CardsURL string

	// SetsURL overrides SetListURL
	SetsURL string

	// StaleAge overrides DefaultStaleAge
	StaleAge time.Duration

	// Force downloads even when the cached file is fresh
	Force bool

	// HTTPClient allows a custom HTTP client (default: http.DefaultClient)
	HTTPClient *http.Client

	Logger *log.Logger
}

// NewRefresher creates a refresher, filling unset options with defaults.
func NewRefresher(options RefresherOptions) *Refresher {
	if options.CardsURL == "" {
		options.CardsURL = AtomicCardsURL
	}
	if options.SetsURL == "" {
		options.SetsURL = SetListURL
	}
	if options.StaleAge <= 0 {
		options.StaleAge = DefaultStaleAge
	}
	if options.HTTPClient == nil {
		options.HTTPClient = http.DefaultClient
	}
	if options.Logger == nil {
		options.Logger = log.Default()
	}

	return &Refresher{
		httpClient: options.HTTPClient,
		urls: map[Kind]string{
			KindCards: options.CardsURL,
			KindSets:  options.SetsURL,
		},
		staleAge: options.StaleAge,
		force:    options.Force,
		now:      time.Now,
		logger:   options.Logger,
	}
}

// FileStatus describes a cached file.
type FileStatus struct {
	Path    string
	Exists  bool
	ModTime time.Time
	Age     time.Duration
	Stale   bool
}

// Status reports whether the file at path would be downloaded again.
func (r *Refresher) Status(path string) (FileStatus, error) {
	status := FileStatus{Path: path}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		status.Stale = true
		return status, nil
	}
	if err != nil {
		return status, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	status.Exists = true
	status.ModTime = info.ModTime()
	status.Age = r.now().Sub(info.ModTime())
	status.Stale = status.Age > r.staleAge
	return status, nil
}

// EnsureFresh downloads the file for kind to path when it is missing or stale.
// A single attempt is made; failures are returned as *FetchError.
func (r *Refresher) EnsureFresh(ctx context.Context, kind Kind, path string) error {
	url, ok := r.urls[kind]
	if !ok {
		return fmt.Errorf("unknown data kind %q", kind)
	}

	status, err := r.Status(path)
	if err != nil {
		return err
	}

	if !r.force && !status.Stale {
		r.logger.Debug("Using cached file", "kind", kind, "path", path, "age", status.Age.Round(time.Second))
		return nil
	}

	if status.Exists {
		r.logger.Info("Cached file is stale, downloading", "kind", kind, "age", status.Age.Round(time.Second))
	} else {
		r.logger.Info("Cached file missing, downloading", "kind", kind, "path", path)
	}

	written, err := r.download(ctx, url, path)
	if err != nil {
		return &FetchError{Kind: kind, URL: url, Err: err}
	}

	r.logger.Info("Downloaded", "kind", kind, "bytes", written, "path", path)
	return nil
}

// download writes the response body next to destPath and renames it into place.
func (r *Refresher) download(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	written, err := io.Copy(tmp, resp.Body)
	if err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tmp.Name(), destPath); err != nil {
		return 0, fmt.Errorf("failed to replace %s: %w", destPath, err)
	}

	return written, nil
}
