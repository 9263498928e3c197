// Package delivery hands finished reports to their readers: as transient
// downloads served over HTTP or as e-mail attachments.
package delivery

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultReleaseAfter is how long a download stays available.
const DefaultReleaseAfter = 60 * time.Second

// ErrNotFound is returned for unknown or already released tokens.
var ErrNotFound = errors.New("download not found")

// Download is a rendered file waiting to be fetched.
type Download struct {
	FileName string
	Data     []byte
	Created  time.Time
}

type entry struct {
	download Download
	timer    *time.Timer
}

// Registry keeps rendered files addressable by an opaque token. Each entry
// is released on a timer after its release delay, never on first read, so a
// client that retries or resumes the download still finds it.
type Registry struct {
	mu           sync.Mutex
	entries      map[string]*entry
	releaseAfter time.Duration
}

// NewRegistry returns an empty registry. A non-positive releaseAfter uses
// DefaultReleaseAfter.
func NewRegistry(releaseAfter time.Duration) *Registry {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &Registry{
		entries:      make(map[string]*entry),
		releaseAfter: releaseAfter,
	}
}

// Put stores data under a new token and schedules its release.
func (r *Registry) Put(fileName string, data []byte) string {
	token := uuid.NewString()
	e := &entry{download: Download{FileName: fileName, Data: data, Created: time.Now()}}

	r.mu.Lock()
	defer r.mu.Unlock()
	e.timer = time.AfterFunc(r.releaseAfter, func() { r.Release(token) })
	r.entries[token] = e
	return token
}

// Get returns the download stored under token.
func (r *Registry) Get(token string) (Download, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[token]
	if !ok {
		return Download{}, ErrNotFound
	}
	return e.download, nil
}

// Release drops the entry stored under token. It reports whether the
// entry existed.
func (r *Registry) Release(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[token]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(r.entries, token)
	return true
}

// Len returns the number of downloads currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close releases every entry and stops their timers.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, e := range r.entries {
		e.timer.Stop()
		delete(r.entries, token)
	}
}

// WriteAttachment writes d as a PDF attachment response.
func WriteAttachment(w http.ResponseWriter, d Download) error {
	h := w.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.FileName}))
	h.Set("Content-Length", strconv.Itoa(len(d.Data)))
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(d.Data)
	return err
}
