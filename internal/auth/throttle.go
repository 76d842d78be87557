package auth

import (
	"strings"
	"sync"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultLockout     = 300 * time.Second
)

type attemptRecord struct {
	attempts     int
	firstFailure time.Time
}

// Throttle counts failed logins per email and locks an email out once it
// reaches maxAttempts, until window has passed since the first failure.
//
// State lives in process memory only: it is lost on restart and is not
// shared between server instances.
type Throttle struct {
	mu          sync.Mutex
	records     map[string]*attemptRecord
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func NewThrottle(maxAttempts int, window time.Duration) *Throttle {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultLockout
	}
	return &Throttle{
		records:     make(map[string]*attemptRecord),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Check returns ErrTooManyAttempts while email is locked. An expired record
// is purged first, so the attempt after the window is evaluated normally.
func (t *Throttle) Check(email string) error {
	key := throttleKey(email)

	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[key]
	if !ok {
		return nil
	}
	if t.expired(rec) {
		delete(t.records, key)
		return nil
	}
	if rec.attempts >= t.maxAttempts {
		return ErrTooManyAttempts
	}
	return nil
}

// Fail records a failed credential check and returns the attempt count.
func (t *Throttle) Fail(email string) int {
	key := throttleKey(email)

	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[key]
	if !ok || t.expired(rec) {
		rec = &attemptRecord{firstFailure: t.now()}
		t.records[key] = rec
	}
	rec.attempts++
	return rec.attempts
}

// Reset clears email after a successful login.
func (t *Throttle) Reset(email string) {
	key := throttleKey(email)

	t.mu.Lock()
	delete(t.records, key)
	t.mu.Unlock()
}

// Attempts returns the current failure count for email.
func (t *Throttle) Attempts(email string) int {
	key := throttleKey(email)

	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[key]
	if !ok || t.expired(rec) {
		return 0
	}
	return rec.attempts
}

// Sweep drops every expired record and returns how many were removed.
func (t *Throttle) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for key, rec := range t.records {
		if t.expired(rec) {
			delete(t.records, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked emails.
func (t *Throttle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

func (t *Throttle) expired(rec *attemptRecord) bool {
	return t.now().Sub(rec.firstFailure) >= t.window
}

func throttleKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
