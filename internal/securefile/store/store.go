package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories so a transaction can only ever hand out tx-scoped repos.
type Store interface {
	Files() Files
	Events() Events

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Files holds each session's simulated file registry. Every call is scoped
// to a session id; the same file id may exist in several sessions.
type Files interface {
	// InsertFile adds f at the head of the session's listing.
	InsertFile(ctx context.Context, f domain.FileRecord) error

	// GetFile returns ErrNotFound when the session has no such file.
	GetFile(ctx context.Context, sessionID, id string) (domain.FileRecord, error)

	// ListFiles returns the session's files, most recently inserted first.
	ListFiles(ctx context.Context, sessionID string) ([]domain.FileRecord, error)

	// SetFileFlags overwrites the encrypted and shared flags.
	SetFileFlags(ctx context.Context, sessionID, id string, encrypted, shared bool) error

	// DeleteFile returns ErrNotFound when nothing was removed.
	DeleteFile(ctx context.Context, sessionID, id string) error

	// DeleteSessionFiles drops the whole registry of a session.
	DeleteSessionFiles(ctx context.Context, sessionID string) (int64, error)
}

// Events is the shared security activity feed.
type Events interface {
	// AppendEvent adds e at the head of the feed.
	AppendEvent(ctx context.Context, e domain.SecurityEvent) error

	// ListEvents returns up to limit events, newest first. An empty
	// eventType matches every type.
	ListEvents(ctx context.Context, eventType domain.EventType, limit int) ([]domain.SecurityEvent, error)

	// TrimEvents keeps only the newest keep events and reports how many were dropped.
	TrimEvents(ctx context.Context, keep int) (int64, error)

	// CountEvents returns the number of stored events.
	CountEvents(ctx context.Context) (int, error)
}
