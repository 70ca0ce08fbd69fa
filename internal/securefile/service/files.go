package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/aussiebroadwan/securefile/internal/securefile/store"
)

// FileService is the simulated file registry. Every session gets its own
// copy of the seed files; nothing is ever written to disk.
type FileService struct {
	Store    store.Store
	Sessions *SessionService
	Settings *SettingsService
	Feed     *FeedService
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
}

func (s *FileService) SessionStarted(ctx context.Context, sessionID string) error {
	seed := domain.SeedFiles()
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Inserted last to first: the listing is newest first and the seed
		// must read in its own order.
		for i := len(seed) - 1; i >= 0; i-- {
			f := seed[i]
			f.SessionID = sessionID
			if err := tx.Files().InsertFile(ctx, f); err != nil {
				return fmt.Errorf("failed to seed file %s: %w", f.Name, err)
			}
		}
		return nil
	})
}

func (s *FileService) SessionEnded(ctx context.Context, sessionID string) {
	n, err := s.Store.Files().DeleteSessionFiles(ctx, sessionID)
	if err != nil {
		s.Logger.Error("failed to drop session files", "session_id", sessionID, "error", err)
		return
	}
	s.Logger.Debug("session files dropped", "session_id", sessionID, "count", n)
}

// List returns the session's files matching filter, newest upload first.
func (s *FileService) List(ctx context.Context, sessionID string, filter domain.FileFilter) ([]domain.FileRecord, error) {
	all, err := s.Store.Files().ListFiles(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	out := make([]domain.FileRecord, 0, len(all))
	for _, f := range all {
		if filter.Matches(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *FileService) Get(ctx context.Context, sessionID, id string) (domain.FileRecord, error) {
	f, err := s.Store.Files().GetFile(ctx, sessionID, id)
	if err != nil {
		return domain.FileRecord{}, fmt.Errorf("file %s: %w", id, err)
	}
	return f, nil
}

// Add places a new record at the head of the session's registry.
func (s *FileService) Add(ctx context.Context, f domain.FileRecord) error {
	if err := s.Store.Files().InsertFile(ctx, f); err != nil {
		return fmt.Errorf("failed to add file: %w", err)
	}
	s.Metrics.FileOp("upload", 1)
	return nil
}

// Encrypt marks the file encrypted. Encrypting an encrypted file is not an
// error.
func (s *FileService) Encrypt(ctx context.Context, sessionID, id string) (domain.FileRecord, error) {
	f, err := s.encrypt(ctx, sessionID, id)
	if err != nil {
		return domain.FileRecord{}, err
	}

	s.notify(sessionID, "File Encrypted", "File has been encrypted using "+s.encryptionLabel(sessionID))
	return f, nil
}

func (s *FileService) encrypt(ctx context.Context, sessionID, id string) (domain.FileRecord, error) {
	f, err := s.Get(ctx, sessionID, id)
	if err != nil {
		return domain.FileRecord{}, err
	}
	if err := s.Store.Files().SetFileFlags(ctx, sessionID, id, true, f.Shared); err != nil {
		return domain.FileRecord{}, fmt.Errorf("failed to encrypt file %s: %w", id, err)
	}
	f.Encrypted = true

	s.Metrics.FileOp("encrypt", 1)
	s.record(ctx, sessionID, domain.EventEncryption, fmt.Sprintf("%s encrypted with %s", f.Name, s.encryptionLabel(sessionID)))
	return f, nil
}

// ToggleShare flips the shared flag.
func (s *FileService) ToggleShare(ctx context.Context, sessionID, id string) (domain.FileRecord, error) {
	f, err := s.Get(ctx, sessionID, id)
	if err != nil {
		return domain.FileRecord{}, err
	}
	if err := s.Store.Files().SetFileFlags(ctx, sessionID, id, f.Encrypted, !f.Shared); err != nil {
		return domain.FileRecord{}, fmt.Errorf("failed to share file %s: %w", id, err)
	}
	f.Shared = !f.Shared

	if f.Shared {
		access := domain.DefaultSettings().DefaultPermissions
		if s.Settings != nil {
			access = s.Settings.Get(sessionID).DefaultPermissions
		}
		s.notify(sessionID, "File Shared", fmt.Sprintf("File is now shared with %s permissions", access))
	} else {
		s.notify(sessionID, "Sharing Disabled", "File is no longer shared with others")
	}
	s.Metrics.FileOp("share", 1)
	return f, nil
}

// Delete removes the file from the session's registry.
func (s *FileService) Delete(ctx context.Context, sessionID, id string) error {
	if err := s.Store.Files().DeleteFile(ctx, sessionID, id); err != nil {
		return fmt.Errorf("file %s: %w", id, err)
	}

	s.notify(sessionID, "File Deleted", "File has been securely deleted")
	s.Metrics.FileOp("delete", 1)
	return nil
}

// Download pretends to hand the file over and logs the access.
func (s *FileService) Download(ctx context.Context, sessionID, id string) (domain.FileRecord, error) {
	f, err := s.Get(ctx, sessionID, id)
	if err != nil {
		return domain.FileRecord{}, err
	}

	s.notify(sessionID, "File Downloaded", "Your file has been securely downloaded")
	s.record(ctx, sessionID, domain.EventFileAccess, f.Name+" downloaded")
	s.Metrics.FileOp("download", 1)
	return f, nil
}

// Batch applies action to every id. Unknown ids are skipped and reported
// in Missing rather than failing the whole batch.
func (s *FileService) Batch(ctx context.Context, sessionID string, action domain.BatchAction, ids []string) (domain.BatchResult, error) {
	switch action {
	case domain.BatchEncrypt:
		return s.EncryptMany(ctx, sessionID, ids)
	case domain.BatchShare:
		return s.ShareMany(ctx, sessionID, ids)
	case domain.BatchDelete:
		return s.DeleteMany(ctx, sessionID, ids)
	default:
		return domain.BatchResult{}, fmt.Errorf("%w: %q", ErrInvalidBatch, action)
	}
}

// EncryptMany encrypts the selected files that are not encrypted yet.
func (s *FileService) EncryptMany(ctx context.Context, sessionID string, ids []string) (domain.BatchResult, error) {
	res := domain.BatchResult{Action: domain.BatchEncrypt}
	for _, id := range dedupe(ids) {
		f, err := s.Get(ctx, sessionID, id)
		if errors.Is(err, store.ErrNotFound) {
			res.Missing = append(res.Missing, id)
			continue
		}
		if err != nil {
			return res, err
		}
		if f.Encrypted {
			res.Unchanged = append(res.Unchanged, id)
			continue
		}
		if _, err := s.encrypt(ctx, sessionID, id); err != nil {
			return res, err
		}
		res.Changed = append(res.Changed, id)
	}

	if len(res.Changed) > 0 {
		s.notify(sessionID, "Batch Encryption Complete", fmt.Sprintf("%d file(s) have been encrypted", len(res.Changed)))
	} else {
		s.notify(sessionID, "No Action Required", "All selected files are already encrypted")
	}
	return res, nil
}

// ShareMany toggles sharing on every selected file.
func (s *FileService) ShareMany(ctx context.Context, sessionID string, ids []string) (domain.BatchResult, error) {
	res := domain.BatchResult{Action: domain.BatchShare}
	for _, id := range dedupe(ids) {
		_, err := s.ToggleShare(ctx, sessionID, id)
		if errors.Is(err, store.ErrNotFound) {
			res.Missing = append(res.Missing, id)
			continue
		}
		if err != nil {
			return res, err
		}
		res.Changed = append(res.Changed, id)
	}
	return res, nil
}

// DeleteMany removes every selected file.
func (s *FileService) DeleteMany(ctx context.Context, sessionID string, ids []string) (domain.BatchResult, error) {
	res := domain.BatchResult{Action: domain.BatchDelete}
	for _, id := range dedupe(ids) {
		err := s.Delete(ctx, sessionID, id)
		if errors.Is(err, store.ErrNotFound) {
			res.Missing = append(res.Missing, id)
			continue
		}
		if err != nil {
			return res, err
		}
		res.Changed = append(res.Changed, id)
	}
	return res, nil
}

func (s *FileService) encryptionLabel(sessionID string) string {
	if s.Settings == nil {
		return domain.EncryptionAES256.Label()
	}
	return s.Settings.Get(sessionID).EncryptionType.Label()
}

func (s *FileService) notify(sessionID, title, description string) {
	if s.Sessions == nil {
		return
	}
	_ = s.Sessions.Notify(sessionID, domain.NewNotice(title, description, domain.NoticeDefault))
}

func (s *FileService) record(ctx context.Context, sessionID string, t domain.EventType, description string) {
	if s.Feed == nil {
		return
	}

	user := ""
	if s.Sessions != nil {
		if st, err := s.Sessions.State(sessionID); err == nil {
			user = st.Username
		}
	}
	_, err := s.Feed.Record(ctx, domain.SecurityEvent{
		Type:        t,
		Description: description,
		Severity:    domain.SeverityLow,
		User:        user,
	})
	if err != nil {
		s.Logger.Warn("failed to record file event", "type", t, "error", err)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
