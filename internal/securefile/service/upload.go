package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/aussiebroadwan/securefile/pkg/idx"
	"github.com/aussiebroadwan/securefile/pkg/schedule"
)

const (
	DefaultUploadTick = 150 * time.Millisecond
	DefaultUploadStep = 5
)

type uploadEntry struct {
	job    domain.UploadJob
	ticker *schedule.Ticker
}

// UploadService fakes upload progress: a fixed step per tick until 100%,
// then on the following tick the file record is created.
type UploadService struct {
	Files    *FileService
	Sessions *SessionService
	Settings *SettingsService
	Logger   *slog.Logger
	Metrics  *metrics.Metrics

	Tick time.Duration
	Step int

	mu   sync.Mutex
	jobs map[string]*uploadEntry
}

func NewUploadService(files *FileService, sessions *SessionService, settings *SettingsService, logger *slog.Logger, m *metrics.Metrics, tick time.Duration, step int) *UploadService {
	if tick <= 0 {
		tick = DefaultUploadTick
	}
	if step <= 0 || step > 100 {
		step = DefaultUploadStep
	}

	return &UploadService{
		Files:    files,
		Sessions: sessions,
		Settings: settings,
		Logger:   logger,
		Metrics:  m,
		Tick:     tick,
		Step:     step,
		jobs:     make(map[string]*uploadEntry),
	}
}

func (s *UploadService) SessionStarted(context.Context, string) error { return nil }

// SessionEnded cancels every upload the session still has running.
func (s *UploadService) SessionEnded(_ context.Context, sessionID string) {
	s.mu.Lock()
	var abandoned []*uploadEntry
	for id, e := range s.jobs {
		if e.job.SessionID != sessionID {
			continue
		}
		delete(s.jobs, id)
		if !e.job.Done {
			abandoned = append(abandoned, e)
		}
	}
	s.mu.Unlock()

	for _, e := range abandoned {
		e.ticker.Stop()
		s.Metrics.Upload("abandoned")
	}
}

// Start begins a simulated upload. An empty encryption falls back to the
// session's configured encryption type.
func (s *UploadService) Start(ctx context.Context, sessionID, fileName string, sizeBytes int64, encryption domain.EncryptionType) (domain.UploadJob, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return domain.UploadJob{}, ErrNoFileSelected
	}
	if sizeBytes < 0 {
		sizeBytes = 0
	}

	if encryption == "" {
		encryption = domain.DefaultSettings().EncryptionType
		if s.Settings != nil {
			encryption = s.Settings.Get(sessionID).EncryptionType
		}
	}
	switch encryption {
	case domain.EncryptionAES256, domain.EncryptionRSA2048, domain.EncryptionNone:
	default:
		return domain.UploadJob{}, fmt.Errorf("%w: %q", ErrInvalidEncryption, encryption)
	}

	e := &uploadEntry{
		job: domain.UploadJob{
			ID:         idx.New().String(),
			SessionID:  sessionID,
			FileName:   fileName,
			SizeBytes:  sizeBytes,
			Encryption: encryption,
			StartedAt:  time.Now().UTC(),
		},
	}

	s.mu.Lock()
	s.jobs[e.job.ID] = e
	job := e.job
	e.ticker = schedule.Every(s.Tick, func() { s.advance(job.ID) })
	s.mu.Unlock()

	s.Logger.Debug("upload started", "upload_id", job.ID, "session_id", sessionID, "file_name", fileName)
	return job, nil
}

func (s *UploadService) advance(id string) {
	s.mu.Lock()
	e, ok := s.jobs[id]
	if !ok || e.job.Done {
		s.mu.Unlock()
		return
	}
	if e.job.Progress < 100 {
		e.job.Progress = min(e.job.Progress+s.Step, 100)
		s.mu.Unlock()
		return
	}

	e.ticker.Stop()
	job := e.job
	s.mu.Unlock()

	rec := domain.FileRecord{
		ID:           idx.New().String(),
		SessionID:    job.SessionID,
		Name:         job.FileName,
		Type:         domain.FileTypeFromName(job.FileName),
		Size:         domain.FormatSize(job.SizeBytes),
		Encrypted:    job.Encryption.Encrypts(),
		LastModified: time.Now().UTC().Format(domain.LastModifiedLayout),
		Permissions:  domain.OwnerPermission,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Files.Add(ctx, rec); err != nil {
		s.Logger.Error("failed to store uploaded file", "upload_id", id, "error", err)
		s.mu.Lock()
		delete(s.jobs, id)
		s.mu.Unlock()
		s.Metrics.Upload("failed")
		return
	}

	s.mu.Lock()
	// Cancelled while the record was being written.
	if _, still := s.jobs[id]; !still {
		s.mu.Unlock()
		_ = s.Files.Store.Files().DeleteFile(ctx, rec.SessionID, rec.ID)
		return
	}
	e.job.Done = true
	e.job.FileID = rec.ID
	s.mu.Unlock()

	verb := "stored"
	if rec.Encrypted {
		verb = "encrypted"
	}
	if s.Sessions != nil {
		_ = s.Sessions.Notify(job.SessionID, domain.NewNotice(
			"File Uploaded Successfully",
			fmt.Sprintf("%s has been securely uploaded and %s", rec.Name, verb),
			domain.NoticeDefault,
		))
	}
	s.Metrics.Upload("completed")
	s.Logger.Info("upload completed", "upload_id", id, "file_id", rec.ID, "session_id", job.SessionID)
}

// Get returns the job's current progress.
func (s *UploadService) Get(sessionID, id string) (domain.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.jobs[id]
	if !ok || e.job.SessionID != sessionID {
		return domain.UploadJob{}, ErrUploadNotFound
	}
	return e.job, nil
}

// Cancel stops the job and discards it. A finished job is only forgotten,
// its file stays.
func (s *UploadService) Cancel(sessionID, id string) error {
	s.mu.Lock()
	e, ok := s.jobs[id]
	if !ok || e.job.SessionID != sessionID {
		s.mu.Unlock()
		return ErrUploadNotFound
	}
	delete(s.jobs, id)
	done := e.job.Done
	s.mu.Unlock()

	e.ticker.Stop()
	if !done {
		s.Metrics.Upload("cancelled")
	}
	return nil
}

// Active returns the number of jobs still in progress.
func (s *UploadService) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.jobs {
		if !e.job.Done {
			n++
		}
	}
	return n
}

// StopAll stops every running job. Used on shutdown.
func (s *UploadService) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.jobs {
		e.ticker.Stop()
		delete(s.jobs, id)
	}
}
