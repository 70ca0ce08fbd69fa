package http

import (
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

func toFlowResponse(f domain.AuthFlow) vaultsdk.AuthFlowResponse {
	return vaultsdk.AuthFlowResponse{
		ID:         f.ID,
		Step:       string(f.Step),
		Username:   f.Username,
		TOTPURL:    f.TOTPURL,
		TOTPSecret: f.TOTPSecret,
	}
}

func toStepResponse(res service.StepResult) vaultsdk.StepResponse {
	out := vaultsdk.StepResponse{
		Flow:            toFlowResponse(res.Flow),
		Advanced:        res.Advanced,
		CodeMatchesDemo: res.CodeMatchesDemo,
		Token:           res.Token,
	}
	if res.Session != nil {
		s := toSessionResponse(*res.Session)
		out.Session = &s
	}
	if !res.TokenExpiresAt.IsZero() {
		exp := res.TokenExpiresAt
		out.ExpiresAt = &exp
	}
	return out
}

func toSessionResponse(s domain.SessionState) vaultsdk.SessionResponse {
	return vaultsdk.SessionResponse{
		ID:               s.ID,
		Username:         s.Username,
		RemainingSeconds: s.RemainingSeconds,
		ExpiringSoon:     s.ExpiringSoon,
		LoggedOut:        s.LoggedOut,
		StartedAt:        s.StartedAt,
		LastActivityAt:   s.LastActivityAt,
	}
}

func toNoticesResponse(notices []domain.Notice) vaultsdk.NoticesResponse {
	out := vaultsdk.NoticesResponse{Notices: make([]vaultsdk.NoticeResponse, 0, len(notices))}
	for _, n := range notices {
		out.Notices = append(out.Notices, vaultsdk.NoticeResponse{
			ID:          n.ID.String(),
			Title:       n.Title,
			Description: n.Description,
			Variant:     string(n.Variant),
			CreatedAt:   n.CreatedAt,
		})
	}
	return out
}

func toFileResponse(f domain.FileRecord) vaultsdk.FileResponse {
	return vaultsdk.FileResponse{
		ID:           f.ID,
		Name:         f.Name,
		Type:         string(f.Type),
		Size:         f.Size,
		Encrypted:    f.Encrypted,
		Shared:       f.Shared,
		LastModified: f.LastModified,
		Permissions:  f.Permissions,
	}
}

func toFilesResponse(files []domain.FileRecord) vaultsdk.FilesResponse {
	out := vaultsdk.FilesResponse{Files: make([]vaultsdk.FileResponse, 0, len(files))}
	for _, f := range files {
		out.Files = append(out.Files, toFileResponse(f))
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func toBatchResponse(res domain.BatchResult) vaultsdk.BatchResponse {
	return vaultsdk.BatchResponse{
		Action:    string(res.Action),
		Changed:   nonNil(res.Changed),
		Unchanged: nonNil(res.Unchanged),
		Missing:   nonNil(res.Missing),
	}
}

func toUploadResponse(j domain.UploadJob) vaultsdk.UploadResponse {
	return vaultsdk.UploadResponse{
		ID:         j.ID,
		FileName:   j.FileName,
		SizeBytes:  j.SizeBytes,
		Encryption: string(j.Encryption),
		Progress:   j.Progress,
		Done:       j.Done,
		FileID:     j.FileID,
		StartedAt:  j.StartedAt,
	}
}

func toEventsResponse(events []domain.SecurityEvent, now time.Time) vaultsdk.EventsResponse {
	out := vaultsdk.EventsResponse{Events: make([]vaultsdk.EventResponse, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, vaultsdk.EventResponse{
			ID:           e.ID,
			Type:         string(e.Type),
			Description:  e.Description,
			Timestamp:    e.Timestamp,
			RelativeTime: domain.RelativeTime(now, e.Timestamp),
			Severity:     string(e.Severity),
			IP:           e.IP,
			User:         e.User,
		})
	}
	return out
}

func toThreatResponse(a domain.ThreatAlert) vaultsdk.ThreatResponse {
	return vaultsdk.ThreatResponse{
		ID:         a.ID,
		Title:      a.Title,
		Summary:    a.Summary,
		SourceIP:   a.SourceIP,
		Target:     a.Target,
		Method:     a.Method,
		Status:     a.Status,
		DetectedAt: a.DetectedAt,
		Responded:  a.Responded,
	}
}

func toSettingsBody(s domain.Settings) vaultsdk.SettingsBody {
	return vaultsdk.SettingsBody{
		EncryptionType:     string(s.EncryptionType),
		KeyRotation:        string(s.KeyRotation),
		DefaultPermissions: string(s.DefaultPermissions),
		SessionTimeout:     string(s.SessionTimeout),
		ThreatLevel:        string(s.ThreatLevel),
		NotificationMethod: string(s.NotificationMethod),
	}
}

func fromSettingsBody(b vaultsdk.SettingsBody) domain.Settings {
	return domain.Settings{
		EncryptionType:     domain.EncryptionType(b.EncryptionType),
		KeyRotation:        domain.KeyRotation(b.KeyRotation),
		DefaultPermissions: domain.AccessLevel(b.DefaultPermissions),
		SessionTimeout:     domain.SessionTimeout(b.SessionTimeout),
		ThreatLevel:        domain.ThreatLevel(b.ThreatLevel),
		NotificationMethod: domain.NotificationMethod(b.NotificationMethod),
	}
}

func toTutorialResponse(questions []domain.TutorialQuestion) vaultsdk.TutorialResponse {
	out := vaultsdk.TutorialResponse{Questions: make([]vaultsdk.TutorialQuestionResponse, 0, len(questions))}
	for _, q := range questions {
		qr := vaultsdk.TutorialQuestionResponse{ID: q.ID, Title: q.Title, Prompt: q.Prompt}
		for _, o := range q.Options {
			qr.Options = append(qr.Options, vaultsdk.TutorialOptionResponse{ID: o.ID, Label: o.Label})
		}
		out.Questions = append(out.Questions, qr)
	}
	return out
}
