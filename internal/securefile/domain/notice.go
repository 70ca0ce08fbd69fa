package domain

import (
	"time"

	"github.com/aussiebroadwan/securefile/pkg/idx"
)

// NoticeVariant mirrors the toast styles the dashboard renders.
type NoticeVariant string

const (
	NoticeDefault     NoticeVariant = "default"
	NoticeDestructive NoticeVariant = "destructive"
)

// Notice is a transient, per-session message ("toast").
type Notice struct {
	ID          idx.ID
	Title       string
	Description string
	Variant     NoticeVariant
	CreatedAt   time.Time
}

// NewNotice stamps a notice with a fresh id and the current time.
func NewNotice(title, description string, variant NoticeVariant) Notice {
	return Notice{
		ID:          idx.New(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   time.Now().UTC(),
	}
}
