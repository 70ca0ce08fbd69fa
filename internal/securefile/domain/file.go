package domain

import (
	"fmt"
	"strings"
	"time"
)

// FileType is the coarse document category shown in the file table.
type FileType string

const (
	FileTypeDocument     FileType = "Document"
	FileTypeSpreadsheet  FileType = "Spreadsheet"
	FileTypePresentation FileType = "Presentation"
)

// Valid reports whether t is a known file type.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeDocument, FileTypeSpreadsheet, FileTypePresentation:
		return true
	}
	return false
}

// OwnerPermission is the only permission label files ever carry.
const OwnerPermission = "Owner"

// LastModifiedLayout is the date format of FileRecord.LastModified.
const LastModifiedLayout = time.DateOnly

// FileRecord is a simulated file in a session's registry. No content is
// ever stored, only the metadata the dashboard shows.
type FileRecord struct {
	ID           string
	SessionID    string
	Name         string
	Type         FileType
	Size         string
	Encrypted    bool
	Shared       bool
	LastModified string
	Permissions  string
}

// FileTypeFromName classifies a file by its extension.
func FileTypeFromName(name string) FileType {
	ext := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = name[i+1:]
	}

	switch strings.ToLower(ext) {
	case "xls", "xlsx", "csv":
		return FileTypeSpreadsheet
	case "ppt", "pptx":
		return FileTypePresentation
	default:
		// doc, docx, txt, pdf and anything unrecognised
		return FileTypeDocument
	}
}

// FormatSize renders a byte count as "N B", "x.x KB" or "x.x MB" (base 1024).
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

// FileFilter narrows a file listing. Zero-valued fields match everything
// and set fields are combined with AND.
type FileFilter struct {
	// Query is a case-insensitive substring of the file name.
	Query string
	// Type must equal the file type when set.
	Type FileType
	// Encrypted must equal the file's encrypted flag when non-nil.
	Encrypted *bool
}

// Matches reports whether f passes the filter.
func (ff FileFilter) Matches(f FileRecord) bool {
	if ff.Query != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(ff.Query)) {
		return false
	}
	if ff.Type != "" && f.Type != ff.Type {
		return false
	}
	if ff.Encrypted != nil && f.Encrypted != *ff.Encrypted {
		return false
	}
	return true
}

// SeedFiles returns the records every new session starts with, in display order.
func SeedFiles() []FileRecord {
	return []FileRecord{
		{ID: "1", Name: "Project_Report.docx", Type: FileTypeDocument, Size: "2.4 MB", Encrypted: true, Shared: false, LastModified: "2025-03-15", Permissions: OwnerPermission},
		{ID: "2", Name: "Financial_Data.xlsx", Type: FileTypeSpreadsheet, Size: "1.8 MB", Encrypted: true, Shared: true, LastModified: "2025-03-10", Permissions: OwnerPermission},
		{ID: "3", Name: "Presentation.pptx", Type: FileTypePresentation, Size: "5.2 MB", Encrypted: false, Shared: false, LastModified: "2025-03-05", Permissions: OwnerPermission},
	}
}

// BatchAction is an operation applied to a selection of files.
type BatchAction string

const (
	BatchEncrypt BatchAction = "encrypt"
	BatchShare   BatchAction = "share"
	BatchDelete  BatchAction = "delete"
)

// Valid reports whether a is a known batch action.
func (a BatchAction) Valid() bool {
	switch a {
	case BatchEncrypt, BatchShare, BatchDelete:
		return true
	}
	return false
}

// BatchResult reports what a batch operation did to each selected id.
type BatchResult struct {
	Action BatchAction
	// Changed ids were modified (or removed).
	Changed []string
	// Unchanged ids exist but needed nothing, e.g. already encrypted.
	Unchanged []string
	// Missing ids did not name a file in the session.
	Missing []string
}

// UploadJob is a simulated upload that gains progress on a timer.
type UploadJob struct {
	ID         string
	SessionID  string
	FileName   string
	SizeBytes  int64
	Encryption EncryptionType
	Progress   int
	Done       bool
	FileID     string
	StartedAt  time.Time
}
