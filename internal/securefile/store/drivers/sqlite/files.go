package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/store"
)

type filesRepo struct {
	db DBTX
}

const fileColumns = `id, session_id, name, type, size, encrypted, shared, last_modified, permissions`

func scanFile(row interface{ Scan(...any) error }) (domain.FileRecord, error) {
	var (
		f        domain.FileRecord
		fileType string
	)
	err := row.Scan(&f.ID, &f.SessionID, &f.Name, &fileType, &f.Size, &f.Encrypted, &f.Shared, &f.LastModified, &f.Permissions)
	f.Type = domain.FileType(fileType)
	return f, err
}

func (r *filesRepo) InsertFile(ctx context.Context, f domain.FileRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO files (`+fileColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.SessionID, f.Name, string(f.Type), f.Size, f.Encrypted, f.Shared, f.LastModified, f.Permissions,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("file %s: %w", f.ID, store.ErrAlreadyExists)
	}
	return err
}

func (r *filesRepo) GetFile(ctx context.Context, sessionID, id string) (domain.FileRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+fileColumns+` FROM files WHERE session_id = ? AND id = ?`,
		sessionID, id,
	)

	f, err := scanFile(row)
	if err != nil {
		return domain.FileRecord{}, mapNotFound(err)
	}
	return f, nil
}

func (r *filesRepo) ListFiles(ctx context.Context, sessionID string) ([]domain.FileRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+fileColumns+` FROM files WHERE session_id = ? ORDER BY seq DESC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FileRecord
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *filesRepo) SetFileFlags(ctx context.Context, sessionID, id string, encrypted, shared bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE files SET encrypted = ?, shared = ? WHERE session_id = ? AND id = ?`,
		encrypted, shared, sessionID, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *filesRepo) DeleteFile(ctx context.Context, sessionID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM files WHERE session_id = ? AND id = ?`,
		sessionID, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *filesRepo) DeleteSessionFiles(ctx context.Context, sessionID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE session_id = ?`, sessionID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func requireAffected(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
