package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// CollaboratorSchema postgres table for collaborator, permissions are derived from role on read
const CollaboratorSchema = `
CREATE TABLE IF NOT EXISTS collaborators (
	id          TEXT PRIMARY KEY,
	wedding_id  TEXT NOT NULL,
	user_id     TEXT NULL,
	email       TEXT NOT NULL,
	name        TEXT NOT NULL DEFAULT '',
	role        TEXT NOT NULL,
	status      TEXT NOT NULL,
	invited_by  TEXT NOT NULL,
	invited_at  TIMESTAMPTZ NOT NULL,
	accepted_at TIMESTAMPTZ NULL,
	updated_at  TIMESTAMPTZ NOT NULL,
	UNIQUE (wedding_id, email),
	UNIQUE (wedding_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_collaborators_user_status ON collaborators (user_id, status, accepted_at DESC);
CREATE INDEX IF NOT EXISTS idx_collaborators_email_status ON collaborators (email, status);
`

const (
	pqUniqueViolation = "23505"

	collaboratorColumns = `id, wedding_id, user_id, email, name, role, status, invited_by, invited_at, accepted_at, updated_at`
)

type collaboratorRepoSQL struct {
	readDB, writeDB *sql.DB
}

// NewCollaboratorRepoSQL postgres repo constructor
func NewCollaboratorRepoSQL(readDB, writeDB *sql.DB) CollaboratorRepository {
	return &collaboratorRepoSQL{readDB: readDB, writeDB: writeDB}
}

// EnsureCollaboratorSchema create collaborator table when not exist
func EnsureCollaboratorSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, CollaboratorSchema); err != nil {
		return fmt.Errorf("ensure collaborator schema: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCollaborator(row rowScanner) (*domain.Collaborator, error) {
	var (
		data       domain.Collaborator
		userID     sql.NullString
		acceptedAt pq.NullTime
	)
	err := row.Scan(&data.ID, &data.WeddingID, &userID, &data.Email, &data.Name, &data.Role,
		&data.Status, &data.InvitedBy, &data.InvitedAt, &acceptedAt, &data.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		data.UserID = &userID.String
	}
	if acceptedAt.Valid {
		data.AcceptedAt = &acceptedAt.Time
	}
	data.Permissions = domain.PermissionsFor(data.Role)
	return &data, nil
}

func (r *collaboratorRepoSQL) queryOne(ctx context.Context, query string, args ...interface{}) (*domain.Collaborator, error) {
	data, err := scanCollaborator(r.readDB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query collaborator: %w", err)
	}
	return data, nil
}

func (r *collaboratorRepoSQL) queryMany(ctx context.Context, query string, args ...interface{}) ([]domain.Collaborator, error) {
	rows, err := r.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query collaborators: %w", err)
	}
	defer rows.Close()

	data := []domain.Collaborator{}
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collaborator: %w", err)
		}
		data = append(data, *c)
	}
	return data, rows.Err()
}

func (r *collaboratorRepoSQL) FindByWeddingAndUser(ctx context.Context, weddingID, userID string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:FindByWeddingAndUser")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.queryOne(ctx, `SELECT `+collaboratorColumns+` FROM collaborators WHERE wedding_id=$1 AND user_id=$2`, weddingID, userID)
}

func (r *collaboratorRepoSQL) FindByWeddingAndEmail(ctx context.Context, weddingID, email string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:FindByWeddingAndEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.queryOne(ctx, `SELECT `+collaboratorColumns+` FROM collaborators WHERE wedding_id=$1 AND email=$2`, weddingID, email)
}

func (r *collaboratorRepoSQL) FindByID(ctx context.Context, id string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.queryOne(ctx, `SELECT `+collaboratorColumns+` FROM collaborators WHERE id=$1`, id)
}

func (r *collaboratorRepoSQL) FindAcceptedByUser(ctx context.Context, userID string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:FindAcceptedByUser")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.queryOne(ctx, `SELECT `+collaboratorColumns+` FROM collaborators
		WHERE user_id=$1 AND status=$2 ORDER BY accepted_at DESC NULLS LAST LIMIT 1`, userID, domain.StatusAccepted)
}

func (r *collaboratorRepoSQL) FetchByWedding(ctx context.Context, weddingID string) (data []domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:FetchByWedding")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.queryMany(ctx, `SELECT `+collaboratorColumns+` FROM collaborators WHERE wedding_id=$1 ORDER BY invited_at`, weddingID)
}

func (r *collaboratorRepoSQL) FetchPendingByEmail(ctx context.Context, email string) (data []domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:FetchPendingByEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.queryMany(ctx, `SELECT `+collaboratorColumns+` FROM collaborators WHERE email=$1 AND status=$2 ORDER BY invited_at`,
		email, domain.StatusPending)
}

func (r *collaboratorRepoSQL) Insert(ctx context.Context, data *domain.Collaborator) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:Insert")
	defer func() { trace.SetError(err); trace.Finish() }()

	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	data.UpdatedAt = time.Now()
	tracer.Log(ctx, "data", data)

	_, err = r.writeDB.ExecContext(ctx, `INSERT INTO collaborators (`+collaboratorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		data.ID, data.WeddingID, data.UserID, data.Email, data.Name, data.Role, data.Status,
		data.InvitedBy, data.InvitedAt, data.AcceptedAt, data.UpdatedAt)
	return translateSQLError("insert collaborator", err)
}

// buildUpdateQuery build guarded update statement from patch, guards become part of WHERE clause
func buildUpdateQuery(id string, patch domain.CollaboratorPatch, now time.Time) (string, []interface{}) {
	var (
		sets  []string
		where []string
		args  []interface{}
	)
	bind := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if patch.UserID != nil {
		sets = append(sets, "user_id="+bind(*patch.UserID))
	}
	if patch.Status != nil {
		sets = append(sets, "status="+bind(string(*patch.Status)))
	}
	if patch.Role != nil {
		sets = append(sets, "role="+bind(string(*patch.Role)))
	}
	if patch.AcceptedAt != nil {
		sets = append(sets, "accepted_at="+bind(*patch.AcceptedAt))
	}
	sets = append(sets, "updated_at="+bind(now))

	where = append(where, "id="+bind(id))
	if patch.ExpectStatus != nil {
		where = append(where, "status="+bind(string(*patch.ExpectStatus)))
	}
	if patch.ExpectUnbound {
		where = append(where, "user_id IS NULL")
	}

	return "UPDATE collaborators SET " + strings.Join(sets, ", ") + " WHERE " + strings.Join(where, " AND "), args
}

func (r *collaboratorRepoSQL) Update(ctx context.Context, id string, patch domain.CollaboratorPatch) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:Update")
	defer func() { trace.SetError(err); trace.Finish() }()

	query, args := buildUpdateQuery(id, patch, time.Now())
	trace.SetTag("query", query)

	res, err := r.writeDB.ExecContext(ctx, query, args...)
	if err != nil {
		return translateSQLError("update collaborator", err)
	}
	return checkAffected(res)
}

func (r *collaboratorRepoSQL) Delete(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoSQL:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	res, err := r.writeDB.ExecContext(ctx, `DELETE FROM collaborators WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete collaborator: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// translateSQLError map unique violation to domain.ErrDuplicateCollaboration
func translateSQLError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCollaboration, pqErr.Constraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}
