package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const selectJob = `SELECT id, company, position, status, job_type, created_by, created_at, updated_at FROM jobs`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, company, position, status, job_type, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		j.ID, j.Company, j.Position, j.Status, j.Type, j.CreatedBy, j.CreatedAt, j.UpdatedAt,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, ownerID, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, selectJob+` WHERE id = $1 AND created_by = $2`, jobID, ownerID)
	return scanJob(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET company = $3, position = $4, status = $5, job_type = $6, updated_at = $7
		 WHERE id = $1 AND created_by = $2`,
		j.ID, j.CreatedBy, j.Company, j.Position, j.Status, j.Type, j.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, ownerID, jobID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND created_by = $2`, jobID, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) List(ctx context.Context, f job.ListFilter) ([]job.Job, error) {
	query, args := buildListQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Company, &j.Position, &j.Status, &j.Type, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context, f job.ListFilter) (int, error) {
	query, args := buildCountQuery(f)

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) CountByStatus(ctx context.Context, ownerID uuid.UUID) ([]job.StatusCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM jobs WHERE created_by = $1 GROUP BY status`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.StatusCount, 0, len(job.Statuses))
	for rows.Next() {
		var c job.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) CountByMonth(ctx context.Context, ownerID uuid.UUID, months int) ([]job.MonthCount, error) {
	if months <= 0 {
		months = 6
	}

	rows, err := r.db.Query(ctx,
		`SELECT EXTRACT(YEAR FROM created_at)::int AS year,
		        EXTRACT(MONTH FROM created_at)::int AS month,
		        COUNT(*)
		 FROM jobs
		 WHERE created_by = $1
		 GROUP BY year, month
		 ORDER BY year DESC, month DESC
		 LIMIT $2`,
		ownerID, months,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.MonthCount, 0, months)
	for rows.Next() {
		var c job.MonthCount
		if err := rows.Scan(&c.Year, &c.Month, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// buildListQuery composes the dynamic filter into a single SELECT. The owner
// predicate always comes first and cannot be omitted by any input.
func buildListQuery(f job.ListFilter) (string, []any) {
	where, args := listPredicates(f)

	var b strings.Builder
	b.WriteString(selectJob)
	b.WriteString(where)
	b.WriteString(" ORDER BY ")
	b.WriteString(orderClause(f.Sort))

	args = append(args, f.Limit)
	fmt.Fprintf(&b, " LIMIT $%d", len(args))
	args = append(args, f.Offset)
	fmt.Fprintf(&b, " OFFSET $%d", len(args))

	return b.String(), args
}

// buildCountQuery counts the rows matching the same predicates, ignoring
// sort and pagination.
func buildCountQuery(f job.ListFilter) (string, []any) {
	where, args := listPredicates(f)
	return `SELECT COUNT(*) FROM jobs` + where, args
}

func listPredicates(f job.ListFilter) (string, []any) {
	args := []any{f.OwnerID}
	preds := []string{"created_by = $1"}

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		preds = append(preds, fmt.Sprintf("position ILIKE $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		preds = append(preds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Type != nil {
		args = append(args, *f.Type)
		preds = append(preds, fmt.Sprintf("job_type = $%d", len(args)))
	}

	return " WHERE " + strings.Join(preds, " AND "), args
}

func orderClause(s job.Sort) string {
	switch s {
	case job.SortOldest:
		return "created_at ASC"
	case job.SortAZ:
		return "position ASC"
	case job.SortZA:
		return "position DESC"
	default:
		return "created_at DESC"
	}
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.Company, &j.Position, &j.Status, &j.Type, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}
