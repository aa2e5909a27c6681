package postgres

import (
	"context"
	"database/sql"
	"time"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Insert(ctx context.Context, j *domain.Job) (int64, error) {
	query := `INSERT INTO jobs (garage_id, reg_no, date_in, date_out, cost, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, j.GarageID, j.RegNo, j.DateIn, j.DateOut, j.Cost, now, now).Scan(&j.ID)
	if err != nil {
		return 0, storeErr("insert job", err)
	}
	return j.ID, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	j := &domain.Job{}
	query := `SELECT id, garage_id, reg_no, date_in, date_out, cost FROM jobs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.GarageID, &j.RegNo, &j.DateIn, &j.DateOut, &j.Cost)
	if err != nil {
		return nil, storeErr("get job", err)
	}
	return j, nil
}

func (r *jobRepository) FindAll(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT id, garage_id, reg_no, date_in, date_out, cost FROM jobs ORDER BY date_in DESC`
	return r.queryJobs(ctx, "list jobs", query)
}

func (r *jobRepository) FindByCar(ctx context.Context, regNo string) ([]domain.Job, error) {
	query := `SELECT id, garage_id, reg_no, date_in, date_out, cost FROM jobs WHERE reg_no = $1 ORDER BY date_in DESC`
	return r.queryJobs(ctx, "list jobs by car", query, regNo)
}

func (r *jobRepository) FindByGarage(ctx context.Context, garageID int64) ([]domain.Job, error) {
	query := `SELECT id, garage_id, reg_no, date_in, date_out, cost FROM jobs WHERE garage_id = $1 ORDER BY date_in DESC`
	return r.queryJobs(ctx, "list jobs by garage", query, garageID)
}

func (r *jobRepository) FindOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Job, error) {
	query := `SELECT id, garage_id, reg_no, date_in, date_out, cost FROM jobs WHERE date_out IS NULL AND date_in <= $1 ORDER BY date_in`
	return r.queryJobs(ctx, "list stale open jobs", query, cutoff)
}

func (r *jobRepository) Update(ctx context.Context, j *domain.Job) (bool, error) {
	query := `UPDATE jobs SET garage_id=$1, reg_no=$2, date_in=$3, date_out=$4, cost=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, j.GarageID, j.RegNo, j.DateIn, j.DateOut, j.Cost, time.Now(), j.ID)
	if err != nil {
		return false, storeErr("update job", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("update job", err)
	}
	return n > 0, nil
}

func (r *jobRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, storeErr("delete job", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("delete job", err)
	}
	return n > 0, nil
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM jobs`).Scan(&n); err != nil {
		return 0, storeErr("count jobs", err)
	}
	return n, nil
}

func (r *jobRepository) AverageCostByCustomer(ctx context.Context, customerID int64) (float64, error) {
	query := `SELECT COALESCE(AVG(j.cost), 0)
	          FROM jobs j
	          INNER JOIN cars c ON j.reg_no = c.reg_no
	          WHERE c.customer_id = $1 AND j.cost IS NOT NULL AND j.date_out IS NOT NULL`
	var avg float64
	if err := r.db.QueryRowContext(ctx, query, customerID).Scan(&avg); err != nil {
		return 0, storeErr("average cost by customer", err)
	}
	return avg, nil
}

func (r *jobRepository) queryJobs(ctx context.Context, op, query string, args ...interface{}) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.GarageID, &j.RegNo, &j.DateIn, &j.DateOut, &j.Cost); err != nil {
			return nil, storeErr(op, err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return jobs, nil
}
