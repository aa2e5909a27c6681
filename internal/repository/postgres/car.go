package postgres

import (
	"context"
	"database/sql"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Insert(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (reg_no, make, model, year, customer_id) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, c.RegNo, c.Make, c.Model, c.Year, c.CustomerID); err != nil {
		return storeErr("insert car", err)
	}
	return nil
}

func (r *carRepository) GetByRegNo(ctx context.Context, regNo string) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT reg_no, make, model, year, customer_id FROM cars WHERE reg_no = $1`
	err := r.db.QueryRowContext(ctx, query, regNo).Scan(&c.RegNo, &c.Make, &c.Model, &c.Year, &c.CustomerID)
	if err != nil {
		return nil, storeErr("get car", err)
	}
	return c, nil
}

func (r *carRepository) FindAll(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT reg_no, make, model, year, customer_id FROM cars ORDER BY reg_no`
	return r.queryCars(ctx, "list cars", query)
}

func (r *carRepository) FindByCustomer(ctx context.Context, customerID int64) ([]domain.Car, error) {
	query := `SELECT reg_no, make, model, year, customer_id FROM cars WHERE customer_id = $1 ORDER BY reg_no`
	return r.queryCars(ctx, "list cars by customer", query, customerID)
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) (bool, error) {
	query := `UPDATE cars SET make=$1, model=$2, year=$3, customer_id=$4 WHERE reg_no=$5`
	res, err := r.db.ExecContext(ctx, query, c.Make, c.Model, c.Year, c.CustomerID, c.RegNo)
	if err != nil {
		return false, storeErr("update car", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("update car", err)
	}
	return n > 0, nil
}

func (r *carRepository) Delete(ctx context.Context, regNo string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE reg_no = $1`, regNo)
	if err != nil {
		return false, storeErr("delete car", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("delete car", err)
	}
	return n > 0, nil
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars`).Scan(&n); err != nil {
		return 0, storeErr("count cars", err)
	}
	return n, nil
}

func (r *carRepository) queryCars(ctx context.Context, op, query string, args ...interface{}) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.RegNo, &c.Make, &c.Model, &c.Year, &c.CustomerID); err != nil {
			return nil, storeErr(op, err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return cars, nil
}
