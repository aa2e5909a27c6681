package postgres

import (
	"context"
	"database/sql"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Insert(ctx context.Context, c *domain.Customer) (int64, error) {
	query := `INSERT INTO customers (forename, surname, address, post_code, phone_no)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.Forename, c.Surname, c.Address, c.PostCode, c.PhoneNo).Scan(&c.ID)
	if err != nil {
		return 0, storeErr("insert customer", err)
	}
	return c.ID, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, forename, surname, address, post_code, phone_no FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Forename, &c.Surname, &c.Address, &c.PostCode, &c.PhoneNo)
	if err != nil {
		return nil, storeErr("get customer", err)
	}
	return c, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, forename, surname, address, post_code, phone_no FROM customers ORDER BY surname, forename`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("list customers", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Forename, &c.Surname, &c.Address, &c.PostCode, &c.PhoneNo); err != nil {
			return nil, storeErr("list customers", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list customers", err)
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) (bool, error) {
	query := `UPDATE customers SET forename=$1, surname=$2, address=$3, post_code=$4, phone_no=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.Forename, c.Surname, c.Address, c.PostCode, c.PhoneNo, c.ID)
	if err != nil {
		return false, storeErr("update customer", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("update customer", err)
	}
	return n > 0, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, storeErr("delete customer", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("delete customer", err)
	}
	return n > 0, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&n); err != nil {
		return 0, storeErr("count customers", err)
	}
	return n, nil
}
