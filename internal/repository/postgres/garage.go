package postgres

import (
	"context"
	"database/sql"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type garageRepository struct {
	db *sql.DB
}

func NewGarageRepository(db *sql.DB) repository.GarageRepository {
	return &garageRepository{db: db}
}

func (r *garageRepository) Insert(ctx context.Context, g *domain.Garage) (int64, error) {
	query := `INSERT INTO garages (name, address, town, post_code, phone_no)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, g.Name, g.Address, g.Town, g.PostCode, g.PhoneNo).Scan(&g.ID)
	if err != nil {
		return 0, storeErr("insert garage", err)
	}
	return g.ID, nil
}

func (r *garageRepository) GetByID(ctx context.Context, id int64) (*domain.Garage, error) {
	g := &domain.Garage{}
	query := `SELECT id, name, address, town, post_code, phone_no FROM garages WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Address, &g.Town, &g.PostCode, &g.PhoneNo)
	if err != nil {
		return nil, storeErr("get garage", err)
	}
	return g, nil
}

func (r *garageRepository) FindAll(ctx context.Context) ([]domain.Garage, error) {
	query := `SELECT id, name, address, town, post_code, phone_no FROM garages ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("list garages", err)
	}
	defer rows.Close()

	var garages []domain.Garage
	for rows.Next() {
		var g domain.Garage
		if err := rows.Scan(&g.ID, &g.Name, &g.Address, &g.Town, &g.PostCode, &g.PhoneNo); err != nil {
			return nil, storeErr("list garages", err)
		}
		garages = append(garages, g)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list garages", err)
	}
	return garages, nil
}

func (r *garageRepository) Update(ctx context.Context, g *domain.Garage) (bool, error) {
	query := `UPDATE garages SET name=$1, address=$2, town=$3, post_code=$4, phone_no=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, g.Name, g.Address, g.Town, g.PostCode, g.PhoneNo, g.ID)
	if err != nil {
		return false, storeErr("update garage", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("update garage", err)
	}
	return n > 0, nil
}

func (r *garageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM garages WHERE id = $1`, id)
	if err != nil {
		return false, storeErr("delete garage", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("delete garage", err)
	}
	return n > 0, nil
}

func (r *garageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM garages`).Scan(&n); err != nil {
		return 0, storeErr("count garages", err)
	}
	return n, nil
}
