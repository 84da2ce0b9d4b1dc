package material

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrMaterialNotFound = errors.New("material not found")

type MaterialRepo interface {
	Store(ctx context.Context, material Material) error
	GetAll(ctx context.Context) ([]Material, error)
	Update(ctx context.Context, material Material) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MaterialRepoImpl struct {
	db *pgxpool.Pool
}

func NewMaterialRepo(db *pgxpool.Pool) *MaterialRepoImpl {
	return &MaterialRepoImpl{db: db}
}

func (r *MaterialRepoImpl) Store(ctx context.Context, material Material) error {
	query := `INSERT INTO materials (id, name, category, description) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, material.ID, material.Name, material.Category, material.Description)
	if err != nil {
		err := fmt.Errorf("could not store material: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *MaterialRepoImpl) GetAll(ctx context.Context) ([]Material, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, description FROM materials ORDER BY name`)
	if err != nil {
		err := fmt.Errorf("could not query materials: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var materials []Material
	for rows.Next() {
		var material Material
		if err := rows.Scan(&material.ID, &material.Name, &material.Category, &material.Description); err != nil {
			err := fmt.Errorf("could not scan material: %w", err)
			log.Error(err)
			return nil, err
		}
		materials = append(materials, material)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return materials, nil
}

func (r *MaterialRepoImpl) Update(ctx context.Context, material Material) (bool, error) {
	query := `UPDATE materials SET name = $1, category = $2, description = $3 WHERE id = $4`

	tag, err := r.db.Exec(ctx, query, material.Name, material.Category, material.Description, material.ID)
	if err != nil {
		err := fmt.Errorf("could not update material: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *MaterialRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM materials WHERE id = $1", id)
	if err != nil {
		err := fmt.Errorf("could not delete material: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
