package machinetool

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrMachineToolNotFound = errors.New("machine/tool not found")

type MachineToolRepo interface {
	Store(ctx context.Context, item MachineTool) error
	Get(ctx context.Context, id string) (MachineTool, error)
	GetAll(ctx context.Context) ([]MachineTool, error)
	Update(ctx context.Context, item MachineTool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MachineToolRepoImpl struct {
	db *pgxpool.Pool
}

func NewMachineToolRepo(db *pgxpool.Pool) *MachineToolRepoImpl {
	return &MachineToolRepoImpl{db: db}
}

func (r *MachineToolRepoImpl) Store(ctx context.Context, item MachineTool) error {
	query := `INSERT INTO machines_tools (id, name, type, brand, status, quantity, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		string(item.Type),
		item.Brand,
		string(item.Status),
		item.Quantity,
		item.Description,
	)
	if err != nil {
		err := fmt.Errorf("could not store machine/tool: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *MachineToolRepoImpl) Get(ctx context.Context, id string) (MachineTool, error) {
	query := `SELECT id, name, type, brand, status, quantity, description
			  FROM machines_tools WHERE id = $1`

	item, err := scanMachineTool(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return MachineTool{}, ErrMachineToolNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not get machine/tool: %w", err)
		log.Error(err)
		return MachineTool{}, err
	}
	return item, nil
}

func (r *MachineToolRepoImpl) GetAll(ctx context.Context) ([]MachineTool, error) {
	query := `SELECT id, name, type, brand, status, quantity, description
			  FROM machines_tools ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query machines/tools: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var items []MachineTool
	for rows.Next() {
		item, err := scanMachineTool(rows)
		if err != nil {
			err := fmt.Errorf("could not scan machine/tool: %w", err)
			log.Error(err)
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return items, nil
}

func (r *MachineToolRepoImpl) Update(ctx context.Context, item MachineTool) (bool, error) {
	query := `UPDATE machines_tools SET
				  name = $1,
				  type = $2,
				  brand = $3,
				  status = $4,
				  quantity = $5,
				  description = $6
			  WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		item.Name,
		string(item.Type),
		item.Brand,
		string(item.Status),
		item.Quantity,
		item.Description,
		item.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update machine/tool: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *MachineToolRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM machines_tools WHERE id = $1", id)
	if err != nil {
		err := fmt.Errorf("could not delete machine/tool: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanMachineTool(row pgx.Row) (MachineTool, error) {
	var item MachineTool
	var itemType, status string
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&itemType,
		&item.Brand,
		&status,
		&item.Quantity,
		&item.Description,
	); err != nil {
		return MachineTool{}, err
	}
	item.Type = MachineToolType(itemType)
	item.Status = MachineToolStatus(status)
	return item, nil
}
