package labourstaff

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrPersonNotFound = errors.New("labour/staff member not found")

type PersonRepo interface {
	Store(ctx context.Context, person Person) error
	GetAll(ctx context.Context) ([]Person, error)
	Update(ctx context.Context, person Person) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PersonRepoImpl struct {
	db *pgxpool.Pool
}

func NewPersonRepo(db *pgxpool.Pool) *PersonRepoImpl {
	return &PersonRepoImpl{db: db}
}

func (r *PersonRepoImpl) Store(ctx context.Context, person Person) error {
	query := `INSERT INTO labour_staff (id, name, type, designation, contact, address, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		person.ID,
		person.Name,
		string(person.Type),
		person.Designation,
		person.Contact,
		person.Address,
		person.Notes,
	)
	if err != nil {
		err := fmt.Errorf("could not store labour/staff member: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PersonRepoImpl) GetAll(ctx context.Context) ([]Person, error) {
	query := `SELECT id, name, type, designation, contact, address, notes
			  FROM labour_staff ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query labour/staff: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		var person Person
		var personType string
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&personType,
			&person.Designation,
			&person.Contact,
			&person.Address,
			&person.Notes,
		); err != nil {
			err := fmt.Errorf("could not scan labour/staff member: %w", err)
			log.Error(err)
			return nil, err
		}
		person.Type = PersonType(personType)
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return people, nil
}

func (r *PersonRepoImpl) Update(ctx context.Context, person Person) (bool, error) {
	query := `UPDATE labour_staff SET
				  name = $1,
				  type = $2,
				  designation = $3,
				  contact = $4,
				  address = $5,
				  notes = $6
			  WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		person.Name,
		string(person.Type),
		person.Designation,
		person.Contact,
		person.Address,
		person.Notes,
		person.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update labour/staff member: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PersonRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM labour_staff WHERE id = $1", id)
	if err != nil {
		err := fmt.Errorf("could not delete labour/staff member: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
