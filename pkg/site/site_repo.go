package site

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrSiteNotFound = errors.New("site not found")

type SiteRepo interface {
	Store(ctx context.Context, site Site) error
	Get(ctx context.Context, id string) (Site, error)
	GetAll(ctx context.Context) ([]Site, error)
	Update(ctx context.Context, site Site) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type SiteRepoImpl struct {
	db *pgxpool.Pool
}

func NewSiteRepo(db *pgxpool.Pool) *SiteRepoImpl {
	return &SiteRepoImpl{db: db}
}

func (r *SiteRepoImpl) Store(ctx context.Context, site Site) error {
	query := `INSERT INTO sites (id, name, location, status, start_date, end_date, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		site.ID,
		site.Name,
		site.Location,
		string(site.Status),
		dateParam(site.StartDate),
		dateParam(site.EndDate),
		site.Description,
	)
	if err != nil {
		err := fmt.Errorf("could not store site: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *SiteRepoImpl) Get(ctx context.Context, id string) (Site, error) {
	query := `SELECT id, name, location, status, start_date, end_date, description
			  FROM sites WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	site, err := scanSite(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Site{}, ErrSiteNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not get site: %w", err)
		log.Error(err)
		return Site{}, err
	}
	return site, nil
}

func (r *SiteRepoImpl) GetAll(ctx context.Context) ([]Site, error) {
	query := `SELECT id, name, location, status, start_date, end_date, description
			  FROM sites ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query sites: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var sites []Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			err := fmt.Errorf("could not scan site: %w", err)
			log.Error(err)
			return nil, err
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return sites, nil
}

func (r *SiteRepoImpl) Update(ctx context.Context, site Site) (bool, error) {
	query := `UPDATE sites SET
				  name = $1,
				  location = $2,
				  status = $3,
				  start_date = $4,
				  end_date = $5,
				  description = $6
			  WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		site.Name,
		site.Location,
		string(site.Status),
		dateParam(site.StartDate),
		dateParam(site.EndDate),
		site.Description,
		site.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update site: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SiteRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM sites WHERE id = $1", id)
	if err != nil {
		err := fmt.Errorf("could not delete site: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanSite(row pgx.Row) (Site, error) {
	var site Site
	var status string
	var startDate, endDate *time.Time
	if err := row.Scan(
		&site.ID,
		&site.Name,
		&site.Location,
		&status,
		&startDate,
		&endDate,
		&site.Description,
	); err != nil {
		return Site{}, err
	}
	site.Status = SiteStatus(status)
	if startDate != nil {
		site.StartDate = *startDate
	}
	if endDate != nil {
		site.EndDate = *endDate
	}
	return site, nil
}

func dateParam(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format("2006-01-02")
}
