package expense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepo interface {
	Store(ctx context.Context, expense Expense) error
	Get(ctx context.Context, id string) (Expense, error)
	// ListForSite returns the site's expenses newest first; an empty
	// category means no category filter.
	ListForSite(ctx context.Context, siteID string, category ExpenseCategory) ([]Expense, error)
	Update(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ExpenseRepoImpl struct {
	db *pgxpool.Pool
}

func NewExpenseRepo(db *pgxpool.Pool) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r *ExpenseRepoImpl) Store(ctx context.Context, expense Expense) error {
	fields, err := json.Marshal(expense.Fields)
	if err != nil {
		err := fmt.Errorf("could not encode expense fields: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO expenses (id, expense_date, site_id, expense_type, fields, total_amount, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.Exec(ctx, query,
		expense.ID,
		expense.Date.Format("2006-01-02"),
		expense.SiteID,
		string(expense.Type),
		fields,
		expense.TotalAmount.String(),
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		err := fmt.Errorf("could not store expense: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *ExpenseRepoImpl) Get(ctx context.Context, id string) (Expense, error) {
	query := `SELECT id, expense_date, site_id, expense_type, fields, total_amount::text, created_at, updated_at
			  FROM expenses WHERE id = $1`

	expense, err := scanExpense(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Expense{}, ErrExpenseNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not get expense: %w", err)
		log.Error(err)
		return Expense{}, err
	}
	return expense, nil
}

func (r *ExpenseRepoImpl) ListForSite(ctx context.Context, siteID string, category ExpenseCategory) ([]Expense, error) {
	query := `SELECT id, expense_date, site_id, expense_type, fields, total_amount::text, created_at, updated_at
			  FROM expenses WHERE site_id = $1`
	args := []interface{}{siteID}
	if category != "" {
		query += " AND expense_type = $2"
		args = append(args, string(category))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepoImpl) Update(ctx context.Context, expense Expense) (bool, error) {
	fields, err := json.Marshal(expense.Fields)
	if err != nil {
		err := fmt.Errorf("could not encode expense fields: %w", err)
		log.Error(err)
		return false, err
	}

	query := `UPDATE expenses SET
				  expense_date = $1,
				  site_id = $2,
				  expense_type = $3,
				  fields = $4,
				  total_amount = $5,
				  updated_at = $6
			  WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		expense.Date.Format("2006-01-02"),
		expense.SiteID,
		string(expense.Type),
		fields,
		expense.TotalAmount.String(),
		expense.UpdatedAt,
		expense.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update expense: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ExpenseRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanExpense(row pgx.Row) (Expense, error) {
	var expense Expense
	var expenseType string
	var fields []byte
	var total string
	var expenseDate time.Time
	if err := row.Scan(
		&expense.ID,
		&expenseDate,
		&expense.SiteID,
		&expenseType,
		&fields,
		&total,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	); err != nil {
		return Expense{}, err
	}
	expense.Date = expenseDate
	expense.Type = ExpenseCategory(expenseType)

	if err := json.Unmarshal(fields, &expense.Fields); err != nil {
		return Expense{}, fmt.Errorf("could not decode expense fields: %w", err)
	}
	totalAmount, err := decimal.NewFromString(total)
	if err != nil {
		return Expense{}, fmt.Errorf("could not parse total amount: %w", err)
	}
	expense.TotalAmount = totalAmount
	return expense, nil
}
