// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/ports"
)

const uniqueViolation = "23505"

const orderColumns = `id, sender_id, delivery_partner_id, package_description, pickup_address,
	delivery_address, amount, status, created_at`

type PostgresRepository struct {
	db *sql.DB
}

var (
	_ ports.UserRepositoryPort  = (*PostgresRepository)(nil)
	_ ports.OrderRepositoryPort = (*PostgresRepository)(nil)
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password, name, phone, user_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Phone, string(user.Role), user.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email", email)
}

func (r *PostgresRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findUser(ctx, "id", id)
}

func (r *PostgresRepository) findUser(ctx context.Context, column, value string) (*domain.User, error) {
	user := &domain.User{}
	var role string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, password, name, phone, user_type, created_at FROM users WHERE "+column+" = $1", value).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Phone, &role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return user, nil
}

func (r *PostgresRepository) UpdateUserProfile(ctx context.Context, id, name, phone string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE users SET name = $1, phone = $2 WHERE id = $3", name, phone, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO orders (sender_id, package_description, pickup_address, delivery_address, amount, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		order.SenderID, order.PackageDescription, order.PickupAddress, order.DeliveryAddress,
		order.Amount, string(order.Status), order.CreatedAt,
	).Scan(&order.ID)
}

func (r *PostgresRepository) FindOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	query, args := buildListQuery(filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// buildListQuery renders filter as a parameterized SELECT, newest first.
func buildListQuery(filter domain.OrderFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.SenderID != "" {
		conditions = append(conditions, "sender_id = "+arg(filter.SenderID))
	}
	if filter.PartnerID != "" {
		conditions = append(conditions, "delivery_partner_id = "+arg(filter.PartnerID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, "status = ANY("+arg(pq.Array(statuses))+")")
	}

	query := "SELECT " + orderColumns + " FROM orders"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	return query, args
}

// UpdateOrderStatus applies d only while the stored status still equals
// d.From. The partner column is only written when d carries one.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, d domain.Decision) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders
		 SET status = $1, delivery_partner_id = COALESCE(NULLIF($2, ''), delivery_partner_id)
		 WHERE id = $3 AND status = $4`,
		string(d.To), d.PartnerID, d.OrderID, string(d.From))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PostgresRepository) CancelOrder(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = 'cancelled' WHERE id = $1 AND status = 'pending'", id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PostgresRepository) PartnerEarnings(ctx context.Context, partnerID string) (*domain.Earnings, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT (created_at AT TIME ZONE 'UTC')::date AS day, SUM(amount)
		 FROM orders
		 WHERE delivery_partner_id = $1 AND status = 'delivered'
		 GROUP BY day
		 ORDER BY day DESC`, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earnings := &domain.Earnings{Total: decimal.Zero, Daily: []domain.DailyEarning{}}
	for rows.Next() {
		var (
			day   time.Time
			total decimal.Decimal
		)
		if err := rows.Scan(&day, &total); err != nil {
			return nil, err
		}
		earnings.Daily = append(earnings.Daily, domain.DailyEarning{
			Date:  time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Total: total,
		})
		earnings.Total = earnings.Total.Add(total)
	}
	return earnings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o       domain.Order
		partner sql.NullString
		status  string
	)
	err := row.Scan(&o.ID, &o.SenderID, &partner, &o.PackageDescription, &o.PickupAddress,
		&o.DeliveryAddress, &o.Amount, &status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.DeliveryPartnerID = partner.String
	o.Status = domain.OrderStatus(status)
	o.CreatedAt = o.CreatedAt.UTC()
	return &o, nil
}
