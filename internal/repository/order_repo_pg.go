package repository

import (
	"context"
	"errors"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type OrderRepository interface {
	// Create persists the order and all its tickets in one transaction.
	// A conflicting (flight, row, seat) triple aborts the whole batch
	// with a domain.SeatTakenError.
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.OrderDetail, int, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (reference, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		order.Reference, order.UserID).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		err := tx.QueryRow(ctx, `INSERT INTO tickets (flight_id, order_id, row, seat) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.FlightID, t.OrderID, t.Row, t.Seat).Scan(&t.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgUniqueViolation:
					return &domain.SeatTakenError{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
				case pgForeignKeyViolation:
					return domain.NotFoundError("flight", t.FlightID)
				}
			}
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.OrderDetail, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, reference, user_id, created_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]domain.OrderDetail, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var o domain.OrderDetail
		if err := rows.Scan(&o.ID, &o.Reference, &o.UserID, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		o.Tickets = make([]domain.TicketDetail, 0)
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(orders) == 0 {
		return orders, total, nil
	}

	ticketRows, err := r.db.Query(ctx, `
		SELECT t.id, t.flight_id, t.order_id, t.row, t.seat,
		       f.number, src.close_big_city, dst.close_big_city,
		       f.departure_time, f.arrival_time
		FROM tickets t
		JOIN flights f ON f.id = t.flight_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE t.order_id = ANY($1)
		ORDER BY t.row, t.seat`, ids)
	if err != nil {
		return nil, 0, err
	}
	defer ticketRows.Close()

	byOrder := make(map[int64]int, len(orders))
	for i, o := range orders {
		byOrder[o.ID] = i
	}
	for ticketRows.Next() {
		var td domain.TicketDetail
		if err := ticketRows.Scan(&td.ID, &td.FlightID, &td.OrderID, &td.Row, &td.Seat,
			&td.FlightNumber, &td.SourceCity, &td.DestinationCity,
			&td.DepartureTime, &td.ArrivalTime); err != nil {
			return nil, 0, err
		}
		if i, ok := byOrder[td.OrderID]; ok {
			orders[i].Tickets = append(orders[i].Tickets, td)
		}
	}
	return orders, total, ticketRows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
