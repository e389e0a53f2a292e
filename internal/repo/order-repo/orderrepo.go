package orderrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/pg"
)

const orderColumns = `id, account_id, side, price, amount, locked, status, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pg.Scanner, o *domain.Order) error {
	return row.Scan(&o.ID, &o.AccountID, &o.Side, &o.Price, &o.Amount, &o.Locked, &o.Status, &o.CreatedAt)
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
        INSERT INTO orders (account_id, side, price, amount, locked)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + orderColumns + `
    `
	row := r.db.QueryRow(ctx, query, order.AccountID, order.Side, order.Price, order.Amount, order.Locked)
	var saved domain.Order
	if err := scanOrder(row, &saved); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var order domain.Order
	err := scanOrder(row, &order)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// FindByIDForUpdate locks the order row inside the caller's transaction.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, id)
	var order domain.Order
	err := scanOrder(row, &order)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// BestBuy returns the highest-priced active buy order, earliest first on
// ties, locked for the caller's transaction.
func (r *Repository) BestBuy(ctx context.Context) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE side = 'buy' AND status = 'active'
        ORDER BY price DESC, created_at ASC
        LIMIT 1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query)
	var order domain.Order
	err := scanOrder(row, &order)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get best buy", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// BestSell returns the lowest-priced active sell order, earliest first on
// ties, locked for the caller's transaction.
func (r *Repository) BestSell(ctx context.Context) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE side = 'sell' AND status = 'active'
        ORDER BY price ASC, created_at ASC
        LIMIT 1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query)
	var order domain.Order
	err := scanOrder(row, &order)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get best sell", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// FindActiveAtPrice returns active orders of one side resting at exactly
// one price, in time priority, locked for the caller's transaction.
func (r *Repository) FindActiveAtPrice(ctx context.Context, side domain.OrderSide, price int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE side = $1 AND status = 'active' AND price = $2
        ORDER BY created_at ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, side, price)
	if err != nil {
		zap.L().Error("can't get orders at price", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) FindActiveByAccount(ctx context.Context, accountID int64) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE account_id = $1 AND status = 'active'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get account orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateFill stores the remaining amount and locked collateral after a fill.
func (r *Repository) UpdateFill(ctx context.Context, id int, amount, locked float64) error {
	query := `
        UPDATE orders
        SET amount = $1, locked = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, amount, locked, id); err != nil {
		zap.L().Error("failed to update order fill", zap.Error(err))
		return err
	}
	return nil
}

// SetStatus moves an active order into a terminal status and zeroes its
// collateral. Returns false if the order was no longer active.
func (r *Repository) SetStatus(ctx context.Context, id int, status domain.OrderStatus) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, amount = 0, locked = 0
        WHERE id = $2 AND status = 'active'
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to set order status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SaveTrade(ctx context.Context, trade *domain.Trade) error {
	query := `
        INSERT INTO trades (buy_order_id, sell_order_id, amount, price)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, trade.BuyOrderID, trade.SellOrderID, trade.Amount, trade.Price); err != nil {
		zap.L().Error("can't save trade", zap.Error(err))
		return err
	}
	return nil
}

// AggregateBook returns active order volume grouped by price level for one
// side. Bids come back descending, asks ascending.
func (r *Repository) AggregateBook(ctx context.Context, side domain.OrderSide) ([]domain.PriceLevel, error) {
	query := `
        SELECT price, SUM(amount) AS amount, COUNT(*) AS orders
        FROM orders
        WHERE side = $1 AND status = 'active'
        GROUP BY price
        ORDER BY price DESC
    `
	if side == domain.SideSell {
		query = `
        SELECT price, SUM(amount) AS amount, COUNT(*) AS orders
        FROM orders
        WHERE side = $1 AND status = 'active'
        GROUP BY price
        ORDER BY price ASC
    `
	}
	rows, err := r.db.Query(ctx, query, side)
	if err != nil {
		zap.L().Error("can't aggregate order book", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var levels []domain.PriceLevel
	for rows.Next() {
		var level domain.PriceLevel
		if err := rows.Scan(&level.Price, &level.Amount, &level.Orders); err != nil {
			zap.L().Error("can't scan price level", zap.Error(err))
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
