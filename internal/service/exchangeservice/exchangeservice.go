package exchangeservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/pg"
	"github.com/streetwars/economy/internal/settings"
	"github.com/streetwars/economy/pkg/money"
)

//go:generate mockgen -source=exchangeservice.go -destination=mock_exchangeservice.go -package=exchangeservice

// Epsilon below which a remaining crypto amount counts as fully filled.
const fillEpsilon = 1e-4

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error)
	BestBuy(ctx context.Context) (*domain.Order, error)
	BestSell(ctx context.Context) (*domain.Order, error)
	FindActiveAtPrice(ctx context.Context, side domain.OrderSide, price int) ([]domain.Order, error)
	FindActiveByAccount(ctx context.Context, accountID int64) ([]domain.Order, error)
	UpdateFill(ctx context.Context, id int, amount, locked float64) error
	SetStatus(ctx context.Context, id int, status domain.OrderStatus) (bool, error)
	SaveTrade(ctx context.Context, trade *domain.Trade) error
	AggregateBook(ctx context.Context, side domain.OrderSide) ([]domain.PriceLevel, error)
}

type AccountRepo interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	CreditCash(ctx context.Context, id int64, amount float64) (float64, error)
	CreditCrypto(ctx context.Context, id int64, amount float64) (float64, error)
	DebitCashStrict(ctx context.Context, id int64, amount float64) (float64, error)
	DebitCrypto(ctx context.Context, id int64, amount float64) (float64, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type OrderBook struct {
	Bids []domain.PriceLevel
	Asks []domain.PriceLevel
}

// Service runs the continuous double auction trading the crypto unit
// against cash. Collateral is locked up front: cash for buys, crypto for
// sells, and locked == remaining*price (buy) or remaining (sell) at all
// times while an order is active.
type Service struct {
	orderRepo   OrderRepo
	accountRepo AccountRepo
	config      SettingsProvider
	txManager   pg.TXManager
}

func New(orderRepo OrderRepo, accountRepo AccountRepo, config SettingsProvider, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		config:      config,
		txManager:   txManager,
	}
}

// SubmitOrder validates, locks collateral and inserts the order in one
// transaction, then runs the matching loop.
func (s *Service) SubmitOrder(ctx context.Context, accountID int64, side domain.OrderSide, amount float64, price int) (*domain.Order, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	amount = money.Round4(amount)
	if amount <= 0 {
		return nil, fmt.Errorf("order amount must be positive: %w", domain.ErrValidation)
	}
	if price < cfg.PriceMin || price > cfg.PriceMax {
		return nil, fmt.Errorf("price must be between %d and %d: %w", cfg.PriceMin, cfg.PriceMax, domain.ErrValidation)
	}
	if side != domain.SideBuy && side != domain.SideSell {
		return nil, fmt.Errorf("unknown order side %q: %w", side, domain.ErrValidation)
	}

	var saved *domain.Order
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order := &domain.Order{
			AccountID: accountID,
			Side:      side,
			Price:     price,
			Amount:    amount,
		}
		if side == domain.SideBuy {
			order.Locked = money.Mul(amount, price)
			if _, err := s.accountRepo.DebitCashStrict(ctx, accountID, order.Locked); err != nil {
				return s.mapShortfallErr(ctx, err, accountID)
			}
		} else {
			order.Locked = amount
			if _, err := s.accountRepo.DebitCrypto(ctx, accountID, amount); err != nil {
				return s.mapShortfallErr(ctx, err, accountID)
			}
		}

		var err error
		saved, err = s.orderRepo.Save(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.match(ctx); err != nil {
		zap.L().Error("matching after submit failed", zap.Error(err), zap.Int("orderID", saved.ID))
		return saved, err
	}
	return saved, nil
}

// match executes crossing trades one at a time. Every iteration opens a
// fresh transaction and re-reads the best bid and ask, because concurrent
// submissions may have changed the book since the previous trade.
func (s *Service) match(ctx context.Context) error {
	for {
		traded := false
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			buy, err := s.orderRepo.BestBuy(ctx)
			if err != nil {
				return err
			}
			sell, err := s.orderRepo.BestSell(ctx)
			if err != nil {
				return err
			}
			if buy == nil || sell == nil || buy.Price < sell.Price {
				return nil
			}

			traded = true
			return s.executeTrade(ctx, buy, sell)
		})
		if err != nil {
			return err
		}
		if !traded {
			return nil
		}
	}
}

// executeTrade fills the crossing pair at the resting sell's price. Crypto
// moves from the seller's collateral to the buyer, cash from the buyer's
// collateral to the seller; the buyer's surplus over the trade price is
// refunded so the collateral invariant survives the fill.
func (s *Service) executeTrade(ctx context.Context, buy, sell *domain.Order) error {
	fill := buy.Amount
	if sell.Amount < fill {
		fill = sell.Amount
	}
	fill = money.Round4(fill)
	cash := money.Mul(fill, sell.Price)

	if _, err := s.accountRepo.CreditCrypto(ctx, buy.AccountID, fill); err != nil {
		return err
	}
	if _, err := s.accountRepo.CreditCash(ctx, sell.AccountID, cash); err != nil {
		return err
	}

	if err := s.reduceBuy(ctx, buy, fill, cash); err != nil {
		return err
	}
	if err := s.reduceSell(ctx, sell, fill); err != nil {
		return err
	}

	return s.orderRepo.SaveTrade(ctx, &domain.Trade{
		BuyOrderID:  buy.ID,
		SellOrderID: sell.ID,
		Amount:      fill,
		Price:       sell.Price,
	})
}

// reduceBuy shrinks a buy order after a fill that consumed cashSpent of its
// collateral, refunding whatever the invariant no longer requires.
func (s *Service) reduceBuy(ctx context.Context, buy *domain.Order, fill, cashSpent float64) error {
	remaining := money.Round4(buy.Amount - fill)
	if remaining <= fillEpsilon {
		refund := money.Round2(buy.Locked - cashSpent)
		if refund > 0 {
			if _, err := s.accountRepo.CreditCash(ctx, buy.AccountID, refund); err != nil {
				return err
			}
		}
		_, err := s.orderRepo.SetStatus(ctx, buy.ID, domain.OrderCompleted)
		return err
	}

	locked := money.Mul(remaining, buy.Price)
	refund := money.Round2(buy.Locked - cashSpent - locked)
	if refund > 0 {
		if _, err := s.accountRepo.CreditCash(ctx, buy.AccountID, refund); err != nil {
			return err
		}
	}
	return s.orderRepo.UpdateFill(ctx, buy.ID, remaining, locked)
}

func (s *Service) reduceSell(ctx context.Context, sell *domain.Order, fill float64) error {
	remaining := money.Round4(sell.Amount - fill)
	if remaining <= fillEpsilon {
		residual := money.Round4(sell.Locked - fill)
		if residual > 0 {
			if _, err := s.accountRepo.CreditCrypto(ctx, sell.AccountID, residual); err != nil {
				return err
			}
		}
		_, err := s.orderRepo.SetStatus(ctx, sell.ID, domain.OrderCompleted)
		return err
	}
	return s.orderRepo.UpdateFill(ctx, sell.ID, remaining, remaining)
}

// TakeAtPrice fills the taker against resting orders of the opposite side
// at exactly one price level, in time priority. A request deeper than the
// level's volume is rejected in full.
func (s *Service) TakeAtPrice(ctx context.Context, takerID int64, side domain.OrderSide, price int, amount float64) (float64, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return 0, err
	}

	amount = money.Round4(amount)
	if amount <= 0 {
		return 0, fmt.Errorf("take amount must be positive: %w", domain.ErrValidation)
	}
	if price < cfg.PriceMin || price > cfg.PriceMax {
		return 0, fmt.Errorf("price must be between %d and %d: %w", cfg.PriceMin, cfg.PriceMax, domain.ErrValidation)
	}

	restingSide := domain.SideSell
	if side == domain.SideSell {
		restingSide = domain.SideBuy
	} else if side != domain.SideBuy {
		return 0, fmt.Errorf("unknown order side %q: %w", side, domain.ErrValidation)
	}

	var filled float64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		resting, err := s.orderRepo.FindActiveAtPrice(ctx, restingSide, price)
		if err != nil {
			return err
		}
		var depth float64
		for _, o := range resting {
			depth += o.Amount
		}
		if money.Round4(depth)+fillEpsilon < amount {
			return fmt.Errorf("only %.4f available at price %d: %w", depth, price, domain.ErrValidation)
		}

		taker := &domain.Order{
			AccountID: takerID,
			Side:      side,
			Price:     price,
			Amount:    amount,
		}
		if side == domain.SideBuy {
			taker.Locked = money.Mul(amount, price)
			if _, err := s.accountRepo.DebitCashStrict(ctx, takerID, taker.Locked); err != nil {
				return s.mapShortfallErr(ctx, err, takerID)
			}
		} else {
			taker.Locked = amount
			if _, err := s.accountRepo.DebitCrypto(ctx, takerID, amount); err != nil {
				return s.mapShortfallErr(ctx, err, takerID)
			}
		}
		taker, err = s.orderRepo.Save(ctx, taker)
		if err != nil {
			return err
		}

		remaining := amount
		var spent float64
		for _, o := range resting {
			if remaining <= fillEpsilon {
				break
			}
			o := o
			fill := money.Round4(remaining)
			if o.Amount < fill {
				fill = o.Amount
			}
			cash := money.Mul(fill, price)

			if side == domain.SideBuy {
				// Taker pays from its locked cash, resting seller delivers crypto.
				if _, err := s.accountRepo.CreditCrypto(ctx, takerID, fill); err != nil {
					return err
				}
				if _, err := s.accountRepo.CreditCash(ctx, o.AccountID, cash); err != nil {
					return err
				}
				if err := s.reduceSell(ctx, &o, fill); err != nil {
					return err
				}
				if err := s.orderRepo.SaveTrade(ctx, &domain.Trade{
					BuyOrderID:  taker.ID,
					SellOrderID: o.ID,
					Amount:      fill,
					Price:       price,
				}); err != nil {
					return err
				}
			} else {
				// Taker delivers crypto, resting buyer pays from its locked cash.
				if _, err := s.accountRepo.CreditCash(ctx, takerID, cash); err != nil {
					return err
				}
				if _, err := s.accountRepo.CreditCrypto(ctx, o.AccountID, fill); err != nil {
					return err
				}
				if err := s.reduceBuy(ctx, &o, fill, cash); err != nil {
					return err
				}
				if err := s.orderRepo.SaveTrade(ctx, &domain.Trade{
					BuyOrderID:  o.ID,
					SellOrderID: taker.ID,
					Amount:      fill,
					Price:       price,
				}); err != nil {
					return err
				}
			}
			remaining = money.Round4(remaining - fill)
			filled = money.Round4(filled + fill)
			spent = money.Round2(spent + cash)
		}

		// Each fill's cash is rounded on its own, so part of the taker's
		// collateral can survive the loop; it is still the taker's.
		if side == domain.SideBuy {
			if refund := money.Round2(taker.Locked - spent); refund > 0 {
				if _, err := s.accountRepo.CreditCash(ctx, takerID, refund); err != nil {
					return err
				}
			}
		} else if residual := money.Round4(taker.Locked - filled); residual > 0 {
			if _, err := s.accountRepo.CreditCrypto(ctx, takerID, residual); err != nil {
				return err
			}
		}

		_, err = s.orderRepo.SetStatus(ctx, taker.ID, domain.OrderCompleted)
		return err
	})
	if err != nil {
		return 0, err
	}
	return filled, nil
}

// CancelOrder refunds the remaining collateral of an active order. Only the
// owner may cancel; a cancelled or completed order is a state conflict.
func (s *Service) CancelOrder(ctx context.Context, orderID int, accountID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil || order.AccountID != accountID {
			return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
		}
		if order.Status != domain.OrderActive {
			return fmt.Errorf("order %d is %s: %w", orderID, order.Status, domain.ErrStateConflict)
		}

		if order.Locked > 0 {
			if order.Side == domain.SideBuy {
				if _, err := s.accountRepo.CreditCash(ctx, accountID, order.Locked); err != nil {
					return err
				}
			} else {
				if _, err := s.accountRepo.CreditCrypto(ctx, accountID, order.Locked); err != nil {
					return err
				}
			}
		}

		ok, err := s.orderRepo.SetStatus(ctx, orderID, domain.OrderCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("order %d changed concurrently: %w", orderID, domain.ErrStateConflict)
		}
		return nil
	})
}

func (s *Service) OrderBook(ctx context.Context) (*OrderBook, error) {
	bids, err := s.orderRepo.AggregateBook(ctx, domain.SideBuy)
	if err != nil {
		return nil, err
	}
	asks, err := s.orderRepo.AggregateBook(ctx, domain.SideSell)
	if err != nil {
		return nil, err
	}
	return &OrderBook{Bids: bids, Asks: asks}, nil
}

func (s *Service) ListActiveOrders(ctx context.Context, accountID int64) ([]domain.Order, error) {
	return s.orderRepo.FindActiveByAccount(ctx, accountID)
}

func (s *Service) mapShortfallErr(ctx context.Context, err error, id int64) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	acc, getErr := s.accountRepo.Get(ctx, id)
	if getErr != nil {
		return getErr
	}
	if acc == nil {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("account %d: %w", id, domain.ErrInsufficientFunds)
}
