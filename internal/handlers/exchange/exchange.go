package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/dto"
	exchangeservice "github.com/streetwars/economy/internal/service/exchangeservice"
	"github.com/streetwars/economy/pkg/utils"
)

//go:generate mockgen -source=exchange.go -destination=mock_exchange.go -package=exchange

type Service interface {
	SubmitOrder(ctx context.Context, accountID int64, side domain.OrderSide, amount float64, price int) (*domain.Order, error)
	TakeAtPrice(ctx context.Context, takerID int64, side domain.OrderSide, price int, amount float64) (float64, error)
	CancelOrder(ctx context.Context, orderID int, accountID int64) error
	OrderBook(ctx context.Context) (*exchangeservice.OrderBook, error)
	ListActiveOrders(ctx context.Context, accountID int64) ([]domain.Order, error)
}

type ExchangeHandler struct {
	exchangeService Service
}

func New(exchangeService Service) *ExchangeHandler {
	return &ExchangeHandler{
		exchangeService: exchangeService,
	}
}

// SubmitOrder godoc
//
//	@Summary		Submit a limit order
//	@Description	Lock collateral (cash for buys, crypto for sells), insert the order and run the matching loop.
//	@Tags			Exchange
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitOrderRequestDTO	true	"Order payload"
//	@Success		200		{object}	dto.OrderResponseDTO		"Order after matching"
//	@Failure		400		{object}	utils.Response				"Invalid order"
//	@Failure		402		{object}	utils.Response				"Insufficient collateral"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/exchange/orders [post]
func (h *ExchangeHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	side, ok := parseSide(req.Side)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "side must be buy or sell")
		return
	}

	order, err := h.exchangeService.SubmitOrder(r.Context(), req.AccountID, side, req.Amount, req.Price)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// TakeAtPrice godoc
//
//	@Summary		Take liquidity at one price level
//	@Description	Fill the requested amount against resting orders at exactly the given price. If the level does not hold enough depth the whole request is rejected.
//	@Tags			Exchange
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TakeRequestDTO		true	"Taker payload"
//	@Success		200		{object}	dto.TakeResponseDTO		"Filled amount"
//	@Failure		400		{object}	utils.Response			"Invalid request or not enough depth"
//	@Failure		402		{object}	utils.Response			"Insufficient collateral"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/exchange/take [post]
func (h *ExchangeHandler) TakeAtPrice(w http.ResponseWriter, r *http.Request) {
	var req dto.TakeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	side, ok := parseSide(req.Side)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "side must be buy or sell")
		return
	}

	filled, err := h.exchangeService.TakeAtPrice(r.Context(), req.AccountID, side, req.Price, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TakeResponseDTO{Filled: filled})
}

// CancelOrder godoc
//
//	@Summary		Cancel an active order
//	@Description	Cancel the caller's active order and refund its locked collateral.
//	@Tags			Exchange
//	@Produce		json
//	@Param			orderID		path		int				true	"Order ID"
//	@Param			accountID	query		int				true	"Owner account ID"
//	@Success		200			{object}	utils.Response	"Order cancelled"
//	@Failure		404			{object}	utils.Response	"Order not found or not owned by caller"
//	@Failure		409			{object}	utils.Response	"Order already completed or cancelled"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/exchange/orders/{orderID} [delete]
func (h *ExchangeHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	accountID, err := strconv.ParseInt(r.URL.Query().Get("accountID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.exchangeService.CancelOrder(r.Context(), orderID, accountID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "order cancelled"})
}

// GetOrderBook godoc
//
//	@Summary		Get the aggregated order book
//	@Tags			Exchange
//	@Produce		json
//	@Success		200	{object}	dto.OrderBookResponseDTO	"Bids and asks by price level"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/exchange/book [get]
func (h *ExchangeHandler) GetOrderBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.exchangeService.OrderBook(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := dto.OrderBookResponseDTO{
		Bids: toLevelDTOs(book.Bids),
		Asks: toLevelDTOs(book.Asks),
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetOrders godoc
//
//	@Summary		List the account's active orders
//	@Tags			Exchange
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Success		200			{array}		dto.OrderResponseDTO	"Active orders"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/exchange/orders/account/{accountID} [get]
func (h *ExchangeHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	orders, err := h.exchangeService.ListActiveOrders(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		resp[i] = toOrderDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func parseSide(s string) (domain.OrderSide, bool) {
	switch domain.OrderSide(s) {
	case domain.SideBuy, domain.SideSell:
		return domain.OrderSide(s), true
	}
	return "", false
}

func toOrderDTO(o *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:        o.ID,
		AccountID: o.AccountID,
		Side:      string(o.Side),
		Price:     o.Price,
		Amount:    o.Amount,
		Locked:    o.Locked,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func toLevelDTOs(levels []domain.PriceLevel) []dto.PriceLevelDTO {
	out := make([]dto.PriceLevelDTO, len(levels))
	for i, l := range levels {
		out[i] = dto.PriceLevelDTO{Price: l.Price, Amount: l.Amount, Orders: l.Orders}
	}
	return out
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrStateConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
