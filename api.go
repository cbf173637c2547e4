package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shambadirect/agrimarket/internal/cart"
	"github.com/shambadirect/agrimarket/internal/catalog"
	"github.com/shambadirect/agrimarket/internal/market"
	"github.com/shambadirect/agrimarket/internal/notify"
	"github.com/shambadirect/agrimarket/internal/order"
	"github.com/shambadirect/agrimarket/internal/session"
)

// API holds the HTTP handlers and dependencies.
type API struct {
	index       *catalog.Index
	session     *session.Session
	board       *market.Board
	feed        *notify.Feed
	shippingFee int64
}

// enableCORS is middleware to allow the web frontend to connect.
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", a.handleListProducts)
	mux.HandleFunc("GET /api/categories", a.handleListCategories)
	mux.HandleFunc("GET /api/categories/{category}/facets", a.handleCategoryFacets)

	mux.HandleFunc("GET /api/cart", a.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", a.handleAddCartItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", a.handleAdjustCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", a.handleRemoveCartItem)

	mux.HandleFunc("POST /api/checkout", a.handleCheckout)
	mux.HandleFunc("GET /api/orders", a.handleListOrders)
	mux.HandleFunc("GET /api/orders/{id}", a.handleGetOrder)
	mux.HandleFunc("POST /api/orders/{id}/status", a.handleAdvanceOrder)
	mux.HandleFunc("POST /api/orders/{id}/cancel", a.handleCancelOrder)

	mux.HandleFunc("GET /api/market/prices", a.handleMarketPrices)
	mux.HandleFunc("GET /api/market/trends", a.handleMarketTrends)
	mux.HandleFunc("GET /api/market/inputs", a.handleMarketInputs)

	mux.HandleFunc("GET /api/notifications", a.handleListNotifications)
	mux.HandleFunc("POST /api/notifications/read", a.handleMarkNotificationsRead)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// selectionFromQuery translates wire-level facet params into a Selection.
// An absent param or the literal "all" means "no constraint".
func selectionFromQuery(r *http.Request) (catalog.Selection, error) {
	q := r.URL.Query()
	sel := catalog.Selection{Text: q.Get("q")}

	if v := q.Get("category"); v != "" && v != "all" {
		c, err := catalog.ParseCategory(v)
		if err != nil {
			return catalog.Selection{}, err
		}
		sel.Category = &c
	}
	if v := q.Get("subcategory"); v != "" && v != "all" {
		sel.Subcategory = &v
	}
	if v := q.Get("location"); v != "" && v != "all" {
		sel.Location = &v
	}
	if v := q.Get("unit"); v != "" && v != "all" {
		u, err := catalog.ParseUnit(v)
		if err != nil {
			return catalog.Selection{}, err
		}
		sel.Unit = &u
	}
	return sel, nil
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// An empty result is a valid outcome and serializes as [].
	writeJSON(w, http.StatusOK, catalog.Filter(a.index.All(), sel))
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories())
}

func (a *API) handleCategoryFacets(w http.ResponseWriter, r *http.Request) {
	c, err := catalog.ParseCategory(r.PathValue("category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, a.index.Facets(c))
}

type cartResponse struct {
	Items    []cart.Item `json:"items"`
	Subtotal int64       `json:"subtotal"`
	Shipping int64       `json:"shipping"`
	Total    int64       `json:"total"`
}

func (a *API) cartResponse() cartResponse {
	c := a.session.Cart
	return cartResponse{
		Items:    c.Items(),
		Subtotal: c.Subtotal(),
		Shipping: a.shippingFee,
		Total:    c.Total(a.shippingFee),
	}
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.cartResponse())
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, ok := a.index.Get(req.ProductID)
	if !ok {
		http.Error(w, "unknown product", http.StatusNotFound)
		return
	}

	a.session.Cart.Add(p, req.Quantity)
	writeJSON(w, http.StatusOK, a.cartResponse())
}

type adjustCartItemRequest struct {
	Delta int `json:"delta"`
}

func (a *API) handleAdjustCartItem(w http.ResponseWriter, r *http.Request) {
	var req adjustCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	a.session.Cart.Adjust(r.PathValue("id"), req.Delta)
	writeJSON(w, http.StatusOK, a.cartResponse())
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	a.session.Cart.Remove(r.PathValue("id"))
	writeJSON(w, http.StatusOK, a.cartResponse())
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	o, err := a.session.Orders.Checkout(r.Context(), a.session.Cart)
	if errors.Is(err, order.ErrEmptyCart) {
		http.Error(w, "cart is empty", http.StatusConflict)
		return
	}
	if err != nil {
		slog.Error("Failed to check out", "err", err)
		http.Error(w, "failed to check out", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.session.Orders.List())
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := a.session.Orders.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "unknown order", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type advanceOrderRequest struct {
	Status string `json:"status"`
}

// handleAdvanceOrder applies a status change reported by the fulfillment
// side.
func (a *API) handleAdvanceOrder(w http.ResponseWriter, r *http.Request) {
	var req advanceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	st, err := order.ParseStatus(req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := a.session.Orders.Advance(r.Context(), id, st); err != nil {
		a.writeOrderError(w, err)
		return
	}

	o, _ := a.session.Orders.Get(id)
	writeJSON(w, http.StatusOK, o)
}

func (a *API) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := a.session.Orders.Cancel(r.Context(), id); err != nil {
		a.writeOrderError(w, err)
		return
	}

	o, _ := a.session.Orders.Get(id)
	writeJSON(w, http.StatusOK, o)
}

func (a *API) writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrUnknownOrder):
		http.Error(w, "unknown order", http.StatusNotFound)
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrAlreadyTerminal):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("Order operation failed", "err", err)
		http.Error(w, "order operation failed", http.StatusInternalServerError)
	}
}

func (a *API) handleMarketPrices(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	location := r.URL.Query().Get("location")

	s, ok := a.board.PriceHistory(product, location)
	if !ok {
		http.Error(w, "no price series for product/location", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (a *API) handleMarketTrends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.board.RegionalTrends(r.URL.Query().Get("product")))
}

func (a *API) handleMarketInputs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.board.InputPrices(r.URL.Query().Get("location")))
}

func (a *API) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"unread":        a.feed.Unread(),
		"notifications": a.feed.All(),
	})
}

func (a *API) handleMarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	a.feed.MarkRead()
	w.WriteHeader(http.StatusNoContent)
}
