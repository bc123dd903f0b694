package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"GroceryStock/internal/auth"
	"GroceryStock/internal/inventory"
	"GroceryStock/internal/report"
	"GroceryStock/pkg/kit"
)

type Server struct {
	Store *inventory.Store
	Auth  *auth.Server
	JWT   *auth.TokenMaker
	Log   *zap.Logger
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/items", s.listItems)
	r.Get("/items/search", s.searchItems)
	r.Get("/items/low-stock", s.lowStock)
	r.Get("/items/{id}", s.getItem)
	r.Get("/inventory/value", s.totalValue)
	r.Get("/grid", s.getGrid)
	r.Get("/rare-items", s.listRare)
	r.Get("/report", s.textReport)

	r.Group(func(pr chi.Router) {
		pr.Use(s.requireOperator())
		pr.Post("/items", s.insertItem)
		pr.Delete("/items/{id}", s.deleteItem)
		pr.Put("/grid/{price}/{qty}", s.setGridCell)
		pr.Post("/rare-items", s.addRare)
	})
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.List())
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}

	it, found := s.Store.FindByID(id)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, it)
}

func (s *Server) searchItems(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "name required", nil)
		return
	}

	it, found := s.Store.FindByName(name)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"name": name})
		return
	}
	kit.WriteJSON(w, http.StatusOK, it)
}

type insertReq struct {
	ID       *int            `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (s *Server) insertItem(w http.ResponseWriter, r *http.Request) {
	var req insertReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if req.ID == nil {
		kit.WriteError(w, r, http.StatusBadRequest, "id required", nil)
		return
	}

	if err := s.Store.Insert(*req.ID, req.Name, req.Quantity, req.Price); err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	it := inventory.Item{ID: *req.ID, Name: req.Name, Quantity: req.Quantity, Price: req.Price}
	s.Log.Info("item added",
		zap.Int("id", it.ID),
		zap.String("name", it.Name),
		zap.String("operator", operator(r)),
	)
	kit.WriteJSON(w, http.StatusCreated, it)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}

	removed, err := s.Store.Delete(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.Log.Info("item removed",
		zap.Int("id", removed.ID),
		zap.String("name", removed.Name),
		zap.String("operator", operator(r)),
	)
	kit.WriteJSON(w, http.StatusOK, removed)
}

func (s *Server) lowStock(w http.ResponseWriter, r *http.Request) {
	threshold, ok := thresholdParam(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"threshold": threshold,
		"items":     s.Store.LowStock(threshold),
	})
}

type valueResp struct {
	TotalValue decimal.Decimal `json:"total_value"`
	ItemCount  int             `json:"item_count"`
}

func (s *Server) totalValue(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, valueResp{
		TotalValue: s.Store.TotalValue(),
		ItemCount:  s.Store.Len(),
	})
}

type gridResp struct {
	Order string              `json:"order"`
	Rows  [][]decimal.Decimal `json:"rows"`
}

func (s *Server) getGrid(w http.ResponseWriter, r *http.Request) {
	switch order := r.URL.Query().Get("order"); order {
	case "", "row":
		kit.WriteJSON(w, http.StatusOK, gridResp{Order: "row", Rows: s.Store.GridRowMajor()})
	case "column":
		kit.WriteJSON(w, http.StatusOK, gridResp{Order: "column", Rows: s.Store.GridColumnMajor()})
	default:
		kit.WriteError(w, r, http.StatusBadRequest, "order must be row or column", map[string]any{"order": order})
	}
}

type gridCellReq struct {
	Value decimal.Decimal `json:"value"`
}

func (s *Server) setGridCell(w http.ResponseWriter, r *http.Request) {
	price, ok := intParam(w, r, "price")
	if !ok {
		return
	}
	qty, ok := intParam(w, r, "qty")
	if !ok {
		return
	}

	var req gridCellReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	if err := s.Store.SetGridCell(price, qty, req.Value); err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.Log.Info("grid cell updated",
		zap.Int("price_range", price),
		zap.Int("qty_range", qty),
		zap.String("value", req.Value.String()),
	)
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"price_range": price,
		"qty_range":   qty,
		"value":       req.Value,
	})
}

func (s *Server) listRare(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.RareItems())
}

func (s *Server) addRare(w http.ResponseWriter, r *http.Request) {
	var req inventory.RareItem
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	if err := s.Store.AddRareItem(req.ItemID, req.Frequency); err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.Log.Info("rare item added", zap.Int("item_id", req.ItemID), zap.Int("frequency", req.Frequency))
	kit.WriteJSON(w, http.StatusCreated, req)
}

func (s *Server) textReport(w http.ResponseWriter, r *http.Request) {
	threshold, ok := thresholdParam(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.NewRenderer(&buf).Full(s.Store, threshold); err != nil {
		s.Log.Error("render report failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteText(w, http.StatusOK, buf.Bytes())
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, inventory.ErrDuplicateID):
		kit.WriteError(w, r, http.StatusConflict, "item already exists", nil)
	case errors.Is(err, inventory.ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", nil)
	case errors.Is(err, inventory.ErrStoreFull):
		kit.WriteError(w, r, http.StatusInsufficientStorage, "store is full", map[string]any{"capacity": s.Store.Cap()})
	case errors.Is(err, inventory.ErrRareStoreFull):
		kit.WriteError(w, r, http.StatusInsufficientStorage, "rare storage is full", map[string]any{"capacity": s.Store.Cap()})
	case errors.Is(err, inventory.ErrInvalidItem):
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, inventory.ErrGridIndex):
		kit.WriteError(w, r, http.StatusBadRequest, "invalid index", map[string]any{
			"price_categories": inventory.PriceCategories,
			"qty_categories":   inventory.QtyCategories,
		})
	default:
		s.Log.Error("store operation failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad "+name, map[string]any{name: raw})
		return 0, false
	}
	return v, true
}

func thresholdParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("threshold")
	if raw == "" {
		return inventory.DefaultLowStockThreshold, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad threshold", map[string]any{"threshold": raw})
		return 0, false
	}
	return v, true
}

func operator(r *http.Request) string {
	if c, ok := auth.ClaimsFromContext(r.Context()); ok {
		return c.Operator
	}
	return ""
}
