package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vending-machine/internal/coin"
	"vending-machine/internal/dispatch"
	"vending-machine/internal/machine"
	"vending-machine/internal/middleware"
	"vending-machine/pkg"
)

type Handlers struct {
	Machine    *machine.Machine
	Dispatcher *dispatch.Dispatcher
	Logger     pkg.Logger
	JWTSecret  string
}

// RegisterHandlers mounts public vending routes, JWT-guarded admin routes
// and the metrics endpoint.
func RegisterHandlers(e *echo.Echo, h *Handlers) {
	e.POST("/api/command", h.PostCommand)
	e.GET("/api/items", h.GetItems)
	e.GET("/api/bank", h.GetBank)
	e.GET("/api/inserted", h.GetInserted)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	admin := e.Group("/api/admin", middleware.JWTAuthMiddleware(h.JWTSecret, h.Logger))
	admin.POST("/restock", h.PostRestock)
	admin.POST("/bank", h.PostBankStock)
	admin.POST("/reset", h.PostReset)
}

func (h *Handlers) PostCommand(ctx echo.Context) error {
	var req CommandRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Invalid request body")})
	}
	if req.Command == "" {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Command required")})
	}
	lines := h.Dispatcher.Process(req.Command)
	return ctx.JSON(http.StatusOK, CommandResponse{Lines: lines})
}

func (h *Handlers) GetItems(ctx echo.Context) error {
	items := h.Machine.Items()
	resp := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, ItemResponse{
			Selector:    it.Selector,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (h *Handlers) GetBank(ctx echo.Context) error {
	holdings := h.Machine.BankContents()
	resp := BankResponse{TotalValue: h.Machine.BankValue()}
	for _, hd := range holdings {
		resp.Holdings = append(resp.Holdings, HoldingResponse{
			Denomination: hd.Denomination.Value(),
			Count:        hd.Count,
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (h *Handlers) GetInserted(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, InsertedResponse{Inserted: h.Machine.TotalInserted()})
}

func (h *Handlers) PostRestock(ctx echo.Context) error {
	var req RestockRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Invalid request body")})
	}
	if len(req.Selector) != 1 || req.Selector[0] < 'A' || req.Selector[0] > 'Z' {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Selector must be a single uppercase letter")})
	}
	if err := h.Machine.Restock(req.Selector, req.Description, req.Price, req.Quantity); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr(err.Error())})
	}
	h.Logger.Info("item restocked",
		zap.String("selector", req.Selector),
		zap.Int("quantity", req.Quantity))
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Item restocked"})
}

func (h *Handlers) PostBankStock(ctx echo.Context) error {
	var req BankStockRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Invalid request body")})
	}
	if err := h.Machine.AddStock(coin.Denomination(req.Denomination), req.Quantity); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr(err.Error())})
	}
	h.Logger.Info("bank restocked",
		zap.Int("denomination", req.Denomination),
		zap.Int("quantity", req.Quantity))
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Bank restocked"})
}

func (h *Handlers) PostReset(ctx echo.Context) error {
	h.Machine.Reset()
	h.Logger.Info("machine reset")
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Machine reset"})
}

func ptr(s string) *string {
	return &s
}
