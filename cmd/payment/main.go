package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Standalone payment processor simulator. Approves every payment it receives
// and hands back a transaction id; an optional delay query parameter holds
// the response to exercise client timeouts.

type paymentRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

type paymentResponse struct {
	Status        string  `json:"status"`
	OrderID       string  `json:"order_id"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
}

func main() {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.POST("/pay", pay)
	e.GET("/health", health)

	port := os.Getenv("PAYMENT_PORT")
	if port == "" {
		port = "8081"
	}
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func pay(ctx echo.Context) error {
	var request paymentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if delay := ctx.QueryParam("delay"); delay != "" {
		seconds, err := strconv.Atoi(delay)
		if err != nil || seconds < 0 {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid delay value"})
		}
		time.Sleep(time.Duration(seconds) * time.Second)
	}

	return ctx.JSON(http.StatusOK, paymentResponse{
		Status:        "approved",
		OrderID:       request.OrderID,
		Amount:        request.Amount,
		TransactionID: fmt.Sprintf("TXN-%s-%d", request.OrderID, time.Now().Unix()),
	})
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
