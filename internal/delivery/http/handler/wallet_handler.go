package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/usecase/wallet"
)

type WalletHandler struct {
	walletUseCase *wallet.WalletUseCase
}

func NewWalletHandler(walletUseCase *wallet.WalletUseCase) *WalletHandler {
	return &WalletHandler{walletUseCase: walletUseCase}
}

// GetWallet handles GET /wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"balance": h.walletUseCase.Balance()})
}

// GetTransactions handles GET /wallet/transactions
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletUseCase.Transactions())
}

// TopUpRequest is the stub top-up payload.
type TopUpRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// TopUp handles POST /wallet/topup. Payment collection is not implemented;
// the credit is applied directly.
func (h *WalletHandler) TopUp(c *gin.Context) {
	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.walletUseCase.TopUp(req.Amount); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to top up"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": h.walletUseCase.Balance()})
}
