package http

import (
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
)

// SignerStatus is the part of the signer the health check reports on.
type SignerStatus interface {
	Available() bool
	Address() common.Address
	ChainID() *big.Int
}

type Handler struct{ signer SignerStatus }

func NewHandler(s SignerStatus) *Handler { return &Handler{signer: s} }

type healthResp struct {
	Status          string `json:"status"`
	Time            string `json:"time"`
	ChainID         string `json:"chain_id"`
	SignerAvailable bool   `json:"signer_available"`
	Signer          string `json:"signer,omitempty"`
}

// Health stays 200 without a signing key; read endpoints still work.
func (h *Handler) Health(c echo.Context) error {
	resp := healthResp{
		Status:  "ok",
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
		ChainID: h.signer.ChainID().String(),
	}
	if h.signer.Available() {
		resp.SignerAvailable = true
		resp.Signer = h.signer.Address().Hex()
	}
	return c.JSON(http.StatusOK, resp)
}
