package openapi

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/ledger"
)

// Handlers data structure is the api/interface into the ledger
type Handlers struct {
	ledger *ledger.Ledger
	logger zerolog.Logger
}

// New creates a new service interface on top of the ledger
func New(ledger *ledger.Ledger, logger zerolog.Logger) *Handlers {
	return &Handlers{
		ledger: ledger,
		logger: logger,
	}
}

func (h *Handlers) fail(err error, op string) error {
	status := http.StatusInternalServerError
	switch cause := errors.Cause(err); {
	case common.IsRangeError(err), common.IsDecodeError(err):
		status = http.StatusBadRequest
	case cause == ledger.ErrZeroAmount, cause == ledger.ErrSelfTransfer:
		status = http.StatusBadRequest
	case cause == ledger.ErrNonceMismatch, cause == ledger.ErrInsufficientBalance:
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Err(err).Msgf("failure with %s", op)
	}
	return echo.NewHTTPError(status, GeneralErrorResponse{Error: err.Error()})
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: err.Error()})
}

// JSON swagger/openapi 3.0 specification endpoint// (GET /v1/swagger.json)
func (h *Handlers) GetSwagger(ctx echo.Context) error {
	swagger, err := GetSwagger()
	if err != nil {
		return h.fail(err, "GetSwagger")
	}
	return ctx.JSONPretty(http.StatusOK, swagger, "   ")
}

// (GET /v1/health)
func (h *Handlers) GetHealth(ctx echo.Context) error {
	health := h.ledger.GetHealth()
	return ctx.JSON(http.StatusOK, health)
}

// (GET /v1/stats)
func (h *Handlers) GetStats(ctx echo.Context) error {
	stats, err := h.ledger.GetStats()
	if err != nil {
		return h.fail(err, "GetStats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

// (GET /v1/u256/encode)
func (h *Handlers) EncodeU256(ctx echo.Context, params EncodeU256Params) error {
	u, err := common.NewU256FromString(params.Value)
	if err != nil {
		return h.fail(err, "EncodeU256")
	}
	return ctx.JSON(http.StatusOK, EncodeResponse{
		Value: u.String(),
		Hex:   u.Hex(),
		Rlp:   hexutil.Encode(u.EncodeBytes()),
	})
}

// (GET /v1/u256/decode)
func (h *Handlers) DecodeU256(ctx echo.Context, params DecodeU256Params) error {
	raw, err := hexutil.Decode(params.Rlp)
	if err != nil {
		return badRequest(errors.Wrap(err, "rlp"))
	}
	u, err := common.DecodeU256(raw)
	if err != nil {
		return h.fail(err, "DecodeU256")
	}
	return ctx.JSON(http.StatusOK, DecodeResponse{Value: u.String(), Hex: u.Hex()})
}

// (GET /v1/u256/check)
func (h *Handlers) CheckU256(ctx echo.Context, params CheckU256Params) error {
	return ctx.JSON(http.StatusOK, CheckResponse{Valid: common.CheckU256(common.StringInput(params.Value))})
}

// (GET /v1/accounts/{address})
func (h *Handlers) GetAccount(ctx echo.Context, address string) error {
	addr, err := common.NewAddress(address)
	if err != nil {
		return badRequest(err)
	}
	acc, err := h.ledger.GetAccount(addr)
	if err != nil {
		return h.fail(err, "GetAccount")
	}
	return ctx.JSON(http.StatusOK, acc)
}

// (POST /v1/accounts/{address}/mint)
func (h *Handlers) Mint(ctx echo.Context, address string) error {
	addr, err := common.NewAddress(address)
	if err != nil {
		return badRequest(err)
	}
	var req MintRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(err)
	}
	amount, err := common.NewU256FromString(req.Amount)
	if err != nil {
		return h.fail(err, "Mint")
	}
	acc, err := h.ledger.Mint(addr, amount)
	if err != nil {
		return h.fail(err, "Mint")
	}
	return ctx.JSON(http.StatusOK, acc)
}

// (GET /v1/transfers)
func (h *Handlers) GetTransfers(ctx echo.Context, params GetTransfersParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	transfers, err := h.ledger.GetTransfers(limit)
	if err != nil {
		return h.fail(err, "GetTransfers")
	}
	return ctx.JSON(http.StatusOK, transfers)
}

// (POST /v1/transfers)
func (h *Handlers) PostTransfer(ctx echo.Context) error {
	var req TransferRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(err)
	}
	from, err := common.NewAddress(req.From)
	if err != nil {
		return badRequest(errors.Wrap(err, "from"))
	}
	to, err := common.NewAddress(req.To)
	if err != nil {
		return badRequest(errors.Wrap(err, "to"))
	}
	amount, err := common.NewU256FromString(req.Amount)
	if err != nil {
		return h.fail(err, "PostTransfer")
	}
	nonce, err := common.NewU256FromString(req.Nonce)
	if err != nil {
		return h.fail(err, "PostTransfer")
	}
	transfer, err := h.ledger.Transfer(from, to, amount, nonce)
	if err != nil {
		return h.fail(err, "PostTransfer")
	}
	return ctx.JSON(http.StatusOK, transfer)
}
