package openapi

import (
	"fmt"
	"net/http"

	"github.com/deepmap/oapi-codegen/pkg/runtime"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /v1/swagger.json)
	GetSwagger(ctx echo.Context) error
	// (GET /v1/health)
	GetHealth(ctx echo.Context) error
	// (GET /v1/stats)
	GetStats(ctx echo.Context) error
	// (GET /v1/u256/encode)
	EncodeU256(ctx echo.Context, params EncodeU256Params) error
	// (GET /v1/u256/decode)
	DecodeU256(ctx echo.Context, params DecodeU256Params) error
	// (GET /v1/u256/check)
	CheckU256(ctx echo.Context, params CheckU256Params) error
	// (GET /v1/accounts/{address})
	GetAccount(ctx echo.Context, address string) error
	// (POST /v1/accounts/{address}/mint)
	Mint(ctx echo.Context, address string) error
	// (GET /v1/transfers)
	GetTransfers(ctx echo.Context, params GetTransfersParams) error
	// (POST /v1/transfers)
	PostTransfer(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func badParam(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: fmt.Sprintf("invalid format for parameter %s: %s", name, err)})
}

func (w *ServerInterfaceWrapper) GetSwagger(ctx echo.Context) error {
	return w.Handler.GetSwagger(ctx)
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) GetStats(ctx echo.Context) error {
	return w.Handler.GetStats(ctx)
}

func (w *ServerInterfaceWrapper) EncodeU256(ctx echo.Context) error {
	var params EncodeU256Params
	if err := runtime.BindQueryParameter("form", true, true, "value", ctx.QueryParams(), &params.Value); err != nil {
		return badParam("value", err)
	}
	return w.Handler.EncodeU256(ctx, params)
}

func (w *ServerInterfaceWrapper) DecodeU256(ctx echo.Context) error {
	var params DecodeU256Params
	if err := runtime.BindQueryParameter("form", true, true, "rlp", ctx.QueryParams(), &params.Rlp); err != nil {
		return badParam("rlp", err)
	}
	return w.Handler.DecodeU256(ctx, params)
}

func (w *ServerInterfaceWrapper) CheckU256(ctx echo.Context) error {
	var params CheckU256Params
	if err := runtime.BindQueryParameter("form", true, true, "value", ctx.QueryParams(), &params.Value); err != nil {
		return badParam("value", err)
	}
	return w.Handler.CheckU256(ctx, params)
}

func (w *ServerInterfaceWrapper) GetAccount(ctx echo.Context) error {
	var address string
	if err := runtime.BindStyledParameter("simple", false, "address", ctx.Param("address"), &address); err != nil {
		return badParam("address", err)
	}
	return w.Handler.GetAccount(ctx, address)
}

func (w *ServerInterfaceWrapper) Mint(ctx echo.Context) error {
	var address string
	if err := runtime.BindStyledParameter("simple", false, "address", ctx.Param("address"), &address); err != nil {
		return badParam("address", err)
	}
	return w.Handler.Mint(ctx, address)
}

func (w *ServerInterfaceWrapper) GetTransfers(ctx echo.Context) error {
	var params GetTransfersParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return badParam("limit", err)
	}
	return w.Handler.GetTransfers(ctx, params)
}

func (w *ServerInterfaceWrapper) PostTransfer(ctx echo.Context) error {
	return w.Handler.PostTransfer(ctx)
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET("/v1/swagger.json", wrapper.GetSwagger)
	router.GET("/v1/health", wrapper.GetHealth)
	router.GET("/v1/stats", wrapper.GetStats)
	router.GET("/v1/u256/encode", wrapper.EncodeU256)
	router.GET("/v1/u256/decode", wrapper.DecodeU256)
	router.GET("/v1/u256/check", wrapper.CheckU256)
	router.GET("/v1/accounts/:address", wrapper.GetAccount)
	router.POST("/v1/accounts/:address/mint", wrapper.Mint)
	router.GET("/v1/transfers", wrapper.GetTransfers)
	router.POST("/v1/transfers", wrapper.PostTransfer)
}

// GetSwagger returns the Swagger specification corresponding to the routes above
func GetSwagger() (*openapi3.Swagger, error) {
	return openapi3.NewSwaggerLoader().LoadSwaggerFromData([]byte(swaggerDoc))
}
