package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nandaputra/storefront-service/pkg/errs"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// WriteErrorResponse maps a sentinel error from pkg/errs to its HTTP status
// and emits the error body the clients expect. Errors outside the map reduce
// to a generic 500.
func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	msg := err.Error()
	if statusCode == http.StatusInternalServerError {
		msg = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, ErrorResponse{Error: msg})
}
