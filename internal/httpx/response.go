// Package httpx holds the JSON envelope shared by every handler.
package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/pkg/apperr"
)

type Response struct {
	Success      bool   `json:"success"`
	Data         any    `json:"data"`
	Meta         any    `json:"meta,omitempty"`
	Dictionaries any    `json:"dictionaries,omitempty"`
	Message      string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func OK(c *gin.Context, resp Response) {
	resp.Success = true
	c.JSON(http.StatusOK, resp)
}

// SendError writes err with the status of its class. Unclassified errors are
// reported as 500 INTERNAL_FAILURE.
func SendError(c *gin.Context, err error) {
	if appErr, ok := apperr.As(err); ok {
		c.JSON(appErr.HTTPStatus(), ErrorResponse{
			Error:   err.Error(),
			Code:    string(appErr.Code),
			Details: appErr.UpstreamBody,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Code:    string(apperr.CodeInternalFailure),
		Details: err.Error(),
	})
}

// BadRequest reports a malformed request body or query string.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request format: " + err.Error(),
		Code:  string(apperr.CodeValidation),
	})
}
