package arena

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// errorStatus maps err to an HTTP status and a localized body.
func errorStatus(err error, locale string) (int, errorBody) {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr.Code.HTTPStatus(), errorBody{
			Code:    string(domainErr.Code),
			Message: domainErr.UserMessage(locale),
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, errorBody{Code: string(apperrors.CodeUnknown), Message: "the request timed out"}
	}
	unknown := apperrors.New(apperrors.CodeUnknown, "internal error")
	return http.StatusInternalServerError, errorBody{
		Code:    string(unknown.Code),
		Message: unknown.UserMessage(locale),
	}
}

func writeError(c *gin.Context, err error) {
	status, body := errorStatus(err, requestLocale(c.Request))
	if status >= http.StatusInternalServerError {
		log.Printf("arena: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: body})
}

func writeBadRequest(c *gin.Context, err error) {
	writeError(c, apperrors.Wrap(apperrors.CodeInvalidArgument, err.Error(), err))
}
