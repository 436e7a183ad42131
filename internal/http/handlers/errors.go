package handlers

import (
	"errors"
	"net/http"
	"strings"

	"insect_duel/internal/domain"
	"insect_duel/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError converts a gin binding failure into MissingField or
// MalformedRequest. field is the JSON path of the absent key, if any.
func bindError(err error) (field string, reqErr error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			path := fieldPath(fe.Namespace())
			return path, domain.MissingField(path)
		}
	}
	return "", domain.MalformedRequest(err)
}

// fieldPath drops the request type name from a validator namespace:
// "CompareRequest.card_a.score" -> "card_a.score".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func abortBadRequest(c *gin.Context, err error) {
	field, reqErr := bindError(err)

	body := gin.H{
		"error": reqErr.Error(),
		"code":  domain.ErrorCode(reqErr),
	}
	if field != "" {
		body["field"] = field
	}

	logger.WithContext(c.Request.Context()).Info("rejected request",
		"path", c.FullPath(), "code", body["code"], "error", err)
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}
