package handlers

import (
	"reflect"
	"strings"
	"sync"

	"insect_duel/internal/i18n"
	"insect_duel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

type Handler struct {
	Game *service.GameService
}

var registerJSONNames sync.Once

func NewHandler(game *service.GameService) *Handler {
	// validation errors should name fields the way clients send them
	registerJSONNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})

	return &Handler{Game: game}
}

// locale resolves the response language and advertises it.
func (h *Handler) locale(c *gin.Context) language.Tag {
	tag := h.Game.Localizer().Resolve(c.Query(i18n.LangParam), c.GetHeader("Accept-Language"))
	c.Header("Content-Language", tag.String())
	return tag
}
