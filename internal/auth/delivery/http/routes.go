package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the public sign-in endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	oauth := rg.Group("/oauth")
	{
		oauth.GET("/url", h.URL)
		oauth.GET("/callback", h.Callback)
		oauth.POST("/callback", h.Callback)
	}
}
