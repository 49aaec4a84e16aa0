package handler

import (
	"github.com/PromoPilot/scheduler-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("", h.postsCreate)
			posts.GET("", h.postsGetAll)
			posts.GET("/scheduled", h.postsGetScheduled)
			posts.GET("/unscheduled", h.postsGetUnscheduled)
			posts.PATCH("/:postID", h.postsUpdate)
			posts.DELETE("/:postID", h.postsDelete)
		}

		calendar := v1.Group("/calendar")
		{
			calendar.GET("", h.calendarGrid)
			calendar.POST("/next", h.calendarNext)
			calendar.POST("/prev", h.calendarPrev)
		}

		drag := v1.Group("/drag")
		{
			drag.GET("", h.dragState)
			drag.POST("/start", h.dragStart)
			drag.POST("/over", h.dragOver)
			drag.POST("/drop", h.dragDrop)
			drag.POST("/cancel", h.dragCancel)
		}

		wizard := v1.Group("/wizard")
		{
			wizard.GET("", h.wizardState)
			wizard.POST("/start", h.wizardStart)
			wizard.POST("/edit/:postID", h.wizardEdit)
			wizard.PATCH("/draft", h.wizardUpdateDraft)
			wizard.POST("/next", h.wizardNext)
			wizard.POST("/back", h.wizardBack)
			wizard.POST("/submit", h.wizardSubmit)
			wizard.POST("/cancel", h.wizardCancel)
		}

		insights := v1.Group("/insights")
		{
			insights.GET("/heatmap/:platform", h.insightsHeatmap)
			insights.GET("/:platform", h.insightsGet)
		}
	}

	return r
}
