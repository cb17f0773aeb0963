package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API. limit guards the routes that call the
// language model.
func RegisterRoutes(r *gin.Engine, h *Handler, limit gin.HandlerFunc) {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/qr", h.QR)
		api.GET("/balloons", h.Balloons)
		api.POST("/balloons/pop", h.PopBalloon)

		llm := api.Group("", limit)
		llm.POST("/generate-poster-styling", h.PosterStyling)
		llm.POST("/generate-poster-layout", h.PosterLayout)
		llm.POST("/generate-quote", h.GenerateQuote)
		llm.POST("/poster", h.Poster)

		stories := api.Group("/stories")
		{
			stories.POST("", h.CreateStory)
			stories.GET("/:id", h.GetStory)
			stories.GET("/:id/comments", h.ListComments)
			stories.POST("/:id/comments", h.AddComment)
			stories.PUT("/:id/visitor", h.SetVisitor)
			stories.POST("/:id/balloons/pop", h.PopStoryBalloon)
			stories.GET("/:id/qr", h.StoryQR)
			stories.POST("/:id/poster", limit, h.ExportStory)
		}

		wz := api.Group("/wizard")
		{
			wz.POST("", h.StartWizard)
			wz.GET("/:id", h.GetWizard)
			wz.PATCH("/:id", h.UpdateWizard)
			wz.POST("/:id/next", h.NextWizard)
			wz.POST("/:id/back", h.BackWizard)
			wz.POST("/:id/forward", h.ForwardWizard)
			wz.POST("/:id/quote", limit, h.WizardQuote)
		}
	}
}
