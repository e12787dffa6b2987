package server

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/internal/query"
	"github.com/example/hindivocab/pkg/models"
)

// RouterConfig holds the router's dependencies
type RouterConfig struct {
	Queries     *query.Service
	Log         *logger.Logger
	CORSOrigins []string
}

// NewRouter builds the gin engine for the store's schema variant.
// Only the routes of that variant are registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(cfg.Log), gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	router.SetHTMLTemplate(loadTemplates())
	router.StaticFS("/static", http.FS(staticFS()))

	h := NewHandler(cfg.Queries, cfg.Log)

	router.GET("/", h.Home)
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	switch cfg.Queries.Variant() {
	case models.VariantLesson:
		api.GET("/lessons", h.ListLessons)
		api.GET("/lessons/:lesson_id/words", h.ListLessonWords)
		api.GET("/words/level/:level", h.ListLessonWordsByLevel)
	default:
		api.GET("/categories", h.ListCategories)
		api.GET("/words/:level", h.ListCategoryWordsByLevel)
		api.GET("/words/category/:category_id", h.ListCategoryWords)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, codeNotFound, errRouteNotFound)
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
