package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/internal/query"
)

// Handler serves the vocabulary API from a query service
type Handler struct {
	queries *query.Service
	log     *logger.Logger
}

func NewHandler(queries *query.Service, log *logger.Logger) *Handler {
	return &Handler{queries: queries, log: log}
}

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Variant": h.queries.Variant().String()})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	if err := h.queries.Ping(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	c.String(http.StatusOK, "ok")
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	parents, err := h.queries.ListParents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponses(parents))
}

// ListCategoryWordsByLevel handles GET /api/words/:level
func (h *Handler) ListCategoryWordsByLevel(c *gin.Context) {
	level, ok := pathInt(c, "level")
	if !ok {
		return
	}

	words, err := h.queries.ListWordsByLevel(c.Request.Context(), int(level))
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]CategoryLevelWordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, CategoryLevelWordResponse{
			ID:              w.ID,
			HindiWord:       w.HindiWord,
			EnglishMeaning:  w.EnglishMeaning,
			ImageURL:        w.ImageURL,
			Category:        w.ParentName,
			Pronunciation:   w.Pronunciation,
			ExampleSentence: w.ExampleSentence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListCategoryWords handles GET /api/words/category/:category_id
func (h *Handler) ListCategoryWords(c *gin.Context) {
	categoryID, ok := pathInt(c, "category_id")
	if !ok {
		return
	}

	words, err := h.queries.ListWordsByParent(c.Request.Context(), categoryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]CategoryWordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, CategoryWordResponse{
			ID:              w.ID,
			HindiWord:       w.HindiWord,
			EnglishMeaning:  w.EnglishMeaning,
			ImageURL:        w.ImageURL,
			Level:           w.Level,
			Pronunciation:   w.Pronunciation,
			ExampleSentence: w.ExampleSentence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListLessons handles GET /api/lessons
func (h *Handler) ListLessons(c *gin.Context) {
	parents, err := h.queries.ListParents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLessonResponses(parents))
}

// ListLessonWords handles GET /api/lessons/:lesson_id/words
func (h *Handler) ListLessonWords(c *gin.Context) {
	lessonID, ok := pathInt(c, "lesson_id")
	if !ok {
		return
	}

	words, err := h.queries.ListWordsByParent(c.Request.Context(), lessonID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]LessonWordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, LessonWordResponse{
			ID:              w.ID,
			HindiWord:       w.HindiWord,
			EnglishMeaning:  w.EnglishMeaning,
			Level:           w.Level,
			Pronunciation:   w.Pronunciation,
			ExampleSentence: w.ExampleSentence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListLessonWordsByLevel handles GET /api/words/level/:level
func (h *Handler) ListLessonWordsByLevel(c *gin.Context) {
	level, ok := pathInt(c, "level")
	if !ok {
		return
	}

	words, err := h.queries.ListWordsByLevel(c.Request.Context(), int(level))
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]LessonLevelWordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, LessonLevelWordResponse{
			ID:              w.ID,
			HindiWord:       w.HindiWord,
			EnglishMeaning:  w.EnglishMeaning,
			LessonName:      w.ParentName,
			Pronunciation:   w.Pronunciation,
			ExampleSentence: w.ExampleSentence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// handleError maps query errors onto HTTP responses
func (h *Handler) handleError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		respondError(c, http.StatusNotFound, codeNotFound, errNotFound)
		return
	}
	h.log.Error("query failed", "path", c.Request.URL.Path, "error", err)
	if errors.Is(err, database.ErrStorageUnavailable) {
		respondError(c, http.StatusInternalServerError, codeStorageUnavailable, errStorage)
		return
	}
	respondError(c, http.StatusInternalServerError, codeInternal, errInternal)
}

// pathInt parses an unsigned integer path segment.
// Anything else is answered with 404, like an unmatched route.
func pathInt(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	valid := raw != ""
	for _, r := range raw {
		if r < '0' || r > '9' {
			valid = false
			break
		}
	}
	if valid {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err == nil {
			return n, true
		}
	}
	respondError(c, http.StatusNotFound, codeInvalidPath, errInvalidPath)
	return 0, false
}
