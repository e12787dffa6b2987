package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/example/hindivocab/pkg/models"
)

// Error codes
const (
	codeNotFound           = "not_found"
	codeInvalidPath        = "invalid_path"
	codeStorageUnavailable = "storage_unavailable"
	codeInternal           = "internal_error"
)

var (
	errRouteNotFound = errors.New("the requested URL was not found on the server")
	errInvalidPath   = errors.New("path parameter must be a non-negative integer")
	errNotFound      = errors.New("the requested resource was not found")
	errStorage       = errors.New("the vocabulary store is unavailable")
	errInternal      = errors.New("internal server error")
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{Message: msg, Code: code},
	})
}

// Category variant

type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CategoryLevelWordResponse is an item of GET /api/words/{level}
type CategoryLevelWordResponse struct {
	ID              int64   `json:"id"`
	HindiWord       string  `json:"hindi_word"`
	EnglishMeaning  string  `json:"english_meaning"`
	ImageURL        *string `json:"image_url"`
	Category        string  `json:"category"`
	Pronunciation   *string `json:"pronunciation"`
	ExampleSentence *string `json:"example_sentence"`
}

// CategoryWordResponse is an item of GET /api/words/category/{category_id}
type CategoryWordResponse struct {
	ID              int64   `json:"id"`
	HindiWord       string  `json:"hindi_word"`
	EnglishMeaning  string  `json:"english_meaning"`
	ImageURL        *string `json:"image_url"`
	Level           int     `json:"level"`
	Pronunciation   *string `json:"pronunciation"`
	ExampleSentence *string `json:"example_sentence"`
}

// Lesson variant

type LessonResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
}

// LessonWordResponse is an item of GET /api/lessons/{lesson_id}/words
type LessonWordResponse struct {
	ID              int64   `json:"id"`
	HindiWord       string  `json:"hindi_word"`
	EnglishMeaning  string  `json:"english_meaning"`
	Level           int     `json:"level"`
	Pronunciation   *string `json:"pronunciation"`
	ExampleSentence *string `json:"example_sentence"`
}

// LessonLevelWordResponse is an item of GET /api/words/level/{level}
type LessonLevelWordResponse struct {
	ID              int64   `json:"id"`
	HindiWord       string  `json:"hindi_word"`
	EnglishMeaning  string  `json:"english_meaning"`
	LessonName      string  `json:"lesson_name"`
	Pronunciation   *string `json:"pronunciation"`
	ExampleSentence *string `json:"example_sentence"`
}

func toCategoryResponses(parents []models.ParentSummary) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(parents))
	for _, p := range parents {
		out = append(out, CategoryResponse{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return out
}

func toLessonResponses(parents []models.ParentSummary) []LessonResponse {
	out := make([]LessonResponse, 0, len(parents))
	for _, p := range parents {
		r := LessonResponse{ID: p.ID, Name: p.Name, Description: p.Description}
		if p.Order != nil {
			r.Order = *p.Order
		}
		out = append(out, r)
	}
	return out
}
