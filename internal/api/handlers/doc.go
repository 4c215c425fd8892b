package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/store"
)

// Envelope is the body of every API response.
type Envelope[T any] struct {
	Success bool   `json:"success"           example:"true"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty" example:"marketplace \"DE\": unknown marketplace"`
}

// Response carries an Envelope and the HTTP status to answer with.
type Response[T any] struct {
	Status int
	Body   Envelope[T]
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

func ok[T any](data T) *Response[T] {
	return &Response[T]{
		Status: http.StatusOK,
		Body:   Envelope[T]{Success: true, Data: data},
	}
}

// fail answers with success=false and the status errorStatus maps err to.
func fail[T any](err error) *Response[T] {
	return &Response[T]{
		Status: errorStatus(err),
		Body:   Envelope[T]{Message: err.Error()},
	}
}

func errorStatus(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	return amazon.HTTPStatus(err)
}

// splitCSV splits a comma-separated query value, dropping blanks.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
