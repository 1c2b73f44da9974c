// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: long.pham.dev@gmail.com

package library

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/longpham/shelfmark/internal/platform/apperr"
	"github.com/longpham/shelfmark/internal/platform/middleware"
	requestutil "github.com/longpham/shelfmark/internal/platform/request"
	"github.com/longpham/shelfmark/internal/platform/respond"
	"github.com/longpham/shelfmark/internal/platform/validate"
	"github.com/longpham/shelfmark/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes builds the /library route group. Every route requires an
// authenticated user — the owner is always the caller.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listEntries)
	router.Post("/", handler.addEntry)
	router.Delete("/{bookID}", handler.removeEntry)

	return router
}

// addEntryInput is the JSON body for POST /library.
type addEntryInput struct {
	BookID int64  `json:"book_id"`
	Status string `json:"status"`
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	window, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, windowError(err))
		return
	}

	var statusFilter *Status
	if raw := request.URL.Query().Get("status"); raw != "" {
		status, ok := ParseStatus(raw)
		if !ok {
			respond.Error(writer, request, validate.RequiredError("status", "Unknown reading status"))
			return
		}
		statusFilter = &status
	}

	entries, err := handler.service.List(request.Context(), userID, statusFilter, window)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Windowed(writer, entries, pagination.NewMeta(window, len(entries)))
}

func (handler *Handler) addEntry(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := addEntryInput{}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The service validates the status token before any I/O.
	entry, err := handler.service.Add(request.Context(), userID, input.BookID, Status(input.Status))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

func (handler *Handler) removeEntry(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Non-numeric ids behave like unknown entries (integer route constraint).
	bookID, err := strconv.ParseInt(requestutil.Param(request, "bookID"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Library entry"))
		return
	}

	if err := handler.service.Remove(request.Context(), userID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// windowError maps pagination parse failures onto field-level validation errors.
func windowError(err error) error {
	switch err {
	case pagination.ErrInvalidOffset:
		return validate.RequiredError("offset", "Must be a non-negative integer")
	case pagination.ErrInvalidLimit:
		return validate.RequiredError("limit", "Must be a positive integer")
	default:
		return validate.RequiredError("pagination", "Invalid pagination parameters")
	}
}
