package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
	"advocate-directory/internal/usecase"
	"advocate-directory/pkg/response"
	"advocate-directory/pkg/validator"
)

type AdvocateHandler struct {
	advocateUsecase usecase.AdvocateUsecase
	validator       *validator.CustomValidator
}

func NewAdvocateHandler(advocateUsecase usecase.AdvocateUsecase, validator *validator.CustomValidator) *AdvocateHandler {
	return &AdvocateHandler{
		advocateUsecase: advocateUsecase,
		validator:       validator,
	}
}

func (h *AdvocateHandler) GetAllAdvocates(w http.ResponseWriter, r *http.Request) {
	advocates, err := h.advocateUsecase.ListAdvocates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch advocates")
		return
	}

	response.JSON(w, http.StatusOK, advocates)
}

func (h *AdvocateHandler) SearchAdvocates(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSearchFilter(r.URL.Query())
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.advocateUsecase.SearchAdvocates(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to search advocates")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *AdvocateHandler) CreateAdvocate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdvocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FirstValidationError(err))
		return
	}

	advocate, err := h.advocateUsecase.CreateAdvocate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrAdvocateExists) {
			response.Conflict(w, "An advocate with this first and last name already exists")
			return
		}
		response.InternalServerError(w, "Failed to create advocate")
		return
	}

	response.JSON(w, http.StatusCreated, dto.CreateAdvocateResponse{
		Message:  "Advocate created successfully",
		Advocate: *advocate,
	})
}

func (h *AdvocateHandler) SeedAdvocates(w http.ResponseWriter, r *http.Request) {
	result, err := h.advocateUsecase.SeedAdvocates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to seed advocates")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// parseSearchFilter validates the optional query parameters before any
// repository or cache access. Numeric parameters must parse as integers
// within their bounds; anything else is rejected with a message naming
// the offending parameter.
func parseSearchFilter(params url.Values) (*entity.AdvocateFilter, error) {
	filter := &entity.AdvocateFilter{
		Search:    params.Get("search"),
		City:      params.Get("city"),
		Degree:    params.Get("degree"),
		Specialty: params.Get("specialty"),
	}

	var err error
	if filter.MinExperience, err = parseIntParam(params.Get("minExperience"), "minExperience must be a non-negative number", 0); err != nil {
		return nil, err
	}
	if filter.MaxExperience, err = parseIntParam(params.Get("maxExperience"), "maxExperience must be a non-negative number", 0); err != nil {
		return nil, err
	}
	if filter.Limit, err = parseIntParam(params.Get("limit"), "limit must be a positive number", 1); err != nil {
		return nil, err
	}
	if filter.Offset, err = parseIntParam(params.Get("offset"), "offset must be a non-negative number", 0); err != nil {
		return nil, err
	}

	return filter, nil
}

func parseIntParam(raw, message string, min int) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < min {
		return nil, errors.New(message)
	}

	return &value, nil
}
