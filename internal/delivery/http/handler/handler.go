package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/usecase"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

var errInvalidBody = errors.New("request body must be a JSON object")

// decodeInput reads the request body as a raw field map. An empty body is an
// empty map; numbers are kept as json.Number.
func decodeInput(r *http.Request) (map[string]any, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	input := map[string]any{}
	if err := decoder.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, errInvalidBody
	}
	if input == nil {
		return map[string]any{}, nil
	}
	return input, nil
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", mux.Vars(r)["id"])
	}
	return uint(id), nil
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func writePage[T any](w http.ResponseWriter, message string, page *dto.Page[T]) {
	response.SuccessWithMeta(w, http.StatusOK, message, page.Items, response.NewMeta(page.Page, page.PerPage, page.Total))
}

// writeError maps usecase outcomes to status codes. notFound is the sentinel
// of the resource being handled.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error, notFound error, notFoundMessage string, failure string) {
	var verrs validator.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationError(w, verrs)
	case errors.Is(err, usecase.ErrUnauthenticated):
		response.Unauthorized(w, "")
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "")
	case notFound != nil && errors.Is(err, notFound):
		response.NotFound(w, notFoundMessage)
	default:
		log.Errorf("%s: %+v", failure, err)
		response.InternalServerError(w, failure)
	}
}
