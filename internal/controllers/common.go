package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Bramtheking/rentalsystemproj/internal/middleware"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

var validate = validator.New()

// ownerID pulls the authenticated user's ID off the request context.
// A missing ID means the route was wired without the auth middleware;
// respond 401 and report false.
func ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil,
		)
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate parses the JSON body into req and runs the
// validator tags. Responds with the appropriate 400 and reports false
// on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request payload", nil, err,
		)
		return false
	}
	if err := validate.StructCtx(r.Context(), req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return false
	}
	return true
}

// pathUUID parses the named mux path variable as a UUID.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid "+name, nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}
