package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

var validate = newValidator()

// newValidator registers the notblank rule the create DTOs use:
// required string fields must carry at least one non-whitespace
// character, so "  " is rejected the same as an absent field.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// objectIDParam parses the {id} path segment. An id that is not a
// valid ObjectID can never match a document, so it gets the same 404
// as a missing one.
func objectIDParam(w http.ResponseWriter, r *http.Request, entity string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, entity+" not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// validateRequired runs struct validation and writes the first
// field-specific message on failure.
func validateRequired(w http.ResponseWriter, req any) bool {
	err := validate.Struct(req)
	if err == nil {
		return true
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		utils.RespondError(w, http.StatusBadRequest, requiredFieldMessage(vErrs[0]))
	} else {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request data")
	}
	return false
}

func requiredFieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "email" {
		return fe.Field() + " must be a valid email address"
	}
	return fe.Field() + " is required"
}

// sparseBody decodes an update body and keeps only the known fields
// that are explicitly present, so an update touches exactly what the
// caller sent. updatedAt is stamped here; createdAt and the id are
// never updatable.
func sparseBody(w http.ResponseWriter, r *http.Request, allowed []string) (bson.M, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}

	fields := bson.M{}
	for _, f := range allowed {
		if v, ok := body[f]; ok {
			fields[f] = v
		}
	}
	fields["updatedAt"] = time.Now().UTC()
	return fields, true
}
