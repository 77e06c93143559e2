package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/utils/errors"
	validatorx "github.com/muhammadheryan/drims/utils/validator"
)

// Response is the envelope of every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	if body.Errors == nil {
		body.Errors = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeMessage(w, "success", data)
}

func writeMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// writeError maps err onto its HTTP status and code. Untyped errors never leak their text.
func writeError(w http.ResponseWriter, err error) {
	t := errors.TypeOf(err)
	status, ok := constant.ErrorTypeHTTPCode[t]
	if !ok {
		status = http.StatusInternalServerError
	}
	body := Response{Code: constant.ErrorTypeCode[t], Message: constant.ErrorTypeMessage[t]}

	var ve *errors.ValidationError
	switch {
	case stderrors.As(err, &ve):
		body.Errors = ve.Messages
	case t == constant.ErrInternal, t == constant.ErrStaleVersion, t == constant.ErrLockTimeout:
	default:
		body.Message = err.Error()
	}
	writeJSON(w, status, body)
}

// bindJSON decodes and validates a request body. Field failures come back as one message each.
func bindJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "request body is not valid JSON")
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		var fields gpvalidator.ValidationErrors
		if !stderrors.As(err, &fields) {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", f.Namespace(), f.Tag()))
		}
		return errors.NewValidationError(msgs)
	}
	return nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return v
}
