package validatorx

import (
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent) and registers the domain tags:
//
//	actorname  user name usable as an audit identity (letters, digits, '.', '_', '-')
//	decimalstr blank or a parseable decimal quantity
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	nv := gpvalidator.New()
	_ = nv.RegisterValidation("actorname", actorName)
	_ = nv.RegisterValidation("decimalstr", decimalString)
	v = nv
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

func actorName(fl gpvalidator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

func decimalString(fl gpvalidator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}
