package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"carservice-backend/internal/domain"
)

var validate = validator.New()

// decodeAndValidate decodes the JSON body into dst and checks its validate
// tags. Failures come back as domain.ErrValidation so the error mapping
// treats them like any other business-rule violation.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", domain.ErrValidation, err)
	}
	if err := validate.Struct(dst); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed on '%s' validation", domain.ErrValidation, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
