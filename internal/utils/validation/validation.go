// Package validation registers the domain's custom binding tags with gin's validator.
package validation

import (
	"fmt"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom tags on gin's default validator and makes JSON
// binding reject unknown fields. Call it once before serving.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	binding.EnableDecoderDisallowUnknownFields = true
	return RegisterTags(v)
}

// RegisterTags adds requeststatus, producttype and userrole to v.
func RegisterTags(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"requeststatus": validRequestStatus,
		"producttype":   validProductType,
		"userrole":      validUserRole,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// validRequestStatus accepts only decisions; pending is never a valid target.
func validRequestStatus(fl validator.FieldLevel) bool {
	return domain.RequestStatus(fl.Field().String()).IsTerminal()
}

func validProductType(fl validator.FieldLevel) bool {
	switch domain.ProductType(fl.Field().String()) {
	case domain.ProductReturnable, domain.ProductNonReturnable:
		return true
	}
	return false
}

func validUserRole(fl validator.FieldLevel) bool {
	switch domain.UserRole(fl.Field().String()) {
	case domain.RoleHR, domain.RoleEmployee:
		return true
	}
	return false
}
