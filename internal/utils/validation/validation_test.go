package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Status string `validate:"omitempty,requeststatus"`
	Type   string `validate:"omitempty,producttype"`
	Role   string `validate:"omitempty,userrole"`
}

func TestRegisterTags(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterTags(v))

	valid := []sample{
		{Status: "approved"},
		{Status: "rejected"},
		{Type: "returnable"},
		{Type: "non-returnable"},
		{Role: "hr"},
		{Role: "employee"},
		{},
	}
	for _, s := range valid {
		assert.NoError(t, v.Struct(s), "%+v", s)
	}

	invalid := []sample{
		{Status: "pending"},
		{Status: "Approved"},
		{Type: "consumable"},
		{Role: "admin"},
	}
	for _, s := range invalid {
		assert.Error(t, v.Struct(s), "%+v", s)
	}
}
