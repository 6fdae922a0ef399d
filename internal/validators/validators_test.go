package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Status   string           `json:"status" validate:"omitempty,shop_status"`
	Category string           `json:"category" validate:"omitempty,service_category"`
	Payment  *string          `json:"payment_method" validate:"omitempty,payment_method"`
	Date     string           `json:"date" validate:"required,iso_date"`
	Price    decimal.Decimal  `json:"price" validate:"money"`
	Discount *decimal.Decimal `json:"discount" validate:"omitempty,money"`
}

func newValidate(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func fieldsOf(err error) []string {
	var out []string
	if ves, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ves {
			out = append(out, fe.Field())
		}
	}
	return out
}

func TestRegisterAcceptsValidValues(t *testing.T) {
	v := newValidate(t)
	pix := "PIX"
	discount := decimal.RequireFromString("10")

	err := v.Struct(sample{
		Status:   "Agenda Cheia",
		Category: "Barba",
		Payment:  &pix,
		Date:     "2024-06-01",
		Price:    decimal.RequireFromString("45.50"),
		Discount: &discount,
	})
	assert.NoError(t, err)
}

func TestRegisterRejectsInvalidValues(t *testing.T) {
	v := newValidate(t)
	cash := "cash"
	discount := decimal.RequireFromString("1.234")

	err := v.Struct(sample{
		Status:   "Open",
		Category: "Hair",
		Payment:  &cash,
		Date:     "01/06/2024",
		Price:    decimal.RequireFromString("10000"),
		Discount: &discount,
	})
	require.Error(t, err)
	assert.ElementsMatch(t,
		[]string{"status", "category", "payment_method", "date", "price", "discount"},
		fieldsOf(err),
	)
}

func TestIsMoney(t *testing.T) {
	assert.True(t, IsMoney("0"))
	assert.True(t, IsMoney("9999.99"))
	assert.False(t, IsMoney("-1"))
	assert.False(t, IsMoney("abc"))
	assert.False(t, IsMoney("0.001"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Ana@example.com", NormalizeEmail("  Ana@EXAMPLE.com "))
	assert.Equal(t, "no-at", NormalizeEmail("no-at"))
}
