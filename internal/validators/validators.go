// Package validators registers the request tags used by binding structs.
package validators

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
)

// money columns are numeric(6,2)
var maxMoney = decimal.New(10000, 0)

var registerOnce sync.Once

// RegisterGin installs the custom tags on gin's default validator.
// Safe to call more than once.
func RegisterGin() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

// Register adds json field naming, decimal support and the enum tags to v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return d.String()
	}, decimal.Decimal{})

	tags := map[string]validator.Func{
		"shop_status":      stringIs(func(s string) bool { return catalog.ShopStatus(s).Valid() }),
		"service_category": stringIs(func(s string) bool { return catalog.ServiceCategory(s).Valid() }),
		"booking_status":   stringIs(func(s string) bool { return booking.Status(s).Valid() }),
		"payment_method":   stringIs(func(s string) bool { return booking.PaymentMethod(s).Valid() }),
		"iso_date":         stringIs(IsISODate),
		"money":            stringIs(IsMoney),
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func stringIs(ok func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return ok(fl.Field().String())
	}
}

func IsISODate(s string) bool {
	_, err := time.Parse(booking.DateLayout, s)
	return err == nil
}

// IsMoney accepts non-negative amounts below 10000 with at most two
// decimal places.
func IsMoney(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	if d.IsNegative() || d.GreaterThanOrEqual(maxMoney) {
		return false
	}
	return d.Equal(d.Truncate(2))
}
