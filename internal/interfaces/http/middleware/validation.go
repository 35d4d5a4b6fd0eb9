package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/exchange"
	"github.com/stockroom/backend/internal/domain/shipping"
	"github.com/stockroom/backend/internal/domain/trade"
)

// SetupValidator registers the custom binding tags used by the request
// DTOs and makes validation errors report JSON field names.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("product_category", func(fl validator.FieldLevel) bool {
		return catalog.Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return trade.OrderStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("shipment_status", func(fl validator.FieldLevel) bool {
		return shipping.ShipmentStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return exchange.IsSupported(fl.Field().String())
	})
}
