// Package checkout implements the three-step checkout wizard and order
// placement on top of the cart and order services.
package checkout

import (
	"regexp"
	"strings"

	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/types"
)

var (
	phoneRe  = regexp.MustCompile(`^\d{10}$`)
	postalRe = regexp.MustCompile(`^\d{6}$`)
)

// ValidateShippingAddress checks the address the way the storefront form
// does: required fields first, in a fixed order, then format rules. The
// returned error names the first failing field only.
func ValidateShippingAddress(addr types.ShippingAddress) error {
	required := []struct {
		field string
		label string
		value string
	}{
		{"full_name", "full name", addr.FullName},
		{"phone", "phone", addr.Phone},
		{"address_line1", "address line1", addr.AddressLine1},
		{"city", "city", addr.City},
		{"state", "state", addr.State},
		{"postal_code", "postal code", addr.PostalCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "please fill in "+f.label).
				WithDetails(map[string]any{"field": f.field})
		}
	}

	if !phoneRe.MatchString(addr.Phone) {
		return pkgerrors.New(pkgerrors.CodeValidation, "please enter a valid 10-digit phone number").
			WithDetails(map[string]any{"field": "phone"})
	}
	if !postalRe.MatchString(addr.PostalCode) {
		return pkgerrors.New(pkgerrors.CodeValidation, "please enter a valid 6-digit postal code").
			WithDetails(map[string]any{"field": "postal_code"})
	}
	return nil
}
