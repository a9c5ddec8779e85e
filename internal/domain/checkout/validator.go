// internal/domain/checkout/validator.go
package checkout

import (
	"regexp"
	"strings"

	"github.com/your-org/storefront/internal/domain/order"
)

// Result represents a checkout form validation outcome. FieldErrors maps
// failed field names to messages; a valid form has an empty map.
type Result struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

var (
	// local-part@domain.tld, no whitespace anywhere
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// digits, whitespace, +, -, parentheses only
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

// Validate checks the checkout form field by field. Every rule is evaluated
// independently so all violated fields are reported together. Deterministic
// and side-effect free.
func Validate(form order.FormData) Result {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(form.FirstName) == "" {
		fieldErrors["firstName"] = "First name is required"
	}

	if strings.TrimSpace(form.LastName) == "" {
		fieldErrors["lastName"] = "Last name is required"
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(form.Email) {
		fieldErrors["email"] = "Invalid email format"
	}

	phone := strings.TrimSpace(form.Phone)
	if phone == "" {
		fieldErrors["phone"] = "Phone is required"
	} else if !phonePattern.MatchString(form.Phone) || digitCount(form.Phone) < 10 {
		fieldErrors["phone"] = "Invalid phone number"
	}

	if strings.TrimSpace(form.Address) == "" {
		fieldErrors["address"] = "Address is required"
	}

	if strings.TrimSpace(form.City) == "" {
		fieldErrors["city"] = "City is required"
	}

	if strings.TrimSpace(form.PostalCode) == "" {
		fieldErrors["postalCode"] = "Postal code is required"
	}

	if strings.TrimSpace(form.Country) == "" {
		fieldErrors["country"] = "Country is required"
	}

	return Result{
		Valid:       len(fieldErrors) == 0,
		FieldErrors: fieldErrors,
	}
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
