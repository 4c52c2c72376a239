package services

import (
	"fmt"
	"regexp"
	"strings"
)

// ShippingInfo carries the address form submitted on the first checkout
// step and snapshotted onto the order.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian mobile numbers: 10 digits, leading digit 6-9.
	phonePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// Validate checks every shipping rule and names the first violated one.
func (s ShippingInfo) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"full name", s.FullName},
		{"email", s.Email},
		{"phone", s.Phone},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
		{"pincode", s.Pincode},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.name)
		}
	}

	if !emailPattern.MatchString(s.Email) {
		return fmt.Errorf("email must be a valid email address")
	}
	if !phonePattern.MatchString(s.Phone) {
		return fmt.Errorf("phone must be a 10-digit number starting with 6-9")
	}
	if !pincodePattern.MatchString(s.Pincode) {
		return fmt.Errorf("pincode must be exactly 6 digits")
	}
	return nil
}
