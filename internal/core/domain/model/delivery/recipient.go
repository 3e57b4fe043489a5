package delivery

import (
	"net/url"
	"strings"
)

// Recipient is where and to whom a delivery goes. Both fields are optional.
type Recipient struct {
	address string
	phone   string
}

func NewRecipient(address, phone string) Recipient {
	return Recipient{
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
	}
}

// Address returns the full free-text address.
func (r Recipient) Address() string {
	return r.address
}

func (r Recipient) Phone() string {
	return r.phone
}

// AbbreviatedAddress returns the first two words of the address, usually
// city and district.
func (r Recipient) AbbreviatedAddress() string {
	parts := strings.Fields(r.address)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, " ")
}

// MapLink returns the Naver Map search deep link for the address.
func (r Recipient) MapLink() string {
	return "nmap://search?query=" + strings.ReplaceAll(url.QueryEscape(r.address), "+", "%20")
}

// ComposePostalAddress joins the result of the postal-code lookup popup:
// the road address followed by the optional extra part in parentheses.
func ComposePostalAddress(address, extraAddress string) string {
	address = strings.TrimSpace(address)
	extraAddress = strings.TrimSpace(extraAddress)
	if extraAddress == "" {
		return address
	}
	return address + " (" + extraAddress + ")"
}
