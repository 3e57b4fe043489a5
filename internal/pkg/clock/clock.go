// Package clock supplies "now" in the operator's time zone, so that the
// date prefix of an order number follows the local calendar day.
package clock

import (
	"fmt"
	"time"
)

// DefaultTimeZone is the operator's zone when none is configured.
const DefaultTimeZone = "Asia/Seoul"

type Clock interface {
	Now() time.Time
}

// Zoned reports the current time in a fixed location.
type Zoned struct {
	location *time.Location
}

func NewZoned(location *time.Location) Zoned {
	return Zoned{location: location}
}

// LoadZoned resolves an IANA zone name. An empty name means DefaultTimeZone.
func LoadZoned(name string) (Zoned, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return Zoned{}, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return NewZoned(location), nil
}

func (z Zoned) Now() time.Time {
	if z.location == nil {
		return time.Now()
	}
	return time.Now().In(z.location)
}

func (z Zoned) Location() *time.Location {
	if z.location == nil {
		return time.Local
	}
	return z.location
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
