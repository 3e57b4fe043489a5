// Package qrcode encodes delivery map links as QR code images.
package qrcode

import (
	"errors"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length of the PNG in pixels.
const DefaultSize = 256

var ErrEmptyContent = errors.New("qr code content is empty")

// MapLinkEncoder renders a map deep link so a driver can open it from a phone camera.
type MapLinkEncoder struct {
	size int
}

func NewMapLinkEncoder(size int) MapLinkEncoder {
	if size <= 0 {
		size = DefaultSize
	}
	return MapLinkEncoder{size: size}
}

// PNG returns the QR code of link as PNG bytes.
func (e MapLinkEncoder) PNG(link string) ([]byte, error) {
	if link == "" {
		return nil, ErrEmptyContent
	}
	return qr.Encode(link, qr.Medium, e.size)
}
