package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"flowerdelivery/internal/adapters/out/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLinkEncoder_PNG(t *testing.T) {
	data, err := qrcode.NewMapLinkEncoder(128).PNG("nmap://search?query=%EC%88%98%EC%9B%90")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestMapLinkEncoder_DefaultSize(t *testing.T) {
	data, err := qrcode.NewMapLinkEncoder(0).PNG("nmap://search?query=x")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
}

func TestMapLinkEncoder_EmptyLink(t *testing.T) {
	_, err := qrcode.NewMapLinkEncoder(0).PNG("")
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
