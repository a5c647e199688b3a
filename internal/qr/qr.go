// Package qr renders links as QR codes for the terminal.
package qr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomoflip/internal/config"
	qrcode "github.com/skip2/go-qrcode"
)

var ErrMissingLink = errors.New("qr code is missing a link")

type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// PixelSize maps a size name to the pixel edge a browser would draw.
func PixelSize(size string) int {
	switch Size(strings.ToLower(strings.TrimSpace(size))) {
	case Small:
		return config.QRSizeSmall
	case Medium:
		return config.QRSizeMedium
	case Large:
		return config.QRSizeLarge
	default:
		return config.QRSizeDefault
	}
}

// Render encodes link with high error correction and draws it with block
// characters. Small codes drop the quiet zone; large codes use one full
// block per module instead of half blocks.
func Render(link, size string) (string, error) {
	if strings.TrimSpace(link) == "" {
		return "", ErrMissingLink
	}
	code, err := qrcode.New(link, qrcode.Highest)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	switch PixelSize(size) {
	case config.QRSizeSmall:
		code.DisableBorder = true
		return code.ToSmallString(false), nil
	case config.QRSizeLarge:
		return code.ToString(false), nil
	default:
		return code.ToSmallString(false), nil
	}
}
