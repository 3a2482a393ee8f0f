package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	MinSize     = 128
	MaxSize     = 1024
	DefaultSize = 256
)

// QRService renders the patron page link as a QR code for printed material.
type QRService struct {
	siteURL string // e.g. "https://mamonis.studio"
}

func NewQRService(siteURL string) *QRService {
	return &QRService{
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

func (s *QRService) PatronURL() string {
	return s.siteURL + "/#patron"
}

// GeneratePatronQRCode returns a PNG; size is clamped to [MinSize, MaxSize].
func (s *QRService) GeneratePatronQRCode(size int) ([]byte, error) {
	png, err := qrcode.Encode(s.PatronURL(), qrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}

func ClampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}
