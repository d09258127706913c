package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type InviteQRGenerator interface {
	Generate(eventID string) ([]byte, error)
}

type DefaultInviteQRGenerator struct {
	BaseURL string
}

func (g DefaultInviteQRGenerator) Generate(eventID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/respond.html?event_id=%s", g.BaseURL, eventID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
