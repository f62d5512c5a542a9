package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// Generator renders instant-transfer charge payloads as QR code PNGs for the
// payment dialog. The payload is a simulation: no payment network sits behind
// it.
type Generator struct {
	size  int
	level qrcode.RecoveryLevel
}

// ChargePayload is the data encoded into the QR code.
type ChargePayload struct {
	ChargeID string  `json:"charge_id"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
}

// NewGenerator creates a QR generator with the given image size in pixels and
// error correction level ("L", "M", "Q" or "H").
func NewGenerator(size int, errorCorrectionLevel string) *Generator {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &Generator{size: size, level: level}
}

// GenerateChargeQR renders the charge for the given amount (in cents) as a
// PNG image.
func (g *Generator) GenerateChargeQR(chargeID uuid.UUID, amountCents int64) ([]byte, error) {
	payload := ChargePayload{
		ChargeID: chargeID.String(),
		Amount:   float64(amountCents) / 100,
		Type:     "instant_transfer",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charge payload: %w", err)
	}

	qr, err := qrcode.New(string(jsonData), g.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(g.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return png, nil
}
