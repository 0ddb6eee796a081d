package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "invalid", ""} {
		t.Run("level "+level, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(&config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: level}))
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	png, err := service.GenerateOrderQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(png), 8)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(&config.QRCodeConfig{})
	orderID := uuid.New()

	valid, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: orderPickupType})
	require.NoError(t, err)

	got, err := service.ParseOrderQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, orderID, got)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "plain text"},
		{"wrong type", `{"order_id":"` + orderID.String() + `","type":"subscription"}`},
		{"bad id", `{"order_id":"nope","type":"order_pickup"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := service.ParseOrderQR(tt.data)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
