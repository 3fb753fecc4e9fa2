package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PNG magic bytes.
var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateShopQR("owner1", "Rajesh General Store")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestQRCodeService_DefaultsUnknownLevel(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateShopQR("owner1", "Corner Shop")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
