package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/rdp-keeper/internal/logger"
)

func TestConnectArgs(t *testing.T) {
	assert.Equal(t, []string{"/v", "10.0.0.5", "/prompt"}, connectArgs("10.0.0.5"))
}

func TestNew_NotNil(t *testing.T) {
	assert.NotNil(t, New("mstsc", logger.Nop()))
}
