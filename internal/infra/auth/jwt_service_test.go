package auth

import (
	"testing"

	"kirana/config"
	"kirana/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, err := jwtService.GenerateSessionToken("owner1", entity.RoleOwner)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "owner1", claims.SubjectID)
	assert.Equal(t, entity.RoleOwner, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	first, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Session = "a_completely_different_secret_value"
	second, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := first.GenerateSessionToken("cust1", entity.RoleCustomer)
	assert.NoError(t, err)

	claims, err := second.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
