package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := Config{Auth: Auth{SessionSecret: "s", JWTSecret: "j"}}
	assert.NoError(t, valid.Validate())

	noSession := valid
	noSession.Auth.SessionSecret = "  "
	assert.True(t, errors.Is(noSession.Validate(), ErrMissingSessionSecret))

	noJWT := valid
	noJWT.Auth.JWTSecret = ""
	assert.True(t, errors.Is(noJWT.Validate(), ErrMissingJWTSecret))

	adminWithoutPassword := valid
	adminWithoutPassword.Admin.Email = "boss@example.com"
	assert.Error(t, adminWithoutPassword.Validate())
}

func TestNewConfigRequiresSecrets(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("JWT_SECRET", "")
	_, err := NewConfig()
	assert.Error(t, err)

	t.Setenv("SESSION_SECRET", "session")
	t.Setenv("JWT_SECRET", "jwt")
	cfg, err := NewConfig()
	assert.NoError(t, err)
	assert.Equal(t, "jwt", cfg.Auth.JWTSecret)
}
