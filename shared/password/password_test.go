package password_test

import (
	"hotel/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	hash, err := password.Hash("s3cret-desk")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-desk", hash)

	other, err := password.Hash("s3cret-desk")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "bcrypt salts every hash")

	_, err = password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-desk")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "s3cret-desk", hash: hash},
		{name: "mismatch", password: "wrong", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "s3cret-desk", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}

	assert.Error(t, password.Verify("s3cret-desk", "not-a-bcrypt-hash"))
}

func TestHashRejectsTooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", password.MaxLength+1))
	assert.ErrorIs(t, err, password.ErrTooLong)

	_, err = password.Hash(strings.Repeat("a", password.MaxLength))
	assert.NoError(t, err)
}

func TestHashOptional(t *testing.T) {
	hash, err := password.HashOptional(nil)
	require.NoError(t, err)
	assert.Empty(t, hash)

	supplied := "new-desk-pass"

	hash, err = password.HashOptional(&supplied)
	require.NoError(t, err)
	assert.NoError(t, password.Verify(supplied, hash))
}
