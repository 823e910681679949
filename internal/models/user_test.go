package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{name: "valid user", user: User{Email: "test@example.com"}},
		{name: "missing email", user: User{}, wantErr: true},
		{name: "invalid email", user: User{Email: "not-an-email"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Obi", (&User{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com"}).DisplayName())
	assert.Equal(t, "Ada", (&User{FirstName: "Ada", Email: "ada@example.com"}).DisplayName())
	assert.Equal(t, "ada@example.com", (&User{Email: "ada@example.com"}).DisplayName())
}
