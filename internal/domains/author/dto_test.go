package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name: "valid minimal",
			req:  RegisterRequest{Name: "alice", Password: "secret-password"},
		},
		{
			name: "valid with contacts",
			req: RegisterRequest{
				Name:     "alice",
				Password: "secret-password",
				Emails:   []string{"alice@example.com"},
				Phones:   []string{"+1234567"},
				Addresses: []AddressInput{
					{City: "Springfield", Street: "Main St 1"},
				},
			},
		},
		{
			name:    "missing name",
			req:     RegisterRequest{Password: "secret-password"},
			wantErr: true,
		},
		{
			name:    "name too short",
			req:     RegisterRequest{Name: "ab", Password: "secret-password"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Name: "alice"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Name: "alice", Password: "short"},
			wantErr: true,
		},
		{
			name: "bad email in collection",
			req: RegisterRequest{
				Name:     "alice",
				Password: "secret-password",
				Emails:   []string{"alice@example.com", "not-an-email"},
			},
			wantErr: true,
		},
		{
			name: "phone too short",
			req: RegisterRequest{
				Name:     "alice",
				Password: "secret-password",
				Phones:   []string{"123"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateRequestValidate(t *testing.T) {
	valid := UpdateRequest{Name: "alice", Version: 3}
	assert.NoError(t, valid.Validate())

	noName := UpdateRequest{Version: 0}
	assert.Error(t, noName.Validate())

	badEmail := UpdateRequest{Name: "alice", Emails: []string{"nope"}}
	assert.Error(t, badEmail.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Name: "alice", Password: "x"}.Validate())
	assert.Error(t, LoginRequest{Name: "alice"}.Validate())
	assert.Error(t, LoginRequest{Password: "x"}.Validate())
}
