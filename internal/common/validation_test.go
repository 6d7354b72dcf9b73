package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "warga@desa.id", wantErr: false},
		{name: "valid with subdomain", email: "admin@mail.desa.go.id", wantErr: false},
		{name: "uppercase accepted", email: "Warga@Desa.ID", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "whitespace only", email: "   ", wantErr: true},
		{name: "missing at", email: "warga.desa.id", wantErr: true},
		{name: "missing domain dot", email: "warga@desa", wantErr: true},
		{name: "contains space", email: "warga desa@desa.id", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	require.NoError(t, ValidatePhone("081234567890"))
	require.NoError(t, ValidatePhone("+62 812-3456-7890"))
	require.NoError(t, ValidatePhone("(0274) 123456"))
	require.Error(t, ValidatePhone("nomor saya"))
	require.Error(t, ValidatePhone("0812abc"))
}

func TestValidatePassword(t *testing.T) {
	require.Error(t, ValidatePassword("12345"))
	require.NoError(t, ValidatePassword("123456"))
	require.NoError(t, ValidatePassword(strings.Repeat("a", 100)))
	require.Error(t, ValidatePassword(strings.Repeat("a", 101)))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-desa")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia-desa", hash)

	require.NoError(t, CheckPassword("rahasia-desa", hash))
	require.Error(t, CheckPassword("salah", hash))
}
