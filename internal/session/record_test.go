package session

import (
	"govconnect/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordCodec(t *testing.T) {
	user := domain.User{
		ID:               domain.NewUserID(),
		Name:             `Alice "Ace" O'Neil`,
		Email:            "alice@example.com",
		ProfileCompleted: true,
	}

	raw := encodeRecord(user)
	require.JSONEq(t, `{"id":"`+user.ID.String()+`","name":"Alice \"Ace\" O'Neil","email":"alice@example.com","profileCompleted":true}`, raw)

	decoded, err := decodeRecord(raw)
	require.NoError(t, err)
	require.Equal(t, user, decoded)
}

func TestDecodeRecord_IgnoresUnknownFields(t *testing.T) {
	id := domain.NewUserID()
	u, err := decodeRecord(`{"id":"` + id.String() + `","password":"secret","extra":{"a":[1,2]},"name":"Bo"}`)
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, "Bo", u.Name)
	require.False(t, u.ProfileCompleted)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":     `{not json`,
		"array":        `[1,2,3]`,
		"null":         `null`,
		"missing id":   `{"name":"Alice","email":"a@example.com","profileCompleted":false}`,
		"invalid id":   `{"id":"123","name":"Alice"}`,
		"wrong type":   `{"id":"` + domain.NewUserID().String() + `","profileCompleted":"yes"}`,
		"empty string": ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeRecord(raw)
			require.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}
