package session

import (
	"govconnect/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// RecordKey is the local store key of the durable session record.
const RecordKey = "gov-connect-user"

// ErrMalformedRecord is returned for a durable record that cannot be trusted.
var ErrMalformedRecord = errors.New("malformed session record")

// encodeRecord renders the durable record. Only the public user fields are
// written; the record has no version field.
func encodeRecord(u domain.User) string {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(u.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(u.Name) })
		e.Field("email", func(e *jx.Encoder) { e.Str(u.Email) })
		e.Field("profileCompleted", func(e *jx.Encoder) { e.Bool(u.ProfileCompleted) })
	})

	return e.String()
}

// decodeRecord parses a durable record. Unknown fields are ignored; a missing
// or invalid id makes the record malformed.
func decodeRecord(raw string) (domain.User, error) {
	var (
		u     domain.User
		hasID bool
	)

	d := jx.DecodeStr(raw)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			var s string
			if s, err = d.Str(); err != nil {
				return err
			}
			if u.ID, err = domain.ParseUserID(s); err != nil {
				return err
			}
			hasID = true
		case "name":
			u.Name, err = d.Str()
		case "email":
			u.Email, err = d.Str()
		case "profileCompleted":
			u.ProfileCompleted, err = d.Bool()
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		return domain.User{}, errors.Wrap(ErrMalformedRecord, err.Error())
	}
	if !hasID || u.ID.IsZero() {
		return domain.User{}, errors.Wrap(ErrMalformedRecord, "missing id")
	}

	return u, nil
}
