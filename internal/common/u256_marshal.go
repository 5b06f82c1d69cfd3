package common

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MarshalText renders the decimal form, used by encoding/json and viper
func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText accepts the same literals as NewU256FromString
func (u *U256) UnmarshalText(text []byte) error {
	v, err := NewU256FromString(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBSONValue stores U256 as a decimal string so mongo never truncates it
func (u U256) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(u.String())
}

// UnmarshalBSONValue reads back a value written by MarshalBSONValue
func (u *U256) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	s, ok := raw.StringValueOK()
	if !ok {
		return errors.Errorf("cannot decode bson %s into U256", t)
	}
	return u.UnmarshalText([]byte(s))
}
