// Package codec centralizes JSON serialization of component payloads, so the
// state snapshot and the query endpoints encode them identically.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Decode unmarshals bz into a value of type T.
func Decode[T any](bz []byte) (T, error) {
	payload := new(T)
	if err := json.Unmarshal(bz, payload); err != nil {
		return *payload, eris.Wrap(err, "failed to decode payload")
	}
	return *payload, nil
}

// Encode marshals a component payload to JSON.
func Encode(payload any) ([]byte, error) {
	bz, err := json.Marshal(payload)
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode payload")
	}
	return bz, nil
}
