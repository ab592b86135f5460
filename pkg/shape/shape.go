// Package shape holds pure helpers for turning raw rows into response DTOs:
// JSON-typed column normalization and display defaults. No I/O happens here.
package shape

import "encoding/json"

// DefaultAvatarURL is substituted for accounts without an uploaded picture.
const DefaultAvatarURL = "/static/img/avatar-placeholder.png"

// DefaultLogoURL is substituted for employers without an uploaded logo.
const DefaultLogoURL = "/static/img/logo-placeholder.png"

// ParseIfEncoded normalizes a JSON column value into dst. Depending on driver
// configuration the value arrives either as a raw JSON string/[]byte or as an
// already-decoded structure, so both forms are handled. A nil value leaves
// dst untouched.
func ParseIfEncoded(value interface{}, dst interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		// Already structured: round-trip through encoding/json to fill dst.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	}
}

// OrDefault returns the pointed-to string, or fallback when the column was
// NULL or empty.
func OrDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
