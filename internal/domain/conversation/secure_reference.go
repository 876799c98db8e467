package conversation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SecureContentReference describes where encrypted binary content lives and
// how to decrypt it. A shared-link reference only populates Loc.
type SecureContentReference struct {
	Loc string `json:"loc"`
	Key string `json:"key,omitempty"`
	IV  string `json:"iv,omitempty"`
	Tag string `json:"tag,omitempty"`
	AAD string `json:"aad,omitempty"`
}

// SecureReference is an scr field. On the wire it is either a compact
// ciphertext string (encrypted) or a SecureContentReference object
// (decrypted). Exactly one of the two is set.
type SecureReference struct {
	Ciphertext string
	Decrypted  *SecureContentReference
}

// Encrypted reports whether the reference still holds ciphertext.
func (r *SecureReference) Encrypted() bool {
	return r != nil && r.Decrypted == nil && r.Ciphertext != ""
}

// MarshalJSON writes the ciphertext as a string or the decrypted reference as
// an object.
func (r SecureReference) MarshalJSON() ([]byte, error) {
	if r.Decrypted != nil {
		return json.Marshal(r.Decrypted)
	}
	return json.Marshal(r.Ciphertext)
}

// UnmarshalJSON accepts either wire shape.
func (r *SecureReference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &r.Ciphertext)
	case '{':
		var ref SecureContentReference
		if err := json.Unmarshal(data, &ref); err != nil {
			return fmt.Errorf("decoding secure content reference: %w", err)
		}
		r.Decrypted = &ref
		return nil
	default:
		return fmt.Errorf("secure reference must be a string or an object, got %q", data[:1])
	}
}
