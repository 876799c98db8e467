// Package kms implements the Anti-Corruption Layer translators for the
// key-management gateway's key, resource and crypto resources.
package kms

// KeyDTO matches the gateway Key schema.
type KeyDTO struct {
	URI    string `json:"uri"`
	UserID string `json:"userId"`
}

// CreateKeysRequestDTO matches the gateway CreateUnboundKeysRequest schema.
type CreateKeysRequestDTO struct {
	Count int `json:"count"`
}

// KeyListResponseDTO matches the gateway KeyListResponse schema.
type KeyListResponseDTO struct {
	Keys []KeyDTO `json:"keys"`
}

// CreateResourceRequestDTO matches the gateway CreateResourceRequest schema.
// Keys are bound by URI only.
type CreateResourceRequestDTO struct {
	UserIDs []string `json:"userIds"`
	KeyURIs []string `json:"keyUris"`
}

// EncryptRequestDTO matches the gateway EncryptTextRequest schema.
type EncryptRequestDTO struct {
	KeyURI    string `json:"keyUri"`
	Plaintext string `json:"plaintext"`
}

// EncryptResponseDTO matches the gateway EncryptTextResponse schema.
type EncryptResponseDTO struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequestDTO matches the gateway DecryptTextRequest schema.
type DecryptRequestDTO struct {
	KeyURI     string `json:"keyUri"`
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponseDTO matches the gateway DecryptTextResponse schema.
type DecryptResponseDTO struct {
	Plaintext string `json:"plaintext"`
}

// DecryptReferenceRequestDTO matches the gateway DecryptScrRequest schema.
// The same call serves scr and sslr references.
type DecryptReferenceRequestDTO struct {
	KeyURI string `json:"keyUri"`
	Ref    string `json:"ref"`
}

// SecureReferenceDTO matches the gateway Scr schema.
type SecureReferenceDTO struct {
	Loc string `json:"loc"`
	Key string `json:"key,omitempty"`
	IV  string `json:"iv,omitempty"`
	Tag string `json:"tag,omitempty"`
	AAD string `json:"aad,omitempty"`
}
