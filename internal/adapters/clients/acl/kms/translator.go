package kms

import (
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// ToDomainKeys converts a gateway KeyListResponseDTO to port keys. Keys
// without a URI are dropped.
func ToDomainKeys(dto KeyListResponseDTO) []ports.Key {
	keys := make([]ports.Key, 0, len(dto.Keys))
	for _, k := range dto.Keys {
		if k.URI == "" {
			continue
		}
		keys = append(keys, ports.Key{URI: k.URI, UserID: k.UserID})
	}
	return keys
}

// ToCreateResourceRequest converts keys and the users allowed to read them
// to a gateway CreateResourceRequestDTO.
func ToCreateResourceRequest(userIDs []string, keys []ports.Key) CreateResourceRequestDTO {
	uris := make([]string, len(keys))
	for i, k := range keys {
		uris[i] = k.URI
	}
	return CreateResourceRequestDTO{UserIDs: userIDs, KeyURIs: uris}
}

// ToDomainSecureReference converts a gateway SecureReferenceDTO to a
// decrypted content reference.
func ToDomainSecureReference(dto *SecureReferenceDTO) *conversation.SecureContentReference {
	return &conversation.SecureContentReference{
		Loc: dto.Loc,
		Key: dto.Key,
		IV:  dto.IV,
		Tag: dto.Tag,
		AAD: dto.AAD,
	}
}
