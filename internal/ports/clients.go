package ports

import (
	"context"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
)

// Key is a key issued by the key-management service. URI is the opaque key
// identifier stored in encryptionKeyUrl fields; UserID is the user the key
// was issued to.
type Key struct {
	URI    string `json:"uri"`
	UserID string `json:"userId"`
}

// DecryptOptions carries the delegated identity for a decryption. An empty
// OnBehalfOf decrypts as the service's own identity.
type DecryptOptions struct {
	OnBehalfOf string
}

// KeyManager defines the client port for the key-management service.
// Implemented by the KMS adapters (HTTP gateway or Vault transit); called by
// the transform engine. Ciphertext values are opaque compact strings.
type KeyManager interface {
	// CreateUnboundKeys issues count fresh keys that are not yet bound to a
	// resource.
	CreateUnboundKeys(ctx context.Context, count int) ([]Key, error)

	// CreateResource binds keys to a resource whose ACL admits userIDs.
	CreateResource(ctx context.Context, userIDs []string, keys []Key) error

	// EncryptText encrypts plaintext under key.
	EncryptText(ctx context.Context, key Key, plaintext string) (string, error)

	// DecryptText decrypts ciphertext protected by the key at keyURI.
	// Returns domain.ErrForbidden if the delegate may not use the key.
	DecryptText(ctx context.Context, keyURI, ciphertext string, opts DecryptOptions) (string, error)

	// DecryptSecureReference decrypts an encrypted scr or sslr. Shared-link
	// references only populate Loc in the result.
	DecryptSecureReference(ctx context.Context, keyURI, ref string, opts DecryptOptions) (*conversation.SecureContentReference, error)
}

// ContainerLookup defines the client port for the eDiscovery content
// container API.
type ContainerLookup interface {
	// GetContentContainer returns the container of a report by its ID.
	// Returns domain.ErrNotFound if the report has no such container.
	GetContentContainer(ctx context.Context, reportID, containerID string) (*ediscovery.ContentContainer, error)
}
