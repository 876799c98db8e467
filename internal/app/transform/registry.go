package transform

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
)

// NoOpName is the handler name of the fallback descriptor.
const NoOpName = "noop"

// Handler transforms one node of type TypeTag and recurses into the children
// it owns. key is the key inherited from the parent, already replaced by the
// node's own key when it has one.
type Handler func(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path)

// Descriptor binds an object type discriminator to its handler. Descriptors
// are immutable once registered.
type Descriptor struct {
	TypeTag     string
	HandlerName string
	Handler     Handler
}

// Describe builds the descriptor of tag with the conventional handler name.
func Describe(tag string, h Handler) Descriptor {
	return Descriptor{TypeTag: tag, HandlerName: HandlerName(tag), Handler: h}
}

// HandlerName returns "decrypt" followed by tag with its first letter upper
// cased and the rest lower cased: microappInstance -> decryptMicroappinstance.
func HandlerName(tag string) string {
	if tag == "" {
		return "decrypt"
	}
	first, size := utf8.DecodeRuneInString(tag)
	return "decrypt" + string(unicode.ToUpper(first)) + strings.ToLower(tag[size:])
}

// Registry maps object type discriminators to descriptors. It is built once
// and only read afterwards, so lookups need no locking.
type Registry struct {
	byTag map[string]Descriptor
}

// NewRegistry registers descriptors. Empty or duplicate tags, empty handler
// names and nil handlers are errors.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byTag: make(map[string]Descriptor, len(descriptors))}

	var errs []error
	for _, d := range descriptors {
		switch {
		case d.TypeTag == "":
			errs = append(errs, errors.New("descriptor with empty type tag"))
		case d.HandlerName == "" || d.HandlerName == NoOpName:
			errs = append(errs, fmt.Errorf("descriptor %q: invalid handler name %q", d.TypeTag, d.HandlerName))
		case d.Handler == nil:
			errs = append(errs, fmt.Errorf("descriptor %q: nil handler", d.TypeTag))
		default:
			if _, dup := r.byTag[d.TypeTag]; dup {
				errs = append(errs, fmt.Errorf("descriptor %q registered twice", d.TypeTag))
				continue
			}
			r.byTag[d.TypeTag] = d
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("building transform registry: %w", err)
	}
	return r, nil
}

// MustRegistry is NewRegistry for static descriptor sets; it panics on error.
func MustRegistry(descriptors ...Descriptor) *Registry {
	r, err := NewRegistry(descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the descriptor of tag, or the no-op descriptor when tag is
// not registered.
func (r *Registry) Lookup(tag string) Descriptor {
	if d, ok := r.byTag[tag]; ok {
		return d
	}
	return Descriptor{TypeTag: tag, HandlerName: NoOpName, Handler: noop}
}

// Names returns the registered type tags in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byTag))
	for tag := range r.byTag {
		names = append(names, tag)
	}
	sort.Strings(names)
	return names
}

func noop(context.Context, *Context, string, *conversation.Object, domain.Path) {}
