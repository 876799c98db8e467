package transform

import (
	"context"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
)

// Names of the structural transforms. Object handlers are named by
// HandlerName; field transforms by the constants in conversation.go.
const (
	NameDecryptObject   = "decryptObject"
	NameDecryptActivity = "decryptActivity"
)

// DispatchObject runs the handler registered for node.ObjectType on node and
// on each of its revisions (previous, then previousValue). Every node uses
// its own key when it has one, otherwise key. Unregistered types are left
// untouched and schedule nothing.
func (tc *Context) DispatchObject(ctx context.Context, key string, node *conversation.Object, path domain.Path) {
	if node == nil {
		return
	}

	d := tc.registry.Lookup(node.ObjectType)
	if d.HandlerName == NoOpName {
		return
	}

	b := tc.Batch()
	b.Go(d.HandlerName, path, func(ctx context.Context) {
		d.Handler(ctx, tc, node.KeyOr(key), node, path)
	})
	for _, rev := range node.Revisions() {
		revPath := path.Child(rev.Field)
		b.Go(d.HandlerName, revPath, func(ctx context.Context) {
			d.Handler(ctx, tc, rev.Node.KeyOr(key), rev.Node, revPath)
		})
	}
	b.Wait(ctx)
}

// DispatchActivity decrypts an activity: its object and each of its children
// are dispatched with the activity key (the activity's own key, else key).
// One decryptObject is scheduled for the object and one per child, in array
// order.
func (tc *Context) DispatchActivity(ctx context.Context, key string, activity *conversation.Object, path domain.Path) {
	if activity == nil {
		return
	}
	key = activity.KeyOr(key)

	b := tc.Batch()
	tc.scheduleObject(b, key, activity.Object, path.Child("object"))
	for i, child := range activity.Children {
		tc.scheduleObject(b, key, child, path.Index("children", i))
	}
	b.Wait(ctx)
}

// scheduleObject schedules decryptObject for node on b.
func (tc *Context) scheduleObject(b *Batch, key string, node *conversation.Object, path domain.Path) {
	if node == nil {
		return
	}
	b.Go(NameDecryptObject, path, func(ctx context.Context) {
		tc.DispatchObject(ctx, key, node, path)
	})
}
