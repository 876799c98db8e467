package transform

import (
	"context"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
)

// Field and sub-object transform names.
const (
	NamePropDisplayName = "decryptPropDisplayName"
	NamePropContent     = "decryptPropContent"
	NamePropDescription = "decryptPropDescription"
	NamePropCardItem    = "decryptPropCardItem"
	NamePropModel       = "decryptPropModel"
	NamePropTopic       = "decryptPropTopic"
	NamePropScr         = "decryptPropScr"
	NamePropSslr        = "decryptPropSslr"

	NameContentLinks = "decryptContentLinks"
	NameContentFiles = "decryptContentFiles"
	NameComment      = "decryptComment"
)

// DefaultRegistry returns the registry of conversation object handlers.
func DefaultRegistry() *Registry {
	return MustRegistry(
		Describe(conversation.TypeActivity, decryptActivity),
		Describe(conversation.TypeComment, decryptComment),
		Describe(conversation.TypeContent, decryptContent),
		Describe(conversation.TypeConversation, decryptConversation),
		Describe(conversation.TypeFile, decryptFile),
		Describe(conversation.TypeLink, decryptLink),
		Describe(conversation.TypeMicroappInstance, decryptMicroappInstance),
		Describe(conversation.TypeReaction2, decryptReaction),
		Describe(conversation.TypeReaction2Summary, decryptReactionSummary),
		Describe(conversation.TypeReaction2SelfSummary, decryptReactionSummary),
		Describe(conversation.TypeMeetingContainer, decryptMeetingContainer),
		Describe(conversation.TypeThread, decryptThread),
	)
}

func decryptActivity(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	tc.DispatchActivity(ctx, key, node, path)
}

func decryptComment(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	tc.DecryptField(b, NamePropDisplayName, key, &node.DisplayName, path.Child("displayName"), domain.SeverityWarning)
	tc.DecryptField(b, NamePropContent, key, &node.Content, path.Child("content"), domain.SeverityError)
	for i := range node.Cards {
		tc.DecryptField(b, NamePropCardItem, key, &node.Cards[i], path.Index("cards", i), domain.SeverityError)
	}
	b.Wait(ctx)
}

// decryptContent routes a content object to its links or files transform.
func decryptContent(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	if node.ContentCategory == conversation.CategoryLinks {
		b.Go(NameContentLinks, path, func(ctx context.Context) { decryptContentLinks(ctx, tc, key, node, path) })
	} else {
		b.Go(NameContentFiles, path, func(ctx context.Context) { decryptContentFiles(ctx, tc, key, node, path) })
	}
	b.Wait(ctx)
}

func decryptContentLinks(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	decryptContentItems(ctx, tc, key, node, node.Links, path, "links")
}

func decryptContentFiles(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	decryptContentItems(ctx, tc, key, node, node.Files, path, "files")
}

// decryptContentItems dispatches every item, then the comment fields of the
// content object itself.
func decryptContentItems(ctx context.Context, tc *Context, key string, node *conversation.Object, items *conversation.Items, path domain.Path, field string) {
	b := tc.Batch()
	if items != nil {
		for i, item := range items.Items {
			tc.scheduleObject(b, key, item, path.Child(field).Index("items", i))
		}
	}
	b.Go(NameComment, path, func(ctx context.Context) {
		decryptComment(ctx, tc, key, node, path)
	})
	b.Wait(ctx)
}

func decryptLink(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	if !tc.ConflictingReferences(ctx, node.Scr, node.Sslr, path) {
		tc.DecryptSslr(b, NamePropSslr, key, &node.Sslr, path.Child("sslr"))
	}
	tc.DecryptField(b, NamePropDisplayName, key, &node.DisplayName, path.Child("displayName"), domain.SeverityWarning)
	b.Wait(ctx)
}

func decryptFile(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	if !tc.ConflictingReferences(ctx, node.Scr, node.Sslr, path) {
		tc.DecryptScr(b, NamePropScr, key, node.Scr, path.Child("scr"))
	}
	tc.DecryptField(b, NamePropDisplayName, key, &node.DisplayName, path.Child("displayName"), domain.SeverityWarning)
	b.Wait(ctx)
}

func decryptConversation(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	tc.DecryptField(b, NamePropDisplayName, key, &node.DisplayName, path.Child("displayName"), domain.SeverityWarning)
	tc.DecryptField(b, NamePropDescription, key, &node.Description, path.Child("description"), domain.SeverityError)
	b.Wait(ctx)
}

func decryptMicroappInstance(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	tc.DecryptField(b, NamePropModel, key, &node.Model, path.Child("model"), domain.SeverityError)
	b.Wait(ctx)
}

func decryptReaction(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	tc.DecryptField(b, NamePropDisplayName, key, &node.DisplayName, path.Child("displayName"), domain.SeverityWarning)
	b.Wait(ctx)
}

// decryptReactionSummary decrypts the display name of every reaction of a
// summary or self summary.
func decryptReactionSummary(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	for i, reaction := range node.Reactions {
		if reaction == nil {
			continue
		}
		tc.DecryptField(b, NamePropDisplayName, reaction.KeyOr(key), &reaction.DisplayName,
			path.Index("reactions", i).Child("displayName"), domain.SeverityWarning)
	}
	b.Wait(ctx)
}

// decryptMeetingContainer decrypts the container name, then the topic of
// each recording extension under the extension's own key when present.
func decryptMeetingContainer(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	tc.DecryptField(b, NamePropDisplayName, key, &node.DisplayName, path.Child("displayName"), domain.SeverityWarning)

	if node.Extensions != nil {
		for i, ext := range node.Extensions.Items {
			if ext == nil || ext.Data == nil || ext.Data.ObjectType != conversation.TypeRecording {
				continue
			}
			extKey := ext.EncryptionKeyURL
			if extKey == "" {
				extKey = ext.Data.KeyOr(key)
			}
			tc.DecryptField(b, NamePropTopic, extKey, &ext.Data.Topic,
				path.Child("extensions").Index("items", i).Child("data").Child("topic"), domain.SeverityError)
		}
	}
	b.Wait(ctx)
}

func decryptThread(ctx context.Context, tc *Context, key string, node *conversation.Object, path domain.Path) {
	b := tc.Batch()
	for i, child := range node.ChildActivities {
		tc.scheduleObject(b, key, child, path.Index("childActivities", i))
	}
	b.Wait(ctx)
}
