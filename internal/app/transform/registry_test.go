package transform

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
)

func TestHandlerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{tag: "activity", want: "decryptActivity"},
		{tag: "comment", want: "decryptComment"},
		{tag: "microappInstance", want: "decryptMicroappinstance"},
		{tag: "reaction2Summary", want: "decryptReaction2summary"},
		{tag: "reaction2SelfSummary", want: "decryptReaction2selfsummary"},
		{tag: "meetingContainer", want: "decryptMeetingcontainer"},
		{tag: "", want: "decrypt"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			if got := HandlerName(tt.tag); got != tt.want {
				t.Errorf("HandlerName(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNewRegistry_RejectsInvalidDescriptors(t *testing.T) {
	t.Parallel()

	h := func(context.Context, *Context, string, *conversation.Object, domain.Path) {}

	tests := []struct {
		name        string
		descriptors []Descriptor
	}{
		{name: "empty tag", descriptors: []Descriptor{{HandlerName: "decryptX", Handler: h}}},
		{name: "empty handler name", descriptors: []Descriptor{{TypeTag: "x", Handler: h}}},
		{name: "noop handler name", descriptors: []Descriptor{{TypeTag: "x", HandlerName: NoOpName, Handler: h}}},
		{name: "nil handler", descriptors: []Descriptor{{TypeTag: "x", HandlerName: "decryptX"}}},
		{name: "duplicate tag", descriptors: []Descriptor{Describe("x", h), Describe("x", h)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewRegistry(tt.descriptors...); err == nil {
				t.Fatal("NewRegistry() error = nil, want error")
			}
		})
	}
}

func TestMustRegistry_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("MustRegistry() did not panic on invalid descriptor")
		}
	}()
	MustRegistry(Descriptor{})
}

func TestRegistry_LookupUnknownIsNoOp(t *testing.T) {
	t.Parallel()

	d := DefaultRegistry().Lookup("hologram")
	if d.HandlerName != NoOpName {
		t.Errorf("Lookup(unknown).HandlerName = %q, want %q", d.HandlerName, NoOpName)
	}
	if d.TypeTag != "hologram" {
		t.Errorf("Lookup(unknown).TypeTag = %q, want %q", d.TypeTag, "hologram")
	}
	if d.Handler == nil {
		t.Error("Lookup(unknown).Handler is nil, want no-op handler")
	}
}

func TestDefaultRegistry_Names(t *testing.T) {
	t.Parallel()

	want := []string{
		conversation.TypeActivity,
		conversation.TypeComment,
		conversation.TypeContent,
		conversation.TypeConversation,
		conversation.TypeFile,
		conversation.TypeLink,
		conversation.TypeMeetingContainer,
		conversation.TypeMicroappInstance,
		conversation.TypeReaction2,
		conversation.TypeReaction2SelfSummary,
		conversation.TypeReaction2Summary,
		conversation.TypeThread,
	}

	got := DefaultRegistry().Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
