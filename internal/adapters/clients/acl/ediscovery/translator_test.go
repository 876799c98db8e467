package ediscovery

import "testing"

func TestToDomainContainer(t *testing.T) {
	t.Parallel()

	dto := &ContainerDTO{
		ContainerID:    "space-1",
		ContainerType:  "space",
		IsOneOnOne:     true,
		OnBehalfOfUser: "officer",
		Participants:   []ParticipantDTO{{ID: "u1", DisplayName: "Alice"}},
		FormerParticipants: []ParticipantDTO{
			{ID: "u2", DisplayName: "Bob"},
		},
		Warning: "partial history",
	}

	got := ToDomainContainer(dto)
	if got.ContainerID != "space-1" || got.OnBehalfOfUser != "officer" || got.Warning != "partial history" {
		t.Errorf("ToDomainContainer() = %+v", got)
	}
	if name := got.DisplayName(); name != "Alice & Bob" {
		t.Errorf("DisplayName() = %q, want %q", name, "Alice & Bob")
	}
}

func TestToDomainContainer_NoParticipants(t *testing.T) {
	t.Parallel()

	got := ToDomainContainer(&ContainerDTO{ContainerName: "enc"})
	if got.Participants != nil || got.FormerParticipants != nil {
		t.Errorf("participants = %v / %v, want nil", got.Participants, got.FormerParticipants)
	}
}
