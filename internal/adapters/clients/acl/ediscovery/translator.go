package ediscovery

import (
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
)

// ToDomainContainer converts a downstream ContainerDTO to a domain
// ContentContainer.
func ToDomainContainer(dto *ContainerDTO) *ediscovery.ContentContainer {
	return &ediscovery.ContentContainer{
		ContainerID:                 dto.ContainerID,
		ContainerType:               dto.ContainerType,
		ContainerName:               dto.ContainerName,
		Description:                 dto.Description,
		EncryptionKeyURL:            dto.EncryptionKeyURL,
		DescriptionEncryptionKeyURL: dto.DescriptionEncryptionKeyURL,
		OnBehalfOfUser:              dto.OnBehalfOfUser,
		IsOneOnOne:                  dto.IsOneOnOne,
		Participants:                toDomainParticipants(dto.Participants),
		FormerParticipants:          toDomainParticipants(dto.FormerParticipants),
		Warning:                     dto.Warning,
	}
}

func toDomainParticipants(dtos []ParticipantDTO) []ediscovery.Participant {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]ediscovery.Participant, len(dtos))
	for i, p := range dtos {
		out[i] = ediscovery.Participant{ID: p.ID, DisplayName: p.DisplayName}
	}
	return out
}
