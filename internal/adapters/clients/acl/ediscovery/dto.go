// Package ediscovery implements the Anti-Corruption Layer translators for
// the eDiscovery service's content container resources.
package ediscovery

// ParticipantDTO matches the downstream Participant schema.
type ParticipantDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ContainerDTO matches the downstream ContentContainer schema.
type ContainerDTO struct {
	ContainerID                 string           `json:"containerId"`
	ContainerType               string           `json:"containerType"`
	ContainerName               string           `json:"containerName"`
	Description                 string           `json:"description"`
	EncryptionKeyURL            string           `json:"encryptionKeyUrl"`
	DescriptionEncryptionKeyURL string           `json:"descriptionEncryptionKeyUrl"`
	OnBehalfOfUser              string           `json:"onBehalfOfUser"`
	IsOneOnOne                  bool             `json:"isOneOnOne"`
	Participants                []ParticipantDTO `json:"participants"`
	FormerParticipants          []ParticipantDTO `json:"formerParticipants"`
	Warning                     string           `json:"warning"`
}
