// Package ediscovery models the payloads exchanged with the eDiscovery
// service: report requests, report content activities and the content
// containers (spaces) they belong to.
package ediscovery

import (
	"strings"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/conversation"
)

// Activity verbs and extension markers that carry decryptable payload.
const (
	VerbPost   = "post"
	VerbShare  = "share"
	VerbUpdate = "update"

	ObjectTypeExtension = "extension"
	ExtensionCustomApp  = "customApp"
)

// ReportRequest is the body sent to the createReport API. Name, Description,
// SpaceNames, Keywords and Emails are encrypted under EncryptionKeyURL.
type ReportRequest struct {
	ID                string   `json:"id,omitempty"`
	Name              string   `json:"name,omitempty"`
	Description       string   `json:"description,omitempty"`
	SpaceNames        []string `json:"spaceNames,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	Emails            []string `json:"emails,omitempty"`
	UnencryptedEmails []string `json:"unencryptedEmails,omitempty"`
	EncryptionKeyURL  string   `json:"encryptionKeyUrl,omitempty"`
}

// Clone returns a deep copy of the request.
func (r *ReportRequest) Clone() *ReportRequest {
	c := *r
	c.SpaceNames = cloneStrings(r.SpaceNames)
	c.Keywords = cloneStrings(r.Keywords)
	c.Emails = cloneStrings(r.Emails)
	c.UnencryptedEmails = cloneStrings(r.UnencryptedEmails)
	return &c
}

// Participant is a member of a content container.
type Participant struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName"`
}

// ContentContainer describes a conversation space included in a report.
type ContentContainer struct {
	ContainerID                 string        `json:"containerId,omitempty"`
	ContainerType               string        `json:"containerType,omitempty"`
	ContainerName               string        `json:"containerName,omitempty"`
	Description                 string        `json:"description,omitempty"`
	EncryptionKeyURL            string        `json:"encryptionKeyUrl,omitempty"`
	DescriptionEncryptionKeyURL string        `json:"descriptionEncryptionKeyUrl,omitempty"`
	OnBehalfOfUser              string        `json:"onBehalfOfUser,omitempty"`
	IsOneOnOne                  bool          `json:"isOneOnOne,omitempty"`
	Participants                []Participant `json:"participants,omitempty"`
	FormerParticipants          []Participant `json:"formerParticipants,omitempty"`
	Warning                     string        `json:"warning,omitempty"`
}

// ParticipantNames joins current then former participant display names with
// " & ". One-to-one spaces have no name and use this as their subject.
func (c *ContentContainer) ParticipantNames() string {
	names := make([]string, 0, len(c.Participants)+len(c.FormerParticipants))
	for _, p := range c.Participants {
		names = append(names, p.DisplayName)
	}
	for _, p := range c.FormerParticipants {
		names = append(names, p.DisplayName)
	}
	return strings.Join(names, " & ")
}

// DisplayName is the subject shown for the container in a report.
func (c *ContentContainer) DisplayName() string {
	switch {
	case c.ContainerName != "":
		return c.ContainerName
	case c.IsOneOnOne:
		return c.ParticipantNames()
	default:
		return ""
	}
}

// Activity is one entry of report content returned by the getContent API.
type Activity struct {
	ActivityID        string `json:"activityId,omitempty"`
	TargetID          string `json:"targetId,omitempty"`
	Verb              string `json:"verb,omitempty"`
	EncryptionKeyURL  string `json:"encryptionKeyUrl,omitempty"`
	ObjectDisplayName string `json:"objectDisplayName,omitempty"`

	SpaceName        string `json:"spaceName,omitempty"`
	ContainerName    string `json:"containerName,omitempty"`
	SpaceWarning     string `json:"spaceWarning,omitempty"`
	ContainerWarning string `json:"containerWarning,omitempty"`

	SpaceInfo   *SpaceInfo `json:"spaceInfo,omitempty"`
	Extension   *Extension `json:"extension,omitempty"`
	Meeting     *Meeting   `json:"meeting,omitempty"`
	Recording   *Recording `json:"recording,omitempty"`
	Files       []*Share   `json:"files,omitempty"`
	Whiteboards []*Share   `json:"whiteboards,omitempty"`
	Links       []*Share   `json:"links,omitempty"`
}

// HasDecryptablePayload reports whether the activity kind carries encrypted
// fields: posts, shares, meetings, recordings, custom app extensions and
// space information updates.
func (a *Activity) HasDecryptablePayload() bool {
	switch {
	case a.Verb == VerbPost || a.Verb == VerbShare:
		return true
	case a.Meeting != nil || a.Recording != nil:
		return true
	case a.Extension != nil && a.Extension.ExtensionType == ExtensionCustomApp:
		return true
	case a.SpaceInfo != nil && (a.SpaceInfo.Name != "" || a.SpaceInfo.Description != ""):
		return true
	default:
		return false
	}
}

// SpaceInfo is present on space information update activities.
type SpaceInfo struct {
	Name                     string `json:"name,omitempty"`
	Description              string `json:"description,omitempty"`
	PreviousName             string `json:"previousName,omitempty"`
	PreviousEncryptionKeyURL string `json:"previousEncryptionKeyUrl,omitempty"`
}

// Extension is an app embedded in a space.
type Extension struct {
	ObjectType    string             `json:"objectType,omitempty"`
	ExtensionType string             `json:"extensionType,omitempty"`
	ContentURL    string             `json:"contentUrl,omitempty"`
	DisplayName   string             `json:"displayName,omitempty"`
	WebURL        string             `json:"webUrl,omitempty"`
	Previous      *ExtensionRevision `json:"previous,omitempty"`
}

// IsCustomApp reports whether the extension fields are encrypted.
func (e *Extension) IsCustomApp() bool {
	return e.ObjectType == ObjectTypeExtension && e.ExtensionType == ExtensionCustomApp
}

// ExtensionRevision holds the extension values replaced by an update.
type ExtensionRevision struct {
	ContentURL  string `json:"contentUrl,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Meeting is attached to meeting activities.
type Meeting struct {
	Title string `json:"title,omitempty"`
}

// Recording is attached to recording activities.
type Recording struct {
	Topic string `json:"topic,omitempty"`
}

// Share is a file, whiteboard or shared link attached to an activity.
// At most one of Scr and Sslr is set.
type Share struct {
	DisplayName             string                        `json:"displayName,omitempty"`
	MimeType                string                        `json:"mimeType,omitempty"`
	FileSize                int64                         `json:"fileSize,omitempty"`
	URL                     string                        `json:"url,omitempty"`
	EncryptionKeyURL        string                        `json:"encryptionKeyUrl,omitempty"`
	Scr                     *conversation.SecureReference `json:"scr,omitempty"`
	Sslr                    string                        `json:"sslr,omitempty"`
	MicrosoftSharedLinkInfo *MicrosoftSharedLinkInfo      `json:"microsoftSharedLinkInfo,omitempty"`
}

// MicrosoftSharedLinkInfo carries the encrypted OneDrive/SharePoint locators
// of a shared link.
type MicrosoftSharedLinkInfo struct {
	DriveID string `json:"driveId,omitempty"`
	ItemID  string `json:"itemId,omitempty"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
