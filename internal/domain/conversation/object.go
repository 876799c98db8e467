// Package conversation models the polymorphic object graph of conversation
// activities. Every node is an Object; its ObjectType selects which of the
// optional fields and child slots carry data.
package conversation

// Object type discriminators known to the transform registry. Any other
// value is carried through untouched.
const (
	TypeActivity             = "activity"
	TypeComment              = "comment"
	TypeContent              = "content"
	TypeConversation         = "conversation"
	TypeFile                 = "file"
	TypeLink                 = "link"
	TypeMicroappInstance     = "microappInstance"
	TypeReaction2            = "reaction2"
	TypeReaction2Summary     = "reaction2Summary"
	TypeReaction2SelfSummary = "reaction2SelfSummary"
	TypeMeetingContainer     = "meetingContainer"
	TypeRecording            = "recording"
	TypeThread               = "thread"
)

// Content categories of a content object.
const (
	CategoryLinks     = "links"
	CategoryDocuments = "documents"
)

// Verbs that change how an activity is handled.
const (
	VerbPost   = "post"
	VerbShare  = "share"
	VerbUpdate = "update"
	VerbAdd    = "add"
)

// Object is a node of a conversation payload. Fields that hold ciphertext on
// the wire are replaced by plaintext in place during decryption.
type Object struct {
	ID              string `json:"id,omitempty"`
	ObjectType      string `json:"objectType,omitempty"`
	Verb            string `json:"verb,omitempty"`
	ContentCategory string `json:"contentCategory,omitempty"`

	DisplayName string `json:"displayName,omitempty"`
	Content     string `json:"content,omitempty"`
	Description string `json:"description,omitempty"`
	Name        string `json:"name,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Model       string `json:"model,omitempty"`

	EncryptionKeyURL         string `json:"encryptionKeyUrl,omitempty"`
	PreviousEncryptionKeyURL string `json:"previousEncryptionKeyUrl,omitempty"`

	Scr  *SecureReference `json:"scr,omitempty"`
	Sslr string           `json:"sslr,omitempty"`

	Object          *Object     `json:"object,omitempty"`
	Children        []*Object   `json:"children,omitempty"`
	ChildActivities []*Object   `json:"childActivities,omitempty"`
	Cards           []string    `json:"cards,omitempty"`
	Reactions       []*Object   `json:"reactions,omitempty"`
	Extensions      *Extensions `json:"extensions,omitempty"`
	Links           *Items      `json:"links,omitempty"`
	Files           *Items      `json:"files,omitempty"`
	Previous        *Object     `json:"previous,omitempty"`
	PreviousValue   *Object     `json:"previousValue,omitempty"`
}

// Items is a wrapped list of child objects, e.g. the links of a content object.
type Items struct {
	Items []*Object `json:"items"`
}

// Extensions holds the extension entries of a meeting container.
type Extensions struct {
	Items []*Extension `json:"items"`
}

// Extension is one extension entry. Data is the extension payload and may
// carry its own key in EncryptionKeyURL.
type Extension struct {
	EncryptionKeyURL string  `json:"encryptionKeyUrl,omitempty"`
	Data             *Object `json:"data,omitempty"`
}

// KeyOr returns the node's own key when set, otherwise inherited.
func (o *Object) KeyOr(inherited string) string {
	if o.EncryptionKeyURL != "" {
		return o.EncryptionKeyURL
	}
	return inherited
}

// Revision is a diff payload attached to an edited object, named by the
// field it was found in.
type Revision struct {
	Field string
	Node  *Object
}

// Revisions returns the diff payloads attached to an edited object, in the
// order previous, previousValue.
func (o *Object) Revisions() []Revision {
	var out []Revision
	if o.Previous != nil {
		out = append(out, Revision{Field: "previous", Node: o.Previous})
	}
	if o.PreviousValue != nil {
		out = append(out, Revision{Field: "previousValue", Node: o.PreviousValue})
	}
	return out
}
