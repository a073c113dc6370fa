package a2a

/*
Part is a discriminated union over Text and Data parts.  We keep it simple by
embedding the optional fields in a single struct – this avoids heavy custom
JSON marshalling logic while remaining spec‑compliant.

NOTE: Exactly ONE of Text or Data should be populated according to the Type
field.  This is not enforced at the struct level, but applications should
ensure this constraint is respected when creating Parts.
*/
type Part struct {
	Type PartType `json:"type"`

	// Exactly one of the following should be populated depending on Type.
	Text     string `json:"text,omitempty"`
	Data     any    `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// PartType is the discriminator for a Part union.
type PartType string

const (
	PartTypeText PartType = "text"
	PartTypeData PartType = "data"
)

func NewTextPart(text string) Part {
	return Part{
		Type: PartTypeText,
		Text: text,
	}
}

func NewDataPart(data any, mimeType string) Part {
	return Part{
		Type:     PartTypeData,
		Data:     data,
		MimeType: mimeType,
	}
}
