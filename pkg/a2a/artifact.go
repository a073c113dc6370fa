package a2a

/*
Artifact is the output of a task.  Artifacts are append‑only: once attached
to a task they are never mutated again.
*/
type Artifact struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Parts       []Part  `json:"parts"`
}

// NewDataArtifact wraps a single data payload with its media type.
func NewDataArtifact(name string, data any, mimeType string) Artifact {
	return Artifact{
		Name: &name,
		Parts: []Part{
			{Type: PartTypeData, Data: data, MimeType: mimeType},
		},
	}
}
