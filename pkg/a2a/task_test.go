package a2a

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartUnionJSON(t *testing.T) {
	text := NewTextPart("hello")
	buf, err := json.Marshal(text)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":"hello"}`, string(buf))

	data := NewDataPart("<mxGraphModel/>", "application/xml")
	buf, err = json.Marshal(data)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"type":"data","data":"<mxGraphModel/>","mimeType":"application/xml"}`, string(buf))
}

func TestMessageFirstText(t *testing.T) {
	msg := Message{
		Role: RoleUser,
		Parts: []Part{
			NewDataPart(map[string]any{"k": "v"}, "application/json"),
			NewTextPart("the text"),
		},
	}
	assert.Equal(t, "the text", msg.FirstText())

	empty := Message{Role: RoleUser}
	assert.Equal(t, "", empty.FirstText())
}

func TestTaskStateTerminal(t *testing.T) {
	assert.True(t, TaskStateCompleted.Terminal())
	assert.True(t, TaskStateFailed.Terminal())
	assert.True(t, TaskStateCanceled.Terminal())

	assert.False(t, TaskStateSubmitted.Terminal())
	assert.False(t, TaskStateWorking.Terminal())
	assert.False(t, TaskStateInputReq.Terminal())
}

func TestNewDataArtifact(t *testing.T) {
	artifact := NewDataArtifact("diagram.xml", "<mxfile/>", "application/xml")
	assert.Equal(t, "diagram.xml", *artifact.Name)
	assert.Len(t, artifact.Parts, 1)
	assert.Equal(t, PartTypeData, artifact.Parts[0].Type)
	assert.Equal(t, "application/xml", artifact.Parts[0].MimeType)
}

func TestTaskJSONShape(t *testing.T) {
	task := Task{
		ID:        "task-1",
		SessionID: "session-1",
		Status:    TaskStatus{State: TaskStateSubmitted},
		History:   []Message{NewTextMessage(RoleUser, "draw")},
		Artifacts: []Artifact{},
	}

	buf, err := json.Marshal(&task)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(buf, &decoded))

	// history carries the conversation, artifacts is present even when empty
	assert.Contains(t, decoded, "history")
	assert.Contains(t, decoded, "artifacts")
	assert.Equal(t, "submitted", decoded["status"].(map[string]any)["state"])
}
