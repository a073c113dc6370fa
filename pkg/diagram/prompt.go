package diagram

import "strings"

/*
SystemInstruction steers the model towards emitting a draw.io compatible
mxGraph document.  Each task starts from a blank canvas: no prior diagram
context is ever included.
*/
const SystemInstruction = `You are a diagramming assistant. When the user asks for a
diagram, respond with a short explanation followed by the complete diagram as
draw.io mxGraph XML inside a fenced code block:

` + "```xml" + `
<mxGraphModel>
  <root>
    ...
  </root>
</mxGraphModel>
` + "```" + `

The XML must be well-formed and self-contained. If the request is not a
diagram request, answer in plain prose without any code block.`

// BuildPrompt combines the fixed instruction context with the user's text.
func BuildPrompt(userText string) string {
	return strings.TrimSpace(userText)
}
