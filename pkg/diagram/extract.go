package diagram

import (
	"regexp"
	"strings"
)

// ArtifactName is the name every extracted diagram artifact carries.
const ArtifactName = "diagram.xml"

// MimeType is the declared media type of an extracted payload.
const MimeType = "application/xml"

var (
	fenced = regexp.MustCompile("(?s)```(?:xml)?\\s*(<(?:mxfile|mxGraphModel)[\\s>].*?</(?:mxfile|mxGraphModel)>)\\s*```")
	bare   = regexp.MustCompile(`(?s)<(mxfile|mxGraphModel)[\s>].*</(mxfile|mxGraphModel)>`)
)

/*
Extract scans generated text for an embedded diagram payload.  A fenced
code block wins over bare markup so surrounding prose never leaks into the
artifact.  The second return reports whether anything was found.
*/
func Extract(text string) (string, bool) {
	if match := fenced.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1]), true
	}

	if match := bare.FindString(text); match != "" {
		return strings.TrimSpace(match), true
	}

	return "", false
}
