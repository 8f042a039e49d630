package agentgen

import (
	"regexp"
	"strings"
)

var (
	// ```javascript ... ``` spanning the whole reply
	jsFence = regexp.MustCompile("(?is)^```(?:javascript|js)\\b\\s*(.*?)\\s*```$")

	// ```lang\n ... ``` with an optional bare-word tag on the opener line
	genericBlockFence = regexp.MustCompile("(?s)^```[\\w+#.-]*[ \\t]*\\n(.*?)\\s*```$")

	// ``` ... ``` on a single line, no tag interpretation
	genericInlineFence = regexp.MustCompile("(?s)^```(.*?)```$")
)

type matcher func(text string) (string, bool)

// Tiers are tried in order; the first that matches decides the result.
var extractionTiers = []matcher{
	matchJavaScriptFence,
	matchGenericFence,
	matchVerbatim,
}

// ExtractCode recovers the code payload from a raw backend reply.
func ExtractCode(rawText string) (string, error) {
	text := strings.TrimSpace(rawText)

	var code string
	for _, tier := range extractionTiers {
		if out, ok := tier(text); ok {
			code = out
			break
		}
	}

	if code == "" {
		return "", newError(KindExtraction,
			"the model returned an empty or unparseable response; it was empty or not in the expected format", nil)
	}
	return code, nil
}

func matchJavaScriptFence(text string) (string, bool) {
	m := jsFence.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func matchGenericFence(text string) (string, bool) {
	if len(text) < 6 || !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") {
		return "", false
	}
	if m := genericBlockFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := genericInlineFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// matchVerbatim is the degraded fallback: the reply had no fence at all.
func matchVerbatim(text string) (string, bool) {
	return text, true
}
