package agentgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "javascript fence",
			raw:  "```javascript\nfunction f(){return 1;}\n```",
			want: "function f(){return 1;}",
		},
		{
			name: "javascript fence with surrounding whitespace",
			raw:  "\n\n  ```javascript\n  const a = 1;\n\n```  \n",
			want: "const a = 1;",
		},
		{
			name: "js shorthand tag",
			raw:  "```js\nconsole.log('hi');\n```",
			want: "console.log('hi');",
		},
		{
			name: "uppercase tag",
			raw:  "```JavaScript\nlet y;\n```",
			want: "let y;",
		},
		{
			name: "generic fence without tag",
			raw:  "```\nconst x = 1;\n```",
			want: "const x = 1;",
		},
		{
			name: "generic fence with other tag",
			raw:  "```typescript\nconst x: number = 1;\n```",
			want: "const x: number = 1;",
		},
		{
			name: "json tag is not javascript",
			raw:  "```json\n{\"a\": 1}\n```",
			want: "{\"a\": 1}",
		},
		{
			name: "inline generic fence",
			raw:  "```const x = 1;```",
			want: "const x = 1;",
		},
		{
			name: "nested fences keep inner content",
			raw:  "```javascript\n// usage:\n// ```\nrun();\n```",
			want: "// usage:\n// ```\nrun();",
		},
		{
			name: "plain text verbatim",
			raw:  "just plain text",
			want: "just plain text",
		},
		{
			name: "prose around fence falls back to verbatim",
			raw:  "Here you go:\n```javascript\nf();\n```",
			want: "Here you go:\n```javascript\nf();\n```",
		},
		{
			name: "unterminated fence falls back to verbatim",
			raw:  "```javascript\nf();",
			want: "```javascript\nf();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCodeEmpty(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"\n\t\n",
		"```javascript\n```",
		"```javascript```",
		"```\n```",
		"``````",
		"```\n   \n```",
	} {
		got, err := ExtractCode(raw)
		assert.Empty(t, got)
		require.Error(t, err, "raw %q", raw)
		assert.True(t, errors.Is(err, ErrExtraction), "raw %q: %v", raw, err)
	}
}

func TestExtractCodeIdempotent(t *testing.T) {
	for _, raw := range []string{
		"```javascript\nclass Agent {\n  run() {}\n}\n```",
		"```\nconst x = 1;\n```",
		"  plain text payload  ",
	} {
		once, err := ExtractCode(raw)
		require.NoError(t, err)
		twice, err := ExtractCode(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestExtractionTiersIndependently(t *testing.T) {
	_, ok := matchJavaScriptFence("```\nx\n```")
	assert.False(t, ok, "untagged fence must not match the javascript tier")

	_, ok = matchJavaScriptFence("```javascripty\nx\n```")
	assert.False(t, ok, "tag must end at a word boundary")

	got, ok := matchGenericFence("```python\nprint(1)\n```")
	assert.True(t, ok)
	assert.Equal(t, "print(1)", got)

	_, ok = matchGenericFence("```")
	assert.False(t, ok)

	_, ok = matchGenericFence("text ```x```")
	assert.False(t, ok)

	got, ok = matchVerbatim("anything")
	assert.True(t, ok)
	assert.Equal(t, "anything", got)
}
