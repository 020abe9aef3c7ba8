package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFields_AliasPriority(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want QuestionAnswer
	}{
		{
			name: "canonical",
			in:   map[string]any{"question": "Q", "answer": "A"},
			want: QuestionAnswer{Question: "Q", Answer: "A"},
		},
		{
			name: "capitalized",
			in:   map[string]any{"Question": "Q", "Answer": "A"},
			want: QuestionAnswer{Question: "Q", Answer: "A"},
		},
		{
			name: "short",
			in:   map[string]any{"q": "Q", "a": "A"},
			want: QuestionAnswer{Question: "Q", Answer: "A"},
		},
		{
			name: "canonical wins over short",
			in:   map[string]any{"q": "short", "question": "long", "a": "x", "Answer": "y"},
			want: QuestionAnswer{Question: "long", Answer: "y"},
		},
		{
			name: "empty value falls through to next alias",
			in:   map[string]any{"question": "", "q": "Q", "answer": "A"},
			want: QuestionAnswer{Question: "Q", Answer: "A"},
		},
		{
			name: "non-string values count as absent",
			in:   map[string]any{"question": 7.0, "answer": true},
			want: QuestionAnswer{},
		},
		{
			name: "unknown keys ignored",
			in:   map[string]any{"prompt": "Q", "response": "A", "question": "Q2", "answer": "A2"},
			want: QuestionAnswer{Question: "Q2", Answer: "A2"},
		},
		{
			name: "missing fields become empty",
			in:   map[string]any{},
			want: QuestionAnswer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFields(tt.in))
		})
	}
}

func TestNormalizeAll_PreservesLength(t *testing.T) {
	items := []any{
		map[string]any{"q": "A", "a": "1"},
		"not an object",
		nil,
		map[string]any{"question": "B"},
	}

	got := NormalizeAll(items)
	require.Len(t, got, 4)
	assert.Equal(t, QuestionAnswer{Question: "A", Answer: "1"}, got[0])
	assert.Equal(t, QuestionAnswer{}, got[1])
	assert.Equal(t, QuestionAnswer{}, got[2])
	assert.Equal(t, QuestionAnswer{Question: "B"}, got[3])
}

func TestNormalize_Idempotent(t *testing.T) {
	out, err := Questions(`[{"Question":" What is a mutex? ","a":"A lock."},{"q":"Why channels?","Answer":"To communicate."}]`)
	require.NoError(t, err)

	// Feed the canonical output back through normalization.
	items := make([]any, len(out.Records))
	for i, r := range out.Records {
		items[i] = map[string]any{"question": r.Question, "answer": r.Answer}
	}
	again, err := ValidateRecords(NormalizeAll(items))
	require.NoError(t, err)

	assert.Equal(t, out.Records, again.Records)
	assert.Zero(t, again.Discarded)
}

func TestLocateArray(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		found bool
	}{
		{"bare", `[{"a":1}]`, `[{"a":1}]`, true},
		{"whitespace inside brackets", "[ \n {\"a\":1} \n ]", "[ \n {\"a\":1} \n ]", true},
		{"prose around", `ok [{"a":1}] bye`, `[{"a":1}]`, true},
		{"array of scalars", `[1, 2, 3]`, "", false},
		{"empty array", `[]`, "", false},
		{"object only", `{"a":1}`, "", false},
		{"no brackets", `nothing to see`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LocateArray(tt.raw)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanFences(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```\n", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
		{"text ``` inline ``` text", "text  inline  text"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanFences(tt.raw))
	}
}
