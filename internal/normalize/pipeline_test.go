package normalize

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestQuestions_ArrayEmbeddedInProse(t *testing.T) {
	raw := `Sure, here: [{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}] Hope that helps!`

	out, err := Questions(raw)
	require.NoError(t, err)
	assert.Equal(t, []QuestionAnswer{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}, out.Records)
	assert.Zero(t, out.Discarded)
}

func TestQuestions_AliasesAndEmptyQuestion(t *testing.T) {
	raw := `[{"q":"X","a":"Y"},{"question":"","answer":"Z"}]`

	out, err := Questions(raw)
	require.NoError(t, err)
	assert.Equal(t, []QuestionAnswer{{Question: "X", Answer: "Y"}}, out.Records)
	assert.Equal(t, 1, out.Discarded)
	assert.Equal(t, []int{1}, out.Dropped)
}

func TestQuestions_NoArray(t *testing.T) {
	_, err := Questions("I cannot produce that.")
	require.Error(t, err)

	var extErr *ErrExtraction
	require.True(t, errors.As(err, &extErr), "expected *ErrExtraction, got %T", err)
	assert.Equal(t, KindExtraction, KindOf(err))
}

func TestQuestions_MalformedArray(t *testing.T) {
	// The located region is bracketed but not valid JSON.
	raw := `Here you go: [{"question": "Q1", "answer": 'A1'}]`

	_, err := Questions(raw)
	require.Error(t, err)

	var parseErr *ErrParse
	require.True(t, errors.As(err, &parseErr), "expected *ErrParse, got %T", err)
	assert.Equal(t, `[{"question": "Q1", "answer": 'A1'}]`, parseErr.Text)
	assert.Equal(t, KindParse, KindOf(err))
}

func TestQuestions_AllDiscarded(t *testing.T) {
	raw := `[{"question":"   ","answer":"A"},{"title":"T"},{"Question":"Q"}]`

	out, err := Questions(raw)
	require.Error(t, err)

	var emptyErr *ErrEmptyResult
	require.True(t, errors.As(err, &emptyErr), "expected *ErrEmptyResult, got %T", err)
	assert.Equal(t, 3, emptyErr.Discarded)
	assert.Empty(t, out.Records)
	assert.Equal(t, KindEmptyResult, KindOf(err))
}

func TestQuestions_FencedArray(t *testing.T) {
	raw := "```json\n[\n  {\"Question\": \"What is a goroutine?\", \"Answer\": \"A lightweight thread.\"}\n]\n```"

	out, err := Questions(raw)
	require.NoError(t, err)
	assert.Equal(t, []QuestionAnswer{{Question: "What is a goroutine?", Answer: "A lightweight thread."}}, out.Records)
}

func TestQuestions_FirstRegionWins(t *testing.T) {
	raw := `First: [{"q":"A","a":"1"}] and later: [{"q":"B","a":"2"}]`

	out, err := Questions(raw)
	require.NoError(t, err)
	assert.Equal(t, []QuestionAnswer{{Question: "A", Answer: "1"}}, out.Records)
}

func TestQuestions_TrimsSurvivors(t *testing.T) {
	out, err := Questions(`[{"question":"  Q  ","answer":"\tA\n"}]`)
	require.NoError(t, err)
	assert.Equal(t, []QuestionAnswer{{Question: "Q", Answer: "A"}}, out.Records)
}

func TestQuestions_NonObjectElementsDiscarded(t *testing.T) {
	out, err := Questions(`[{"q":"A","a":"1"}, "stray", 42, {"q":"B","a":"2"}]`)
	require.NoError(t, err)
	assert.Equal(t, []QuestionAnswer{
		{Question: "A", Answer: "1"},
		{Question: "B", Answer: "2"},
	}, out.Records)
	assert.Equal(t, 2, out.Discarded)
	assert.Equal(t, []int{1, 2}, out.Dropped)
}

func TestQuestions_DroppedItemDoesNotDisturbSiblings(t *testing.T) {
	raw := `[
		{"question":"Q1","answer":"A1"},
		{"question":"Q2"},
		{"question":"Q3","answer":"A3"},
		{"answer":"A4"},
		{"question":"Q5","answer":"A5"}
	]`

	out, err := Questions(raw)
	require.NoError(t, err)
	assert.Equal(t, []QuestionAnswer{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q3", Answer: "A3"},
		{Question: "Q5", Answer: "A5"},
	}, out.Records)
	assert.Equal(t, []int{1, 3}, out.Dropped)
}

func TestQuestions_AllValidSurviveInOrder(t *testing.T) {
	aliases := [][2]string{{"question", "answer"}, {"Question", "Answer"}, {"q", "a"}}

	raw := "["
	var want []QuestionAnswer
	for i := range 9 {
		pair := aliases[i%len(aliases)]
		if i > 0 {
			raw += ","
		}
		raw += fmt.Sprintf(`{%q:"Q%d",%q:"A%d"}`, pair[0], i, pair[1], i)
		want = append(want, QuestionAnswer{Question: fmt.Sprintf("Q%d", i), Answer: fmt.Sprintf("A%d", i)})
	}
	raw += "]"

	out, err := Questions(raw)
	require.NoError(t, err)
	assert.Equal(t, want, out.Records)
}

func TestExplanation_FencedObject(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"explanation\":\"E\"}\n```"

	res := Explanation(raw, "What is T?")
	assert.False(t, res.Fallback)
	assert.Equal(t, ConceptExplanation{Title: "T", Explanation: "E"}, res.Record)
	assert.Empty(t, res.Reason)
}

func TestExplanation_ProseFallsBack(t *testing.T) {
	raw := "Closures capture variables by reference in most languages."

	res := Explanation(raw, "What is a closure?")
	assert.True(t, res.Fallback)
	assert.NotEmpty(t, res.Reason)
	assert.Equal(t, ConceptExplanation{
		Title:       "What is a closure?",
		Explanation: "Closures capture variables by reference in most languages.",
	}, res.Record)
}

func TestExplanation_MissingFieldFallsBack(t *testing.T) {
	raw := "```\n{\"title\":\"Closures\"}\n```"

	res := Explanation(raw, "What is a closure?")
	assert.True(t, res.Fallback)
	assert.Equal(t, "What is a closure?", res.Record.Title)
	assert.Equal(t, `{"title":"Closures"}`, res.Record.Explanation)
}

func TestExplanation_EmptyFieldFallsBack(t *testing.T) {
	res := Explanation(`{"title":"","explanation":"E"}`, "Q")
	assert.True(t, res.Fallback)
	assert.Equal(t, "Q", res.Record.Title)
}

func TestExplanation_NonStringFieldFallsBack(t *testing.T) {
	res := Explanation(`{"title":"T","explanation":42}`, "Q")
	assert.True(t, res.Fallback)
}

func TestExplanation_NullFallsBack(t *testing.T) {
	res := Explanation("null", "Q")
	assert.True(t, res.Fallback)
	assert.Equal(t, ConceptExplanation{Title: "Q", Explanation: "null"}, res.Record)
}

func TestExplanation_ExtraKeysIgnored(t *testing.T) {
	res := Explanation(`{"title":"T","explanation":"E","code":"x := 1"}`, "Q")
	assert.False(t, res.Fallback)
	assert.Equal(t, ConceptExplanation{Title: "T", Explanation: "E"}, res.Record)
}

func TestExplanation_OnlyFencesUsesRawText(t *testing.T) {
	res := Explanation("```", "Q")
	assert.True(t, res.Fallback)
	assert.Equal(t, "```", res.Record.Explanation)
}

func TestNormalize_ModeSelector(t *testing.T) {
	res, err := Normalize(ModeBatch, `[{"q":"X","a":"Y"}]`, "")
	require.NoError(t, err)
	assert.Equal(t, ModeBatch, res.Mode)
	assert.Len(t, res.Questions.Records, 1)

	res, err = Normalize(ModeSingle, "plain text", "Q")
	require.NoError(t, err)
	assert.Equal(t, ModeSingle, res.Mode)
	assert.True(t, res.Concept.Fallback)

	_, err = Normalize(ModeBatch, "nothing here", "")
	assert.Equal(t, KindExtraction, KindOf(err))

	_, err = Normalize("both", "", "")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("batch")
	require.NoError(t, err)
	assert.Equal(t, ModeBatch, m)

	m, err = ParseMode("single")
	require.NoError(t, err)
	assert.Equal(t, ModeSingle, m)

	_, err = ParseMode("Batch")
	assert.Error(t, err)
}

func TestKindOf_Unrelated(t *testing.T) {
	assert.Empty(t, KindOf(nil))
	assert.Empty(t, KindOf(errors.New("boom")))
	assert.Equal(t, KindParse, KindOf(fmt.Errorf("wrapped: %w", &ErrParse{Err: errors.New("x")})))
}

func TestPipeline_ConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			raw := fmt.Sprintf(`[{"q":"Q%d","a":"A%d"}]`, i, i)
			out, err := Questions(raw)
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("Q%d", i), out.Records[0].Question)

			res := Explanation(fmt.Sprintf(`{"title":"T%d","explanation":"E"}`, i), "Q")
			assert.Equal(t, fmt.Sprintf("T%d", i), res.Record.Title)
		}()
	}
	wg.Wait()
}
