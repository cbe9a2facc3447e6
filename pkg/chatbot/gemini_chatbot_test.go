package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuizJSONValid(t *testing.T) {
	raw := "```json\n" + `{"questions": [{"question": "What is 2+2?", "options": ["1", "2", "3", "4"], "correct_answer": "4"}]}` + "\n```"

	questions, err := ParseQuizJSON(raw)
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, "What is 2+2?", questions[0].Question)
	assert.Equal(t, "4", questions[0].CorrectAnswer)
}

func TestParseQuizJSONWithSurroundingProse(t *testing.T) {
	raw := `Here is your quiz! {"questions": [{"question": "Q", "options": ["a", "b", "c", "d"], "correct_answer": "a"}]} Enjoy!`

	questions, err := ParseQuizJSON(raw)
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestParseQuizJSONRejectsBadShapes(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{
			name: "not json",
			raw:  "Sure! Here are your questions:",
		},
		{
			name: "empty questions list",
			raw:  `{"questions": []}`,
		},
		{
			name: "missing questions key",
			raw:  `{"quiz": []}`,
		},
		{
			name: "wrong option count",
			raw:  `{"questions": [{"question": "Q", "options": ["a", "b"], "correct_answer": "a"}]}`,
		},
		{
			name: "answer not among options",
			raw:  `{"questions": [{"question": "Q", "options": ["a", "b", "c", "d"], "correct_answer": "e"}]}`,
		},
		{
			name: "empty question text",
			raw:  `{"questions": [{"question": "", "options": ["a", "b", "c", "d"], "correct_answer": "a"}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseQuizJSON(tc.raw)
			assert.ErrorIs(t, err, ErrUnexpectedFormat)
		})
	}
}

func newTestClient(srv *httptest.Server) *GeminiClient {
	return &GeminiClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
		endpoint:   srv.URL,
	}
}

func geminiTextResponse(t *testing.T, text string) []byte {
	t.Helper()

	body, err := json.Marshal(GeminiChatResponse{
		Candidates: []*GeminiChatCandidate{
			{
				Content: &GeminiChatContent{
					Parts: []*GeminiChatParts{{Text: text}},
					Role:  "model",
				},
			},
		},
	})
	require.NoError(t, err)
	return body
}

func TestGenerateQuizDoesNotFlagUpstreamFailuresAsFormatErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GenerateQuiz(context.Background(), "some notes")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnexpectedFormat))
}

func TestGenerateQuizFlagsMalformedModelOutputAsFormatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(geminiTextResponse(t, "Sorry, I cannot produce a quiz right now."))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GenerateQuiz(context.Background(), "some notes")
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestGenerateQuizEmptyCandidatesIsNotAFormatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GenerateQuiz(context.Background(), "some notes")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnexpectedFormat))
}
