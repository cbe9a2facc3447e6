package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent"

// ErrUnexpectedFormat marks responses that arrived from the model but
// failed shape validation. Transport failures, non-200 statuses and empty
// candidates do not carry it, so callers can tell an unreachable upstream
// apart from a malformed answer.
var ErrUnexpectedFormat = errors.New("unexpected model response format")

type GeminiChatParts struct {
	Text string `json:"text"`
}

type GeminiChatContent struct {
	Parts []*GeminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type GeminiChatRequest struct {
	Contents []*GeminiChatContent `json:"contents"`
}

type GeminiChatCandidate struct {
	Content *GeminiChatContent `json:"content"`
}

type GeminiChatResponse struct {
	Candidates []*GeminiChatCandidate `json:"candidates"`
}

// QuizQuestion is the shape the model must return per question. Every
// response is validated against it before anything reaches a client.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

const ChatMessageRoleUser = "user"

// GeminiClient wraps the generateContent endpoint for the two prompts the
// app needs: note summaries and multiple-choice quizzes.
type GeminiClient struct {
	apiKey     string
	httpClient *http.Client
	endpoint   string
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   geminiEndpoint,
	}
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	payload := GeminiChatRequest{
		Contents: []*GeminiChatContent{
			{
				Parts: []*GeminiChatParts{{Text: prompt}},
				Role:  ChatMessageRoleUser,
			},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}
	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidates in response body %s", string(resBody))
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateSummary turns raw (often OCR-derived) text into clean study notes.
func (c *GeminiClient) GenerateSummary(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		`You are an expert academic summarizer who converts messy handwritten or OCR text into clean, structured study notes.

Instructions:
1. The raw text may have OCR errors, jumbled formatting, or incomplete words. Correct obvious errors and drop nonsensical fragments.
2. Infer the main topic from context; if unclear, use "General Notes".
3. Summarize the cleaned content into clear, short bullet points.
4. Add simple real-world examples only when relevant.
5. Keep the tone simple and student-friendly.

Output format (Markdown):
**Title:** <Detected or Inferred Topic>

**Summary:**
* Bullet point 1.
* Bullet point 2.

**Examples:** (only if relevant)
* Example 1.

Raw text:
---
%s
---`,
		text,
	)
	return c.generate(ctx, prompt)
}

// GenerateQuiz asks the model for multiple-choice questions over the notes
// and validates the returned JSON shape before handing it back.
func (c *GeminiClient) GenerateQuiz(ctx context.Context, text string) ([]QuizQuestion, error) {
	prompt := fmt.Sprintf(
		`Based on the following study notes, generate a multiple-choice quiz with 5 questions.
For each question, provide:
1. "question" (string).
2. "options" (list of 4 distinct strings).
3. "correct_answer" (string, the exact correct option text).
Return strictly as a JSON object: {"questions": [...]}. No extra text or markdown.

Study Notes:
---
%s
---`,
		text,
	)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuizJSON(raw)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ParseQuizJSON strips any markdown fence or prose around the model output
// and validates the quiz shape: a non-empty questions list, four options per
// question, and a correct answer that appears among the options.
func ParseQuizJSON(raw string) ([]QuizQuestion, error) {
	responseBytes := []byte(raw)
	responseBytes = bytes.TrimSpace(responseBytes)
	responseBytes = bytes.TrimPrefix(responseBytes, []byte("```json"))
	responseBytes = bytes.TrimPrefix(responseBytes, []byte("```"))
	responseBytes = bytes.TrimSuffix(responseBytes, []byte("```"))
	responseBytes = bytes.TrimSpace(responseBytes)

	// Models sometimes wrap the JSON in prose despite instructions; keep
	// only the outermost object.
	if start := bytes.IndexByte(responseBytes, '{'); start != -1 {
		if end := bytes.LastIndexByte(responseBytes, '}'); end > start {
			responseBytes = responseBytes[start : end+1]
		}
	}

	var parsed struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal(responseBytes, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parse error: %v | raw: %s", ErrUnexpectedFormat, err, string(responseBytes))
	}
	questions := parsed.Questions
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: model returned no questions | raw: %s", ErrUnexpectedFormat, string(responseBytes))
	}

	for i, q := range questions {
		if q.Question == "" {
			return nil, fmt.Errorf("%w: question %d has empty text", ErrUnexpectedFormat, i)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options, want 4", ErrUnexpectedFormat, i, len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: question %d: correct answer not among options", ErrUnexpectedFormat, i)
		}
	}

	return questions, nil
}
