package dto

type SummarizeRequest struct {
	Text string `json:"text" validate:"required"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

type ExtractTextResponse struct {
	Filename      string `json:"filename"`
	ExtractedText string `json:"extracted_text"`
}
