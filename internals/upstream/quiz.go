package upstream

import (
	"context"
	"fmt"
)

// QuizQuestions memuat soal berurutan untuk satu slug kursus.
// ErrNotFound berarti slug tidak punya soal; pemanggil mengarahkan
// balik ke daftar kursus.
func (c *Client) QuizQuestions(ctx context.Context, slug string) ([]QuizQuestion, error) {
	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Questions []QuizQuestion `json:"questions"`
		} `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/quiz/%s/questions", slug), &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &StatusError{Code: 500, Message: res.Message}
	}
	return res.Data.Questions, nil
}

// SubmitAnswers mengirim seluruh jawaban sekali jalan. Soal tanpa
// jawaban diwakili answer_id 0 (sentinel) oleh pemanggil.
func (c *Client) SubmitAnswers(ctx context.Context, slug string, req SubmitAnswersRequest) (*QuizResult, error) {
	var res struct {
		Success bool       `json:"success"`
		Message string     `json:"message"`
		Data    QuizResult `json:"data"`
	}
	if err := c.post(ctx, fmt.Sprintf("/quiz/%s/submit-answers", slug), req, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &StatusError{Code: 500, Message: res.Message}
	}
	return &res.Data, nil
}
