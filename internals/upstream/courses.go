package upstream

import (
	"context"
	"fmt"
)

type CoursePayload struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID int    `json:"category_id"`
	Cover      string `json:"cover"`
}

func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	var res struct {
		Data []Course `json:"data"`
	}
	if err := c.get(ctx, "/courses", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) Course(ctx context.Context, id int) (*Course, error) {
	var res struct {
		Data *Course `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/courses/%d", id), &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return nil, ErrNotFound
	}
	return res.Data, nil
}

func (c *Client) CreateCourse(ctx context.Context, p CoursePayload) error {
	return c.post(ctx, "/courses", p, nil)
}

func (c *Client) UpdateCourse(ctx context.Context, id int, p CoursePayload) error {
	return c.put(ctx, fmt.Sprintf("/courses/%d", id), p, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/courses/%d", id), nil)
}

// ===== Soal & jawaban (sub-resource kursus) =====

type QuestionPayload struct {
	CourseID int    `json:"course_id"`
	Question string `json:"question"`
}

type AnswerPayload struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"is_correct"`
	Score      int    `json:"score"`
}

func (c *Client) CourseQuestions(ctx context.Context, courseID int) ([]Question, error) {
	var res struct {
		Data []Question `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/course-questions/course/%d", courseID), &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) CourseQuestion(ctx context.Context, questionID int) (*Question, error) {
	var res struct {
		Data *Question `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/course-questions/%d", questionID), &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return nil, ErrNotFound
	}
	return res.Data, nil
}

// CreateQuestion mengembalikan id soal baru supaya jawaban bisa
// langsung dibuat menyusul.
func (c *Client) CreateQuestion(ctx context.Context, p QuestionPayload) (int, error) {
	var res struct {
		Status bool `json:"status"`
		Data   struct {
			QuestionID int `json:"question_id"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/course-questions", p, &res); err != nil {
		return 0, err
	}
	if !res.Status {
		return 0, &StatusError{Code: 500, Message: "gagal membuat soal"}
	}
	return res.Data.QuestionID, nil
}

func (c *Client) UpdateQuestion(ctx context.Context, questionID int, p QuestionPayload) error {
	return c.put(ctx, fmt.Sprintf("/course-questions/%d", questionID), p, nil)
}

func (c *Client) DeleteQuestion(ctx context.Context, questionID int) error {
	return c.delete(ctx, fmt.Sprintf("/course-questions/%d", questionID), nil)
}

func (c *Client) QuestionAnswers(ctx context.Context, questionID int) ([]AdminAnswer, error) {
	var res struct {
		Data []AdminAnswer `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/course-answers/question/%d", questionID), &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) CreateAnswer(ctx context.Context, p AnswerPayload) error {
	return c.post(ctx, "/course-answers", p, nil)
}

// DeleteQuestionAnswers menghapus seluruh jawaban satu soal (dipakai
// saat update: jawaban lama dibuang, lalu dibuat ulang).
func (c *Client) DeleteQuestionAnswers(ctx context.Context, questionID int) error {
	return c.delete(ctx, fmt.Sprintf("/course-answers/question/%d", questionID), nil)
}
