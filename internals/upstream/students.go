package upstream

import (
	"context"
	"fmt"
)

type EnrollRequest struct {
	UserID   int    `json:"user_id"`
	CourseID int    `json:"course_id"`
	Status   string `json:"status"`
}

// EnrolledCourses: daftar kursus milik siswa yang login, berikut
// agregat skor/attempt dari backend.
func (c *Client) EnrolledCourses(ctx context.Context) ([]EnrolledCourse, error) {
	var res struct {
		Data []EnrolledCourse `json:"data"`
	}
	if err := c.get(ctx, "/course-students", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// CourseStudents: daftar seluruh siswa untuk satu kursus (admin),
// termasuk yang belum terdaftar (status "Not Enrolled").
func (c *Client) CourseStudents(ctx context.Context, courseID int) ([]CourseStudent, error) {
	var res struct {
		Data []CourseStudent `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/course-students/%d/students", courseID), &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) AcceptStudent(ctx context.Context, userID, courseID int) error {
	var res struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	req := EnrollRequest{UserID: userID, CourseID: courseID, Status: "accepted"}
	if err := c.post(ctx, "/course-students", req, &res); err != nil {
		return err
	}
	if !res.Status {
		return &StatusError{Code: 500, Message: res.Message}
	}
	return nil
}

func (c *Client) CancelEnrollment(ctx context.Context, userID, courseID int) error {
	var res struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	if err := c.delete(ctx, fmt.Sprintf("/course-students/%d/%d", userID, courseID), &res); err != nil {
		return err
	}
	if !res.Status {
		return &StatusError{Code: 500, Message: res.Message}
	}
	return nil
}

func (c *Client) CourseRaport(ctx context.Context, courseID int) ([]RaportRow, error) {
	var res struct {
		Data []RaportRow `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/raport", courseID), &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) UserGrades(ctx context.Context) ([]UserGrade, error) {
	var res struct {
		Success bool        `json:"success"`
		Data    []UserGrade `json:"data"`
	}
	if err := c.get(ctx, "/user/grades", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) StudentOverviewStats(ctx context.Context) (*StudentOverview, error) {
	var res struct {
		Success bool            `json:"success"`
		Data    StudentOverview `json:"data"`
	}
	if err := c.get(ctx, "/course-students/overview-stats", &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}
