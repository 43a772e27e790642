package upstream

import "time"

// Tipe-tipe di bawah mengikuti bentuk JSON backend Qila apa adanya,
// termasuk ejaan "succes_rate" yang memang begitu di API.

type Category struct {
	CategoryID int       `json:"category_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	CreatedAt  time.Time `json:"created_at"`
}

type Course struct {
	CourseID  int       `json:"course_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Cover     string    `json:"cover"`
	Category  *Category `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Soal untuk pengelolaan admin; jawaban memakai field "answer".
type Question struct {
	QuestionID int           `json:"question_id"`
	CourseID   int           `json:"course_id"`
	Question   string        `json:"question"`
	Answers    []AdminAnswer `json:"answers,omitempty"`
}

type AdminAnswer struct {
	AnswerID   int    `json:"answer_id"`
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"is_correct"`
	Score      int    `json:"score"`
}

// Soal untuk quiz siswa; backend mengirim teks jawaban sebagai
// "answer_text" dan tidak pernah membocorkan is_correct.
type QuizQuestion struct {
	QuestionID int          `json:"question_id"`
	Title      string       `json:"title"`
	Question   string       `json:"question"`
	Answers    []QuizAnswer `json:"answers"`
}

type QuizAnswer struct {
	AnswerID   int    `json:"answer_id"`
	AnswerText string `json:"answer_text"`
}

type AnswerEntry struct {
	QuestionID int `json:"question_id"`
	AnswerID   int `json:"answer_id"`
}

type SubmitAnswersRequest struct {
	Answers   []AnswerEntry `json:"answers"`
	IsTimeout bool          `json:"is_timeout"`
}

type QuizResult struct {
	TotalQuestions int `json:"total_questions"`
	WrongAnswers   int `json:"wrong_answers"`
	Score          int `json:"score"`
	SuccesRate     int `json:"succes_rate"`
}

// Kursus milik siswa (hasil enrollment) berikut agregat performa.
type EnrolledCourse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID int    `json:"category_id"`
	Questions  int    `json:"questions"`
	Score      int    `json:"score"`
	Attempts   int    `json:"attempts"`
	SuccesRate int    `json:"succes_rate"`
}

// Baris siswa pada halaman kelola siswa per kursus.
type CourseStudent struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// Baris raport per kursus (skor mentah; huruf nilai dihitung di sini,
// bukan oleh backend).
type RaportRow struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Score    int    `json:"score"`
	Attempts int    `json:"attempts"`
}

type UserGrade struct {
	CourseName  string `json:"course_name"`
	Grade       string `json:"grade"`
	SuccessRate int    `json:"success_rate"`
	Status      string `json:"status"`
}

type OverviewStats struct {
	TotalCourse   int `json:"totalCourse"`
	TotalUsers    int `json:"totalUsers"`
	TotalCategory int `json:"totalCategory"`
	AverageScore  int `json:"averageScore"`
}

type StudentOverview struct {
	Enrolled        int `json:"enrolled"`
	Completed       int `json:"completed"`
	OverallProgress int `json:"overall_progress"`
}

type CategorySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type MonthScore struct {
	Month        string  `json:"month"`
	AverageScore float64 `json:"average_score"`
}

type CategoryScore struct {
	CategoryName string  `json:"category_name"`
	AverageScore float64 `json:"average_score"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
