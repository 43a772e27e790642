package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/simakpelajar/qila-system/internals/helpers"
)

type Feature struct {
	Icon    string
	Title   string
	Content string
}

type Stat struct {
	Title string
	Value string
}

type Quote struct {
	Content string
	Name    string
	Title   string
}

// Konten landing page statis; tidak ada panggilan backend di sini.
var (
	features = []Feature{
		{
			Icon:  "star",
			Title: "Practice Tests",
			Content: "Our CBT system offers a wide range of practice tests to help you " +
				"prepare effectively and confidently for your exams.",
		},
		{
			Icon:  "shield",
			Title: "Progress Tracking",
			Content: "Monitor your learning journey with our comprehensive progress " +
				"tracking features, ensuring you're always on the right path.",
		},
		{
			Icon:  "send",
			Title: "Instant Feedback",
			Content: "Receive immediate feedback on your performance, allowing you to " +
				"identify areas for improvement and strengthen your skills.",
		},
	}

	stats = []Stat{
		{Title: "User Active", Value: "3800+"},
		{Title: "Trusted by Educational Institutions", Value: "230+"},
		{Title: "Transaction", Value: "300+"},
	}

	quotes = []Quote{
		{
			Content: "Qila System has transformed the way we engage with learning. It's a fun " +
				"and interactive platform that keeps our team motivated and curious.",
			Name:  "Achmad Zaky",
			Title: "CEO 2019",
		},
		{
			Content: "Thanks to Qila System, learning has become a game for us. It's easy to " +
				"use, and our students love competing while gaining knowledge!",
			Name:  "Nadiem Makarim",
			Title: "CEO 2019",
		},
		{
			Content: "Qila System makes quizzes engaging and fun. It's the perfect blend of " +
				"entertainment and education for our community.",
			Name:  "Belva Devara",
			Title: "CEO and Co-Founder",
		},
	}
)

type HomeController struct{}

func NewHomeController() *HomeController { return &HomeController{} }

// GET /
func (ctrl *HomeController) Index(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title": "Qila System",
		"Tagline": "Qila is an innovative CBT system that offers engaging practice tests " +
			"to help you prepare for exams. Access a variety of tailored questions to " +
			"enhance your learning and achieve great results!",
		"Features": features,
		"Stats":    stats,
		"Quotes":   quotes,
		"Flash":    helper.PopFlash(c),
	})
}
