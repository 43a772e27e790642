package controller

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "github.com/simakpelajar/qila-system/internals/helpers"
	authmw "github.com/simakpelajar/qila-system/internals/middlewares/auth"
	"github.com/simakpelajar/qila-system/internals/upstream"
)

// OverviewController merender dashboard admin: kartu statistik plus
// tiga chart. Data agregat datang jadi dari backend; di sini hanya
// dipetakan ke pasangan label/nilai lalu diserahkan ke template
// sebagai JSON, tanpa agregasi tambahan.
type OverviewController struct {
	API *upstream.Client
	Log *zap.Logger
}

func NewOverviewController(api *upstream.Client, log *zap.Logger) *OverviewController {
	return &OverviewController{API: api, Log: log}
}

type chartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GET /admin/overview
func (ctrl *OverviewController) Index(c *fiber.Ctx) error {
	api := ctrl.API.WithToken(authmw.Token(c))
	ctx := c.UserContext()

	stats, err := api.Stats(ctx)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			return helper.FromUpstreamError(c, err, "/signin", "")
		}
		// Overview adalah halaman pendaratan admin, jadi tidak redirect
		// ke mana-mana: render kartu kosong saja.
		ctrl.Log.Warn("gagal memuat statistik overview", zap.Error(err))
		stats = &upstream.OverviewStats{}
	}

	// Tiga chart; yang gagal dibiarkan kosong, dashboard tetap render.
	distribution, err := api.CategoryDistribution(ctx)
	if err != nil {
		ctrl.Log.Warn("gagal memuat distribusi kategori", zap.Error(err))
	}
	months, err := api.ScoreAveragePerMonth(ctx)
	if err != nil {
		ctrl.Log.Warn("gagal memuat skor per bulan", zap.Error(err))
	}
	categoryScores, err := api.AverageScorePerCategory(ctx)
	if err != nil {
		ctrl.Log.Warn("gagal memuat skor per kategori", zap.Error(err))
	}

	distPoints := make([]chartPoint, 0, len(distribution))
	for _, d := range distribution {
		distPoints = append(distPoints, chartPoint{Name: d.Name, Value: float64(d.Value)})
	}
	monthPoints := make([]chartPoint, 0, len(months))
	for _, m := range months {
		monthPoints = append(monthPoints, chartPoint{Name: m.Month, Value: m.AverageScore})
	}
	categoryPoints := make([]chartPoint, 0, len(categoryScores))
	for _, s := range categoryScores {
		categoryPoints = append(categoryPoints, chartPoint{Name: s.CategoryName, Value: s.AverageScore})
	}

	return c.Render("admin/overview", fiber.Map{
		"Title":          "Overview",
		"UserName":       authmw.UserName(c),
		"Stats":          stats,
		"DistributionJS": asJSON(distPoints),
		"MonthScoresJS":  asJSON(monthPoints),
		"CategoryAvgJS":  asJSON(categoryPoints),
		"Flash":          helper.PopFlash(c),
	})
}

func asJSON(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
