package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"worklog-system.com/worklog-system/internal/cache"
	model "worklog-system.com/worklog-system/internal/models"
)

const monthKeyLayout = "2006-01"

type ForecastMonth struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Projected bool    `json:"projected"`
}

type Forecast struct {
	MonthlyRevenue         map[string]float64 `json:"monthly_revenue"`
	Average                float64            `json:"average"`
	RecencyWeightedAverage float64            `json:"recency_weighted_average"`
	Months                 []ForecastMonth    `json:"months"`
}

type BillingService struct {
	tasks       TaskStore
	projects    ProjectStore
	reportCache cache.ReportCache
	log         zerolog.Logger

	// randomFactor draws the smoothing multiplier for projected months,
	// uniform over [0.95, 1.05].
	randomFactor func() float64
}

func NewBillingService(
	tasks TaskStore,
	projects ProjectStore,
	reportCache cache.ReportCache,
	log zerolog.Logger,
) *BillingService {
	return &BillingService{
		tasks:       tasks,
		projects:    projects,
		reportCache: reportCache,
		log:         log,
		randomFactor: func() float64 {
			return 0.95 + rand.Float64()*0.10
		},
	}
}

// MonthlyRevenue groups task revenue (hours times the project's hourly
// rate) by the calendar month of the work date. Tasks whose project is
// unknown contribute nothing.
func MonthlyRevenue(tasks []model.Task, projects []model.Project) map[string]float64 {
	rates := make(map[string]float64, len(projects))
	for _, project := range projects {
		rates[project.ID] = project.HourlyRate
	}

	revenue := make(map[string]float64)
	for _, task := range tasks {
		rate, ok := rates[task.ProjectID]
		if !ok {
			continue
		}
		key := task.Date.Format(monthKeyLayout)
		revenue[key] += task.Hours * rate
	}
	return revenue
}

// Average is the mean over months with at least one recorded task; zero
// when there is no history.
func Average(revenue map[string]float64) float64 {
	if len(revenue) == 0 {
		return 0
	}
	total := 0.0
	for _, value := range revenue {
		total += value
	}
	return total / float64(len(revenue))
}

// RecencyWeightedAverage blends the mean of the three most recent months
// with the overall mean (0.7/0.3) once three months of history exist;
// before that it falls back to the plain average.
func RecencyWeightedAverage(revenue map[string]float64) float64 {
	average := Average(revenue)
	if len(revenue) < 3 {
		return average
	}

	months := make([]string, 0, len(revenue))
	for month := range revenue {
		months = append(months, month)
	}
	sort.Strings(months)

	recent := months[len(months)-3:]
	recentTotal := 0.0
	for _, month := range recent {
		recentTotal += revenue[month]
	}
	recentMean := recentTotal / 3

	return 0.7*recentMean + 0.3*average
}

// Forecast projects revenue for the n months after now. Months with real
// recorded work report the real figure; the rest report the recency
// weighted average with a per-month smoothing factor.
func (s *BillingService) Forecast(ctx context.Context, ownerID string, months int) (*Forecast, error) {
	if cached, err := s.reportCache.Get(ctx, ownerID); err == nil {
		var forecast Forecast
		if err := json.Unmarshal(cached, &forecast); err == nil {
			return &forecast, nil
		}
	}

	tasks, err := s.tasks.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	forecast := s.compute(tasks, projects, months, time.Now().UTC())

	if payload, err := json.Marshal(forecast); err == nil {
		if err := s.reportCache.Set(ctx, ownerID, payload); err != nil {
			s.log.Warn().Err(err).Str("owner", ownerID).Msg("failed to cache forecast")
		}
	}

	return forecast, nil
}

func (s *BillingService) compute(tasks []model.Task, projects []model.Project, months int, now time.Time) *Forecast {
	revenue := MonthlyRevenue(tasks, projects)
	average := Average(revenue)
	weighted := RecencyWeightedAverage(revenue)

	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	entries := make([]ForecastMonth, 0, months)
	for i := 1; i <= months; i++ {
		key := currentMonth.AddDate(0, i, 0).Format(monthKeyLayout)
		if recorded, ok := revenue[key]; ok {
			entries = append(entries, ForecastMonth{Month: key, Revenue: recorded})
			continue
		}
		entries = append(entries, ForecastMonth{
			Month:     key,
			Revenue:   weighted * s.randomFactor(),
			Projected: true,
		})
	}

	return &Forecast{
		MonthlyRevenue:         revenue,
		Average:                average,
		RecencyWeightedAverage: weighted,
		Months:                 entries,
	}
}
