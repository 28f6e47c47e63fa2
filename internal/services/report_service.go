package services

import (
	"context"
	"sort"
	"time"

	model "worklog-system.com/worklog-system/internal/models"
)

type ReportFilters struct {
	Start          time.Time
	End            time.Time
	OrganizationID string
	ProjectID      string
}

type ProjectReport struct {
	ProjectID        string       `json:"project_id"`
	ProjectName      string       `json:"project_name"`
	OrganizationName string       `json:"organization_name"`
	Hours            float64      `json:"hours"`
	Value            float64      `json:"value"`
	Tasks            []model.Task `json:"tasks"`
}

type ReportData struct {
	TotalHours float64         `json:"total_hours"`
	TotalValue float64         `json:"total_value"`
	Projects   []ProjectReport `json:"projects"`
}

// ReportService builds per-project hour and value summaries over a date
// range. It is a pure consumer of read-side records: derived task status is
// applied, no rule beyond filtering and grouping runs here.
type ReportService struct {
	tasks         TaskStore
	projects      ProjectStore
	organizations OrganizationStore
}

func NewReportService(tasks TaskStore, projects ProjectStore, organizations OrganizationStore) *ReportService {
	return &ReportService{
		tasks:         tasks,
		projects:      projects,
		organizations: organizations,
	}
}

func (s *ReportService) Build(ctx context.Context, ownerID string, filters ReportFilters) (*ReportData, error) {
	tasks, err := s.tasks.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	organizations, err := s.organizations.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	projectsByID := make(map[string]model.Project, len(projects))
	for _, project := range projects {
		projectsByID[project.ID] = project
	}
	orgNames := make(map[string]string, len(organizations))
	for _, org := range organizations {
		orgNames[org.ID] = org.Name
	}

	now := time.Now().UTC()
	grouped := make(map[string]*ProjectReport)

	for _, task := range tasks {
		if task.Date.Before(filters.Start) || task.Date.After(filters.End) {
			continue
		}
		if filters.ProjectID != "" && task.ProjectID != filters.ProjectID {
			continue
		}

		project, ok := projectsByID[task.ProjectID]
		if !ok {
			continue
		}
		if filters.OrganizationID != "" && project.OrganizationID != filters.OrganizationID {
			continue
		}

		report, ok := grouped[project.ID]
		if !ok {
			report = &ProjectReport{
				ProjectID:        project.ID,
				ProjectName:      project.Name,
				OrganizationName: orgNames[project.OrganizationID],
			}
			grouped[project.ID] = report
		}

		task.Status = EffectiveStatus(&task, now)
		report.Tasks = append(report.Tasks, task)
		report.Hours += task.Hours
		report.Value += task.Hours * project.HourlyRate
	}

	data := &ReportData{Projects: make([]ProjectReport, 0, len(grouped))}
	for _, report := range grouped {
		data.TotalHours += report.Hours
		data.TotalValue += report.Value
		data.Projects = append(data.Projects, *report)
	}

	sort.Slice(data.Projects, func(i, j int) bool {
		return data.Projects[i].Value > data.Projects[j].Value
	})

	return data, nil
}
