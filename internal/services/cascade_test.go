package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	errs "worklog-system.com/worklog-system/internal/errors"
	model "worklog-system.com/worklog-system/internal/models"
)

func TestCascade_DeleteOrganizationRemovesDescendants(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	org := createOrg(t, s, "Acme Consulting")
	p1 := createProject(t, s, org.ID, "Website", 100)
	p2 := createProject(t, s, org.ID, "Mobile App", 120)
	createTask(t, s, p1.ID, "Landing page", 2, "2025-03-10", "2025-03-20", "pending")
	createTask(t, s, p1.ID, "Checkout flow", 3, "2025-03-11", "2025-03-25", "in_progress")
	createTask(t, s, p2.ID, "Login screen", 4, "2025-03-12", "2025-03-30", "pending")

	survivor := createOrg(t, s, "Beta Corp")
	sp := createProject(t, s, survivor.ID, "Backoffice", 90)
	createTask(t, s, sp.ID, "Reports", 1, "2025-03-13", "2025-03-31", "pending")

	plan, err := s.orgs.Delete(ctx, org.ID, testOwner)
	if err != nil {
		t.Fatalf("failed to delete organization: %v", err)
	}

	if len(plan.Tasks) != 3 {
		t.Errorf("expected 3 tasks in plan, got %d", len(plan.Tasks))
	}
	if len(plan.Projects) != 2 {
		t.Errorf("expected 2 projects in plan, got %d", len(plan.Projects))
	}
	if len(plan.Organizations) != 1 {
		t.Errorf("expected 1 organization in plan, got %d", len(plan.Organizations))
	}

	projects, _ := s.projects.List(ctx, testOwner, "")
	for _, project := range projects {
		if project.OrganizationID == org.ID {
			t.Errorf("project %s still references deleted organization", project.ID)
		}
	}
	tasks, _ := s.tasks.List(ctx, testOwner, TaskFilters{})
	if len(tasks) != 1 {
		t.Errorf("expected only the survivor's task to remain, got %d", len(tasks))
	}
	if _, err := s.orgs.Get(ctx, survivor.ID, testOwner); err != nil {
		t.Errorf("survivor organization should remain: %v", err)
	}

	// A retried delete finds nothing; it is not silently treated as success.
	if _, err := s.orgs.Delete(ctx, org.ID, testOwner); !errors.Is(err, errs.ErrOrganizationNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestCascade_DeleteProjectRemovesTasks(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	org := createOrg(t, s, "Acme Consulting")
	project := createProject(t, s, org.ID, "Website", 100)
	createTask(t, s, project.ID, "Landing page", 2, "2025-03-10", "2025-03-20", "pending")
	createTask(t, s, project.ID, "Checkout flow", 3, "2025-03-11", "2025-03-25", "pending")

	plan, err := s.projects.Delete(ctx, project.ID, testOwner)
	if err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}
	if len(plan.Tasks) != 2 || len(plan.Projects) != 1 || len(plan.Organizations) != 0 {
		t.Errorf("unexpected plan: %+v", plan)
	}

	tasks, _ := s.tasks.List(ctx, testOwner, TaskFilters{})
	if len(tasks) != 0 {
		t.Errorf("expected no tasks after project delete, got %d", len(tasks))
	}
	if _, err := s.orgs.Get(ctx, org.ID, testOwner); err != nil {
		t.Errorf("deleting a child must not affect its parent: %v", err)
	}

	if _, err := s.projects.Delete(ctx, project.ID, testOwner); !errors.Is(err, errs.ErrProjectNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestTaskService_DoubleDeleteNotFound(t *testing.T) {
	s := newTestStack(t)
	ctx := context.Background()

	org := createOrg(t, s, "Acme Consulting")
	project := createProject(t, s, org.ID, "Website", 100)
	task := createTask(t, s, project.ID, "Landing page", 2, "2025-03-10", "2025-03-20", "pending")

	if err := s.tasks.Delete(ctx, task.ID, testOwner); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if err := s.tasks.Delete(ctx, task.ID, testOwner); !errors.Is(err, errs.ErrTaskNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

// Fake stores recording deletion calls, for ordering and failure injection.

type opLog struct {
	ops []string
}

func (l *opLog) record(op string) {
	l.ops = append(l.ops, op)
}

func (l *opLog) indexOf(op string) int {
	for i, o := range l.ops {
		if o == op {
			return i
		}
	}
	return -1
}

type fakeOrgStore struct {
	log  *opLog
	orgs map[string]model.Organization
}

func (f *fakeOrgStore) Create(ctx context.Context, org *model.Organization) error {
	f.orgs[org.ID] = *org
	return nil
}

func (f *fakeOrgStore) FindByID(ctx context.Context, id, ownerID string) (*model.Organization, error) {
	if org, ok := f.orgs[id]; ok && org.CreatedBy == ownerID {
		return &org, nil
	}
	return nil, nil
}

func (f *fakeOrgStore) List(ctx context.Context, ownerID string) ([]model.Organization, error) {
	var out []model.Organization
	for _, org := range f.orgs {
		if org.CreatedBy == ownerID {
			out = append(out, org)
		}
	}
	return out, nil
}

func (f *fakeOrgStore) Update(ctx context.Context, org *model.Organization) error {
	f.orgs[org.ID] = *org
	return nil
}

func (f *fakeOrgStore) Delete(ctx context.Context, id, ownerID string) error {
	f.log.record("delete organizations")
	delete(f.orgs, id)
	return nil
}

type fakeProjectStore struct {
	log        *opLog
	projects   map[string]model.Project
	failDelete bool
}

func (f *fakeProjectStore) Create(ctx context.Context, project *model.Project) error {
	f.projects[project.ID] = *project
	return nil
}

func (f *fakeProjectStore) FindByID(ctx context.Context, id, ownerID string) (*model.Project, error) {
	if project, ok := f.projects[id]; ok && project.CreatedBy == ownerID {
		return &project, nil
	}
	return nil, nil
}

func (f *fakeProjectStore) List(ctx context.Context, ownerID string) ([]model.Project, error) {
	var out []model.Project
	for _, project := range f.projects {
		if project.CreatedBy == ownerID {
			out = append(out, project)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) ListByOrganization(ctx context.Context, ownerID, organizationID string) ([]model.Project, error) {
	var out []model.Project
	for _, project := range f.projects {
		if project.CreatedBy == ownerID && project.OrganizationID == organizationID {
			out = append(out, project)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) Update(ctx context.Context, project *model.Project) error {
	f.projects[project.ID] = *project
	return nil
}

func (f *fakeProjectStore) DeleteByIDs(ctx context.Context, ids []string, ownerID string) error {
	f.log.record("delete projects")
	if f.failDelete {
		return errors.New("storage unavailable")
	}
	for _, id := range ids {
		delete(f.projects, id)
	}
	return nil
}

type fakeTaskStore struct {
	log   *opLog
	tasks map[string]model.Task
}

func (f *fakeTaskStore) Create(ctx context.Context, task *model.Task) error {
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskStore) FindByID(ctx context.Context, id, ownerID string) (*model.Task, error) {
	if task, ok := f.tasks[id]; ok && task.CreatedBy == ownerID {
		return &task, nil
	}
	return nil, nil
}

func (f *fakeTaskStore) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	var out []model.Task
	for _, task := range f.tasks {
		if task.CreatedBy == ownerID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) ListByProject(ctx context.Context, ownerID, projectID string) ([]model.Task, error) {
	return f.ListByProjectIDs(ctx, ownerID, []string{projectID})
}

func (f *fakeTaskStore) ListByProjectIDs(ctx context.Context, ownerID string, projectIDs []string) ([]model.Task, error) {
	members := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		members[id] = true
	}
	var out []model.Task
	for _, task := range f.tasks {
		if task.CreatedBy == ownerID && members[task.ProjectID] {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, task *model.Task) error {
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskStore) DeleteByIDs(ctx context.Context, ids []string, ownerID string) error {
	f.log.record("delete tasks")
	for _, id := range ids {
		delete(f.tasks, id)
	}
	return nil
}

func newFakeStores() (*opLog, *fakeOrgStore, *fakeProjectStore, *fakeTaskStore) {
	log := &opLog{}
	return log,
		&fakeOrgStore{log: log, orgs: make(map[string]model.Organization)},
		&fakeProjectStore{log: log, projects: make(map[string]model.Project)},
		&fakeTaskStore{log: log, tasks: make(map[string]model.Task)}
}

func seedFakeHierarchy(orgs *fakeOrgStore, projects *fakeProjectStore, tasks *fakeTaskStore) {
	orgs.orgs["org-1"] = model.Organization{ID: "org-1", Name: "Acme", CreatedBy: testOwner}
	projects.projects["proj-1"] = model.Project{ID: "proj-1", Name: "Website", OrganizationID: "org-1", CreatedBy: testOwner}
	tasks.tasks["task-1"] = model.Task{ID: "task-1", Title: "Landing page", ProjectID: "proj-1", CreatedBy: testOwner}
	tasks.tasks["task-2"] = model.Task{ID: "task-2", Title: "Checkout flow", ProjectID: "proj-1", CreatedBy: testOwner}
}

func TestCascade_DeletionOrderIsBottomUp(t *testing.T) {
	log, orgs, projects, tasks := newFakeStores()
	seedFakeHierarchy(orgs, projects, tasks)
	planner := NewCascadePlanner(orgs, projects, tasks, zerolog.Nop())
	ctx := context.Background()

	plan, err := planner.PlanDeletion(ctx, KindOrganization, "org-1", testOwner)
	if err != nil {
		t.Fatalf("failed to plan deletion: %v", err)
	}
	if err := planner.Execute(ctx, plan, testOwner); err != nil {
		t.Fatalf("failed to execute deletion: %v", err)
	}

	taskIdx := log.indexOf("delete tasks")
	projectIdx := log.indexOf("delete projects")
	orgIdx := log.indexOf("delete organizations")
	if taskIdx == -1 || projectIdx == -1 || orgIdx == -1 {
		t.Fatalf("missing deletion steps, got %v", log.ops)
	}
	if !(taskIdx < projectIdx && projectIdx < orgIdx) {
		t.Errorf("expected tasks before projects before organizations, got %v", log.ops)
	}
}

func TestCascade_PartialFailureIsRetriable(t *testing.T) {
	_, orgs, projects, tasks := newFakeStores()
	seedFakeHierarchy(orgs, projects, tasks)
	projects.failDelete = true
	planner := NewCascadePlanner(orgs, projects, tasks, zerolog.Nop())
	ctx := context.Background()

	plan, err := planner.PlanDeletion(ctx, KindOrganization, "org-1", testOwner)
	if err != nil {
		t.Fatalf("failed to plan deletion: %v", err)
	}

	err = planner.Execute(ctx, plan, testOwner)
	var incErr *errs.IncompleteDeletionError
	if !errors.As(err, &incErr) {
		t.Fatalf("expected incomplete deletion error, got %v", err)
	}
	if incErr.Step != "projects" {
		t.Errorf("expected failure at projects step, got %q", incErr.Step)
	}
	if len(tasks.tasks) != 0 {
		t.Errorf("tasks should already be removed, %d remain", len(tasks.tasks))
	}
	if len(projects.projects) != 1 {
		t.Errorf("project should survive the failed step")
	}

	// The retry replans from current state: no tasks left, the project and
	// organization still pending removal.
	projects.failDelete = false
	retryPlan, err := planner.PlanDeletion(ctx, KindOrganization, "org-1", testOwner)
	if err != nil {
		t.Fatalf("failed to replan deletion: %v", err)
	}
	if len(retryPlan.Tasks) != 0 {
		t.Errorf("expected no tasks in retry plan, got %d", len(retryPlan.Tasks))
	}
	if len(retryPlan.Projects) != 1 {
		t.Errorf("expected remaining project in retry plan, got %d", len(retryPlan.Projects))
	}

	if err := planner.Execute(ctx, retryPlan, testOwner); err != nil {
		t.Fatalf("retry should complete the deletion: %v", err)
	}
	if len(orgs.orgs) != 0 || len(projects.projects) != 0 {
		t.Errorf("expected everything removed after retry")
	}
}
