package task

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/utils"
)

type TaskServiceImpl struct {
	repo store.Repository
	now  func() time.Time
}

func NewTaskService(repo store.Repository, now func() time.Time) task.TaskService {
	return &TaskServiceImpl{repo: repo, now: now}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionTaskAssign)
	if err != nil {
		return task.Task{}, err
	}
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}
	now := s.now()

	var created task.Task
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(req.MemberID)
		if err != nil {
			return err
		}

		created = task.Task{
			ID:         utils.NewID(),
			MemberID:   m.ID,
			MemberName: m.Name,
			Type:       req.Type,
			Details:    req.Details,
			AssignedBy: actor.Name,
			Date:       now,
			Status:     task.StatusPending,
		}
		doc.Tasks = append(doc.Tasks, created)

		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionTaskAssigned,
			fmt.Sprintf("task %q assigned to %s", created.Type, m.Name), now))
		return nil
	})
	if err != nil {
		return task.Task{}, err
	}
	return created, nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, req task.UpdateStatusRequest) (task.Task, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return task.Task{}, err
	}
	if !actor.Can(user.PermissionTaskUpdateAll) && !actor.Can(user.PermissionTaskUpdateOwn) {
		return task.Task{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}
	now := s.now()

	var updated task.Task
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		t, err := doc.Task(id)
		if err != nil {
			return err
		}
		if !actor.Can(user.PermissionTaskUpdateAll) && t.MemberID != actor.ID {
			return task.ErrNotTaskAssignee
		}

		from := t.EffectiveStatus()
		t.SetStatus(req.Status, now)

		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionTaskStatus,
			fmt.Sprintf("task %q moved from %s to %s", t.Type, from, t.Status), now))
		updated = *t
		return nil
	})
	if err != nil {
		return task.Task{}, err
	}
	return updated, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := user.RequireFromContext(ctx, user.PermissionTaskDelete)
	if err != nil {
		return err
	}
	now := s.now()

	return s.repo.Update(ctx, func(doc *store.Document) error {
		t, err := doc.Task(id)
		if err != nil {
			return err
		}
		details := fmt.Sprintf("task %q of %s deleted", t.Type, t.MemberName)

		doc.Tasks = slices.DeleteFunc(doc.Tasks, func(t task.Task) bool { return t.ID == id })
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionTaskDeleted, details, now))
		return nil
	})
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var result []task.Task
	err = s.repo.View(ctx, func(doc *store.Document) error {
		result = make([]task.Task, 0)
		for _, t := range visibleTasks(actor, doc.Tasks) {
			if filter.Status != "" && t.EffectiveStatus() != filter.Status {
				continue
			}
			result = append(result, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(result, func(a, b task.Task) int {
		return b.Date.Compare(a.Date)
	})
	return result, nil
}

// Stats implements task.TaskService.
func (s *TaskServiceImpl) Stats(ctx context.Context) (task.Stats, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return task.Stats{}, err
	}

	var stats task.Stats
	err = s.repo.View(ctx, func(doc *store.Document) error {
		stats = task.Tally(visibleTasks(actor, doc.Tasks))
		return nil
	})
	return stats, err
}

// visibleTasks returns every task for supervisors and own tasks for members.
func visibleTasks(actor user.Actor, tasks []task.Task) []task.Task {
	if actor.Can(user.PermissionTaskViewAll) {
		return tasks
	}
	own := make([]task.Task, 0)
	for _, t := range tasks {
		if t.MemberID == actor.ID {
			own = append(own, t)
		}
	}
	return own
}
