package request

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/utils"
)

type RequestServiceImpl struct {
	repo store.Repository
	now  func() time.Time
}

func NewRequestService(repo store.Repository, now func() time.Time) request.RequestService {
	return &RequestServiceImpl{repo: repo, now: now}
}

// Create implements request.RequestService.
func (s *RequestServiceImpl) Create(ctx context.Context, req request.CreateRequest) (request.Request, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionRequestCreate)
	if err != nil {
		return request.Request{}, err
	}
	if err := req.Validate(); err != nil {
		return request.Request{}, err
	}
	now := s.now()

	var created request.Request
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(actor.ID)
		if err != nil {
			return err
		}

		created = request.Request{
			ID:             utils.NewID(),
			Type:           req.Type,
			MemberID:       m.ID,
			MemberName:     m.Name,
			MemberWhatsApp: m.WhatsApp,
			Status:         request.StatusPending,
			Date:           now,
		}
		switch req.Type {
		case request.TypeVacation:
			days, err := request.VacationDays(req.StartDate, req.EndDate)
			if err != nil {
				return err
			}
			created.StartDate = req.StartDate
			created.EndDate = req.EndDate
			created.Days = days
			created.Reason = req.Reason
		case request.TypeBreak:
			created.Duration = req.Duration
			created.Notes = req.Notes
		case request.TypeException:
			created.Time = req.Time
			created.Reason = req.Reason
		}
		doc.Requests = append(doc.Requests, created)

		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionRequestCreated,
			fmt.Sprintf("%s filed a %s request", m.Name, created.Type), now))
		return nil
	})
	if err != nil {
		return request.Request{}, err
	}
	return created, nil
}

// List implements request.RequestService.
func (s *RequestServiceImpl) List(ctx context.Context, filter request.ListFilter) ([]request.Request, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	all := actor.Can(user.PermissionRequestViewAll)
	if !all && !actor.Can(user.PermissionRequestViewOwn) {
		return nil, user.ErrInsufficientPermissions
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var result []request.Request
	err = s.repo.View(ctx, func(doc *store.Document) error {
		result = make([]request.Request, 0)
		for _, r := range doc.Requests {
			if !all && r.MemberID != actor.ID {
				continue
			}
			if filter.Status != "" && r.EffectiveStatus() != filter.Status {
				continue
			}
			if filter.Type != "" && r.Type != filter.Type {
				continue
			}
			result = append(result, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(result, func(a, b request.Request) int {
		return b.Date.Compare(a.Date)
	})
	return result, nil
}

// PendingCount implements request.RequestService.
func (s *RequestServiceImpl) PendingCount(ctx context.Context) (int, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionRequestReview); err != nil {
		return 0, err
	}

	count := 0
	err := s.repo.View(ctx, func(doc *store.Document) error {
		for _, r := range doc.Requests {
			if r.EffectiveStatus() == request.StatusPending {
				count++
			}
		}
		return nil
	})
	return count, err
}

// Approve implements request.RequestService.
func (s *RequestServiceImpl) Approve(ctx context.Context, id string) (request.ReviewResponse, error) {
	return s.review(ctx, id, request.StatusApproved, "")
}

// Reject implements request.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, id string, req request.RejectRequest) (request.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return request.ReviewResponse{}, err
	}
	return s.review(ctx, id, request.StatusRejected, req.Reason)
}

func (s *RequestServiceImpl) review(ctx context.Context, id string, to request.Status, reason string) (request.ReviewResponse, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionRequestReview)
	if err != nil {
		return request.ReviewResponse{}, err
	}
	now := s.now()

	var resp request.ReviewResponse
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		r, err := doc.Request(id)
		if err != nil {
			return err
		}
		if err := r.Review(to, actor.Name, now, reason); err != nil {
			return err
		}

		message := request.DecisionMessage(*r)
		notifType, title, action := notification.TypeRequestApproved, "تمت الموافقة على طلبك", activity.ActionRequestApproved
		if to == request.StatusRejected {
			notifType, title, action = notification.TypeRequestRejected, "تم رفض طلبك", activity.ActionRequestRejected
		}

		doc.Notifications = notification.Push(doc.Notifications, notification.Notification{
			ID:          utils.NewID(),
			RecipientID: r.MemberID,
			Type:        notifType,
			Title:       title,
			Message:     message,
			RequestID:   r.ID,
			CreatedAt:   now,
		})
		doc.Log(activity.NewEntry(utils.NewID(), actor, action,
			fmt.Sprintf("%s request of %s %s", r.Type, r.MemberName, r.Status), now))

		resp = request.ReviewResponse{
			Request:      *r,
			WhatsAppLink: notification.WhatsAppLink(r.MemberWhatsApp, message),
		}
		return nil
	})
	if err != nil {
		return request.ReviewResponse{}, err
	}
	return resp, nil
}
