package member

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/utils"
)

type DirectoryServiceImpl struct {
	repo store.Repository
	now  func() time.Time
}

func NewDirectoryService(repo store.Repository, now func() time.Time) member.DirectoryService {
	return &DirectoryServiceImpl{repo: repo, now: now}
}

// ListMembers implements member.DirectoryService.
func (s *DirectoryServiceImpl) ListMembers(ctx context.Context, filter member.ListFilter) ([]member.MemberResponse, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionMemberView); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	now := s.now()

	var result []member.MemberResponse
	err := s.repo.View(ctx, func(doc *store.Document) error {
		matched := member.Filter(doc.Members, filter, now)
		result = make([]member.MemberResponse, 0, len(matched))
		for _, m := range matched {
			result = append(result, member.NewMemberResponse(m, now))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetMember implements member.DirectoryService.
func (s *DirectoryServiceImpl) GetMember(ctx context.Context, id string) (member.MemberResponse, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionMemberView); err != nil {
		return member.MemberResponse{}, err
	}

	var resp member.MemberResponse
	err := s.repo.View(ctx, func(doc *store.Document) error {
		m, err := doc.Member(id)
		if err != nil {
			return err
		}
		resp = member.NewMemberResponse(*m, s.now())
		return nil
	})
	if err != nil {
		return member.MemberResponse{}, err
	}
	return resp, nil
}

// CreateMember implements member.DirectoryService.
func (s *DirectoryServiceImpl) CreateMember(ctx context.Context, req member.RegisterMemberRequest) (member.MemberResponse, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionMemberManage)
	if err != nil {
		return member.MemberResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return member.MemberResponse{}, err
	}
	now := s.now()
	m := req.ToMember(utils.NewID(), hash, now)

	err = s.repo.Update(ctx, func(doc *store.Document) error {
		if err := doc.AddMember(m); err != nil {
			return err
		}
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionMemberCreated,
			fmt.Sprintf("member %s added", m.Name), now))
		return nil
	})
	if err != nil {
		return member.MemberResponse{}, err
	}
	return member.NewMemberResponse(m, now), nil
}

// UpdateMember implements member.DirectoryService.
func (s *DirectoryServiceImpl) UpdateMember(ctx context.Context, id string, req member.UpdateMemberRequest) (member.MemberResponse, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionMemberManage)
	if err != nil {
		return member.MemberResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	var hash string
	if req.Password != nil {
		if hash, err = utils.HashPassword(*req.Password); err != nil {
			return member.MemberResponse{}, err
		}
	}
	now := s.now()

	var resp member.MemberResponse
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(id)
		if err != nil {
			return err
		}
		if req.Name != nil && doc.MemberNameTaken(*req.Name, id) {
			return member.ErrMemberNameExists
		}

		req.Apply(m)
		if hash != "" {
			m.PasswordHash = hash
			m.LegacyPassword = ""
		}

		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionMemberUpdated,
			fmt.Sprintf("member %s updated", m.Name), now))
		resp = member.NewMemberResponse(*m, now)
		return nil
	})
	if err != nil {
		return member.MemberResponse{}, err
	}
	return resp, nil
}

// DeleteMember implements member.DirectoryService.
func (s *DirectoryServiceImpl) DeleteMember(ctx context.Context, id string) error {
	actor, err := user.RequireFromContext(ctx, user.PermissionMemberManage)
	if err != nil {
		return err
	}
	now := s.now()

	return s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(id)
		if err != nil {
			return err
		}
		name := m.Name
		if err := doc.RemoveMember(id); err != nil {
			return err
		}
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionMemberDeleted,
			fmt.Sprintf("member %s deleted", name), now))
		return nil
	})
}

// ListLeaders implements member.DirectoryService.
func (s *DirectoryServiceImpl) ListLeaders(ctx context.Context) ([]member.Leader, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionLeaderManage); err != nil {
		return nil, err
	}

	var result []member.Leader
	err := s.repo.View(ctx, func(doc *store.Document) error {
		result = make([]member.Leader, 0, len(doc.Leaders))
		for _, l := range doc.Leaders {
			result = append(result, member.NewLeaderResponse(l))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateLeader implements member.DirectoryService.
func (s *DirectoryServiceImpl) CreateLeader(ctx context.Context, req member.RegisterLeaderRequest) (member.Leader, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionLeaderManage)
	if err != nil {
		return member.Leader{}, err
	}
	if err := req.Validate(); err != nil {
		return member.Leader{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return member.Leader{}, err
	}
	now := s.now()
	l := req.ToLeader(utils.NewID(), hash, now)

	err = s.repo.Update(ctx, func(doc *store.Document) error {
		if err := doc.AddLeader(l); err != nil {
			return err
		}
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionLeaderCreated,
			fmt.Sprintf("leader %s added", l.Name), now))
		return nil
	})
	if err != nil {
		return member.Leader{}, err
	}
	return member.NewLeaderResponse(l), nil
}

// UpdateLeader implements member.DirectoryService.
func (s *DirectoryServiceImpl) UpdateLeader(ctx context.Context, id string, req member.UpdateLeaderRequest) (member.Leader, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionLeaderManage)
	if err != nil {
		return member.Leader{}, err
	}
	if err := req.Validate(); err != nil {
		return member.Leader{}, err
	}

	var hash string
	if req.Password != nil {
		if hash, err = utils.HashPassword(*req.Password); err != nil {
			return member.Leader{}, err
		}
	}
	now := s.now()

	var resp member.Leader
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		l, err := doc.Leader(id)
		if err != nil {
			return err
		}
		if req.Name != nil && doc.LeaderNameTaken(*req.Name, id) {
			return member.ErrLeaderNameExists
		}

		req.Apply(l)
		if hash != "" {
			l.PasswordHash = hash
			l.LegacyPassword = ""
		}

		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionLeaderUpdated,
			fmt.Sprintf("leader %s updated", l.Name), now))
		resp = member.NewLeaderResponse(*l)
		return nil
	})
	if err != nil {
		return member.Leader{}, err
	}
	return resp, nil
}

// DeleteLeader implements member.DirectoryService.
func (s *DirectoryServiceImpl) DeleteLeader(ctx context.Context, id string) error {
	actor, err := user.RequireFromContext(ctx, user.PermissionLeaderManage)
	if err != nil {
		return err
	}
	now := s.now()

	return s.repo.Update(ctx, func(doc *store.Document) error {
		l, err := doc.Leader(id)
		if err != nil {
			return err
		}
		name := l.Name
		if err := doc.RemoveLeader(id); err != nil {
			return err
		}
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionLeaderDeleted,
			fmt.Sprintf("leader %s deleted", name), now))
		return nil
	})
}
