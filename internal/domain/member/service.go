package member

import "context"

// DirectoryService manages members and leaders (admin/leader views)
type DirectoryService interface {
	ListMembers(ctx context.Context, filter ListFilter) ([]MemberResponse, error)
	GetMember(ctx context.Context, id string) (MemberResponse, error)
	CreateMember(ctx context.Context, req RegisterMemberRequest) (MemberResponse, error)
	UpdateMember(ctx context.Context, id string, req UpdateMemberRequest) (MemberResponse, error)
	// DeleteMember removes the member and every task assigned to them.
	DeleteMember(ctx context.Context, id string) error

	ListLeaders(ctx context.Context) ([]Leader, error)
	CreateLeader(ctx context.Context, req RegisterLeaderRequest) (Leader, error)
	UpdateLeader(ctx context.Context, id string, req UpdateLeaderRequest) (Leader, error)
	DeleteLeader(ctx context.Context, id string) error
}
