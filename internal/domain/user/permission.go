package user

type Permission string

const (
	// Attendance
	PermissionAttendanceRecord  Permission = "attendance.record"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Directory
	PermissionMemberView   Permission = "member.view"
	PermissionMemberManage Permission = "member.manage"
	PermissionLeaderManage Permission = "leader.manage"

	// Evaluation
	PermissionEvaluationCreate Permission = "evaluation.create"

	// Requests
	PermissionRequestCreate  Permission = "request.create"
	PermissionRequestViewOwn Permission = "request.view_own"
	PermissionRequestViewAll Permission = "request.view_all"
	PermissionRequestReview  Permission = "request.review"

	// Tasks
	PermissionTaskAssign    Permission = "task.assign"
	PermissionTaskViewAll   Permission = "task.view_all"
	PermissionTaskUpdateOwn Permission = "task.update_own"
	PermissionTaskUpdateAll Permission = "task.update_all"
	PermissionTaskDelete    Permission = "task.delete"

	// Reports & payroll
	PermissionReportsView   Permission = "reports.view"
	PermissionSalaryView    Permission = "salary.view"
	PermissionDashboardView Permission = "dashboard.view"

	// Administration
	PermissionActivityView Permission = "activity.view"
	PermissionBackupManage Permission = "backup.manage"
	PermissionExport       Permission = "export.members"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceViewAll,
		PermissionMemberView,
		PermissionMemberManage,
		PermissionLeaderManage,
		PermissionEvaluationCreate,
		PermissionRequestViewAll,
		PermissionRequestReview,
		PermissionTaskAssign,
		PermissionTaskViewAll,
		PermissionTaskUpdateAll,
		PermissionTaskDelete,
		PermissionReportsView,
		PermissionSalaryView,
		PermissionDashboardView,
		PermissionActivityView,
		PermissionBackupManage,
		PermissionExport,
	},
	RoleLeader: {
		// Leaders supervise members but do not review requests or see payroll
		PermissionAttendanceViewAll,
		PermissionMemberView,
		PermissionEvaluationCreate,
		PermissionTaskAssign,
		PermissionTaskViewAll,
		PermissionTaskUpdateAll,
		PermissionTaskDelete,
		PermissionReportsView,
	},
	RoleMember: {
		PermissionAttendanceRecord,
		PermissionAttendanceViewOwn,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionTaskUpdateOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
