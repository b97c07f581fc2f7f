package domain

// DashboardStats summarizes a single tenant's workload.
type DashboardStats struct {
	TotalProjects  int64 `json:"total_projects"`
	TotalTasks     int64 `json:"total_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`
	PendingTasks   int64 `json:"pending_tasks"`
	TotalUsers     int64 `json:"total_users"`
}

// SystemStats summarizes the whole installation across tenants.
type SystemStats struct {
	TotalTenants    int64 `json:"total_tenants"`
	ActiveTenants   int64 `json:"active_tenants"`
	TotalUsers      int64 `json:"total_users"`
	TotalProjects   int64 `json:"total_projects"`
	TotalTasks      int64 `json:"total_tasks"`
	CompletedTasks  int64 `json:"completed_tasks"`
	InProgressTasks int64 `json:"in_progress_tasks"`
	TodoTasks       int64 `json:"todo_tasks"`
}
