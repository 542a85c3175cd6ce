package models

import "time"

// 任务状态常量
const (
	TaskPending   = "PENDING"
	TaskInProcess = "IN_PROCESS"
	TaskDone      = "DONE"
)

// Task 农场运维任务模型
type Task struct {
	ID          int        `json:"id"`
	FarmID      int        `json:"farmId"`
	SectorID    int        `json:"sectorId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
