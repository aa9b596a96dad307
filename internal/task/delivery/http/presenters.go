package http

import (
	"strings"
	"time"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	"email-task-assistant/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title         string `json:"title"          binding:"required,max=500"`
	Description   string `json:"description"    binding:"max=5000"`
	Priority      string `json:"priority"       binding:"omitempty,oneof=high medium low"`
	DueDate       string `json:"due_date"`
	ReminderTime  string `json:"reminder_time"`
	TeamID        string `json:"team_id"`
	AssigneeEmail string `json:"assigned_to"    binding:"omitempty,email"`
	EmailID       string `json:"email_id"`

	reminder *time.Time
}

func (r *createReq) validate() error {
	if r.ReminderTime == "" {
		return nil
	}
	at, zoned, err := parseInstant(r.ReminderTime)
	if err != nil {
		return errInvalidReminder
	}
	if !zoned {
		return task.ErrReminderNoTimezone
	}
	r.reminder = &at
	return nil
}

func (r createReq) toInput() task.CreateInput {
	due, text := splitDue(r.DueDate)
	return task.CreateInput{
		Title:         r.Title,
		Description:   r.Description,
		Priority:      model.TaskPriority(r.Priority),
		DueDate:       due,
		DueText:       text,
		ReminderTime:  r.reminder,
		EmailID:       r.EmailID,
		TeamID:        r.TeamID,
		AssigneeEmail: r.AssigneeEmail,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	DueFrom  string `form:"due_from"`
	DueTo    string `form:"due_to"`
	Search   string `form:"search"`
	TeamID   string `form:"team_id"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`

	dueFrom *time.Time
	dueTo   *time.Time
}

func (r *listReq) validate() error {
	for _, p := range []struct {
		raw string
		dst **time.Time
	}{{r.DueFrom, &r.dueFrom}, {r.DueTo, &r.dueTo}} {
		if p.raw == "" {
			continue
		}
		t, _, err := parseInstant(p.raw)
		if err != nil {
			return errInvalidDateRange
		}
		*p.dst = &t
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	var statuses []model.TaskStatus
	for _, s := range splitCSV(r.Status) {
		statuses = append(statuses, model.TaskStatus(s))
	}
	var priorities []model.TaskPriority
	for _, p := range splitCSV(r.Priority) {
		priorities = append(priorities, model.TaskPriority(p))
	}
	return task.ListInput{
		Statuses:   statuses,
		Priorities: priorities,
		DueFrom:    r.dueFrom,
		DueTo:      r.dueTo,
		Search:     r.Search,
		TeamID:     r.TeamID,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
}

// ---

type updateReq struct {
	ID            string  `json:"-"` // populated from URI param
	Title         string  `json:"title"       binding:"max=500"`
	Description   *string `json:"description"`
	Priority      string  `json:"priority"    binding:"omitempty,oneof=high medium low"`
	DueDate       *string `json:"due_date"`
	Status        string  `json:"status"      binding:"omitempty,oneof=pending in_progress completed deleted"`
	TeamID        *string `json:"team_id"`
	AssigneeEmail *string `json:"assigned_to"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      model.TaskPriority(r.Priority),
		TeamID:        r.TeamID,
		AssigneeEmail: r.AssigneeEmail,
	}
	if r.DueDate != nil {
		if strings.TrimSpace(*r.DueDate) == "" {
			in.ClearDueDate = true
		} else {
			in.DueDate, in.DueText = splitDue(*r.DueDate)
		}
	}
	return in
}

// ---

type updateStatusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required,oneof=pending in_progress completed deleted"`
	Note   string `json:"note"   binding:"max=1000"`
}

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{ID: r.ID, Status: model.TaskStatus(r.Status), Note: r.Note}
}

// ---

type setReminderReq struct {
	ID           string `json:"-"`
	ReminderTime string `json:"reminder_time" binding:"required"`

	at    time.Time
	zoned bool
}

func (r *setReminderReq) validate() error {
	at, zoned, err := parseInstant(r.ReminderTime)
	if err != nil {
		return errInvalidReminder
	}
	r.at, r.zoned = at, zoned
	return nil
}

func (r setReminderReq) toInput() task.SetReminderInput {
	return task.SetReminderInput{ID: r.ID, ReminderTime: r.at, Zoned: r.zoned}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Priority        string             `json:"priority"`
	Status          string             `json:"status"`
	DueDate         *response.DateTime `json:"due_date"`
	ReminderTime    *response.DateTime `json:"reminder_time"`
	CompletedAt     *response.DateTime `json:"completed_at,omitempty"`
	EmailID         *string            `json:"email_id,omitempty"`
	TeamID          *string            `json:"team_id,omitempty"`
	AssignedTo      *string            `json:"assigned_to,omitempty"`
	CalendarEventID string             `json:"calendar_event_id,omitempty"`
	CreatedAt       response.DateTime  `json:"created_at"`
	UpdatedAt       response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        string(t.Priority),
		Status:          string(t.Status),
		DueDate:         response.NullableDateTime(t.DueDate),
		ReminderTime:    response.NullableDateTime(t.ReminderTime),
		CompletedAt:     response.NullableDateTime(t.CompletedAt),
		EmailID:         t.EmailID,
		TeamID:          t.TeamID,
		AssignedTo:      t.AssignedTo,
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
}

type createResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task), CalendarLink: out.CalendarLink}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type historyEntryResp struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	FromStatus string            `json:"from_status"`
	ToStatus   string            `json:"to_status"`
	Note       string            `json:"note,omitempty"`
	CreatedAt  response.DateTime `json:"created_at"`
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
}

func (h *handler) newHistoryResp(out task.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = historyEntryResp{
			ID:         e.ID,
			UserID:     e.UserID,
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			Note:       e.Note,
			CreatedAt:  response.DateTime(e.CreatedAt),
		}
	}
	return historyResp{Entries: entries}
}

type analyticsResp struct {
	TotalTasks     int            `json:"total_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	CompletionRate float64        `json:"completion_rate"`
	OverdueTasks   int            `json:"overdue_tasks"`
	ByStatus       map[string]int `json:"by_status"`
	ByPriority     map[string]int `json:"by_priority"`
}

func (h *handler) newAnalyticsResp(out task.AnalyticsOutput) analyticsResp {
	resp := analyticsResp{
		TotalTasks:     out.Total,
		CompletedTasks: out.Completed,
		CompletionRate: out.CompletionRate,
		OverdueTasks:   out.Overdue,
		ByStatus:       make(map[string]int, len(out.ByStatus)),
		ByPriority:     make(map[string]int, len(out.ByPriority)),
	}
	for k, v := range out.ByStatus {
		resp.ByStatus[string(k)] = v
	}
	for k, v := range out.ByPriority {
		resp.ByPriority[string(k)] = v
	}
	return resp
}

// --- helpers ---

// parseInstant accepts RFC 3339 (zoned) or a naive "2006-01-02T15:04:05" timestamp.
func parseInstant(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, false, nil
}

// splitDue treats a full timestamp as an explicit due date and anything else
// as free text for the date resolver.
func splitDue(s string) (*time.Time, string) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t, ""
	}
	return nil, s
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
