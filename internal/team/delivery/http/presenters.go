package http

import (
	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	"email-task-assistant/internal/team"
	"email-task-assistant/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

func (r createReq) toInput() team.CreateInput {
	return team.CreateInput{Name: r.Name, Description: r.Description}
}

type updateReq struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"        binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (r updateReq) toInput() team.UpdateInput {
	return team.UpdateInput{ID: r.ID, Name: r.Name, Description: r.Description}
}

type addMemberReq struct {
	TeamID string `json:"-"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role"  binding:"omitempty,oneof=owner admin member"`
}

func (r addMemberReq) toInput() team.AddMemberInput {
	return team.AddMemberInput{TeamID: r.TeamID, Email: r.Email, Role: model.TeamRole(r.Role)}
}

type listTasksReq struct {
	TeamID string `form:"-"`
	Limit  int    `form:"limit"  binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (r listTasksReq) toInput() team.ListTasksInput {
	return team.ListTasksInput{TeamID: r.TeamID, Limit: r.Limit, Offset: r.Offset}
}

// --- Response DTOs ---

type teamResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newTeamResp(t model.Team) teamResp {
	return teamResp{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
}

type memberResp struct {
	UserID   string            `json:"user_id"`
	Email    string            `json:"email"`
	Role     string            `json:"role"`
	JoinedAt response.DateTime `json:"joined_at"`
}

func newMemberResp(m model.TeamMember) memberResp {
	return memberResp{
		UserID:   m.UserID,
		Email:    m.Email,
		Role:     string(m.Role),
		JoinedAt: response.DateTime(m.JoinedAt),
	}
}

func newMembersResp(members []model.TeamMember) []memberResp {
	out := make([]memberResp, len(members))
	for i, m := range members {
		out[i] = newMemberResp(m)
	}
	return out
}

type detailResp struct {
	Team    teamResp     `json:"team"`
	Members []memberResp `json:"members"`
}

func (h *handler) newDetailResp(out team.DetailOutput) detailResp {
	return detailResp{Team: newTeamResp(out.Team), Members: newMembersResp(out.Members)}
}

type listResp struct {
	Teams []teamResp `json:"teams"`
}

func (h *handler) newListResp(out team.ListOutput) listResp {
	teams := make([]teamResp, len(out.Teams))
	for i, t := range out.Teams {
		teams[i] = newTeamResp(t)
	}
	return listResp{Teams: teams}
}

type membersResp struct {
	Members []memberResp `json:"members"`
}

type teamTaskResp struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Priority   string             `json:"priority"`
	Status     string             `json:"status"`
	DueDate    *response.DateTime `json:"due_date"`
	UserID     string             `json:"user_id"`
	AssignedTo *string            `json:"assigned_to,omitempty"`
}

type tasksResp struct {
	Tasks  []teamTaskResp `json:"tasks"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func (h *handler) newTasksResp(out task.ListOutput) tasksResp {
	tasks := make([]teamTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = teamTaskResp{
			ID:         t.ID,
			Title:      t.Title,
			Priority:   string(t.Priority),
			Status:     string(t.Status),
			DueDate:    response.NullableDateTime(t.DueDate),
			UserID:     t.UserID,
			AssignedTo: t.AssignedTo,
		}
	}
	return tasksResp{Tasks: tasks, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}
