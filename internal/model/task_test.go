package model_test

import (
	"testing"

	"email-task-assistant/internal/model"
)

func TestTaskStatus(t *testing.T) {
	tests := []struct {
		status   model.TaskStatus
		terminal bool
		valid    bool
	}{
		{model.TaskStatusPending, false, true},
		{model.TaskStatusInProgress, false, true},
		{model.TaskStatusCompleted, true, true},
		{model.TaskStatusDeleted, true, true},
		{model.TaskStatus("archived"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
			if got := tt.status.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestTeamRoleCanManage(t *testing.T) {
	if !model.TeamRoleOwner.CanManage() || !model.TeamRoleAdmin.CanManage() {
		t.Error("owner and admin should manage")
	}
	if model.TeamRoleMember.CanManage() {
		t.Error("member should not manage")
	}
}
