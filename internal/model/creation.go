package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreationStep 活動建立流程的步驟
type CreationStep string

const (
	StepEvent   CreationStep = "event"
	StepMedia   CreationStep = "media"
	StepTickets CreationStep = "tickets"
)

// CreationSteps 依執行順序排列
var CreationSteps = []CreationStep{StepEvent, StepMedia, StepTickets}

// StepStatus 步驟狀態
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepProcessing StepStatus = "processing"
	StepCompleted  StepStatus = "completed"
	StepError      StepStatus = "error"
)

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s StepStatus) CanTransitionTo(target StepStatus) bool {
	switch s {
	case StepPending:
		return target == StepProcessing
	case StepProcessing:
		return target == StepCompleted || target == StepError
	}
	return false
}

// IsTerminal completed 與 error 為終止狀態
func (s StepStatus) IsTerminal() bool {
	return s == StepCompleted || s == StepError
}

type StepState struct {
	Step   CreationStep `json:"step"`
	Status StepStatus   `json:"status"`
	Error  string       `json:"error,omitempty"`
}

// CreationProgress 單次送出的各步驟進度
type CreationProgress struct {
	SubmissionID uuid.UUID   `json:"submission_id"`
	OwnerID      uuid.UUID   `json:"owner_id"`
	EventID      *uuid.UUID  `json:"event_id,omitempty"`
	Steps        []StepState `json:"steps"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func NewCreationProgress(submissionID uuid.UUID) *CreationProgress {
	steps := make([]StepState, 0, len(CreationSteps))
	for _, step := range CreationSteps {
		steps = append(steps, StepState{Step: step, Status: StepPending})
	}
	return &CreationProgress{SubmissionID: submissionID, Steps: steps, UpdatedAt: time.Now().UTC()}
}

func (p *CreationProgress) State(step CreationStep) StepState {
	for _, s := range p.Steps {
		if s.Step == step {
			return s
		}
	}
	return StepState{Step: step}
}

// Transition 依狀態機推進步驟，非法轉換回傳錯誤且不修改狀態
func (p *CreationProgress) Transition(step CreationStep, status StepStatus, message string) (StepState, error) {
	for i := range p.Steps {
		if p.Steps[i].Step != step {
			continue
		}
		current := p.Steps[i].Status
		if !current.CanTransitionTo(status) {
			return p.Steps[i], fmt.Errorf("step %s: illegal transition %s -> %s", step, current, status)
		}
		p.Steps[i].Status = status
		if status == StepError {
			p.Steps[i].Error = message
		}
		p.UpdatedAt = time.Now().UTC()
		return p.Steps[i], nil
	}
	return StepState{}, fmt.Errorf("unknown step %q", step)
}

// HasError 任一步驟失敗
func (p *CreationProgress) HasError() bool {
	for _, s := range p.Steps {
		if s.Status == StepError {
			return true
		}
	}
	return false
}

// Errors 步驟 -> 錯誤訊息
func (p *CreationProgress) Errors() map[CreationStep]string {
	out := make(map[CreationStep]string)
	for _, s := range p.Steps {
		if s.Status == StepError {
			out[s.Step] = s.Error
		}
	}
	return out
}
