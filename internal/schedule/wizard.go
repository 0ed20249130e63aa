package schedule

import (
	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"
)

type WizardStep string

const (
	StepBranch WizardStep = "branch"
	StepShift1 WizardStep = "shift1"
	StepShift2 WizardStep = "shift2"
	StepReady  WizardStep = "ready"
)

// Wizard adalah state machine eksplisit untuk alur tiga langkah
// penyusunan jadwal. Transisi hanya lewat aksi maju/mundur yang
// terdefinisi, tidak ada state tersembunyi di luar struct ini.
type Wizard struct {
	Step         WizardStep     `json:"step"`
	BranchID     string         `json:"branch_id,omitempty"`
	ScheduleDate string         `json:"schedule_date,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	Shift1       ShiftSelection `json:"shift1"`
	Shift2       ShiftSelection `json:"shift2"`
}

func NewWizard() *Wizard {
	return &Wizard{Step: StepBranch}
}

func (w *Wizard) SetBranch(branchID, scheduleDate, notes string) error {
	if w.Step != StepBranch {
		return scheduleerrors.ErrDraftStepMismatch
	}
	w.BranchID = branchID
	w.ScheduleDate = scheduleDate
	w.Notes = notes
	w.Step = StepShift1
	return nil
}

func (w *Wizard) SetShift1(sel ShiftSelection) error {
	if w.Step != StepShift1 {
		return scheduleerrors.ErrDraftStepMismatch
	}
	w.Shift1 = sel
	w.Step = StepShift2
	return nil
}

func (w *Wizard) SetShift2(sel ShiftSelection) error {
	if w.Step != StepShift2 {
		return scheduleerrors.ErrDraftStepMismatch
	}
	w.Shift2 = sel
	w.Step = StepReady
	return nil
}

// Back mundur satu langkah. Pilihan langkah yang ditinggalkan tetap
// tersimpan supaya maju lagi tidak mengosongkan form.
func (w *Wizard) Back() error {
	switch w.Step {
	case StepShift1:
		w.Step = StepBranch
	case StepShift2:
		w.Step = StepShift1
	case StepReady:
		w.Step = StepShift2
	default:
		return scheduleerrors.ErrDraftStepMismatch
	}
	return nil
}

// ToBatchRequest hanya valid setelah kedua shift terisi.
func (w *Wizard) ToBatchRequest() (CreateBatchRequest, error) {
	if w.Step != StepReady {
		return CreateBatchRequest{}, scheduleerrors.ErrDraftIncomplete
	}
	return CreateBatchRequest{
		BranchID:     w.BranchID,
		ScheduleDate: w.ScheduleDate,
		Notes:        w.Notes,
		Shift1:       w.Shift1,
		Shift2:       w.Shift2,
	}, nil
}
