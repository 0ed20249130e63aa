package schedule

import (
	"testing"

	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWizard_ForwardFlow(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepBranch, w.Step)

	branchID := uuid.New().String()
	assert.NoError(t, w.SetBranch(branchID, "2024-06-10", "opening week"))
	assert.Equal(t, StepShift1, w.Step)

	sel1 := ShiftSelection{Kitchen: []string{uuid.New().String()}}
	assert.NoError(t, w.SetShift1(sel1))
	assert.Equal(t, StepShift2, w.Step)

	sel2 := ShiftSelection{Kitchen: []string{uuid.New().String()}}
	assert.NoError(t, w.SetShift2(sel2))
	assert.Equal(t, StepReady, w.Step)

	req, err := w.ToBatchRequest()
	assert.NoError(t, err)
	assert.Equal(t, branchID, req.BranchID)
	assert.Equal(t, "2024-06-10", req.ScheduleDate)
	assert.Equal(t, sel1, req.Shift1)
	assert.Equal(t, sel2, req.Shift2)
}

func TestWizard_OutOfOrderTransitionRejected(t *testing.T) {
	w := NewWizard()

	err := w.SetShift1(ShiftSelection{})
	assert.ErrorIs(t, err, scheduleerrors.ErrDraftStepMismatch)

	err = w.SetShift2(ShiftSelection{})
	assert.ErrorIs(t, err, scheduleerrors.ErrDraftStepMismatch)

	assert.NoError(t, w.SetBranch(uuid.New().String(), "2024-06-10", ""))
	err = w.SetBranch(uuid.New().String(), "2024-06-11", "")
	assert.ErrorIs(t, err, scheduleerrors.ErrDraftStepMismatch)
}

func TestWizard_BackKeepsSelections(t *testing.T) {
	w := NewWizard()
	assert.NoError(t, w.SetBranch(uuid.New().String(), "2024-06-10", ""))

	sel1 := ShiftSelection{Kitchen: []string{uuid.New().String()}}
	assert.NoError(t, w.SetShift1(sel1))

	assert.NoError(t, w.Back())
	assert.Equal(t, StepShift1, w.Step)
	assert.Equal(t, sel1, w.Shift1)

	assert.NoError(t, w.Back())
	assert.Equal(t, StepBranch, w.Step)

	err := w.Back()
	assert.ErrorIs(t, err, scheduleerrors.ErrDraftStepMismatch)
}

func TestWizard_SubmitBeforeReadyRejected(t *testing.T) {
	w := NewWizard()
	assert.NoError(t, w.SetBranch(uuid.New().String(), "2024-06-10", ""))
	assert.NoError(t, w.SetShift1(ShiftSelection{Kitchen: []string{uuid.New().String()}}))

	_, err := w.ToBatchRequest()
	assert.ErrorIs(t, err, scheduleerrors.ErrDraftIncomplete)
}
