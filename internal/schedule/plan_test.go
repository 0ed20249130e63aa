package schedule

import (
	"testing"

	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testSlots() (ShiftSlot, ShiftSlot) {
	return ShiftSlot{ID: uuid.New(), Name: "Shift 1"},
		ShiftSlot{ID: uuid.New(), Name: "Shift 2"}
}

func TestBuildPlan_FrontlineRowPerJobTask(t *testing.T) {
	shift1, shift2 := testSlots()
	empl := uuid.New().String()
	taskA := uuid.New().String()
	taskB := uuid.New().String()

	rows, err := BuildPlan(shift1, shift2, ShiftSelection{
		Frontline: []FrontlineAssignment{
			{EmployeeID: empl, JobTaskIDs: []string{taskA, taskB}},
		},
	}, ShiftSelection{})

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	gotTasks := map[string]bool{}
	for _, row := range rows {
		assert.Equal(t, empl, row.EmployeeID.String())
		assert.Equal(t, shift1.ID, row.ShiftID)
		assert.False(t, row.IsOvertime)
		if assert.NotNil(t, row.JobTaskID) {
			gotTasks[row.JobTaskID.String()] = true
		}
	}
	assert.True(t, gotTasks[taskA])
	assert.True(t, gotTasks[taskB])
}

func TestBuildPlan_KitchenSingleRowWithoutJobTask(t *testing.T) {
	shift1, shift2 := testSlots()
	empl := uuid.New().String()

	rows, err := BuildPlan(shift1, shift2, ShiftSelection{
		Kitchen: []string{empl},
	}, ShiftSelection{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, empl, rows[0].EmployeeID.String())
	assert.Nil(t, rows[0].JobTaskID)
	assert.False(t, rows[0].IsOvertime)
}

func TestBuildPlan_FrontlineWithoutJobTasksFailsWholeSubmission(t *testing.T) {
	shift1, shift2 := testSlots()

	t.Run("empty tasks in shift 1", func(t *testing.T) {
		rows, err := BuildPlan(shift1, shift2, ShiftSelection{
			Frontline: []FrontlineAssignment{
				{EmployeeID: uuid.New().String()},
			},
		}, ShiftSelection{
			Kitchen: []string{uuid.New().String()},
		})

		assert.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), "Shift 1")
	})

	t.Run("empty tasks in shift 2", func(t *testing.T) {
		rows, err := BuildPlan(shift1, shift2, ShiftSelection{
			Kitchen: []string{uuid.New().String()},
		}, ShiftSelection{
			Frontline: []FrontlineAssignment{
				{EmployeeID: uuid.New().String()},
			},
		})

		assert.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), "Shift 2")
	})
}

func TestBuildPlan_EmptySubmissionRejected(t *testing.T) {
	shift1, shift2 := testSlots()

	_, err := BuildPlan(shift1, shift2, ShiftSelection{}, ShiftSelection{})
	assert.ErrorIs(t, err, scheduleerrors.ErrEmptySubmission)
}

func TestBuildPlan_OvertimeForDoubleShiftMembers(t *testing.T) {
	shift1, shift2 := testSlots()
	both := uuid.New().String()
	onlySecond := uuid.New().String()
	task := uuid.New().String()

	rows, err := BuildPlan(shift1, shift2, ShiftSelection{
		Kitchen: []string{both},
	}, ShiftSelection{
		Frontline: []FrontlineAssignment{
			{EmployeeID: both, JobTaskIDs: []string{task}},
		},
		Kitchen: []string{onlySecond},
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	for _, row := range rows {
		switch {
		case row.ShiftID == shift1.ID:
			assert.False(t, row.IsOvertime)
		case row.EmployeeID.String() == both:
			assert.True(t, row.IsOvertime, "double shift member must be overtime in shift 2")
		default:
			assert.False(t, row.IsOvertime, "single shift member must not be overtime")
		}
	}
	assert.Equal(t, 1, CountOvertime(rows))
}

// Skenario lengkap: satu karyawan frontline di kedua shift.
func TestBuildPlan_EndToEndFrontlineDoubleShift(t *testing.T) {
	shift1, shift2 := testSlots()
	empl := uuid.New().String()
	cashier := uuid.New().String()
	server := uuid.New().String()

	rows, err := BuildPlan(shift1, shift2, ShiftSelection{
		Frontline: []FrontlineAssignment{
			{EmployeeID: empl, JobTaskIDs: []string{cashier}},
		},
	}, ShiftSelection{
		Frontline: []FrontlineAssignment{
			{EmployeeID: empl, JobTaskIDs: []string{cashier, server}},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	var shift1Rows, shift2Rows int
	for _, row := range rows {
		if row.ShiftID == shift1.ID {
			shift1Rows++
			assert.False(t, row.IsOvertime)
		} else {
			shift2Rows++
			assert.True(t, row.IsOvertime)
		}
	}
	assert.Equal(t, 1, shift1Rows)
	assert.Equal(t, 2, shift2Rows)
}

func TestBuildPlan_DuplicateJobTaskCollapsed(t *testing.T) {
	shift1, shift2 := testSlots()
	task := uuid.New().String()

	rows, err := BuildPlan(shift1, shift2, ShiftSelection{
		Frontline: []FrontlineAssignment{
			{EmployeeID: uuid.New().String(), JobTaskIDs: []string{task, task}},
		},
	}, ShiftSelection{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBuildPlan_RepeatedEmployeeInShiftRejected(t *testing.T) {
	shift1, shift2 := testSlots()
	empl := uuid.New().String()
	task := uuid.New().String()

	t.Run("twice in frontline", func(t *testing.T) {
		rows, err := BuildPlan(shift1, shift2, ShiftSelection{
			Frontline: []FrontlineAssignment{
				{EmployeeID: empl, JobTaskIDs: []string{task}},
				{EmployeeID: empl, JobTaskIDs: []string{uuid.New().String()}},
			},
		}, ShiftSelection{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Shift 1")
		assert.Empty(t, rows)
	})

	t.Run("frontline and kitchen at once", func(t *testing.T) {
		rows, err := BuildPlan(shift1, shift2, ShiftSelection{}, ShiftSelection{
			Frontline: []FrontlineAssignment{
				{EmployeeID: empl, JobTaskIDs: []string{task}},
			},
			Kitchen: []string{empl},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Shift 2")
		assert.Empty(t, rows)
	})

	// Karyawan yang sama di dua shift berbeda justru valid, itu lembur.
	t.Run("same employee across shifts is allowed", func(t *testing.T) {
		rows, err := BuildPlan(shift1, shift2, ShiftSelection{
			Kitchen: []string{empl},
		}, ShiftSelection{
			Kitchen: []string{empl},
		})

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}
