package schedule

import (
	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"

	"github.com/google/uuid"
)

// ShiftSlot mengikat ID shift yang terdaftar di cabang dengan nama
// tampilannya, karena pesan validasi harus menyebut nama shift.
type ShiftSlot struct {
	ID   uuid.UUID
	Name string
}

type PlannedRow struct {
	EmployeeID uuid.UUID
	ShiftID    uuid.UUID
	JobTaskID  *uuid.UUID
	IsOvertime bool
}

// BuildPlan menyusun baris jadwal dari satu submission dua shift.
// Shift 1 divalidasi dan dienumerasi penuh lebih dulu karena flag lembur
// Shift 2 bergantung pada keanggotaan Shift 1 yang sudah lengkap.
// Gagal validasi di shift mana pun membatalkan seluruh submission.
func BuildPlan(shift1, shift2 ShiftSlot, sel1, sel2 ShiftSelection) ([]PlannedRow, error) {
	if sel1.Empty() && sel2.Empty() {
		return nil, scheduleerrors.ErrEmptySubmission
	}

	if err := validateSelection(shift1.Name, sel1); err != nil {
		return nil, err
	}

	rows := make([]PlannedRow, 0, estimateRows(sel1)+estimateRows(sel2))

	shift1Members := make(map[uuid.UUID]struct{})
	expanded, err := expandSelection(shift1.ID, sel1, nil)
	if err != nil {
		return nil, err
	}
	for _, row := range expanded {
		shift1Members[row.EmployeeID] = struct{}{}
	}
	rows = append(rows, expanded...)

	if err := validateSelection(shift2.Name, sel2); err != nil {
		return nil, err
	}

	expanded, err = expandSelection(shift2.ID, sel2, shift1Members)
	if err != nil {
		return nil, err
	}
	rows = append(rows, expanded...)

	return rows, nil
}

// validateSelection menegakkan aturan tim: frontline wajib minimal satu
// job task per shift, kitchen tanpa job task memang valid, dan satu
// karyawan hanya boleh muncul sekali dalam satu shift.
func validateSelection(shiftName string, sel ShiftSelection) error {
	seen := make(map[string]struct{}, len(sel.Frontline)+len(sel.Kitchen))

	for _, fa := range sel.Frontline {
		if len(fa.JobTaskIDs) == 0 {
			return scheduleerrors.EmptyJobTasksError(shiftName)
		}
		if _, dup := seen[fa.EmployeeID]; dup {
			return scheduleerrors.RepeatedEmployeeError(shiftName)
		}
		seen[fa.EmployeeID] = struct{}{}
	}

	for _, emplID := range sel.Kitchen {
		if _, dup := seen[emplID]; dup {
			return scheduleerrors.RepeatedEmployeeError(shiftName)
		}
		seen[emplID] = struct{}{}
	}

	return nil
}

// expandSelection memecah pilihan satu shift menjadi baris jadwal.
// Frontline: satu baris per job task. Kitchen: satu baris, job task nil.
// overtimeIf nil berarti shift pertama, tidak pernah lembur.
func expandSelection(shiftID uuid.UUID, sel ShiftSelection, overtimeIf map[uuid.UUID]struct{}) ([]PlannedRow, error) {
	rows := make([]PlannedRow, 0, estimateRows(sel))

	for _, fa := range sel.Frontline {
		emplID, err := uuid.Parse(fa.EmployeeID)
		if err != nil {
			return nil, apperror.InvalidField("Employee Id")
		}

		seen := make(map[string]struct{}, len(fa.JobTaskIDs))
		for _, rawTaskID := range fa.JobTaskIDs {
			if _, dup := seen[rawTaskID]; dup {
				continue
			}
			seen[rawTaskID] = struct{}{}

			taskID, err := uuid.Parse(rawTaskID)
			if err != nil {
				return nil, apperror.InvalidField("Job Task Id")
			}
			rows = append(rows, PlannedRow{
				EmployeeID: emplID,
				ShiftID:    shiftID,
				JobTaskID:  &taskID,
				IsOvertime: isMember(overtimeIf, emplID),
			})
		}
	}

	for _, rawEmplID := range sel.Kitchen {
		emplID, err := uuid.Parse(rawEmplID)
		if err != nil {
			return nil, apperror.InvalidField("Employee Id")
		}
		rows = append(rows, PlannedRow{
			EmployeeID: emplID,
			ShiftID:    shiftID,
			JobTaskID:  nil,
			IsOvertime: isMember(overtimeIf, emplID),
		})
	}

	return rows, nil
}

func isMember(set map[uuid.UUID]struct{}, id uuid.UUID) bool {
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}

func estimateRows(sel ShiftSelection) int {
	n := len(sel.Kitchen)
	for _, fa := range sel.Frontline {
		n += len(fa.JobTaskIDs)
	}
	return n
}

// CountOvertime menghitung baris lembur dalam satu rencana, dipakai
// untuk ringkasan respons dan payload event batch.
func CountOvertime(rows []PlannedRow) int {
	n := 0
	for _, row := range rows {
		if row.IsOvertime {
			n++
		}
	}
	return n
}
