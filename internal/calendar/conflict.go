package calendar

import (
	"care_calendar/internal/models"

	"gorm.io/gorm"
)

// HasConflict проверяет, пересекается ли интервал-кандидат [start, end) с каким-либо
// сохранённым расписанием того же проживающего в тот же календарный день.
// residentID == nil — событие всего учреждения, такие записи между собой не проверяются.
// excludeID исключает из проверки собственную строку при обновлении (0 — ничего не исключать).
//
// Пересечение полуинтервалов [a,b) и [c,d): a < d AND c < b. Один предикат покрывает
// частичное наложение с обеих сторон, полное совпадение и вложенность; общая граница
// пересечением не считается. Записи без конкретного интервала (на весь день или без
// времени окончания) в проверке не участвуют.
func HasConflict(db *gorm.DB, dateID uint, residentID *uint, start, end string, excludeID uint) (bool, error) {
	if residentID == nil {
		return false, nil
	}

	query := db.Model(&models.Schedule{}).
		Where("date_id = ? AND resident_id = ?", dateID, *residentID).
		Where("start_time IS NOT NULL AND end_time IS NOT NULL").
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
