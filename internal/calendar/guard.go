package calendar

import (
	"errors"

	"care_calendar/internal/models"

	"gorm.io/gorm"
)

// DeleteResident удаляет проживающего, если на него не ссылается ни одно
// расписание. Подсчёт ссылок выполняется в той же сериализуемой транзакции,
// что и удаление: расписание, вставленное между проверкой и удалением,
// откатит одну из транзакций вместо того, чтобы оставить висячую ссылку.
func DeleteResident(db *gorm.DB, id uint) error {
	return inSerializableTx(db, func(tx *gorm.DB) error {
		var resident models.Resident
		if err := tx.First(&resident, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var refs int64
		if err := tx.Model(&models.Schedule{}).Where("resident_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrReferentialConflict
		}
		return tx.Delete(&resident).Error
	})
}

// DeleteScheduleType — тот же защитный контур для типов расписаний.
func DeleteScheduleType(db *gorm.DB, id uint) error {
	return inSerializableTx(db, func(tx *gorm.DB) error {
		var scheduleType models.ScheduleType
		if err := tx.First(&scheduleType, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var refs int64
		if err := tx.Model(&models.Schedule{}).Where("schedule_type_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrReferentialConflict
		}
		return tx.Delete(&scheduleType).Error
	})
}
