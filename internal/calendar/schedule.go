package calendar

import (
	"errors"
	"time"

	"care_calendar/internal/models"

	"gorm.io/gorm"
)

// ScheduleInput — данные записи расписания от вызывающего слоя.
// Формат полей уже проверен привязкой запроса; здесь проверяется
// форма интервала и существование ссылок.
type ScheduleInput struct {
	Date           string
	Title          string
	Description    *string
	StartTime      *string
	EndTime        *string
	AllDay         bool
	ScheduleTypeID uint
	ResidentID     *uint
}

// validateShape проверяет инварианты интервала и нормализует вход:
// у события на весь день времена обнуляются, что бы ни прислал клиент.
func (in *ScheduleInput) validateShape() error {
	if in.AllDay {
		in.StartTime = nil
		in.EndTime = nil
		return nil
	}
	if in.StartTime == nil {
		return ErrMissingStartTime
	}
	if !ValidTime(*in.StartTime) {
		return ErrInvalidInterval
	}
	if in.EndTime != nil {
		if !ValidTime(*in.EndTime) {
			return ErrInvalidInterval
		}
		if *in.EndTime <= *in.StartTime {
			return ErrInvalidInterval
		}
	}
	return nil
}

// checkReferences убеждается, что тип расписания и проживающий существуют.
// Выполняется внутри той же транзакции, что и запись, иначе ссылка может
// "протухнуть" между проверкой и фиксацией.
func checkReferences(tx *gorm.DB, in ScheduleInput) error {
	var typeCount int64
	if err := tx.Model(&models.ScheduleType{}).Where("id = ?", in.ScheduleTypeID).Count(&typeCount).Error; err != nil {
		return err
	}
	if typeCount == 0 {
		return ErrUnknownReference
	}
	if in.ResidentID != nil {
		var residentCount int64
		if err := tx.Model(&models.Resident{}).Where("id = ?", *in.ResidentID).Count(&residentCount).Error; err != nil {
			return err
		}
		if residentCount == 0 {
			return ErrUnknownReference
		}
	}
	return nil
}

// CreateSchedule проводит запись через полный проверочный путь: форма интервала,
// день календаря, ссылки, пересечения — и только затем фиксация. При отказе
// состояние базы не меняется.
func CreateSchedule(db *gorm.DB, loc *time.Location, in ScheduleInput) (*models.Schedule, error) {
	if err := in.validateShape(); err != nil {
		return nil, err
	}

	date, err := ResolveOrCreateDate(db, loc, in.Date)
	if err != nil {
		return nil, err
	}

	schedule := models.Schedule{
		DateID:         date.ID,
		Title:          in.Title,
		Description:    in.Description,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		AllDay:         in.AllDay,
		ScheduleTypeID: in.ScheduleTypeID,
		ResidentID:     in.ResidentID,
	}

	err = inSerializableTx(db, func(tx *gorm.DB) error {
		if err := checkReferences(tx, in); err != nil {
			return err
		}
		if in.StartTime != nil && in.EndTime != nil {
			conflict, err := HasConflict(tx, date.ID, in.ResidentID, *in.StartTime, *in.EndTime, 0)
			if err != nil {
				return err
			}
			if conflict {
				return ErrTimeConflict
			}
		}
		return tx.Create(&schedule).Error
	})
	if err != nil {
		return nil, err
	}

	return GetSchedule(db, schedule.ID)
}

// UpdateSchedule заменяет запись целиком по тем же правилам, что и создание.
// Собственная строка исключается из проверки пересечений, поэтому обновление
// без смены интервала никогда не конфликтует само с собой.
func UpdateSchedule(db *gorm.DB, loc *time.Location, id uint, in ScheduleInput) (*models.Schedule, error) {
	if err := in.validateShape(); err != nil {
		return nil, err
	}

	var schedule models.Schedule
	if err := db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	date, err := ResolveOrCreateDate(db, loc, in.Date)
	if err != nil {
		return nil, err
	}

	schedule.DateID = date.ID
	schedule.Title = in.Title
	schedule.Description = in.Description
	schedule.StartTime = in.StartTime
	schedule.EndTime = in.EndTime
	schedule.AllDay = in.AllDay
	schedule.ScheduleTypeID = in.ScheduleTypeID
	schedule.ResidentID = in.ResidentID

	err = inSerializableTx(db, func(tx *gorm.DB) error {
		if err := checkReferences(tx, in); err != nil {
			return err
		}
		if in.StartTime != nil && in.EndTime != nil {
			conflict, err := HasConflict(tx, date.ID, in.ResidentID, *in.StartTime, *in.EndTime, schedule.ID)
			if err != nil {
				return err
			}
			if conflict {
				return ErrTimeConflict
			}
		}
		return tx.Save(&schedule).Error
	})
	if err != nil {
		return nil, err
	}

	return GetSchedule(db, schedule.ID)
}

// DeleteSchedule удаляет запись безусловно: исчезновение интервала не может
// породить новое пересечение. Возвращает удалённую запись для уведомлений.
func DeleteSchedule(db *gorm.DB, id uint) (*models.Schedule, error) {
	schedule, err := GetSchedule(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(&models.Schedule{}, id).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetSchedule читает запись вместе со связанными днём, типом и проживающим.
func GetSchedule(db *gorm.DB, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := db.Preload("CalendarDate").Preload("ScheduleType").Preload("Resident").
		First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}
