package calendar

import (
	"time"

	"care_calendar/internal/models"

	"gorm.io/gorm"
)

// MonthlySchedules возвращает все зарегистрированные дни месяца в порядке
// возрастания даты вместе с их расписаниями. Дни без расписаний тоже входят
// в выборку: реестр заводит их заранее, и сетке календаря нужны их флаги
// праздников. Пустой месяц — пустой список, а не ошибка.
//
// Внутри дня записи на весь день идут первыми, затем — по возрастанию
// времени начала.
func MonthlySchedules(db *gorm.DB, loc *time.Location, year, month int) ([]models.CalendarDate, error) {
	if loc == nil || month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidDate
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	dates := make([]models.CalendarDate, 0)
	err := db.
		Where("calendar_day >= ? AND calendar_day < ?", first, next).
		Order("calendar_day ASC").
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("all_day DESC, start_time ASC")
		}).
		Preload("Schedules.ScheduleType").
		Preload("Schedules.Resident").
		Find(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}
