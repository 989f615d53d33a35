package calendar

import (
	"errors"
	"time"

	"care_calendar/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResolveOrCreateDate возвращает запись календарного дня, создавая её при первом
// обращении. День разбирается в часовом поясе учреждения; без пояса запись
// не создаётся — значения по умолчанию у системы нет.
//
// Гонка "проверил — вставил" закрыта уникальным индексом по calendar_day:
// вставка идёт с ON CONFLICT DO NOTHING, после чего строка перечитывается.
// При одновременных вызовах для одного дня в базе остаётся ровно одна запись.
func ResolveOrCreateDate(db *gorm.DB, loc *time.Location, day string) (*models.CalendarDate, error) {
	if loc == nil {
		return nil, ErrInvalidDate
	}
	parsed, err := time.ParseInLocation(DateLayout, day, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var date models.CalendarDate
	err = db.Where("calendar_day = ?", parsed).First(&date).Error
	if err == nil {
		return &date, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	date = models.CalendarDate{
		CalendarDay: parsed,
		DayOfWeek:   int(parsed.Weekday()),
		IsHoliday:   false,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "calendar_day"}},
		DoNothing: true,
	}).Create(&date).Error; err != nil {
		return nil, err
	}

	// Перечитываем в любом случае: при конфликте вставки ID остаётся нулевым,
	// а строку успел создать конкурирующий запрос.
	if err := db.Where("calendar_day = ?", parsed).First(&date).Error; err != nil {
		return nil, err
	}
	return &date, nil
}
