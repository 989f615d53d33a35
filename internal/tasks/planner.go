package tasks

import (
	"log"
	"time"

	"care_calendar/internal/calendar"
	"care_calendar/internal/models"
	"care_calendar/internal/storage"

	"github.com/robfig/cron/v3"
)

// upcomingWindowDays — на сколько дней вперёд реестр заводит календарные дни.
const upcomingWindowDays = 60

// EnsureUpcomingCalendarDates заранее регистрирует ближайшие календарные дни,
// чтобы месячная сетка отдавала их с флагами праздников ещё до первой брони.
// Идёт через тот же resolve-or-create, что и запись расписаний: существующие
// дни просто переиспользуются.
func EnsureUpcomingCalendarDates() {
	now := time.Now().In(storage.Location)
	created := 0
	for i := 0; i < upcomingWindowDays; i++ {
		day := now.AddDate(0, 0, i).Format(calendar.DateLayout)
		if _, err := calendar.ResolveOrCreateDate(storage.DB, storage.Location, day); err != nil {
			log.Println("Ошибка регистрации календарного дня", day, ":", err)
			continue
		}
		created++
	}
	log.Printf("Календарные дни на %d дней вперёд актуализированы (%d обработано).\n", upcomingWindowDays, created)
}

// CleanEmptyCalendarDates удаляет прошедшие календарные дни без единой записи
// расписания: день без зависимостей хранить незачем. Удаление жёсткое, иначе
// мягко удалённая строка заблокирует повторную регистрацию того же дня
// уникальным индексом.
func CleanEmptyCalendarDates() {
	now := time.Now().In(storage.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, storage.Location)

	result := storage.DB.Unscoped().
		Where("calendar_day < ?", today).
		Where("NOT EXISTS (SELECT 1 FROM schedules WHERE schedules.date_id = calendar_dates.id)").
		Delete(&models.CalendarDate{})
	if result.Error != nil {
		log.Println("Ошибка очистки пустых календарных дней:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Удалено пустых календарных дней: %d.\n", result.RowsAffected)
	}
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Регистрация предстоящих дней — каждый день в 03:00.
	_, err := c.AddFunc("0 0 3 * * *", EnsureUpcomingCalendarDates)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи EnsureUpcomingCalendarDates:", err)
	}

	// Очистка пустых прошедших дней — каждый день в 03:30.
	_, err = c.AddFunc("0 30 3 * * *", CleanEmptyCalendarDates)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CleanEmptyCalendarDates:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
