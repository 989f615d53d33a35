package calendar

import (
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"care_calendar/internal/models"
	"care_calendar/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		if err := godotenv.Load("../../.env"); err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectTestingDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.CalendarDate{}, &models.Resident{}, &models.ScheduleType{}, &models.Schedule{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}
	storage.DB.Exec("TRUNCATE TABLE users, calendar_dates, residents, schedule_types, schedules RESTART IDENTITY CASCADE;")

	return storage.DB
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func createFixtures(t *testing.T, db *gorm.DB) (models.Resident, models.ScheduleType) {
	resident := models.Resident{Name: "Иванова Мария"}
	assert.NoError(t, db.Create(&resident).Error, "Ошибка создания тестового проживающего")
	scheduleType := models.ScheduleType{TypeName: "Осмотр", ColorCode: "#FF5733", IsActive: true}
	assert.NoError(t, db.Create(&scheduleType).Error, "Ошибка создания тестового типа")
	return resident, scheduleType
}

func TestResolveOrCreateDate(t *testing.T) {
	db := setupTestDB(t)

	first, err := ResolveOrCreateDate(db, time.UTC, "2025-07-24")
	assert.NoError(t, err, "Ошибка первой регистрации дня")
	assert.Equal(t, 4, first.DayOfWeek, "2025-07-24 — четверг")
	assert.False(t, first.IsHoliday)

	second, err := ResolveOrCreateDate(db, time.UTC, "2025-07-24")
	assert.NoError(t, err, "Ошибка повторной регистрации дня")
	assert.Equal(t, first.ID, second.ID, "Повторная регистрация должна вернуть ту же запись")

	var count int64
	db.Model(&models.CalendarDate{}).Count(&count)
	assert.Equal(t, int64(1), count, "В базе должна остаться ровно одна запись дня")

	_, err = ResolveOrCreateDate(db, time.UTC, "24.07.2025")
	assert.ErrorIs(t, err, ErrInvalidDate, "Неразбираемая дата должна давать ErrInvalidDate")

	_, err = ResolveOrCreateDate(db, nil, "2025-07-24")
	assert.ErrorIs(t, err, ErrInvalidDate, "Отсутствие часового пояса должно давать ErrInvalidDate")
}

func TestResolveOrCreateDateConcurrent(t *testing.T) {
	db := setupTestDB(t)

	const workers = 8
	ids := make([]uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			date, err := ResolveOrCreateDate(db, time.UTC, "2025-08-01")
			assert.NoError(t, err, "Ошибка конкурентной регистрации дня")
			ids[n] = date.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id, "Все конкурентные вызовы должны вернуть один идентификатор")
	}

	var count int64
	db.Model(&models.CalendarDate{}).Where("calendar_day = ?", "2025-08-01").Count(&count)
	assert.Equal(t, int64(1), count, "Конкурентные вызовы не должны плодить дубликаты")
}

func TestCreateScheduleConflicts(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	base := ScheduleInput{
		Date:           "2025-07-24",
		Title:          "Утренний осмотр",
		StartTime:      strPtr("10:00"),
		EndTime:        strPtr("11:00"),
		ScheduleTypeID: scheduleType.ID,
		ResidentID:     uintPtr(resident.ID),
	}

	created, err := CreateSchedule(db, time.UTC, base)
	assert.NoError(t, err, "Первая запись должна создаваться без конфликтов")
	assert.Equal(t, "Осмотр", created.ScheduleType.TypeName, "Тип должен быть подгружен")

	overlapping := base
	overlapping.Title = "Пересекающаяся запись"
	overlapping.StartTime = strPtr("10:30")
	overlapping.EndTime = strPtr("11:30")
	_, err = CreateSchedule(db, time.UTC, overlapping)
	assert.ErrorIs(t, err, ErrTimeConflict, "Частичное наложение должно отклоняться")

	contained := base
	contained.Title = "Вложенная запись"
	contained.StartTime = strPtr("09:00")
	contained.EndTime = strPtr("12:00")
	_, err = CreateSchedule(db, time.UTC, contained)
	assert.ErrorIs(t, err, ErrTimeConflict, "Интервал, содержащий существующий, должен отклоняться")

	identical := base
	identical.Title = "Полный дубль"
	_, err = CreateSchedule(db, time.UTC, identical)
	assert.ErrorIs(t, err, ErrTimeConflict, "Идентичный интервал должен отклоняться")

	adjacent := base
	adjacent.Title = "Запись встык"
	adjacent.StartTime = strPtr("11:00")
	adjacent.EndTime = strPtr("12:00")
	_, err = CreateSchedule(db, time.UTC, adjacent)
	assert.NoError(t, err, "Запись встык не пересекается и должна создаваться")

	var total int64
	db.Model(&models.Schedule{}).Count(&total)
	assert.Equal(t, int64(2), total, "Отклонённые записи не должны менять состояние базы")
}

// Гонка "проверил пересечения — зафиксировал": несколько писателей одновременно
// подают один и тот же интервал одного проживающего. Сериализуемые транзакции
// откатывают проигравших с 40001, повтор видит уже зафиксированную строку и
// возвращает ErrTimeConflict.
func TestCreateScheduleConcurrent(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	const workers = 4
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = CreateSchedule(db, time.UTC, ScheduleInput{
				Date:           "2025-07-24",
				Title:          fmt.Sprintf("Конкурентная запись %d", n),
				StartTime:      strPtr("10:00"),
				EndTime:        strPtr("11:00"),
				ScheduleTypeID: scheduleType.ID,
				ResidentID:     uintPtr(resident.ID),
			})
		}(i)
	}
	wg.Wait()

	success := 0
	for _, err := range errs {
		if err == nil {
			success++
			continue
		}
		assert.ErrorIs(t, err, ErrTimeConflict, "Проигравший писатель должен получить ErrTimeConflict")
	}
	assert.Equal(t, 1, success, "Зафиксироваться должен ровно один писатель")

	var count int64
	db.Model(&models.Schedule{}).Count(&count)
	assert.Equal(t, int64(1), count, "Пересекающихся строк в базе быть не должно")
}

// Гонка защитника удаления и вставки расписания: при любом порядке фиксации
// в базе не может остаться расписание, ссылающееся на удалённого проживающего.
func TestDeleteResidentVsCreateRace(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	var createErr, deleteErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, createErr = CreateSchedule(db, time.UTC, ScheduleInput{
			Date:           "2025-07-24",
			Title:          "Запись в момент удаления",
			StartTime:      strPtr("10:00"),
			EndTime:        strPtr("11:00"),
			ScheduleTypeID: scheduleType.ID,
			ResidentID:     uintPtr(resident.ID),
		})
	}()
	go func() {
		defer wg.Done()
		deleteErr = DeleteResident(db, resident.ID)
	}()
	wg.Wait()

	var refs int64
	db.Model(&models.Schedule{}).Where("resident_id = ?", resident.ID).Count(&refs)

	if deleteErr == nil {
		assert.ErrorIs(t, createErr, ErrUnknownReference, "После удаления проживающего запись создаваться не должна")
		assert.Equal(t, int64(0), refs, "Висячих ссылок на удалённого проживающего быть не должно")
	} else {
		assert.ErrorIs(t, deleteErr, ErrReferentialConflict, "Удаление при появившейся ссылке должно отклоняться")
		assert.NoError(t, createErr, "Раз удаление отклонено, запись должна была зафиксироваться")
		assert.Equal(t, int64(1), refs, "Запись и проживающий должны остаться согласованными")
	}
}

func TestConflictIsolation(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	other := models.Resident{Name: "Петров Николай"}
	assert.NoError(t, db.Create(&other).Error)

	base := ScheduleInput{
		Date:           "2025-07-24",
		Title:          "Процедура",
		StartTime:      strPtr("10:00"),
		EndTime:        strPtr("11:00"),
		ScheduleTypeID: scheduleType.ID,
		ResidentID:     uintPtr(resident.ID),
	}
	_, err := CreateSchedule(db, time.UTC, base)
	assert.NoError(t, err)

	// Тот же интервал у другого проживающего — не конфликт.
	forOther := base
	forOther.ResidentID = uintPtr(other.ID)
	_, err = CreateSchedule(db, time.UTC, forOther)
	assert.NoError(t, err, "Разные проживающие не конфликтуют между собой")

	// События учреждения без проживающего не проверяются вовсе.
	facility := base
	facility.Title = "Общее собрание"
	facility.ResidentID = nil
	_, err = CreateSchedule(db, time.UTC, facility)
	assert.NoError(t, err, "Событие без проживающего не участвует в проверке")
	_, err = CreateSchedule(db, time.UTC, facility)
	assert.NoError(t, err, "Два события без проживающего не конфликтуют")
}

func TestScheduleShapeValidation(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	missingStart := ScheduleInput{
		Date:           "2025-07-24",
		Title:          "Без времени начала",
		ScheduleTypeID: scheduleType.ID,
		ResidentID:     uintPtr(resident.ID),
	}
	_, err := CreateSchedule(db, time.UTC, missingStart)
	assert.ErrorIs(t, err, ErrMissingStartTime)

	inverted := missingStart
	inverted.Title = "Перевёрнутый интервал"
	inverted.StartTime = strPtr("11:00")
	inverted.EndTime = strPtr("10:00")
	_, err = CreateSchedule(db, time.UTC, inverted)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	empty := missingStart
	empty.Title = "Пустой интервал"
	empty.StartTime = strPtr("10:00")
	empty.EndTime = strPtr("10:00")
	_, err = CreateSchedule(db, time.UTC, empty)
	assert.ErrorIs(t, err, ErrInvalidInterval, "Равные начало и конец — некорректный интервал")

	malformedStart := missingStart
	malformedStart.Title = "Неразбираемое время начала"
	malformedStart.StartTime = strPtr("9:30")
	_, err = CreateSchedule(db, time.UTC, malformedStart)
	assert.ErrorIs(t, err, ErrInvalidInterval, "Неразбираемое время — ошибка интервала, а не даты")

	malformedEnd := missingStart
	malformedEnd.Title = "Неразбираемое время окончания"
	malformedEnd.StartTime = strPtr("09:30")
	malformedEnd.EndTime = strPtr("10:60")
	_, err = CreateSchedule(db, time.UTC, malformedEnd)
	assert.ErrorIs(t, err, ErrInvalidInterval, "Неразбираемое время окончания — ошибка интервала")

	unknownType := missingStart
	unknownType.Title = "Несуществующий тип"
	unknownType.StartTime = strPtr("10:00")
	unknownType.EndTime = strPtr("11:00")
	unknownType.ScheduleTypeID = 9999
	_, err = CreateSchedule(db, time.UTC, unknownType)
	assert.ErrorIs(t, err, ErrUnknownReference)

	unknownResident := unknownType
	unknownResident.ScheduleTypeID = scheduleType.ID
	unknownResident.ResidentID = uintPtr(9999)
	_, err = CreateSchedule(db, time.UTC, unknownResident)
	assert.ErrorIs(t, err, ErrUnknownReference)

	// У события на весь день времена обнуляются независимо от входа.
	allDay := ScheduleInput{
		Date:           "2025-07-24",
		Title:          "День учреждения",
		StartTime:      strPtr("10:00"),
		EndTime:        strPtr("11:00"),
		AllDay:         true,
		ScheduleTypeID: scheduleType.ID,
	}
	created, err := CreateSchedule(db, time.UTC, allDay)
	assert.NoError(t, err)
	assert.Nil(t, created.StartTime, "У события на весь день не должно быть времени начала")
	assert.Nil(t, created.EndTime, "У события на весь день не должно быть времени окончания")
}

func TestUpdateScheduleSelfExclusion(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	base := ScheduleInput{
		Date:           "2025-07-24",
		Title:          "Физиотерапия",
		StartTime:      strPtr("10:00"),
		EndTime:        strPtr("11:00"),
		ScheduleTypeID: scheduleType.ID,
		ResidentID:     uintPtr(resident.ID),
	}
	created, err := CreateSchedule(db, time.UTC, base)
	assert.NoError(t, err)

	// Обновление без смены интервала не конфликтует с самим собой.
	renamed := base
	renamed.Title = "Физиотерапия (перенос зала)"
	updated, err := UpdateSchedule(db, time.UTC, created.ID, renamed)
	assert.NoError(t, err, "Обновление не должно конфликтовать со своей же строкой")
	assert.Equal(t, "Физиотерапия (перенос зала)", updated.Title)

	second := base
	second.Title = "Обед"
	second.StartTime = strPtr("12:00")
	second.EndTime = strPtr("13:00")
	other, err := CreateSchedule(db, time.UTC, second)
	assert.NoError(t, err)

	// А перенос на чужой интервал — конфликтует.
	moved := second
	moved.StartTime = strPtr("10:30")
	moved.EndTime = strPtr("11:30")
	_, err = UpdateSchedule(db, time.UTC, other.ID, moved)
	assert.ErrorIs(t, err, ErrTimeConflict)

	_, err = UpdateSchedule(db, time.UTC, 9999, base)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMonthlySchedules(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	// Пустой месяц — пустой список, не ошибка.
	days, err := MonthlySchedules(db, time.UTC, 2025, 6)
	assert.NoError(t, err)
	assert.Len(t, days, 0)

	_, err = MonthlySchedules(db, nil, 2025, 6)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = MonthlySchedules(db, time.UTC, 2025, 13)
	assert.ErrorIs(t, err, ErrInvalidDate)

	makeInput := func(title, start, end string) ScheduleInput {
		return ScheduleInput{
			Date:           "2025-07-24",
			Title:          title,
			StartTime:      strPtr(start),
			EndTime:        strPtr(end),
			ScheduleTypeID: scheduleType.ID,
			ResidentID:     uintPtr(resident.ID),
		}
	}

	// Создаём в произвольном порядке, ожидаем сортировку по времени начала.
	_, err = CreateSchedule(db, time.UTC, makeInput("Дневная", "14:00", "15:00"))
	assert.NoError(t, err)
	_, err = CreateSchedule(db, time.UTC, makeInput("Утренняя", "09:00", "10:00"))
	assert.NoError(t, err)
	_, err = CreateSchedule(db, time.UTC, makeInput("Полуденная", "11:00", "12:00"))
	assert.NoError(t, err)
	_, err = CreateSchedule(db, time.UTC, ScheduleInput{
		Date:           "2025-07-24",
		Title:          "Праздник двора",
		AllDay:         true,
		ScheduleTypeID: scheduleType.ID,
	})
	assert.NoError(t, err)

	// Зарегистрированный день без расписаний тоже входит в выборку.
	_, err = ResolveOrCreateDate(db, time.UTC, "2025-07-10")
	assert.NoError(t, err)

	days, err = MonthlySchedules(db, time.UTC, 2025, 7)
	assert.NoError(t, err)
	assert.Len(t, days, 2, "В июле зарегистрированы два дня")

	assert.Equal(t, "2025-07-10", days[0].CalendarDay.Format(DateLayout), "Дни должны идти по возрастанию даты")
	assert.Len(t, days[0].Schedules, 0, "Пустой день возвращается с пустым списком")

	day := days[1]
	assert.Equal(t, "2025-07-24", day.CalendarDay.Format(DateLayout))
	titles := make([]string, 0, len(day.Schedules))
	for _, s := range day.Schedules {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Праздник двора", "Утренняя", "Полуденная", "Дневная"}, titles,
		"События на весь день идут первыми, далее — по времени начала")
	assert.Equal(t, "Осмотр", day.Schedules[1].ScheduleType.TypeName, "Тип расписания должен подгружаться")
	assert.NotNil(t, day.Schedules[1].Resident, "Проживающий должен подгружаться")
}

func TestDeletionGuards(t *testing.T) {
	db := setupTestDB(t)
	resident, scheduleType := createFixtures(t, db)

	created, err := CreateSchedule(db, time.UTC, ScheduleInput{
		Date:           "2025-07-24",
		Title:          "Осмотр врача",
		StartTime:      strPtr("10:00"),
		EndTime:        strPtr("11:00"),
		ScheduleTypeID: scheduleType.ID,
		ResidentID:     uintPtr(resident.ID),
	})
	assert.NoError(t, err)

	assert.ErrorIs(t, DeleteResident(db, resident.ID), ErrReferentialConflict,
		"Проживающего с расписаниями удалять нельзя")
	assert.ErrorIs(t, DeleteScheduleType(db, scheduleType.ID), ErrReferentialConflict,
		"Используемый тип удалять нельзя")

	var residentCount int64
	db.Model(&models.Resident{}).Where("id = ?", resident.ID).Count(&residentCount)
	assert.Equal(t, int64(1), residentCount, "Отклонённое удаление не должно трогать запись")

	_, err = DeleteSchedule(db, created.ID)
	assert.NoError(t, err)
	_, err = DeleteSchedule(db, created.ID)
	assert.ErrorIs(t, err, ErrNotFound, "Повторное удаление — NOT_FOUND")

	assert.NoError(t, DeleteResident(db, resident.ID), "Без расписаний проживающий удаляется")
	assert.NoError(t, DeleteScheduleType(db, scheduleType.ID), "Без расписаний тип удаляется")

	assert.ErrorIs(t, DeleteResident(db, 9999), ErrNotFound)
	assert.ErrorIs(t, DeleteScheduleType(db, 9999), ErrNotFound)
}
