package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"care_calendar/internal/calendar"
	"care_calendar/internal/models"
	"care_calendar/internal/response"
	"care_calendar/internal/storage"
	"care_calendar/internal/ws"

	"github.com/gin-gonic/gin"
)

var scheduleCtx = context.Background()

// ScheduleRequest — тело запроса создания/обновления записи расписания.
type ScheduleRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	Date           string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime      *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime        *string `json:"end_time" binding:"omitempty,datetime=15:04"`
	AllDay         bool    `json:"all_day"`
	ScheduleTypeID uint    `json:"schedule_type_id" binding:"required"`
	ResidentID     *uint   `json:"resident_id"`
}

func (r ScheduleRequest) toInput() calendar.ScheduleInput {
	return calendar.ScheduleInput{
		Date:           r.Date,
		Title:          r.Title,
		Description:    r.Description,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		AllDay:         r.AllDay,
		ScheduleTypeID: r.ScheduleTypeID,
		ResidentID:     r.ResidentID,
	}
}

func monthlyCacheKey(year, month int) string {
	return fmt.Sprintf("monthly_%04d_%02d", year, month)
}

// invalidateMonth сбрасывает кэш месячной выборки и рассылает событие подписчикам месяца.
func invalidateMonth(day time.Time, eventType string, schedule *models.Schedule) {
	month := day.Format("2006-01")
	storage.RedisClient.Del(scheduleCtx, monthlyCacheKey(day.Year(), int(day.Month())))

	msg := ws.WSMessage{
		EventType: eventType,
		Month:     month,
		Data: map[string]interface{}{
			"schedule_id": schedule.ID,
			"title":       schedule.Title,
			"date":        day.Format(calendar.DateLayout),
		},
	}
	ws.HubInstance.BroadcastWSMessage(msg)
}

// CreateScheduleHandler создает запись расписания
// @Summary		Создание записи расписания
// @Description	Создаёт запись после проверки формы интервала, ссылок и пересечений по проживающему
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			schedule	body		ScheduleRequest	true	"Данные записи"
// @Security		BearerAuth
// @Success		201	{object}	ScheduleResponse	"Созданная запись со связанными данными"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		422	{object}	response.ErrorResponse	"Отказ доменных проверок (INVALID_INTERVAL, MISSING_START_TIME, TIME_CONFLICT, UNKNOWN_REFERENCE, INVALID_DATE)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedules [post]
func CreateScheduleHandler(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	schedule, err := calendar.CreateSchedule(storage.DB, storage.Location, req.toInput())
	if err != nil {
		writeCalendarError(c, err)
		return
	}

	invalidateMonth(schedule.CalendarDate.CalendarDay, "schedule_created", schedule)

	c.JSON(http.StatusCreated, newScheduleResponse(*schedule, schedule.CalendarDate.CalendarDay.Format(calendar.DateLayout)))
}

// UpdateScheduleHandler обновляет запись расписания
// @Summary		Обновление записи расписания
// @Description	Полностью заменяет запись; собственный интервал исключается из проверки пересечений
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			id			path		string			true	"ID записи"
// @Param			schedule	body		ScheduleRequest	true	"Данные записи"
// @Security		BearerAuth
// @Success		200	{object}	ScheduleResponse	"Обновлённая запись"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, INVALID_SCHEDULE_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Запись не найдена (NOT_FOUND)"
// @Failure		422	{object}	response.ErrorResponse	"Отказ доменных проверок"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedules/{id} [put]
func UpdateScheduleHandler(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_SCHEDULE_ID",
			Message: "Неверный идентификатор записи",
		})
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	// Запоминаем прежний день: обновление может перенести запись в другой месяц,
	// и кэш обоих месяцев должен быть сброшен.
	previous, err := calendar.GetSchedule(storage.DB, uint(scheduleID))
	if err != nil {
		writeCalendarError(c, err)
		return
	}
	previousDay := previous.CalendarDate.CalendarDay

	schedule, err := calendar.UpdateSchedule(storage.DB, storage.Location, uint(scheduleID), req.toInput())
	if err != nil {
		writeCalendarError(c, err)
		return
	}

	if !previousDay.Equal(schedule.CalendarDate.CalendarDay) {
		invalidateMonth(previousDay, "schedule_deleted", schedule)
	}
	invalidateMonth(schedule.CalendarDate.CalendarDay, "schedule_updated", schedule)

	c.JSON(http.StatusOK, newScheduleResponse(*schedule, schedule.CalendarDate.CalendarDay.Format(calendar.DateLayout)))
}

// DeleteScheduleHandler удаляет запись расписания
// @Summary		Удаление записи расписания
// @Description	Удаляет запись безусловно: удаление интервала не создаёт пересечений
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID записи"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Запись удалена"
// @Failure		404	{object}	response.ErrorResponse	"Запись не найдена (NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedules/{id} [delete]
func DeleteScheduleHandler(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_SCHEDULE_ID",
			Message: "Неверный идентификатор записи",
		})
		return
	}

	schedule, err := calendar.DeleteSchedule(storage.DB, uint(scheduleID))
	if err != nil {
		writeCalendarError(c, err)
		return
	}

	invalidateMonth(schedule.CalendarDate.CalendarDay, "schedule_deleted", schedule)

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Запись расписания удалена"})
}

// GetScheduleHandler возвращает одну запись расписания
// @Summary		Получение записи расписания
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID записи"
// @Security		BearerAuth
// @Success		200	{object}	ScheduleResponse	"Запись со связанными данными"
// @Failure		404	{object}	response.ErrorResponse	"Запись не найдена (NOT_FOUND)"
// @Router			/api/schedules/{id} [get]
func GetScheduleHandler(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_SCHEDULE_ID",
			Message: "Неверный идентификатор записи",
		})
		return
	}

	schedule, err := calendar.GetSchedule(storage.DB, uint(scheduleID))
	if err != nil {
		writeCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, newScheduleResponse(*schedule, schedule.CalendarDate.CalendarDay.Format(calendar.DateLayout)))
}

// ListSchedulesHandler возвращает записи за день или диапазон дат
// @Summary		Список записей расписания
// @Description	Фильтры: ?date=YYYY-MM-DD либо ?start_date=&end_date=; сортировка по времени начала
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			date		query		string	false	"Конкретный день"
// @Param			start_date	query		string	false	"Начало диапазона"
// @Param			end_date	query		string	false	"Конец диапазона"
// @Security		BearerAuth
// @Success		200	{array}		ScheduleResponse	"Список записей"
// @Failure		422	{object}	response.ErrorResponse	"Некорректная дата в фильтре (INVALID_DATE)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedules [get]
func ListSchedulesHandler(c *gin.Context) {
	query := storage.DB.Model(&models.Schedule{}).
		Joins("JOIN calendar_dates ON calendar_dates.id = schedules.date_id").
		Preload("CalendarDate").Preload("ScheduleType").Preload("Resident").
		Order("schedules.start_time ASC")

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse(calendar.DateLayout, date); err != nil {
			writeCalendarError(c, calendar.ErrInvalidDate)
			return
		}
		query = query.Where("calendar_dates.calendar_day = ?", date)
	}
	if start, end := c.Query("start_date"), c.Query("end_date"); start != "" && end != "" {
		if _, err := time.Parse(calendar.DateLayout, start); err != nil {
			writeCalendarError(c, calendar.ErrInvalidDate)
			return
		}
		if _, err := time.Parse(calendar.DateLayout, end); err != nil {
			writeCalendarError(c, calendar.ErrInvalidDate)
			return
		}
		query = query.Where("calendar_dates.calendar_day BETWEEN ? AND ?", start, end)
	}

	var schedules []models.Schedule
	if err := query.Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки расписаний",
			Details: err.Error(),
		})
		return
	}

	result := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, newScheduleResponse(s, s.CalendarDate.CalendarDay.Format(calendar.DateLayout)))
	}
	c.JSON(http.StatusOK, result)
}

// GetMonthlySchedulesHandler возвращает месячную сетку календаря
// @Summary		Месячная выборка расписаний
// @Description	Все дни месяца с их записями (на весь день — первыми, далее по времени начала), кэшируется в Redis
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			year	query		int	false	"Год (по умолчанию текущий)"
// @Param			month	query		int	false	"Месяц 1-12 (по умолчанию текущий)"
// @Security		BearerAuth
// @Success		200	{array}		MonthlyDayResponse	"Дни месяца с расписаниями"
// @Failure		422	{object}	response.ErrorResponse	"Некорректные год или месяц (INVALID_DATE)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedules/monthly [get]
func GetMonthlySchedulesHandler(c *gin.Context) {
	now := time.Now().In(storage.Location)
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		writeCalendarError(c, calendar.ErrInvalidDate)
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		writeCalendarError(c, calendar.ErrInvalidDate)
		return
	}

	cacheKey := monthlyCacheKey(year, month)
	cached, err := storage.RedisClient.Get(scheduleCtx, cacheKey).Result()
	if err == nil && cached != "" {
		var days []MonthlyDayResponse
		if err := json.Unmarshal([]byte(cached), &days); err == nil {
			c.JSON(http.StatusOK, days)
			return
		}
	}

	dates, err := calendar.MonthlySchedules(storage.DB, storage.Location, year, month)
	if err != nil {
		writeCalendarError(c, err)
		return
	}

	days := make([]MonthlyDayResponse, 0, len(dates))
	for _, date := range dates {
		day := MonthlyDayResponse{
			Date:        date.CalendarDay.Format(calendar.DateLayout),
			DayOfWeek:   date.DayOfWeek,
			IsHoliday:   date.IsHoliday,
			HolidayName: date.HolidayName,
			Notes:       date.Notes,
			Schedules:   make([]ScheduleResponse, 0, len(date.Schedules)),
		}
		for _, s := range date.Schedules {
			day.Schedules = append(day.Schedules, newScheduleResponse(s, day.Date))
		}
		days = append(days, day)
	}

	if payload, err := json.Marshal(days); err == nil {
		storage.RedisClient.Set(scheduleCtx, cacheKey, string(payload), 10*time.Minute)
	}

	c.JSON(http.StatusOK, days)
}
