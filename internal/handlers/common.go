package handlers

import (
	"errors"
	"net/http"
	"time"

	"care_calendar/internal/calendar"
	"care_calendar/internal/models"
	"care_calendar/internal/response"
	"care_calendar/internal/storage"

	"github.com/gin-gonic/gin"
)

// ScheduleTypeResponse — тип расписания в ответах API.
type ScheduleTypeResponse struct {
	ID        uint   `json:"id"`
	TypeName  string `json:"type_name"`
	ColorCode string `json:"color_code"`
	IsActive  bool   `json:"is_active"`
}

// ResidentResponse — проживающий в ответах API.
type ResidentResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Gender       *string `json:"gender,omitempty"`
	BirthDate    *string `json:"birth_date,omitempty"`
	Age          *int    `json:"age,omitempty"`
	MedicalNotes *string `json:"medical_notes,omitempty"`
}

// ScheduleResponse — запись расписания со связанными данными.
type ScheduleResponse struct {
	ID             uint                  `json:"id"`
	Title          string                `json:"title"`
	Description    *string               `json:"description,omitempty"`
	Date           string                `json:"date"`
	StartTime      *string               `json:"start_time,omitempty"`
	EndTime        *string               `json:"end_time,omitempty"`
	AllDay         bool                  `json:"all_day"`
	ScheduleTypeID uint                  `json:"schedule_type_id"`
	ResidentID     *uint                 `json:"resident_id,omitempty"`
	ScheduleType   *ScheduleTypeResponse `json:"schedule_type,omitempty"`
	Resident       *ResidentResponse     `json:"resident,omitempty"`
}

// MonthlyDayResponse — один день месячной сетки календаря.
type MonthlyDayResponse struct {
	Date        string             `json:"date"`
	DayOfWeek   int                `json:"day_of_week"`
	IsHoliday   bool               `json:"is_holiday"`
	HolidayName *string            `json:"holiday_name,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Schedules   []ScheduleResponse `json:"schedules"`
}

func newScheduleTypeResponse(t models.ScheduleType) ScheduleTypeResponse {
	return ScheduleTypeResponse{
		ID:        t.ID,
		TypeName:  t.TypeName,
		ColorCode: t.ColorCode,
		IsActive:  t.IsActive,
	}
}

func newResidentResponse(r models.Resident) ResidentResponse {
	resp := ResidentResponse{
		ID:           r.ID,
		Name:         r.Name,
		Gender:       r.Gender,
		MedicalNotes: r.MedicalNotes,
	}
	if r.BirthDate != nil {
		birth := r.BirthDate.Format(calendar.DateLayout)
		resp.BirthDate = &birth
		age := yearsSince(*r.BirthDate)
		resp.Age = &age
	}
	return resp
}

func yearsSince(birth time.Time) int {
	now := time.Now().In(storage.Location)
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// newScheduleResponse собирает ответ по записи; дата передаётся отдельно,
// потому что в месячной выборке CalendarDate у записей не подгружается.
func newScheduleResponse(s models.Schedule, date string) ScheduleResponse {
	resp := ScheduleResponse{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		Date:           date,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		AllDay:         s.AllDay,
		ScheduleTypeID: s.ScheduleTypeID,
		ResidentID:     s.ResidentID,
	}
	if s.ScheduleType.ID != 0 {
		t := newScheduleTypeResponse(s.ScheduleType)
		resp.ScheduleType = &t
	}
	if s.Resident != nil && s.Resident.ID != 0 {
		r := newResidentResponse(*s.Resident)
		resp.Resident = &r
	}
	return resp
}

// writeCalendarError переводит доменные ошибки ядра в коды и статусы API.
func writeCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidInterval):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    "INVALID_INTERVAL",
			Message: "Время окончания должно быть позже времени начала",
		})
	case errors.Is(err, calendar.ErrMissingStartTime):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    "MISSING_START_TIME",
			Message: "Укажите время начала или отметьте событие как событие на весь день",
		})
	case errors.Is(err, calendar.ErrTimeConflict):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    "TIME_CONFLICT",
			Message: "Время пересекается с другим расписанием этого проживающего",
		})
	case errors.Is(err, calendar.ErrUnknownReference):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    "UNKNOWN_REFERENCE",
			Message: "Указан несуществующий тип расписания или проживающий",
		})
	case errors.Is(err, calendar.ErrInvalidDate):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    "INVALID_DATE",
			Message: "Некорректная дата",
		})
	case errors.Is(err, calendar.ErrReferentialConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "REFERENTIAL_CONFLICT",
			Message: "Запись используется расписаниями и не может быть удалена",
		})
	case errors.Is(err, calendar.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Запись не найдена",
		})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при работе с базой данных",
			Details: err.Error(),
		})
	}
}
