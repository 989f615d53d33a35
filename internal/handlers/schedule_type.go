package handlers

import (
	"net/http"
	"strconv"

	"care_calendar/internal/calendar"
	"care_calendar/internal/models"
	"care_calendar/internal/response"
	"care_calendar/internal/storage"

	"github.com/gin-gonic/gin"
)

// ScheduleTypeRequest — тело запроса создания/обновления типа расписания.
// Цвет — строго 7-символьный код #RRGGBB.
type ScheduleTypeRequest struct {
	TypeName  string `json:"type_name" binding:"required,max=255"`
	ColorCode string `json:"color_code" binding:"required,len=7,hexcolor"`
	IsActive  *bool  `json:"is_active"`
}

// ListScheduleTypesHandler возвращает все типы расписаний
// @Summary		Список типов расписаний
// @Tags			schedule-types
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		ScheduleTypeResponse	"Список типов"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedule-types [get]
func ListScheduleTypesHandler(c *gin.Context) {
	var types []models.ScheduleType
	if err := storage.DB.Order("type_name ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки типов расписаний",
			Details: err.Error(),
		})
		return
	}

	result := make([]ScheduleTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, newScheduleTypeResponse(t))
	}
	c.JSON(http.StatusOK, result)
}

// CreateScheduleTypeHandler создает тип расписания
// @Summary		Создание типа расписания
// @Tags			schedule-types
// @Accept			json
// @Produce		json
// @Param			type	body		ScheduleTypeRequest	true	"Данные типа"
// @Security		BearerAuth
// @Success		201	{object}	ScheduleTypeResponse	"Созданный тип"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR) или имя занято (TYPE_NAME_EXISTS)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedule-types [post]
func CreateScheduleTypeHandler(c *gin.Context) {
	var req ScheduleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var existing models.ScheduleType
	if err := storage.DB.Where("type_name = ?", req.TypeName).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "TYPE_NAME_EXISTS",
			Message: "Тип расписания с таким названием уже существует",
		})
		return
	}

	scheduleType := models.ScheduleType{
		TypeName:  req.TypeName,
		ColorCode: req.ColorCode,
		IsActive:  true,
	}
	if req.IsActive != nil {
		scheduleType.IsActive = *req.IsActive
	}

	if err := storage.DB.Create(&scheduleType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании типа расписания",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newScheduleTypeResponse(scheduleType))
}

// GetScheduleTypeHandler возвращает один тип расписания
// @Summary		Получение типа расписания
// @Tags			schedule-types
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID типа"
// @Security		BearerAuth
// @Success		200	{object}	ScheduleTypeResponse	"Тип расписания"
// @Failure		404	{object}	response.ErrorResponse	"Не найден (NOT_FOUND)"
// @Router			/api/schedule-types/{id} [get]
func GetScheduleTypeHandler(c *gin.Context) {
	typeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_TYPE_ID",
			Message: "Неверный идентификатор типа расписания",
		})
		return
	}

	var scheduleType models.ScheduleType
	if err := storage.DB.First(&scheduleType, typeID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Тип расписания не найден",
		})
		return
	}

	c.JSON(http.StatusOK, newScheduleTypeResponse(scheduleType))
}

// UpdateScheduleTypeHandler обновляет тип расписания
// @Summary		Обновление типа расписания
// @Tags			schedule-types
// @Accept			json
// @Produce		json
// @Param			id		path		string				true	"ID типа"
// @Param			type	body		ScheduleTypeRequest	true	"Данные типа"
// @Security		BearerAuth
// @Success		200	{object}	ScheduleTypeResponse	"Обновлённый тип"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR) или имя занято (TYPE_NAME_EXISTS)"
// @Failure		404	{object}	response.ErrorResponse	"Не найден (NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedule-types/{id} [put]
func UpdateScheduleTypeHandler(c *gin.Context) {
	typeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_TYPE_ID",
			Message: "Неверный идентификатор типа расписания",
		})
		return
	}

	var scheduleType models.ScheduleType
	if err := storage.DB.First(&scheduleType, typeID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Тип расписания не найден",
		})
		return
	}

	var req ScheduleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var duplicate models.ScheduleType
	if err := storage.DB.Where("type_name = ? AND id <> ?", req.TypeName, scheduleType.ID).First(&duplicate).Error; err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "TYPE_NAME_EXISTS",
			Message: "Тип расписания с таким названием уже существует",
		})
		return
	}

	scheduleType.TypeName = req.TypeName
	scheduleType.ColorCode = req.ColorCode
	if req.IsActive != nil {
		scheduleType.IsActive = *req.IsActive
	}

	if err := storage.DB.Save(&scheduleType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении типа расписания",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newScheduleTypeResponse(scheduleType))
}

// DeleteScheduleTypeHandler удаляет тип расписания
// @Summary		Удаление типа расписания
// @Description	Отказывает, пока тип используется хотя бы одной записью расписания
// @Tags			schedule-types
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID типа"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Тип удалён"
// @Failure		404	{object}	response.ErrorResponse	"Не найден (NOT_FOUND)"
// @Failure		409	{object}	response.ErrorResponse	"Тип используется (REFERENTIAL_CONFLICT)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/schedule-types/{id} [delete]
func DeleteScheduleTypeHandler(c *gin.Context) {
	typeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_TYPE_ID",
			Message: "Неверный идентификатор типа расписания",
		})
		return
	}

	if err := calendar.DeleteScheduleType(storage.DB, uint(typeID)); err != nil {
		writeCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Тип расписания удалён"})
}
