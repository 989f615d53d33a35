package handlers

import (
	"net/http"
	"strconv"
	"time"

	"care_calendar/internal/calendar"
	"care_calendar/internal/models"
	"care_calendar/internal/response"
	"care_calendar/internal/storage"

	"github.com/gin-gonic/gin"
)

// ResidentRequest — тело запроса создания/обновления проживающего.
type ResidentRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Gender       *string `json:"gender" binding:"omitempty,oneof=male female other"`
	BirthDate    *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	MedicalNotes *string `json:"medical_notes" binding:"omitempty,max=1000"`
}

// parseBirthDate разбирает дату рождения и требует, чтобы она была строго раньше сегодняшнего дня.
func parseBirthDate(value string) (*time.Time, bool) {
	birth, err := time.ParseInLocation(calendar.DateLayout, value, storage.Location)
	if err != nil {
		return nil, false
	}
	now := time.Now().In(storage.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, storage.Location)
	if !birth.Before(today) {
		return nil, false
	}
	return &birth, true
}

// CreateResidentHandler создает проживающего
// @Summary		Создание проживающего
// @Tags			residents
// @Accept			json
// @Produce		json
// @Param			resident	body		ResidentRequest	true	"Данные проживающего"
// @Security		BearerAuth
// @Success		201	{object}	ResidentResponse	"Созданный проживающий"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		422	{object}	response.ErrorResponse	"Дата рождения не раньше сегодняшнего дня (INVALID_BIRTH_DATE)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/residents [post]
func CreateResidentHandler(c *gin.Context) {
	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	resident := models.Resident{
		Name:         req.Name,
		Gender:       req.Gender,
		MedicalNotes: req.MedicalNotes,
	}
	if req.BirthDate != nil {
		birth, ok := parseBirthDate(*req.BirthDate)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
				Code:    "INVALID_BIRTH_DATE",
				Message: "Дата рождения должна быть раньше сегодняшнего дня",
			})
			return
		}
		resident.BirthDate = birth
	}

	if err := storage.DB.Create(&resident).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании проживающего",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newResidentResponse(resident))
}

// ListResidentsHandler возвращает список проживающих
// @Summary		Список проживающих
// @Description	Поиск по имени через ?search=, сортировка по имени
// @Tags			residents
// @Accept			json
// @Produce		json
// @Param			search	query		string	false	"Подстрока имени"
// @Security		BearerAuth
// @Success		200	{array}		ResidentResponse	"Список проживающих"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/residents [get]
func ListResidentsHandler(c *gin.Context) {
	query := storage.DB.Model(&models.Resident{}).Order("name ASC")
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var residents []models.Resident
	if err := query.Find(&residents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки проживающих",
			Details: err.Error(),
		})
		return
	}

	result := make([]ResidentResponse, 0, len(residents))
	for _, r := range residents {
		result = append(result, newResidentResponse(r))
	}
	c.JSON(http.StatusOK, result)
}

// GetResidentHandler возвращает одного проживающего
// @Summary		Получение проживающего
// @Tags			residents
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID проживающего"
// @Security		BearerAuth
// @Success		200	{object}	ResidentResponse	"Проживающий"
// @Failure		404	{object}	response.ErrorResponse	"Не найден (NOT_FOUND)"
// @Router			/api/residents/{id} [get]
func GetResidentHandler(c *gin.Context) {
	residentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_RESIDENT_ID",
			Message: "Неверный идентификатор проживающего",
		})
		return
	}

	var resident models.Resident
	if err := storage.DB.First(&resident, residentID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Проживающий не найден",
		})
		return
	}

	c.JSON(http.StatusOK, newResidentResponse(resident))
}

// UpdateResidentHandler обновляет проживающего
// @Summary		Обновление проживающего
// @Tags			residents
// @Accept			json
// @Produce		json
// @Param			id			path		string			true	"ID проживающего"
// @Param			resident	body		ResidentRequest	true	"Данные проживающего"
// @Security		BearerAuth
// @Success		200	{object}	ResidentResponse	"Обновлённый проживающий"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Не найден (NOT_FOUND)"
// @Failure		422	{object}	response.ErrorResponse	"Некорректная дата рождения (INVALID_BIRTH_DATE)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/residents/{id} [put]
func UpdateResidentHandler(c *gin.Context) {
	residentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_RESIDENT_ID",
			Message: "Неверный идентификатор проживающего",
		})
		return
	}

	var resident models.Resident
	if err := storage.DB.First(&resident, residentID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Проживающий не найден",
		})
		return
	}

	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	resident.Name = req.Name
	resident.Gender = req.Gender
	resident.MedicalNotes = req.MedicalNotes
	resident.BirthDate = nil
	if req.BirthDate != nil {
		birth, ok := parseBirthDate(*req.BirthDate)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
				Code:    "INVALID_BIRTH_DATE",
				Message: "Дата рождения должна быть раньше сегодняшнего дня",
			})
			return
		}
		resident.BirthDate = birth
	}

	if err := storage.DB.Save(&resident).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении проживающего",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, newResidentResponse(resident))
}

// DeleteResidentHandler удаляет проживающего
// @Summary		Удаление проживающего
// @Description	Отказывает, пока на проживающего ссылается хотя бы одна запись расписания
// @Tags			residents
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID проживающего"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Проживающий удалён"
// @Failure		404	{object}	response.ErrorResponse	"Не найден (NOT_FOUND)"
// @Failure		409	{object}	response.ErrorResponse	"Есть связанные расписания (REFERENTIAL_CONFLICT)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/residents/{id} [delete]
func DeleteResidentHandler(c *gin.Context) {
	residentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_RESIDENT_ID",
			Message: "Неверный идентификатор проживающего",
		})
		return
	}

	if err := calendar.DeleteResident(storage.DB, uint(residentID)); err != nil {
		writeCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Проживающий удалён"})
}
