package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"care_calendar/internal/handlers"
	"care_calendar/internal/models"
	"care_calendar/internal/storage"
	"care_calendar/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func AuthMiddlewareTest() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.Request.Header.Get("X-Test-UserID")
		if userIDStr == "" {
			// Значение по умолчанию
			c.Set("userID", uint(1))
		} else {
			// Попытка сконвертировать строку в число
			id, err := strconv.Atoi(userIDStr)
			if err != nil {
				c.Set("userID", uint(1))
			} else {
				c.Set("userID", uint(id))
			}
		}
		c.Next()
	}
}

func setupTestServer() *httptest.Server {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load("../.env")
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	if os.Getenv("APP_TIMEZONE") == "" {
		os.Setenv("APP_TIMEZONE", "UTC")
	}
	storage.InitTimezone()

	storage.ConnectTestingDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.CalendarDate{}, &models.Resident{}, &models.ScheduleType{}, &models.Schedule{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}
	storage.DB.Exec("TRUNCATE TABLE users, calendar_dates, residents, schedule_types, schedules RESTART IDENTITY CASCADE;")

	storage.InitRedis()

	go ws.HubInstance.Run()

	r := gin.Default()

	api := r.Group("/api", AuthMiddlewareTest())
	{
		api.GET("/schedules/monthly", handlers.GetMonthlySchedulesHandler)
		api.GET("/schedules", handlers.ListSchedulesHandler)
		api.POST("/schedules", handlers.CreateScheduleHandler)
		api.GET("/schedules/:id", handlers.GetScheduleHandler)
		api.PUT("/schedules/:id", handlers.UpdateScheduleHandler)
		api.DELETE("/schedules/:id", handlers.DeleteScheduleHandler)

		api.GET("/residents", handlers.ListResidentsHandler)
		api.POST("/residents", handlers.CreateResidentHandler)
		api.DELETE("/residents/:id", handlers.DeleteResidentHandler)

		api.POST("/schedule-types", handlers.CreateScheduleTypeHandler)
		api.DELETE("/schedule-types/:id", handlers.DeleteScheduleTypeHandler)
	}

	r.GET("/api/calendar/:month/ws", ws.CalendarWebSocketHandler)

	return httptest.NewServer(r)
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(t, err, "Ошибка кодирования тела запроса")
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-UserID", "1")
	res, err := http.DefaultClient.Do(req)
	assert.NoError(t, err, "Ошибка HTTP запроса "+method+" "+url)
	defer res.Body.Close()

	var decoded map[string]interface{}
	json.NewDecoder(res.Body).Decode(&decoded)
	return res, decoded
}

func TestScheduleFlow(t *testing.T) {
	// Настройка сервера
	ts := setupTestServer()
	defer ts.Close()

	// 1. Создаём проживающего и тип расписания через API.
	log.Println("Тест: создание проживающего")
	res, body := doJSON(t, "POST", ts.URL+"/api/residents", map[string]interface{}{
		"name":   "Иванова Мария",
		"gender": "female",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Проживающий не создан")
	residentID := int(body["id"].(float64))
	log.Println("Проживающий создан, ID:", residentID)

	log.Println("Тест: создание типа расписания")
	res, body = doJSON(t, "POST", ts.URL+"/api/schedule-types", map[string]interface{}{
		"type_name":  "Осмотр",
		"color_code": "#FF5733",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Тип расписания не создан")
	typeID := int(body["id"].(float64))
	log.Println("Тип расписания создан, ID:", typeID)

	// 2. Подключаемся к WS месяца, чтобы поймать событие создания.
	wsURL := "ws" + ts.URL[4:] + "/api/calendar/2025-07/ws"
	dialer := websocket.Dialer{}
	wsHeaders := http.Header{}
	wsHeaders.Set("X-Test-UserID", "1")
	wsConn, _, err := dialer.Dial(wsURL, wsHeaders)
	assert.NoError(t, err, "Ошибка подключения к WS")
	defer wsConn.Close()

	// 3. Первая запись 10:00–11:00 создаётся без конфликтов.
	log.Println("Тест: создание первой записи 10:00-11:00")
	res, body = doJSON(t, "POST", ts.URL+"/api/schedules", map[string]interface{}{
		"title":            "Утренний осмотр",
		"date":             "2025-07-24",
		"start_time":       "10:00",
		"end_time":         "11:00",
		"schedule_type_id": typeID,
		"resident_id":      residentID,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Первая запись не создана")
	firstID := int(body["id"].(float64))
	assert.Equal(t, "2025-07-24", body["date"], "Дата записи не совпадает")

	// WS: подписчики месяца получают событие schedule_created.
	_, wsMessage, err := wsConn.ReadMessage()
	assert.NoError(t, err, "Ошибка чтения WS сообщения")
	var wsMsg map[string]interface{}
	err = json.Unmarshal(wsMessage, &wsMsg)
	assert.NoError(t, err, "Ошибка разбора WS сообщения")
	log.Println("Получено WS сообщение:", wsMsg)
	assert.Equal(t, "schedule_created", wsMsg["event_type"], "Неверный тип WS сообщения")
	assert.Equal(t, "2025-07", wsMsg["month"], "Неверный месяц в WS сообщении")

	// 4. Пересекающаяся запись 10:30–11:30 отклоняется.
	log.Println("Тест: пересекающаяся запись 10:30-11:30")
	res, body = doJSON(t, "POST", ts.URL+"/api/schedules", map[string]interface{}{
		"title":            "Процедура",
		"date":             "2025-07-24",
		"start_time":       "10:30",
		"end_time":         "11:30",
		"schedule_type_id": typeID,
		"resident_id":      residentID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, "Пересечение должно отклоняться")
	assert.Equal(t, "TIME_CONFLICT", body["code"], "Ожидался код TIME_CONFLICT")

	// 5. Запись встык 11:00–12:00 проходит.
	log.Println("Тест: запись встык 11:00-12:00")
	res, body = doJSON(t, "POST", ts.URL+"/api/schedules", map[string]interface{}{
		"title":            "Прогулка",
		"date":             "2025-07-24",
		"start_time":       "11:00",
		"end_time":         "12:00",
		"schedule_type_id": typeID,
		"resident_id":      residentID,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Запись встык должна создаваться")
	thirdID := int(body["id"].(float64))

	// 6. Месячная выборка: день с записями в порядке времени начала.
	log.Println("Тест: месячная выборка за июль 2025")
	res, monthlyBody := doMonthly(t, ts.URL)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ошибка месячной выборки")
	day := findDay(monthlyBody, "2025-07-24")
	assert.NotNil(t, day, "День 2025-07-24 отсутствует в месячной выборке")
	schedules := day["schedules"].([]interface{})
	assert.Equal(t, 2, len(schedules), "Неверное количество записей в дне")
	first := schedules[0].(map[string]interface{})
	second := schedules[1].(map[string]interface{})
	assert.Equal(t, "10:00", first["start_time"], "Записи должны идти по времени начала")
	assert.Equal(t, "11:00", second["start_time"], "Записи должны идти по времени начала")
	assert.Equal(t, "#FF5733", first["schedule_type"].(map[string]interface{})["color_code"], "Цвет типа не подгружен")

	// Кривые значения фильтров списка отклоняются до обращения к базе.
	log.Println("Тест: некорректные фильтры списка записей")
	res, body = doJSON(t, "GET", ts.URL+"/api/schedules?date=24-07-2025", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, "Кривой ?date должен давать 422")
	assert.Equal(t, "INVALID_DATE", body["code"], "Ожидался код INVALID_DATE")
	res, body = doJSON(t, "GET", ts.URL+"/api/schedules?start_date=2025-07-01&end_date=2025-13-40", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, "Кривой ?end_date должен давать 422")
	assert.Equal(t, "INVALID_DATE", body["code"], "Ожидался код INVALID_DATE")

	// 7. Удалить проживающего с расписаниями нельзя.
	log.Println("Тест: защита удаления проживающего")
	res, body = doJSON(t, "DELETE", fmt.Sprintf("%s/api/residents/%d", ts.URL, residentID), nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "Удаление должно отклоняться при наличии расписаний")
	assert.Equal(t, "REFERENTIAL_CONFLICT", body["code"], "Ожидался код REFERENTIAL_CONFLICT")

	// Тип расписания тоже защищён.
	res, body = doJSON(t, "DELETE", fmt.Sprintf("%s/api/schedule-types/%d", ts.URL, typeID), nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "Удаление типа должно отклоняться")
	assert.Equal(t, "REFERENTIAL_CONFLICT", body["code"])

	// 8. После удаления всех записей проживающий удаляется.
	log.Println("Тест: удаление записей и проживающего")
	res, _ = doJSON(t, "DELETE", fmt.Sprintf("%s/api/schedules/%d", ts.URL, firstID), nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Первая запись не удалена")
	res, _ = doJSON(t, "DELETE", fmt.Sprintf("%s/api/schedules/%d", ts.URL, thirdID), nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Третья запись не удалена")

	res, _ = doJSON(t, "DELETE", fmt.Sprintf("%s/api/residents/%d", ts.URL, residentID), nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Проживающий без расписаний должен удаляться")

	// 9. Повторное удаление — NOT_FOUND.
	res, body = doJSON(t, "DELETE", fmt.Sprintf("%s/api/schedules/%d", ts.URL, firstID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "Повторное удаление должно давать 404")
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// doMonthly запрашивает месячную выборку; ответ — массив, поэтому отдельный декодер.
func doMonthly(t *testing.T, baseURL string) (*http.Response, []interface{}) {
	req, _ := http.NewRequest("GET", baseURL+"/api/schedules/monthly?year=2025&month=7", nil)
	req.Header.Set("X-Test-UserID", "1")
	res, err := http.DefaultClient.Do(req)
	assert.NoError(t, err, "Ошибка запроса месячной выборки")
	defer res.Body.Close()

	var days []interface{}
	json.NewDecoder(res.Body).Decode(&days)
	return res, days
}

func findDay(days []interface{}, date string) map[string]interface{} {
	for _, d := range days {
		day := d.(map[string]interface{})
		if day["date"] == date {
			return day
		}
	}
	return nil
}
