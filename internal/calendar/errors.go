package calendar

import "errors"

// Ошибки доменного уровня. Обработчики переводят их в коды API,
// все они исправляются корректировкой запроса и не подлежат автоповтору.
var (
	ErrInvalidInterval     = errors.New("некорректный интервал времени")
	ErrMissingStartTime    = errors.New("для события с указанным временем требуется время начала")
	ErrTimeConflict        = errors.New("время пересекается с другим расписанием этого проживающего")
	ErrUnknownReference    = errors.New("ссылка на несуществующую запись")
	ErrReferentialConflict = errors.New("запись используется расписаниями и не может быть удалена")
	ErrInvalidDate         = errors.New("некорректная дата или не задан часовой пояс")
	ErrNotFound            = errors.New("запись не найдена")
)
