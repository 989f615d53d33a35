package calendar

import "time"

// TimeLayout — формат времени суток в API и в базе ("HH:MM").
const TimeLayout = "15:04"

// DateLayout — формат календарного дня в API ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// overlaps сообщает, пересекаются ли полуинтервалы [aStart, aEnd) и [bStart, bEnd).
// Это Go-зеркало SQL-предиката из HasConflict (`start_time < ? AND end_time > ?`):
// боевую проверку выполняет база, а тесты фиксируют семантику предиката здесь.
// Времена — строки "HH:MM" с ведущими нулями, поэтому лексикографическое сравнение
// совпадает с хронологическим. Совпадение только границы (10:00-11:00 и 11:00-12:00)
// пересечением не считается: записи "впритык" — штатный режим работы учреждения.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ValidTime проверяет, что строка — корректное время суток в формате "HH:MM".
func ValidTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
