package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{"соседние интервалы не пересекаются", "09:00", "10:00", "10:00", "11:00", false},
		{"частичное наложение справа", "09:00", "10:00", "09:30", "10:30", true},
		{"частичное наложение слева", "09:30", "10:30", "09:00", "10:00", true},
		{"вложенность: кандидат внутри существующего", "10:00", "11:00", "09:00", "12:00", true},
		{"вложенность: существующий внутри кандидата", "09:00", "12:00", "10:00", "11:00", true},
		{"полностью одинаковые интервалы", "09:00", "10:00", "09:00", "10:00", true},
		{"непересекающиеся с зазором", "09:00", "10:00", "13:00", "14:00", false},
		{"встык в обратную сторону", "10:00", "11:00", "09:00", "10:00", false},
		{"минутное перекрытие", "09:00", "10:01", "10:00", "11:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd), "неверный результат проверки пересечения")
			// Пересечение симметрично: conflicts(A,B) == conflicts(B,A).
			assert.Equal(t, tc.expected, overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd), "проверка пересечения несимметрична")
		})
	}
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("00:00"))
	assert.True(t, ValidTime("23:59"))
	assert.True(t, ValidTime("09:30"))
	assert.False(t, ValidTime("24:00"))
	assert.False(t, ValidTime("9:30"))
	assert.False(t, ValidTime("09:60"))
	assert.False(t, ValidTime("09-30"))
	assert.False(t, ValidTime(""))
}
