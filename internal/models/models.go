package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Surname      string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type CalendarDate struct {
	gorm.Model
	CalendarDay time.Time  `gorm:"type:date;uniqueIndex;not null"` // Календарный день (без времени), уникален среди всех записей
	DayOfWeek   int        `gorm:"not null"`                       // День недели: 0 (воскресенье) — 6 (суббота)
	IsHoliday   bool       `gorm:"default:false"`
	HolidayName *string    // Название праздника, если день праздничный
	Notes       *string    `gorm:"type:text"`
	Schedules   []Schedule `gorm:"foreignKey:DateID;constraint:OnDelete:CASCADE"`
}

type Resident struct {
	gorm.Model
	Name         string     `gorm:"index;not null"`
	Gender       *string    `gorm:"type:varchar(10)"` // male / female / other
	BirthDate    *time.Time `gorm:"type:date;index"`
	MedicalNotes *string    `gorm:"type:text"`
}

type ScheduleType struct {
	gorm.Model
	TypeName  string `gorm:"uniqueIndex;not null"`
	ColorCode string `gorm:"type:varchar(7);not null"` // Цвет в формате #RRGGBB
	IsActive  bool   `gorm:"default:true"`
}

type Schedule struct {
	gorm.Model
	DateID         uint    `gorm:"index:idx_schedules_date_resident;not null"`
	Title          string  `gorm:"not null"`
	Description    *string `gorm:"type:text"`
	StartTime      *string `gorm:"type:varchar(5);index"` // Время начала "HH:MM", NULL для событий на весь день
	EndTime        *string `gorm:"type:varchar(5)"`       // Время окончания "HH:MM", строго позже начала
	AllDay         bool    `gorm:"default:false"`
	ScheduleTypeID uint    `gorm:"index;not null"`
	ResidentID     *uint   `gorm:"index:idx_schedules_date_resident"` // NULL — событие всего учреждения, без проверки пересечений

	CalendarDate CalendarDate `gorm:"foreignKey:DateID"`
	ScheduleType ScheduleType `gorm:"foreignKey:ScheduleTypeID;constraint:OnDelete:RESTRICT"`
	Resident     *Resident    `gorm:"foreignKey:ResidentID;constraint:OnDelete:RESTRICT"`
}
