package utils

import "time"

// Comparações de calendário sempre no fuso local, igual ao comportamento
// esperado pelo usuário ("hoje" é o dia do relógio de parede).

func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func IsToday(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	return SameDay(*t, now)
}

func IsPast(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.Before(startOfDay)
}

// IsThisWeek considera a semana de domingo a sábado.
func IsThisWeek(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart = weekStart.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)
	return !t.Before(weekStart) && t.Before(weekEnd)
}

func IsThisMonth(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	local := t.Local()
	return local.Month() == now.Month() && local.Year() == now.Year()
}

// FormatShortDate formata no padrão dia/mês usado nos cartões e na planilha.
func FormatShortDate(t time.Time) string {
	return t.Local().Format("02/01")
}

// FormatFileDate formata a data usada em nomes de arquivo exportados.
func FormatFileDate(t time.Time) string {
	return t.Local().Format("02-01-2006")
}
