package domain

import "strings"

// Source — источник данных о праздниках, выбирается один раз при старте.
type Source string

const (
	SourceFile Source = "file"
	SourceMock Source = "mock"
	SourceAPI  Source = "api"
)

// ParseSource — разбирает значение из конфигурации; пустое или неизвестное → file.
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceMock:
		return SourceMock
	case SourceAPI:
		return SourceAPI
	default:
		return SourceFile
	}
}

func (s Source) String() string { return string(s) }
