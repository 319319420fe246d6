// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-recovery-companion/internal/service"
)

// humanizeError turns a service error into the inline banner text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Логин и пароль обязательны"
	case errors.Is(err, service.ErrEmptyQuestion):
		return "Введите вопрос"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Сессия истекла. Войдите снова"
	case errors.Is(err, service.ErrAccessDenied):
		return "Недостаточно прав"
	case errors.Is(err, service.ErrNotFound):
		return "Запись не найдена"
	case errors.Is(err, service.ErrServiceUnavailable):
		return "Отсутствует сеть или Сервер недоступен"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
