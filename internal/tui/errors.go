// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-library-keeper/internal/adapter"
	"github.com/MKhiriev/go-library-keeper/internal/service"
)

// humanizeError turns store, path and transport failures into a message
// for the error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var (
		verr *service.ValidationError
		rerr *service.ResyncError
		perr *service.PathResolutionError
	)
	switch {
	case errors.As(err, &verr):
		return "Проверьте данные: " + verr.Error()
	case errors.As(err, &rerr):
		return "Изменение применено, но список не обновлён. Нажмите r, чтобы обновить.\n" + rerr.Err.Error()
	case errors.As(err, &perr):
		return "Не удалось открыть путь " + perr.Path + ": " + unavailableOr(perr.Err)
	}

	return unavailableOr(err)
}

func unavailableOr(err error) string {
	if errors.Is(err, adapter.ErrUnavailable) {
		return "Исполнитель недоступен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Исполнитель недоступен"
	}

	return err.Error()
}
