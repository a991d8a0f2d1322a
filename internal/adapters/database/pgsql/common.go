package pgsql

import "github.com/dayboard/dayboard_backend/internal/core/domain"

func statusToModel(s *domain.ItemStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func statusToDomain(s *string) *domain.ItemStatus {
	if s == nil {
		return nil
	}
	v := domain.ItemStatus(*s)
	return &v
}
