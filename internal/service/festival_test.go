package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalapi/internal/domain"
)

type stubFestivalRepo struct {
	lastLimit  int
	lastOffset int
}

func (s *stubFestivalRepo) Create(_ context.Context, f domain.Festival) (domain.Festival, error) {
	f.ID = 1
	return f, nil
}

func (s *stubFestivalRepo) FindByID(_ context.Context, id uint) (domain.Festival, error) {
	return domain.Festival{ID: id}, nil
}

func (s *stubFestivalRepo) List(_ context.Context, limit, offset int) ([]domain.Festival, error) {
	s.lastLimit = limit
	s.lastOffset = offset
	return nil, nil
}

func (s *stubFestivalRepo) Update(_ context.Context, f domain.Festival) (domain.Festival, error) {
	return f, nil
}

func (s *stubFestivalRepo) Delete(_ context.Context, _ uint) error {
	return nil
}

func TestListFestivals_PaginationClamping(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: DefaultPageSize, wantOffset: 0},
		{name: "negative limit", limit: -5, offset: 0, wantLimit: DefaultPageSize, wantOffset: 0},
		{name: "limit capped", limit: 500, offset: 0, wantLimit: MaxPageSize, wantOffset: 0},
		{name: "negative offset", limit: 10, offset: -3, wantLimit: 10, wantOffset: 0},
		{name: "passthrough", limit: 10, offset: 40, wantLimit: 10, wantOffset: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubFestivalRepo{}
			svc := NewFestivalService(repo)

			_, err := svc.ListFestivals(context.Background(), tt.limit, tt.offset)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLimit, repo.lastLimit)
			assert.Equal(t, tt.wantOffset, repo.lastOffset)
		})
	}
}
