package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/application/usecase"
	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/rating"
)

type memContractors struct {
	byID    map[string]entity.Contractor
	updates int
}

func (m *memContractors) GetByID(_ context.Context, id string) (*entity.Contractor, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memContractors) GetByUserID(_ context.Context, userID string) (*entity.Contractor, error) {
	for _, c := range m.byID {
		if c.UserID == userID {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memContractors) List(_ context.Context, limit, offset int) ([]entity.Contractor, error) {
	var out []entity.Contractor
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *memContractors) UpdateRating(_ context.Context, id string, r entity.Rating) error {
	c := m.byID[id]
	c.Rating = r
	m.byID[id] = c
	m.updates++
	return nil
}

func newRepo() *memContractors {
	return &memContractors{byID: map[string]entity.Contractor{
		"c-1": {
			ID: "c-1", UserID: "u-1", BusinessName: "Acme Roofing",
			Rating: entity.Rating{Customer: 5, Speed: 5, Warranty: 5, Internal: 5, Overall: 5},
		},
	}}
}

func TestUpdateRating_ParcialYPersistido(t *testing.T) {
	repo := newRepo()
	uc := usecase.NewContractorUseCase(repo)

	out, err := uc.UpdateRating(context.Background(), "c-1", dto.UpdateRatingRequest{Customer: rating.Score(0)})
	require.NoError(t, err)

	assert.Equal(t, 0.0, out.Rating.Customer)
	assert.Equal(t, 5.0, out.Rating.Speed)
	assert.Equal(t, 5.0, out.Rating.Warranty)
	assert.Equal(t, 5.0, out.Rating.Internal)
	assert.InDelta(t, 3.0, out.Rating.Overall, 1e-9)
	assert.Equal(t, string(rating.TierStandard), out.Tier)

	assert.Equal(t, 1, repo.updates)
	assert.InDelta(t, 3.0, repo.byID["c-1"].Rating.Overall, 1e-9)
}

func TestUpdateRating_FueraDeRangoNoPersiste(t *testing.T) {
	repo := newRepo()
	uc := usecase.NewContractorUseCase(repo)

	_, err := uc.UpdateRating(context.Background(), "c-1", dto.UpdateRatingRequest{Speed: rating.Score(6)})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
	assert.Zero(t, repo.updates)
	assert.Equal(t, 5.0, repo.byID["c-1"].Rating.Speed)
}

func TestUpdateRating_NoExiste(t *testing.T) {
	uc := usecase.NewContractorUseCase(newRepo())
	_, err := uc.UpdateRating(context.Background(), "nope", dto.UpdateRatingRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByIDYList(t *testing.T) {
	uc := usecase.NewContractorUseCase(newRepo())
	c, err := uc.GetByID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, string(rating.TierElite), c.Tier)
	assert.NotNil(t, c.Trades)

	list, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.GetByUserID(context.Background(), "u-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
