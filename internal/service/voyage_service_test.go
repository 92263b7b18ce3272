package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/domain"
	"sofdesk/internal/service"
	"sofdesk/mocks"
)

func TestVoyageCreate(t *testing.T) {
	repo := new(mocks.MockVoyageRepo)
	svc := service.NewVoyageService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Voyage")).Return(nil)

	voyage, err := svc.Create(context.Background(), service.VoyageCreateInput{
		VesselName:    "  Ocean Pioneer ",
		VoyageNumber:  "42A",
		LoadPort:      "Singapore",
		DischargePort: "Rotterdam",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ocean Pioneer", voyage.VesselName)
	assert.Equal(t, domain.VoyageStatusPlanned, voyage.Status)
	assert.NotEqual(t, uuid.Nil, voyage.ID)
	repo.AssertExpectations(t)
}

func TestVoyageCreateMissingFields(t *testing.T) {
	svc := service.NewVoyageService(new(mocks.MockVoyageRepo))

	_, err := svc.Create(context.Background(), service.VoyageCreateInput{VesselName: "Ocean Pioneer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), service.VoyageCreateInput{VoyageNumber: "42A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVoyageUpdateStatus(t *testing.T) {
	repo := new(mocks.MockVoyageRepo)
	svc := service.NewVoyageService(repo)
	id := uuid.New()

	repo.On("UpdateStatus", mock.Anything, id, domain.VoyageStatusActive).Return(nil)
	require.NoError(t, svc.UpdateStatus(context.Background(), id, domain.VoyageStatusActive))

	err := svc.UpdateStatus(context.Background(), id, domain.VoyageStatus("scrapped"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertExpectations(t)
}
