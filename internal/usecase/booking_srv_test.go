package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/internal/data/repository"
	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/pkg/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBusinessRepo struct {
	byID map[uuid.UUID]*entity.Business
}

func (f *fakeBusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	f.byID[business.ID] = business
	return nil
}

func (f *fakeBusinessRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return f.byID[id], nil
}

func (f *fakeBusinessRepo) FindBySlug(ctx context.Context, slugVal string) (*entity.Business, error) {
	return nil, nil
}

func (f *fakeBusinessRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.Business, error) {
	return nil, nil
}

func (f *fakeBusinessRepo) Count(ctx context.Context, category string) (int64, error) { return 0, nil }

func (f *fakeBusinessRepo) Update(ctx context.Context, business *entity.Business) error { return nil }

func (f *fakeBusinessRepo) SlugExists(ctx context.Context, slugVal string) (bool, error) {
	return false, nil
}

type fakeBookingRepo struct {
	byID map[uuid.UUID]*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.byID[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.byID[id], nil
}

func (f *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	for _, b := range f.byID {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeBookingRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Status = status
	return nil
}

func newBookingFixture() (BookingService, *fakeBusinessRepo, *fakeBookingRepo, *entity.Business) {
	businesses := &fakeBusinessRepo{byID: map[uuid.UUID]*entity.Business{}}
	bookings := &fakeBookingRepo{byID: map[uuid.UUID]*entity.Booking{}}

	business := &entity.Business{
		Base:        entity.Base{ID: uuid.New()},
		OwnerID:     uuid.New(),
		Slug:        "old-town-hotel",
		Name:        "Old Town Hotel",
		Category:    "hotel",
		BasePrice:   100,
		Currency:    "USD",
		IsAvailable: true,
		IsBookable:  true,
	}
	businesses.byID[business.ID] = business

	svc := NewBookingService(
		&repository.Repository{Business: businesses, Booking: bookings},
		nil,
		zap.NewNop(),
	)

	return svc, businesses, bookings, business
}

func strPtr(s string) *string { return &s }

func TestBookingCreate_SnapshotsQuote(t *testing.T) {
	svc, _, bookings, business := newBookingFixture()
	traveller := uuid.New()

	got, err := svc.Create(context.Background(), traveller, &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-01-01",
		EndDate:     strPtr("2025-01-03"),
		GuestsCount: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, got.Status)
	assert.Equal(t, 100.0, got.PricePerUnit)
	assert.Equal(t, 400.0, got.TotalPrice) // 2 nights x 2 guests x 100
	assert.Equal(t, "USD", got.Currency)
	assert.True(t, strings.HasPrefix(got.Reference, "TRV-"), "reference %q", got.Reference)
	assert.Len(t, bookings.byID, 1)
}

func TestBookingCreate_MinimumStayFloorsUnits(t *testing.T) {
	svc, _, _, business := newBookingFixture()
	business.MinBookingDays = 5

	got, err := svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-01-01",
		EndDate:     strPtr("2025-01-03"),
		GuestsCount: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.TotalPrice) // charged for 5 units, not 2
}

func TestBookingCreate_GatesClosed(t *testing.T) {
	svc, _, _, business := newBookingFixture()
	business.IsBookable = false

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-01-01",
		GuestsCount: 1,
	})

	require.ErrorIs(t, err, pricing.ErrServiceNotBookable)
}

func TestBookingCreate_CapacityExceeded(t *testing.T) {
	svc, _, _, business := newBookingFixture()
	capacity := 2
	business.MaxCapacity = &capacity

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-01-01",
		GuestsCount: 3,
	})

	require.ErrorIs(t, err, pricing.ErrCapacityExceeded)
}

func TestBookingCreate_EndBeforeStart(t *testing.T) {
	svc, _, _, business := newBookingFixture()

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-01-10",
		EndDate:     strPtr("2025-01-05"),
		GuestsCount: 1,
	})

	require.ErrorIs(t, err, pricing.ErrInvalidDateRange)
}

func TestBookingQuote_UnknownBusiness(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	_, err := svc.Quote(context.Background(), &request.QuoteRequest{
		BusinessID:  uuid.New().String(),
		StartDate:   "2025-01-01",
		GuestsCount: 1,
	})

	require.ErrorIs(t, err, ErrNotFound)
}

func TestBookingConfirm_OwnerOnly(t *testing.T) {
	svc, _, _, business := newBookingFixture()
	traveller := uuid.New()

	created, err := svc.Create(context.Background(), traveller, &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-01-01",
		GuestsCount: 1,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// the traveller cannot confirm their own request
	_, err = svc.Confirm(context.Background(), traveller, string(entity.RoleUser), id)
	require.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Confirm(context.Background(), business.OwnerID, string(entity.RoleBusiness), id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, got.Status)

	// confirming twice is not a valid transition
	_, err = svc.Confirm(context.Background(), business.OwnerID, string(entity.RoleBusiness), id)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBookingCancel_RequesterOrOwner(t *testing.T) {
	svc, _, _, business := newBookingFixture()
	traveller := uuid.New()

	created, err := svc.Create(context.Background(), traveller, &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-01-01",
		GuestsCount: 1,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// a stranger may not cancel
	_, err = svc.Cancel(context.Background(), uuid.New(), string(entity.RoleUser), id)
	require.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Cancel(context.Background(), traveller, string(entity.RoleUser), id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, got.Status)

	_, err = svc.Cancel(context.Background(), business.OwnerID, string(entity.RoleBusiness), id)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBookingCreate_SnapshotSurvivesRateCardEdit(t *testing.T) {
	svc, _, bookings, business := newBookingFixture()

	created, err := svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		BusinessID:  business.ID.String(),
		StartDate:   "2025-06-01",
		EndDate:     strPtr("2025-06-02"),
		GuestsCount: 1,
	})
	require.NoError(t, err)

	business.BasePrice = 999

	stored := bookings.byID[uuid.MustParse(created.ID)]
	assert.Equal(t, 100.0, stored.PricePerUnit)
	assert.Equal(t, 100.0, stored.TotalPrice)
}
