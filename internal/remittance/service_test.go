package remittance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/remesahq/remesa/internal/apperror"
	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/remittance"
)

func ptr[T any](v T) *T { return &v }

func validCreateParams() remittance.CreateParams {
	return remittance.CreateParams{
		SenderName:    "Carlos García",
		RecipientName: "María García López",
		CorridorID:    1,
		Amount:        decimal.RequireFromString("500.00"),
		Currency:      remittance.CurrencyUSD,
		ExchangeRate:  decimal.RequireFromString("17.45"),
		PaymentMethod: remittance.PaymentBankTransfer,
	}
}

func snapshot() []*remittance.Remittance {
	usMX := &corridor.Corridor{ID: 1, Code: "US-MX", OriginCountry: "Estados Unidos", DestinationCountry: "México", IsActive: true}
	esEC := &corridor.Corridor{ID: 4, Code: "ES-EC", OriginCountry: "España", DestinationCountry: "Ecuador", IsActive: true}

	mk := func(id int, created time.Time, amount string, status remittance.Status, c *corridor.Corridor) *remittance.Remittance {
		return &remittance.Remittance{
			ID:            id,
			ReferenceCode: remittance.ReferenceCode(id, created),
			SenderName:    "Sender Name",
			RecipientName: "Recipient Name",
			CorridorID:    c.ID,
			Corridor:      c,
			Amount:        decimal.RequireFromString(amount),
			Currency:      remittance.CurrencyUSD,
			Status:        status,
			CreatedAt:     created,
		}
	}

	return []*remittance.Remittance{
		mk(1, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), "500.00", remittance.StatusCompleted, usMX),
		mk(2, time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC), "1200.00", remittance.StatusCompleted, usMX),
		mk(3, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), "300.00", remittance.StatusPending, esEC),
	}
}

func TestService_Create(t *testing.T) {
	type args struct {
		params remittance.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *remittance.MockRepository)
		wantErr   bool
		wantKind  error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: validCreateParams()},
			setupMock: func(m *remittance.MockRepository) {
				m.EXPECT().
					CreateRemittance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params remittance.CreateParams) (*remittance.Remittance, error) {
						now := time.Now()
						return &remittance.Remittance{
							ID:            9,
							ReferenceCode: remittance.ReferenceCode(9, now),
							SenderName:    params.SenderName,
							RecipientName: params.RecipientName,
							CorridorID:    params.CorridorID,
							Amount:        params.Amount,
							Fee:           decimal.RequireFromString("17.50"),
							Status:        remittance.StatusPending,
							CreatedAt:     now,
						}, nil
					})
			},
		},
		{
			name: "SenderNameTooShort",
			args: args{params: func() remittance.CreateParams {
				p := validCreateParams()
				p.SenderName = "X"
				return p
			}()},
			wantErr:  true,
			wantKind: apperror.ErrValidation,
		},
		{
			name: "AmountAboveMaximum",
			args: args{params: func() remittance.CreateParams {
				p := validCreateParams()
				p.Amount = decimal.RequireFromString("10000.01")
				return p
			}()},
			wantErr:  true,
			wantKind: apperror.ErrValidation,
		},
		{
			name: "UnknownCurrency",
			args: args{params: func() remittance.CreateParams {
				p := validCreateParams()
				p.Currency = "MXN"
				return p
			}()},
			wantErr:  true,
			wantKind: apperror.ErrValidation,
		},
		{
			name: "InactiveCorridor",
			args: args{params: validCreateParams()},
			setupMock: func(m *remittance.MockRepository) {
				m.EXPECT().
					CreateRemittance(gomock.Any(), gomock.Any()).
					Return(nil, apperror.Validationf("corridor 'Reino Unido a India' is not active"))
			},
			wantErr:  true,
			wantKind: apperror.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := remittance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := remittance.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				if tt.wantKind != nil {
					assert.True(t, errors.Is(err, tt.wantKind))
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, remittance.StatusPending, got.Status)
			assert.NotEmpty(t, got.ReferenceCode)
		})
	}
}

func TestService_List(t *testing.T) {
	type args struct {
		opts remittance.ListOptions
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *remittance.MockRepository)
		wantIDs   []int
		wantPages int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "DefaultSortIsNewestFirst",
			args: args{opts: remittance.ListOptions{Page: 1, PerPage: 10}},
			setupMock: func(m *remittance.MockRepository) {
				m.EXPECT().ListRemittances(gomock.Any()).Return(snapshot(), nil)
			},
			wantIDs:   []int{3, 2, 1},
			wantPages: 1,
		},
		{
			name: "SinglePerPageWalksAllPages",
			args: args{opts: remittance.ListOptions{Page: 1, PerPage: 1, SortBy: remittance.SortByCreatedAt, Order: remittance.OrderAsc}},
			setupMock: func(m *remittance.MockRepository) {
				m.EXPECT().ListRemittances(gomock.Any()).Return(snapshot(), nil)
			},
			wantIDs:   []int{1},
			wantPages: 3,
		},
		{
			name: "FilterByStatus",
			args: args{opts: remittance.ListOptions{
				Filter:  remittance.ListFilter{Status: ptr(remittance.StatusCompleted)},
				Page:    1,
				PerPage: 10,
			}},
			setupMock: func(m *remittance.MockRepository) {
				m.EXPECT().ListRemittances(gomock.Any()).Return(snapshot(), nil)
			},
			wantIDs:   []int{2, 1},
			wantPages: 1,
		},
		{
			name: "SearchTooShort",
			args: args{opts: remittance.ListOptions{
				Filter:  remittance.ListFilter{Search: ptr("x")},
				Page:    1,
				PerPage: 10,
			}},
			wantErr: true,
		},
		{
			name:    "UnknownSortField",
			args:    args{opts: remittance.ListOptions{SortBy: "recipient_name", Page: 1, PerPage: 10}},
			wantErr: true,
		},
		{
			name:    "PerPageOutOfRange",
			args:    args{opts: remittance.ListOptions{Page: 1, PerPage: 51}},
			wantErr: true,
		},
		{
			name:    "PageBelowOne",
			args:    args{opts: remittance.ListOptions{Page: 0, PerPage: 10}},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{opts: remittance.ListOptions{Page: 1, PerPage: 10}},
			setupMock: func(m *remittance.MockRepository) {
				m.EXPECT().ListRemittances(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := remittance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := remittance.NewService(repo)
			got, err := svc.List(context.Background(), tt.args.opts)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			gotIDs := make([]int, len(got.Items))
			for i, r := range got.Items {
				gotIDs[i] = r.ID
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
			assert.Equal(t, tt.wantPages, got.Pages)
		})
	}
}

func TestService_List_PaginationMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)
	repo.EXPECT().ListRemittances(gomock.Any()).Return(snapshot(), nil)

	svc := remittance.NewService(repo)
	got, err := svc.List(context.Background(), remittance.ListOptions{Page: 1, PerPage: 1})

	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 3, got.Pages)
	assert.True(t, got.HasNext)
	assert.False(t, got.HasPrev)
}

func TestService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)
	repo.EXPECT().ListRemittances(gomock.Any()).Return(snapshot(), nil)

	svc := remittance.NewService(repo)

	// Corridor fallback match, results in creation order.
	got, err := svc.Search(context.Background(), "estados", 1, 10)
	require.NoError(t, err)

	gotIDs := make([]int, len(got.Items))
	for i, r := range got.Items {
		gotIDs[i] = r.ID
	}

	assert.Equal(t, []int{1, 2}, gotIDs)
}

func TestService_Search_QueryTooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)

	svc := remittance.NewService(repo)
	_, err := svc.Search(context.Background(), "é", 1, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestService_ListByCorridor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)
	repo.EXPECT().ListRemittances(gomock.Any()).Return(snapshot(), nil)

	svc := remittance.NewService(repo)
	got, err := svc.ListByCorridor(context.Background(), 1, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)

	// Creation order, not the listing's default sort.
	assert.Equal(t, 1, got.Items[0].ID)
	assert.Equal(t, 2, got.Items[1].ID)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)

	svc := remittance.NewService(repo)

	bad := validCreateParams()
	bad.Amount = decimal.RequireFromString("-5")

	_, err := svc.CreateBatch(context.Background(), []remittance.CreateParams{validCreateParams(), bad})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Contains(t, err.Error(), "row 2")
}

func TestService_CreateBatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := []remittance.CreateParams{validCreateParams(), validCreateParams()}

	repo := remittance.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateRemittances(gomock.Any(), params).
		Return([]*remittance.Remittance{{ID: 9}, {ID: 10}}, nil)

	svc := remittance.NewService(repo)
	got, err := svc.CreateBatch(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 9, got[0].ID)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateRemittance(gomock.Any(), 1, gomock.Any()).
		Return(nil, apperror.Conflictf("cannot transition remittance from 'completed' to 'pending'"))

	svc := remittance.NewService(repo)
	_, err := svc.Update(context.Background(), 1, remittance.UpdateParams{Status: ptr(remittance.StatusPending)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestService_Update_RejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)

	svc := remittance.NewService(repo)
	_, err := svc.Update(context.Background(), 1, remittance.UpdateParams{Status: ptr(remittance.Status("archived"))})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteRemittance(gomock.Any(), 2).
		Return(apperror.Conflictf("only pending or cancelled remittances can be deleted, current status is 'completed'"))

	svc := remittance.NewService(repo)
	err := svc.Delete(context.Background(), 2)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := remittance.NewMockRepository(ctrl)
	repo.EXPECT().
		Stats(gomock.Any()).
		Return(&remittance.Stats{Summary: remittance.Summary{TotalRemittances: 8}}, nil)

	svc := remittance.NewService(repo)
	got, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8, got.Summary.TotalRemittances)
}
