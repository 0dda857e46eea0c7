package processor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/models"
	repomocks "github.com/nickdelicto/ai-resume-builder-sub008/common/repository/mocks"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/processing/internal/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/processing/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func rawPosting(t *testing.T, description string) []byte {
	t.Helper()
	data, err := json.Marshal(events.RawJobPosting{
		ID:           "9001",
		EmployerSlug: "mercy-health",
		EmployerName: "Mercy Health",
		Title:        "Registered Nurse - ICU",
		Description:  description,
		State:        "OH",
		City:         "Toledo",
	})
	require.NoError(t, err)
	return data
}

func TestJobProcessor_ProcessJobPosting(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *repomocks.MockJobRepository
		raw      func(t *testing.T) []byte
		wantErr  errors.ErrorType
		wantType string
	}{
		{
			name: "stores posting with salary",
			mock: func(ctrl *gomock.Controller) *repomocks.MockJobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p *models.JobPosting) error {
						require.NotNil(t, p.SalaryType)
						assert.Equal(t, "hourly", *p.SalaryType)
						assert.Equal(t, 72800.0, *p.SalaryMinAnnual)
						_, ok := ctx.Deadline()
						assert.True(t, ok)
						return nil
					})
				return repo
			},
			raw: func(t *testing.T) []byte {
				return rawPosting(t, "**Pay:** $35 - $42/hour")
			},
			wantType: "hourly",
		},
		{
			name: "stores posting without salary",
			mock: func(ctrl *gomock.Controller) *repomocks.MockJobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.JobPosting) error {
						assert.Nil(t, p.SalaryType)
						assert.Nil(t, p.SalaryMin)
						return nil
					})
				return repo
			},
			raw: func(t *testing.T) []byte {
				return rawPosting(t, "Competitive pay.")
			},
		},
		{
			name: "invalid payload is not stored",
			mock: func(ctrl *gomock.Controller) *repomocks.MockJobRepository {
				return repomocks.NewMockJobRepository(ctrl)
			},
			raw: func(t *testing.T) []byte {
				return []byte("not json")
			},
			wantErr: errors.ErrTypeInvalidInput,
		},
		{
			name: "storage failure",
			mock: func(ctrl *gomock.Controller) *repomocks.MockJobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return(errors.Storage("insert job posting", context.DeadlineExceeded))
				return repo
			},
			raw: func(t *testing.T) []byte {
				return rawPosting(t, "Pay: $40/hour")
			},
			wantErr: errors.ErrTypeStorage,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := &config.Config{ProcessingTimeout: 5 * time.Second}
			p := NewJobProcessor(zap.NewNop(), tc.mock(ctrl), parser.NewParser(salary.NewExtractor()), cfg)

			posting, err := p.ProcessJobPosting(context.Background(), tc.raw(t))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, errors.TypeOf(err))
				assert.Nil(t, posting)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, posting)
			if tc.wantType == "" {
				assert.False(t, posting.HasSalaryType())
				return
			}
			assert.Equal(t, tc.wantType, *posting.SalaryType)
		})
	}
}
