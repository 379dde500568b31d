package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bookstore/internal/lending"
	"bookstore/internal/worker"
	"bookstore/pkg/logger"
	mockstorage "bookstore/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64) *river.Job[lending.OverdueAuditArgs] {
	return &river.Job[lending.OverdueAuditArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   lending.OverdueAuditArgs{},
	}
}

func TestOverdueAuditWorker_Work_CountsAgainstCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	latePeriod := 7 * 24 * time.Hour

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().CountOverdueLoans(gomock.Any(), now.Add(-latePeriod)).Return(int64(3), nil)

	w := worker.NewOverdueAuditWorker(st, lending.Options{
		LatePeriod: latePeriod,
		Clock:      func() time.Time { return now },
	})

	require.NoError(t, w.Work(context.Background(), makeJob(1)))
}

func TestOverdueAuditWorker_Work_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().CountOverdueLoans(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

	w := worker.NewOverdueAuditWorker(st, lending.Options{LatePeriod: time.Hour})

	require.Error(t, w.Work(context.Background(), makeJob(2)))
}
