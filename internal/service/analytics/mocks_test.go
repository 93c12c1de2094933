package analytics

import (
	"context"
	"sync"

	"github.com/one393143/quizlet/internal/domain"
)

var _ setLister = &setListerMock{}

type setListerMock struct {
	ListFunc func(ctx context.Context) ([]domain.StudySet, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *setListerMock) List(ctx context.Context) ([]domain.StudySet, error) {
	if mock.ListFunc == nil {
		panic("setListerMock.ListFunc: method is nil but setLister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *setListerMock) ListCalls() []struct {
		Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
