package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

var _ setRepo = &setRepoMock{}

type setRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.StudySet, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *setRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySet, error) {
	if mock.GetByIDFunc == nil {
		panic("setRepoMock.GetByIDFunc: method is nil but setRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *setRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ progressWriter = &progressWriterMock{}

type progressWriterMock struct {
	EnqueueFunc func(ctx context.Context, setID uuid.UUID, change domain.ProgressChange)

	calls struct {
		Enqueue []struct {
			Ctx    context.Context
			SetID  uuid.UUID
			Change domain.ProgressChange
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *progressWriterMock) Enqueue(ctx context.Context, setID uuid.UUID, change domain.ProgressChange) {
	callInfo := struct {
		Ctx    context.Context
		SetID  uuid.UUID
		Change domain.ProgressChange
	}{Ctx: ctx, SetID: setID, Change: change}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	if mock.EnqueueFunc != nil {
		mock.EnqueueFunc(ctx, setID, change)
	}
}

func (mock *progressWriterMock) EnqueueCalls() []struct {
	Ctx    context.Context
	SetID  uuid.UUID
	Change domain.ProgressChange
} {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
