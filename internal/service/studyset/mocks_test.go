package studyset

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

var _ setRepo = &setRepoMock{}

type setRepoMock struct {
	ListFunc          func(ctx context.Context) ([]domain.StudySet, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.StudySet, error)
	CreateFunc        func(ctx context.Context, set *domain.StudySet) (*domain.StudySet, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, title string, description string, cards []domain.Card) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Set *domain.StudySet
		}
		UpdateContent []struct {
			Ctx         context.Context
			ID          uuid.UUID
			Title       string
			Description string
			Cards       []domain.Card
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList          sync.RWMutex
	lockGetByID       sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdateContent sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *setRepoMock) List(ctx context.Context) ([]domain.StudySet, error) {
	if mock.ListFunc == nil {
		panic("setRepoMock.ListFunc: method is nil but setRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *setRepoMock) ListCalls() []struct {
		Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
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

func (mock *setRepoMock) Create(ctx context.Context, set *domain.StudySet) (*domain.StudySet, error) {
	if mock.CreateFunc == nil {
		panic("setRepoMock.CreateFunc: method is nil but setRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Set *domain.StudySet
	}{Ctx: ctx, Set: set}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, set)
}

func (mock *setRepoMock) CreateCalls() []struct {
		Ctx context.Context
		Set *domain.StudySet
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *setRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, title string, description string, cards []domain.Card) error {
	if mock.UpdateContentFunc == nil {
		panic("setRepoMock.UpdateContentFunc: method is nil but setRepo.UpdateContent was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		Title       string
		Description string
		Cards       []domain.Card
	}{Ctx: ctx, ID: id, Title: title, Description: description, Cards: cards}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, id, title, description, cards)
}

func (mock *setRepoMock) UpdateContentCalls() []struct {
		Ctx         context.Context
		ID          uuid.UUID
		Title       string
		Description string
		Cards       []domain.Card
} {
	mock.lockUpdateContent.RLock()
	calls := mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}

func (mock *setRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("setRepoMock.DeleteFunc: method is nil but setRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *setRepoMock) DeleteCalls() []struct {
		Ctx context.Context
		ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
