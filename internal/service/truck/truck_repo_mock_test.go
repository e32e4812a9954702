package truck

import (
	"context"
	"sync"

	"github.com/streetbite/foodtruck-backend/internal/domain"
)

var _ truckRepo = &truckRepoMock{}

type truckRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Truck, error)
	ListAllFunc            func(ctx context.Context) ([]domain.Truck, error)
	FindByNameFunc         func(ctx context.Context, needle string) ([]domain.Truck, error)
	FindByItemsFunc        func(ctx context.Context, needle string) ([]domain.Truck, error)
	SearchWithinRadiusFunc func(ctx context.Context, lat, lon, radiusMeters float64, name, items *string) ([]domain.Truck, error)
	CreateFunc             func(ctx context.Context, t *domain.Truck) (*domain.Truck, error)
	CreateWithIDFunc       func(ctx context.Context, t *domain.Truck) (*domain.Truck, error)
	UpdateFunc             func(ctx context.Context, t *domain.Truck) (*domain.Truck, error)
	DeleteFunc             func(ctx context.Context, id int64) (bool, error)
	StatsFunc              func(ctx context.Context) (*domain.CollectionStats, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
		ListAll     []struct{}
		FindByName  []struct{ Needle string }
		FindByItems []struct{ Needle string }
		SearchWithinRadius []struct {
			Lat          float64
			Lon          float64
			RadiusMeters float64
			Name         *string
			Items        *string
		}
		Create       []struct{ Truck *domain.Truck }
		CreateWithID []struct{ Truck *domain.Truck }
		Update       []struct{ Truck *domain.Truck }
		Delete       []struct{ ID int64 }
		Stats        []struct{}
	}
	lockGetByID            sync.RWMutex
	lockListAll            sync.RWMutex
	lockFindByName         sync.RWMutex
	lockFindByItems        sync.RWMutex
	lockSearchWithinRadius sync.RWMutex
	lockCreate             sync.RWMutex
	lockCreateWithID       sync.RWMutex
	lockUpdate             sync.RWMutex
	lockDelete             sync.RWMutex
	lockStats              sync.RWMutex
}

func (mock *truckRepoMock) GetByID(ctx context.Context, id int64) (*domain.Truck, error) {
	if mock.GetByIDFunc == nil {
		panic("truckRepoMock.GetByIDFunc: method is nil but truckRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *truckRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *truckRepoMock) ListAll(ctx context.Context) ([]domain.Truck, error) {
	if mock.ListAllFunc == nil {
		panic("truckRepoMock.ListAllFunc: method is nil but truckRepo.ListAll was just called")
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *truckRepoMock) ListAllCalls() []struct{} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *truckRepoMock) FindByName(ctx context.Context, needle string) ([]domain.Truck, error) {
	if mock.FindByNameFunc == nil {
		panic("truckRepoMock.FindByNameFunc: method is nil but truckRepo.FindByName was just called")
	}
	mock.lockFindByName.Lock()
	mock.calls.FindByName = append(mock.calls.FindByName, struct{ Needle string }{Needle: needle})
	mock.lockFindByName.Unlock()
	return mock.FindByNameFunc(ctx, needle)
}

func (mock *truckRepoMock) FindByNameCalls() []struct{ Needle string } {
	mock.lockFindByName.RLock()
	calls := mock.calls.FindByName
	mock.lockFindByName.RUnlock()
	return calls
}

func (mock *truckRepoMock) FindByItems(ctx context.Context, needle string) ([]domain.Truck, error) {
	if mock.FindByItemsFunc == nil {
		panic("truckRepoMock.FindByItemsFunc: method is nil but truckRepo.FindByItems was just called")
	}
	mock.lockFindByItems.Lock()
	mock.calls.FindByItems = append(mock.calls.FindByItems, struct{ Needle string }{Needle: needle})
	mock.lockFindByItems.Unlock()
	return mock.FindByItemsFunc(ctx, needle)
}

func (mock *truckRepoMock) FindByItemsCalls() []struct{ Needle string } {
	mock.lockFindByItems.RLock()
	calls := mock.calls.FindByItems
	mock.lockFindByItems.RUnlock()
	return calls
}

func (mock *truckRepoMock) SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64, name, items *string) ([]domain.Truck, error) {
	if mock.SearchWithinRadiusFunc == nil {
		panic("truckRepoMock.SearchWithinRadiusFunc: method is nil but truckRepo.SearchWithinRadius was just called")
	}
	callInfo := struct {
		Lat          float64
		Lon          float64
		RadiusMeters float64
		Name         *string
		Items        *string
	}{Lat: lat, Lon: lon, RadiusMeters: radiusMeters, Name: name, Items: items}
	mock.lockSearchWithinRadius.Lock()
	mock.calls.SearchWithinRadius = append(mock.calls.SearchWithinRadius, callInfo)
	mock.lockSearchWithinRadius.Unlock()
	return mock.SearchWithinRadiusFunc(ctx, lat, lon, radiusMeters, name, items)
}

func (mock *truckRepoMock) SearchWithinRadiusCalls() []struct {
	Lat          float64
	Lon          float64
	RadiusMeters float64
	Name         *string
	Items        *string
} {
	mock.lockSearchWithinRadius.RLock()
	calls := mock.calls.SearchWithinRadius
	mock.lockSearchWithinRadius.RUnlock()
	return calls
}

func (mock *truckRepoMock) Create(ctx context.Context, t *domain.Truck) (*domain.Truck, error) {
	if mock.CreateFunc == nil {
		panic("truckRepoMock.CreateFunc: method is nil but truckRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Truck *domain.Truck }{Truck: t})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *truckRepoMock) CreateCalls() []struct{ Truck *domain.Truck } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *truckRepoMock) CreateWithID(ctx context.Context, t *domain.Truck) (*domain.Truck, error) {
	if mock.CreateWithIDFunc == nil {
		panic("truckRepoMock.CreateWithIDFunc: method is nil but truckRepo.CreateWithID was just called")
	}
	mock.lockCreateWithID.Lock()
	mock.calls.CreateWithID = append(mock.calls.CreateWithID, struct{ Truck *domain.Truck }{Truck: t})
	mock.lockCreateWithID.Unlock()
	return mock.CreateWithIDFunc(ctx, t)
}

func (mock *truckRepoMock) CreateWithIDCalls() []struct{ Truck *domain.Truck } {
	mock.lockCreateWithID.RLock()
	calls := mock.calls.CreateWithID
	mock.lockCreateWithID.RUnlock()
	return calls
}

func (mock *truckRepoMock) Update(ctx context.Context, t *domain.Truck) (*domain.Truck, error) {
	if mock.UpdateFunc == nil {
		panic("truckRepoMock.UpdateFunc: method is nil but truckRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Truck *domain.Truck }{Truck: t})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *truckRepoMock) UpdateCalls() []struct{ Truck *domain.Truck } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *truckRepoMock) Delete(ctx context.Context, id int64) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("truckRepoMock.DeleteFunc: method is nil but truckRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID int64 }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *truckRepoMock) DeleteCalls() []struct{ ID int64 } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *truckRepoMock) Stats(ctx context.Context) (*domain.CollectionStats, error) {
	if mock.StatsFunc == nil {
		panic("truckRepoMock.StatsFunc: method is nil but truckRepo.Stats was just called")
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, struct{}{})
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *truckRepoMock) StatsCalls() []struct{} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
