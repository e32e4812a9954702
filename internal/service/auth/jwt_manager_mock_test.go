package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateTokenFunc func(userID uuid.UUID) (string, error)
	ValidateTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		GenerateToken []struct {
			UserID uuid.UUID
		}
		ValidateToken []struct {
			Token string
		}
	}
	lockGenerateToken sync.RWMutex
	lockValidateToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateToken(userID uuid.UUID) (string, error) {
	if mock.GenerateTokenFunc == nil {
		panic("jwtManagerMock.GenerateTokenFunc: method is nil but jwtManager.GenerateToken was just called")
	}
	mock.lockGenerateToken.Lock()
	mock.calls.GenerateToken = append(mock.calls.GenerateToken, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockGenerateToken.Unlock()
	return mock.GenerateTokenFunc(userID)
}

func (mock *jwtManagerMock) GenerateTokenCalls() []struct{ UserID uuid.UUID } {
	mock.lockGenerateToken.RLock()
	calls := mock.calls.GenerateToken
	mock.lockGenerateToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateToken(token string) (uuid.UUID, error) {
	if mock.ValidateTokenFunc == nil {
		panic("jwtManagerMock.ValidateTokenFunc: method is nil but jwtManager.ValidateToken was just called")
	}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, struct{ Token string }{Token: token})
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateTokenCalls() []struct{ Token string } {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}
