package middleware

import (
	"sync"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	ExtractRoleFunc     func(token string) (string, error)
	ExtractUsernameFunc func(token string) (string, error)

	calls struct {
		ExtractRole []struct {
			Token string
		}
		ExtractUsername []struct {
			Token string
		}
	}
	lockExtractRole     sync.RWMutex
	lockExtractUsername sync.RWMutex
}

func (mock *tokenVerifierMock) ExtractRole(token string) (string, error) {
	if mock.ExtractRoleFunc == nil {
		panic("tokenVerifierMock.ExtractRoleFunc: method is nil but tokenVerifier.ExtractRole was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockExtractRole.Lock()
	mock.calls.ExtractRole = append(mock.calls.ExtractRole, callInfo)
	mock.lockExtractRole.Unlock()
	return mock.ExtractRoleFunc(token)
}

func (mock *tokenVerifierMock) ExtractRoleCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockExtractRole.RLock()
	calls = mock.calls.ExtractRole
	mock.lockExtractRole.RUnlock()
	return calls
}

func (mock *tokenVerifierMock) ExtractUsername(token string) (string, error) {
	if mock.ExtractUsernameFunc == nil {
		panic("tokenVerifierMock.ExtractUsernameFunc: method is nil but tokenVerifier.ExtractUsername was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockExtractUsername.Lock()
	mock.calls.ExtractUsername = append(mock.calls.ExtractUsername, callInfo)
	mock.lockExtractUsername.Unlock()
	return mock.ExtractUsernameFunc(token)
}

func (mock *tokenVerifierMock) ExtractUsernameCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockExtractUsername.RLock()
	calls = mock.calls.ExtractUsername
	mock.lockExtractUsername.RUnlock()
	return calls
}
