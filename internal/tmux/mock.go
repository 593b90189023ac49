package tmux

import "github.com/stretchr/testify/mock"

// MockClient is a testify mock of Client.
//
//	client := new(MockClient)
//	client.On("SetOption", "@shizuku", mock.Anything).Return(nil)
type MockClient struct {
	mock.Mock
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) SetOption(name, value string) error {
	return m.Called(name, value).Error(0)
}

func (m *MockClient) UnsetOption(name string) error {
	return m.Called(name).Error(0)
}

func (m *MockClient) Refresh() error {
	return m.Called().Error(0)
}
