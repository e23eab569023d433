// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/williamokano/video_uploader/pkg/storage"
)

// MockBackend is a mock implementation of the storage.Backend interface
type MockBackend struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (m *MockBackend) Name() string {
	ret := m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Type provides a mock function with given fields:
func (m *MockBackend) Type() string {
	ret := m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Upload provides a mock function with given fields: ctx, key, body, opts
func (m *MockBackend) Upload(ctx context.Context, key string, body io.Reader, opts storage.UploadOptions) (*storage.UploadInfo, error) {
	ret := m.Called(ctx, key, body, opts)

	var r0 *storage.UploadInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, storage.UploadOptions) (*storage.UploadInfo, error)); ok {
		return rf(ctx, key, body, opts)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*storage.UploadInfo)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, io.Reader, storage.UploadOptions) error); ok {
		r1 = rf(ctx, key, body, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Stat provides a mock function with given fields: ctx, key
func (m *MockBackend) Stat(ctx context.Context, key string) (*storage.FileInfo, error) {
	ret := m.Called(ctx, key)

	var r0 *storage.FileInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*storage.FileInfo, error)); ok {
		return rf(ctx, key)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*storage.FileInfo)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// Exists provides a mock function with given fields: ctx, key
func (m *MockBackend) Exists(ctx context.Context, key string) (bool, error) {
	ret := m.Called(ctx, key)

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, key)
	}
	r0 = ret.Get(0).(bool)
	r1 = ret.Error(1)

	return r0, r1
}

// Close provides a mock function with given fields:
func (m *MockBackend) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockBackend creates a new instance of MockBackend
func NewMockBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBackend {
	mock_1 := &MockBackend{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}
