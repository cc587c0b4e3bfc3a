package operator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type mockWriteOpener struct {
	mock.Mock
}

func (m *mockWriteOpener) Write(ctx context.Context) (*storage.Writer, error) {
	args := m.Called(ctx)
	w, _ := args.Get(0).(*storage.Writer)
	return w, args.Error(1)
}

type mockAction struct {
	mock.Mock
}

func (m *mockAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return m.Called(ctx, writer).Error(0)
}

func TestProcess_WriteOpenFailure(t *testing.T) {
	boom := errors.New("too many connections")
	opener := new(mockWriteOpener)
	opener.On("Write", mock.Anything).Return(nil, boom)
	action := new(mockAction)

	d := NewOperatorDelegator(opener, 2)
	d.Start()
	defer d.Stop()

	err := d.Process(context.Background(), action)

	assert.ErrorIs(t, err, boom)
	action.AssertNotCalled(t, "Perform", mock.Anything, mock.Anything)
	opener.AssertExpectations(t)
}

func TestProcess_CancelledContextSkipsWork(t *testing.T) {
	opener := new(mockWriteOpener)
	action := new(mockAction)

	d := NewOperatorDelegator(opener, 1)
	d.Start()
	defer d.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Process(ctx, action)

	assert.ErrorIs(t, err, context.Canceled)
	opener.AssertNotCalled(t, "Write", mock.Anything)
	action.AssertNotCalled(t, "Perform", mock.Anything, mock.Anything)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(new(mockWriteOpener), 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), new(mockAction))

	assert.ErrorIs(t, err, ErrStopped)
}

func TestNewOperatorDelegator_AtLeastOneWorker(t *testing.T) {
	d := NewOperatorDelegator(new(mockWriteOpener), 0)

	assert.Equal(t, 1, d.numWorkers)
}
