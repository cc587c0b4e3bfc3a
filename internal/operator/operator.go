package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// writeOpener begins a database transaction for one action.
type writeOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage writeOpener
	queue   chan ActionItem
}

func NewOperator(s writeOpener, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// The caller stopped waiting, nothing should be written on its behalf.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rbErr := writer.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Warn("Operator.processItem.rollback")
		}
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
