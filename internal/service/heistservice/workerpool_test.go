package heistservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsTasks(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	done := make(chan struct{})
	err := wp.AddTask(context.Background(), func() error {
		close(done)
		return nil
	})
	assert.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

func TestWorkerPoolCloseStopsIntake(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()
	wp.Close()

	err := wp.AddTask(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, errPoolClosed)
}
