package utils

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunInPool(t *testing.T) {
	queue := make(chan int, 20)
	for i := 0; i < 20; i++ {
		queue <- i
	}
	close(queue)

	completed := make(chan CompletedTask[int], 20)
	RunInPool(context.Background(), func(x int) (int, error) {
		if x%5 == 0 {
			return 0, fmt.Errorf("task %d failed", x)
		}
		return x * 2, nil
	}, queue, completed, 4)

	var results []int
	failures := 0
	for task := range completed {
		if task.Error != nil {
			failures++
			continue
		}
		results = append(results, task.Result)
	}

	assert.Equal(t, 4, failures)
	assert.Len(t, results, 16)
	sort.Ints(results)
	assert.Equal(t, 2, results[0])
	assert.Equal(t, 38, results[len(results)-1])
}

func TestRunInPoolEmptyQueue(t *testing.T) {
	queue := make(chan string)
	close(queue)

	completed := make(chan CompletedTask[string], 1)
	RunInPool(context.Background(), func(s string) (string, error) {
		return s, errors.New("unreachable")
	}, queue, completed, 4)

	_, ok := <-completed
	assert.False(t, ok)
}
