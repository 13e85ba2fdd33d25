package main

import (
	"container/list"
	"time"

	"github.com/Workiva/go-datastructures/queue"
	"github.com/pkg/errors"

	"github.com/harmony-one/linkedqueue/chain"
	linkedqueue "github.com/harmony-one/linkedqueue/queue"
)

// scenarioFunc runs one round over n elements and returns the measured time.
type scenarioFunc func(n int) (time.Duration, error)

const (
	scenarioInsert      = "insert"
	scenarioAppend      = "append"
	scenarioRemoveFirst = "removefirst"
	scenarioEnqueue     = "enqueue"
	scenarioDequeue     = "dequeue"
	scenarioTeardown    = "teardown"
	scenarioCOWCopy     = "cowcopy"
	scenarioStdList     = "stdlist"
	scenarioWorkiva     = "workiva"
)

var scenarioNames = []string{
	scenarioInsert,
	scenarioAppend,
	scenarioRemoveFirst,
	scenarioEnqueue,
	scenarioDequeue,
	scenarioTeardown,
	scenarioCOWCopy,
	scenarioStdList,
	scenarioWorkiva,
}

var scenarios = map[string]scenarioFunc{
	scenarioInsert:      runInsert,
	scenarioAppend:      runAppend,
	scenarioRemoveFirst: runRemoveFirst,
	scenarioEnqueue:     runEnqueue,
	scenarioDequeue:     runDequeue,
	scenarioTeardown:    runTeardown,
	scenarioCOWCopy:     runCOWCopy,
	scenarioStdList:     runStdList,
	scenarioWorkiva:     runWorkiva,
}

var errUnexpectedLength = errors.New("unexpected length")

func checkLen(got, exp int) error {
	if got != exp {
		return errors.Wrapf(errUnexpectedLength, "got %d, expect %d", got, exp)
	}
	return nil
}

func buildChain(n int) *chain.Chain[int] {
	c := &chain.Chain[int]{}
	for k := 0; k < n; k++ {
		c.Append(k)
	}
	return c
}

func runInsert(n int) (time.Duration, error) {
	c := &chain.Chain[int]{}
	start := time.Now()
	for k := 0; k < n; k++ {
		c.Insert(k)
	}
	elapsed := time.Since(start)
	defer c.Release()

	return elapsed, checkLen(c.Len(), n)
}

func runAppend(n int) (time.Duration, error) {
	c := &chain.Chain[int]{}
	start := time.Now()
	for k := 0; k < n; k++ {
		c.Append(k)
	}
	elapsed := time.Since(start)
	defer c.Release()

	return elapsed, checkLen(c.Len(), n)
}

func runRemoveFirst(n int) (time.Duration, error) {
	c := buildChain(n)
	start := time.Now()
	for k := 0; k < n; k++ {
		v, ok := c.RemoveFirst()
		if !ok || v != k {
			return 0, errors.Errorf("removed %d (%v) at offset %d", v, ok, k)
		}
	}
	return time.Since(start), checkLen(c.Len(), 0)
}

func runEnqueue(n int) (time.Duration, error) {
	q := &linkedqueue.Queue[int]{}
	start := time.Now()
	for k := 0; k < n; k++ {
		q.Enqueue(k)
	}
	elapsed := time.Since(start)
	defer q.Release()

	return elapsed, checkLen(q.Len(), n)
}

func runDequeue(n int) (time.Duration, error) {
	q := &linkedqueue.Queue[int]{}
	for k := 0; k < n; k++ {
		q.Enqueue(k)
	}

	expected := 0
	var outOfOrder error
	start := time.Now()
	handled := q.Drain(linkedqueue.HandlerFunc[int](func(item int) {
		if item != expected && outOfOrder == nil {
			outOfOrder = errors.Errorf("dequeued %d, expect %d", item, expected)
		}
		expected++
	}))
	elapsed := time.Since(start)

	if outOfOrder != nil {
		return 0, outOfOrder
	}
	return elapsed, checkLen(handled, n)
}

func runTeardown(n int) (time.Duration, error) {
	c := buildChain(n)
	start := time.Now()
	c.Release()
	return time.Since(start), checkLen(c.Len(), 0)
}

// runCOWCopy measures the first write to a clone, which copies the whole
// storage, and checks that the original is left untouched.
func runCOWCopy(n int) (time.Duration, error) {
	original := buildChain(n)
	defer original.Release()
	clone := original.Clone()
	defer clone.Release()

	start := time.Now()
	clone.Append(n)
	elapsed := time.Since(start)

	if err := checkLen(original.Len(), n); err != nil {
		return 0, errors.Wrap(err, "original changed")
	}
	if err := checkLen(clone.Len(), n+1); err != nil {
		return 0, errors.Wrap(err, "clone")
	}
	if last, _ := original.Last(); last != n-1 {
		return 0, errors.Errorf("original last element changed to %d", last)
	}
	return elapsed, nil
}

func runStdList(n int) (time.Duration, error) {
	l := list.New()
	start := time.Now()
	for k := 0; k < n; k++ {
		l.PushBack(k)
	}
	for l.Len() > 0 {
		l.Remove(l.Front())
	}
	return time.Since(start), nil
}

func runWorkiva(n int) (time.Duration, error) {
	q := queue.New(int64(n))
	defer q.Dispose()

	start := time.Now()
	for k := 0; k < n; k++ {
		if err := q.Put(k); err != nil {
			return 0, err
		}
	}
	for k := 0; k < n; k++ {
		items, err := q.Get(1)
		if err != nil {
			return 0, err
		}
		if items[0].(int) != k {
			return 0, errors.Errorf("dequeued %v, expect %d", items[0], k)
		}
	}
	return time.Since(start), nil
}
