package conc

import (
	"runtime"
	"sync/atomic"
)

// Item 72: don't depend on the goroutine scheduler.
//
// Programs that need runtime.Gosched() to make progress are betting on
// scheduler behavior that no release guarantees. Express handoffs with
// channels; the scheduler then owes you nothing.

// goschedHandoff passes n tokens between two spinning goroutines, yielding
// manually - DON'T DO THIS. It completes, but only because current
// schedulers happen to cooperate, and it burns two cores doing it.
func goschedHandoff(n int) int {
	var turn atomic.Int32
	var passes atomic.Int32
	done := make(chan struct{}, 2)

	player := func(id int32) {
		for passes.Load() < int32(n) {
			if turn.Load() != id {
				runtime.Gosched()
				continue
			}
			passes.Add(1)
			turn.Store(1 - id)
		}
		done <- struct{}{}
	}
	go player(0)
	go player(1)
	<-done
	<-done
	return int(passes.Load())
}

// ChannelHandoff passes n tokens through an unbuffered channel; every
// handoff is a real synchronization point and the goroutines park while
// waiting.
func ChannelHandoff(n int) int {
	ball := make(chan int)
	out := make(chan int)

	go func() {
		for v := range ball {
			out <- v + 1
		}
	}()

	passes := 0
	for passes < n {
		ball <- passes
		passes = <-out
	}
	close(ball)
	return passes
}
