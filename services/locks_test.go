package services

import (
	"sync"
	"testing"
	"time"
)

func TestEntityLocksMutualExclusion(t *testing.T) {
	locks := newEntityLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Acquire(guestKey(1), roomKey(2))
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestEntityLocksOppositeOrderDoesNotDeadlock(t *testing.T) {
	locks := newEntityLocks()

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				release := locks.Acquire(guestKey(1), roomKey(1))
				defer release()
			}()
			go func() {
				defer wg.Done()
				release := locks.Acquire(roomKey(1), guestKey(1))
				defer release()
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock: aquisições em ordens opostas não terminaram")
	}
}

func TestEntityLocksDuplicateKeys(t *testing.T) {
	locks := newEntityLocks()

	// Chaves repetidas não podem travar duas vezes o mesmo mutex
	release := locks.Acquire(roomKey(7), roomKey(7))
	release()

	release = locks.Acquire(roomKey(7))
	release()
}

func TestEntityLocksIndependentKeys(t *testing.T) {
	locks := newEntityLocks()

	releaseA := locks.Acquire(roomKey(1))
	defer releaseA()

	acquired := make(chan struct{})
	go func() {
		releaseB := locks.Acquire(roomKey(2))
		releaseB()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("lock de um quarto bloqueou outro quarto")
	}
}
