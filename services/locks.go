package services

import (
	"fmt"
	"sort"
	"sync"
)

func guestKey(id uint) string {
	return fmt.Sprintf("guest:%d", id)
}

func roomKey(id uint) string {
	return fmt.Sprintf("room:%d", id)
}

// entityLocks serializa as operações do coordenador por quarto e por
// hóspede, cobrindo a janela entre a varredura de unicidade e o commit.
type entityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEntityLocks() *entityLocks {
	return &entityLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *entityLocks) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

// Acquire trava as chaves em ordem lexicográfica, descartando repetidas,
// para que duas operações nunca se esperem em ordens opostas. Retorna a
// função que libera tudo na ordem inversa.
func (l *entityLocks) Acquire(keys ...string) func() {
	sort.Strings(keys)
	acquired := make([]*sync.Mutex, 0, len(keys))
	var last string
	for i, key := range keys {
		if i > 0 && key == last {
			continue
		}
		last = key
		m := l.get(key)
		m.Lock()
		acquired = append(acquired, m)
	}
	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}
