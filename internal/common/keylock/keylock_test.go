package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type LockerTestSuite struct {
	suite.Suite
	locker *Locker
}

func (s *LockerTestSuite) SetupTest() {
	s.locker = New()
}

func TestLockerTestSuite(t *testing.T) {
	suite.Run(t, new(LockerTestSuite))
}

func (s *LockerTestSuite) TestSerializesSameKey() {
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.locker.Lock("subjects:alice")
			defer unlock()

			// read-modify-write with a yield in the middle
			current := counter
			time.Sleep(time.Microsecond)
			counter = current + 1
		}()
	}
	wg.Wait()

	s.Equal(50, counter)
	s.Equal(0, s.locker.Len())
}

func (s *LockerTestSuite) TestDifferentKeysDoNotBlock() {
	unlockA := s.locker.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := s.locker.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("lock on a different key should not block")
	}
}

func (s *LockerTestSuite) TestZeroValueUsable() {
	var l Locker
	unlock := l.Lock("k")
	s.Equal(1, l.Len())
	unlock()
	s.Equal(0, l.Len())
}
