package reforge

import (
	"sync"
	"testing"
)

func TestFlag_ZeroValueClean(t *testing.T) {
	var f Flag
	if f.Consume() {
		t.Error("expected fresh flag to be clean")
	}
}

func TestFlag_MarkThenConsume(t *testing.T) {
	var f Flag
	f.Mark()
	if !f.Consume() {
		t.Error("expected marked flag to report a change")
	}
	if f.Consume() {
		t.Error("expected flag to be clean after consume")
	}
}

func TestFlag_MarksCoalesce(t *testing.T) {
	var f Flag
	f.Mark()
	f.Mark()
	f.Mark()
	if !f.Consume() {
		t.Error("expected marked flag to report a change")
	}
	if f.Consume() {
		t.Error("expected repeated marks to coalesce into one change")
	}
}

func TestFlag_ConcurrentMarksNeverLost(t *testing.T) {
	var f Flag

	const producers = 50
	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Mark()
			}
		}()
	}
	wg.Wait()

	if !f.Consume() {
		t.Error("expected a change after concurrent marks")
	}
	if f.Consume() {
		t.Error("expected flag clean after single consume with no further marks")
	}
}

func TestFlag_MarkAfterConsumeSticksAgain(t *testing.T) {
	var f Flag
	f.Mark()
	f.Consume()
	f.Mark()
	if !f.Consume() {
		t.Error("expected mark after consume to set the flag again")
	}
}
