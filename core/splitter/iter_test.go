package splitter

import (
	"reflect"
	"testing"

	"github.com/phrasplit/phrasplit/core/segment"
)

func TestIteratorMatchesEagerSplit(t *testing.T) {
	text := "Test sentence one. Test sentence two.\n\nNew paragraph."
	opts := Options{Mode: ModeSentence, Backend: BackendFast}

	eager, err := Split(text, opts)
	if err != nil {
		t.Fatal(err)
	}

	it, err := NewIterator(text, opts)
	if err != nil {
		t.Fatal(err)
	}
	var lazy []segment.Segment
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		lazy = append(lazy, seg)
	}

	if !reflect.DeepEqual(eager, lazy) {
		t.Errorf("iterator output differs from eager split:\n eager %v\n lazy  %v", eager, lazy)
	}
}

func TestIteratorOrder(t *testing.T) {
	text := "S1. S2. S3."
	it, err := NewIterator(text, Options{Mode: ModeSentence, Backend: BackendFast})
	if err != nil {
		t.Fatal(err)
	}
	lastStart := -1
	count := 0
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		if seg.CharStart <= lastStart {
			t.Errorf("segment %d out of order: start %d after %d", count, seg.CharStart, lastStart)
		}
		lastStart = seg.CharStart
		count++
	}
	if count != 3 {
		t.Errorf("got %d segments, want 3", count)
	}
}

func TestIteratorEarlyStop(t *testing.T) {
	text := "First. Second. Third. Fourth."
	it, err := NewIterator(text, Options{Mode: ModeSentence, Backend: BackendFast})
	if err != nil {
		t.Fatal(err)
	}
	seg, ok := it.Next()
	if !ok || seg.Text != "First." {
		t.Fatalf("first pull = (%v, %v)", seg, ok)
	}
	// Stop consuming. Nothing to release or close.
}

func TestIteratorRestart(t *testing.T) {
	text := "Alpha. Beta."
	opts := Options{Mode: ModeSentence, Backend: BackendFast}

	first, err := NewIterator(text, opts)
	if err != nil {
		t.Fatal(err)
	}
	first.Next()
	first.Next()

	fresh, err := NewIterator(text, opts)
	if err != nil {
		t.Fatal(err)
	}
	seg, ok := fresh.Next()
	if !ok || seg.CharStart != 0 {
		t.Errorf("fresh iterator should restart at offset 0, got %v", seg)
	}
}

func TestIteratorExhaustionIsSticky(t *testing.T) {
	it, err := NewIterator("Only one.", Options{Mode: ModeSentence, Backend: BackendFast})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := it.Next(); !ok {
		t.Fatal("expected one segment")
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("exhausted iterator should keep returning false")
		}
	}
}

func TestIteratorEmptyInput(t *testing.T) {
	it, err := NewIterator("   \n\n   ", Options{Mode: ModeClause, Backend: BackendFast})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := it.Next(); ok {
		t.Error("whitespace-only input should yield no segments")
	}
}

func TestIteratorPropagatesConfigErrors(t *testing.T) {
	if _, err := NewIterator("text", Options{Mode: "book"}); err == nil {
		t.Error("expected invalid mode error")
	}
	if _, err := NewIterator("text", Options{MaxChars: -5}); err == nil {
		t.Error("expected invalid configuration error")
	}
}
