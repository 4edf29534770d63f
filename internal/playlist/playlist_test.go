package playlist_test

import (
	"testing"

	"mediashelf/internal/media"
	"mediashelf/internal/playlist"
)

func track(name string) media.Entry {
	return media.Entry{Name: name, Path: "/music/Beatles/Abbey Road/" + name, Kind: media.KindAudio}
}

func threeTracks() []media.Entry {
	return []media.Entry{track("01.mp3"), track("02.mp3"), track("03.mp3")}
}

func TestNewFiltersToAudio(t *testing.T) {
	files := []media.Entry{
		track("01.mp3"),
		{Name: "cover.jpg", Path: "/music/x/cover.jpg", Kind: media.KindImage},
		track("02.mp3"),
	}
	p := playlist.New(files)
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	got := p.Files()
	if got[0].Name != "01.mp3" || got[1].Name != "02.mp3" {
		t.Fatalf("relative order lost: %+v", got)
	}
	if current, ok := p.Current(); !ok || current.Name != "01.mp3" {
		t.Fatalf("Current = %+v, %v", current, ok)
	}
}

func TestNextWrapsAround(t *testing.T) {
	p := playlist.New(threeTracks())
	names := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		file, ok := p.Next()
		if !ok {
			t.Fatalf("Next #%d returned none", i+1)
		}
		names = append(names, file.Name)
	}
	want := []string{"02.mp3", "03.mp3", "01.mp3"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Next sequence = %v, want %v", names, want)
		}
	}
}

func TestPreviousWrapsFromStart(t *testing.T) {
	p := playlist.New(threeTracks())
	file, ok := p.Previous()
	if !ok || file.Name != "03.mp3" {
		t.Fatalf("Previous from index 0 = %+v, %v", file, ok)
	}
	if p.Index() != 2 {
		t.Fatalf("Index = %d, want 2", p.Index())
	}
}

func TestSetIndex(t *testing.T) {
	p := playlist.New(threeTracks())
	file, ok := p.SetIndex(2)
	if !ok || file.Name != "03.mp3" {
		t.Fatalf("SetIndex(2) = %+v, %v", file, ok)
	}
	for _, i := range []int{-1, 3, 100} {
		if _, ok := p.SetIndex(i); ok {
			t.Fatalf("SetIndex(%d) should fail", i)
		}
		if p.Index() != 2 {
			t.Fatalf("invalid SetIndex moved the cursor to %d", p.Index())
		}
	}
}

func TestSetByPath(t *testing.T) {
	p := playlist.New(threeTracks())
	file, ok := p.SetByPath("/music/Beatles/Abbey Road/02.mp3")
	if !ok || file.Name != "02.mp3" {
		t.Fatalf("SetByPath hit = %+v, %v", file, ok)
	}
	if _, ok := p.SetByPath("/nope"); ok {
		t.Fatal("SetByPath miss should return false")
	}
	if p.Index() != 1 {
		t.Fatalf("miss moved cursor to %d", p.Index())
	}
}

func TestReset(t *testing.T) {
	p := playlist.New(threeTracks())
	p.Next()
	p.Next()
	file, ok := p.Reset()
	if !ok || file.Name != "01.mp3" || p.Index() != 0 {
		t.Fatalf("Reset = %+v, %v, index %d", file, ok, p.Index())
	}
	// Reset at index 0 is still a reset.
	if file, ok := p.Reset(); !ok || file.Name != "01.mp3" {
		t.Fatalf("second Reset = %+v, %v", file, ok)
	}
}

func TestEmptyPlaylist(t *testing.T) {
	p := playlist.New([]media.Entry{
		{Name: "cover.jpg", Path: "/x/cover.jpg", Kind: media.KindImage},
	})
	if p.Len() != 0 {
		t.Fatalf("Len = %d", p.Len())
	}
	if _, ok := p.Current(); ok {
		t.Fatal("Current on empty playlist")
	}
	if _, ok := p.Next(); ok {
		t.Fatal("Next on empty playlist")
	}
	if _, ok := p.Previous(); ok {
		t.Fatal("Previous on empty playlist")
	}
	if _, ok := p.Reset(); ok {
		t.Fatal("Reset on empty playlist")
	}
	if p.HasNext() || p.HasPrevious() {
		t.Fatal("empty playlist claims navigable tracks")
	}
}

func TestHasNextAndPreviousWithSingleTrack(t *testing.T) {
	p := playlist.New([]media.Entry{track("only.mp3")})
	if !p.HasNext() || !p.HasPrevious() {
		t.Fatal("single-track playlist should wrap both ways")
	}
	if file, ok := p.Next(); !ok || file.Name != "only.mp3" {
		t.Fatalf("Next on single track = %+v, %v", file, ok)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	files := threeTracks()
	p := playlist.New(files)
	files[0].Name = "mutated.mp3"
	if got := p.Files()[0].Name; got != "01.mp3" {
		t.Fatalf("snapshot affected by caller mutation: %q", got)
	}
}
