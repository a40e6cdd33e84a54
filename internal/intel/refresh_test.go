package intel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeIntel is a scriptable Intelligence implementation.
type fakeIntel struct {
	leads    []Lead
	news     []NewsItem
	leadsErr error
	newsErr  error

	// block, when set, holds both discovery calls until released.
	block chan struct{}
}

func (f *fakeIntel) AnalyzeProfile(ctx context.Context, files []FileInput) (*Profile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeIntel) FindLeads(ctx context.Context, p *Profile) ([]Lead, error) {
	if f.block != nil {
		<-f.block
	}
	return f.leads, f.leadsErr
}

func (f *fakeIntel) GenerateOutreach(ctx context.Context, l Lead, p *Profile) (OutreachDrafts, error) {
	return OutreachDrafts{}, errors.New("not implemented")
}

func (f *fakeIntel) FetchNews(ctx context.Context) ([]NewsItem, error) {
	if f.block != nil {
		<-f.block
	}
	return f.news, f.newsErr
}

// fakeStore records ReplaceCollections calls.
type fakeStore struct {
	mu      sync.Mutex
	profile *Profile
	commits int
	leads   []Lead
	news    []NewsItem
}

func (s *fakeStore) LatestProfile(ctx context.Context) (*Profile, error) {
	return s.profile, nil
}

func (s *fakeStore) ReplaceCollections(ctx context.Context, leads []Lead, news []NewsItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commits++
	s.leads = leads
	s.news = news
	return nil
}

func testProfile() *Profile {
	return &Profile{
		ID:             ProfileID,
		RankedKeywords: []KeywordScore{{Keyword: "oncology", BaseScore: 95}},
	}
}

func TestRefresh_Success(t *testing.T) {
	st := &fakeStore{profile: testProfile()}
	fi := &fakeIntel{
		leads: []Lead{{ID: "lead-1"}, {ID: "lead-2"}},
		news:  []NewsItem{{ID: "news-1"}},
	}
	r := NewRefresher(st, fi)

	result, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if result.Leads != 2 || result.News != 1 {
		t.Errorf("result = %+v", result)
	}
	if st.commits != 1 {
		t.Errorf("commits = %d, want 1", st.commits)
	}
	if len(st.leads) != 2 || len(st.news) != 1 {
		t.Errorf("store got %d leads, %d news", len(st.leads), len(st.news))
	}
	if r.Busy() {
		t.Error("refresher still busy after completion")
	}
}

func TestRefresh_NoProfile(t *testing.T) {
	r := NewRefresher(&fakeStore{}, &fakeIntel{})
	if _, err := r.Refresh(context.Background()); !errors.Is(err, ErrNoProfile) {
		t.Errorf("expected ErrNoProfile, got %v", err)
	}
}

func TestRefresh_PartialFailureCommitsNothing(t *testing.T) {
	st := &fakeStore{profile: testProfile()}
	fi := &fakeIntel{
		leads:   []Lead{{ID: "lead-1"}},
		newsErr: errors.New("news backend down"),
	}
	r := NewRefresher(st, fi)

	if _, err := r.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if st.commits != 0 {
		t.Errorf("failed refresh committed %d times", st.commits)
	}
	if r.Busy() {
		t.Error("refresher stuck busy after failure")
	}
}

func TestRefresh_BusyGuard(t *testing.T) {
	st := &fakeStore{profile: testProfile()}
	fi := &fakeIntel{block: make(chan struct{})}
	r := NewRefresher(st, fi)

	done := make(chan error, 1)
	go func() {
		_, err := r.Refresh(context.Background())
		done <- err
	}()

	// Wait for the first refresh to claim the guard.
	for !r.Busy() {
		time.Sleep(time.Millisecond)
	}

	if _, err := r.Refresh(context.Background()); !errors.Is(err, ErrSyncInProgress) {
		t.Errorf("expected ErrSyncInProgress, got %v", err)
	}

	close(fi.block)
	if err := <-done; err != nil {
		t.Errorf("first refresh failed: %v", err)
	}
	if st.commits != 1 {
		t.Errorf("commits = %d, want 1", st.commits)
	}
}
