package services

import (
	"log"
	"os"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"

	"placehub/internal/testutil"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	db, err := testutil.SetupTestDB("../../../.env.test", "../../../migrations")
	if err != nil {
		log.Printf("[TestMain services] database unavailable, DB tests will skip: %v", err)
	} else {
		testDB = db
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Broadcast(event string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string{}, n.events...)
}

type fixture struct {
	areas    *testutil.AreaStore
	places   *testutil.PlaceStore
	comments *testutil.CommentStore
	notifier *recordingNotifier
	resolver *AreaResolver
}

func newFixture() *fixture {
	areas := testutil.NewAreaStore()
	notifier := &recordingNotifier{}
	return &fixture{
		areas:    areas,
		places:   testutil.NewPlaceStore(areas),
		comments: testutil.NewCommentStore(),
		notifier: notifier,
		resolver: NewAreaResolver(areas, nil, notifier),
	}
}

func strPtr(s string) *string {
	return &s
}
