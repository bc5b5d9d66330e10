package reminder

import (
	"os"
	"testing"

	"github.com/doumi-inc/doumi-api/mocks"
)

var reminderWorker *ReminderWorker
var mongoMock *mocks.MockMongoStore

func TestMain(m *testing.M) {
	reminderWorker = NewReminderWorker("test", mongoMock, nil)
	reminderWorker.Register()
	os.Exit(m.Run())
}
