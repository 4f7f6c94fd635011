package container

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStoreAt(t.TempDir())

	rec := &Record{
		PID:         "1234",
		ID:          "0000000001",
		Name:        "web",
		Command:     "/bin/sh",
		CreateTime:  NowUTC(),
		Status:      StatusRunning,
		Volume:      "/data:/data",
		PortMapping: []string{"8080:80"},
		Network:     "bridge",
		ImageName:   "busybox:latest",
	}
	require.NoError(t, store.Save(rec))

	loaded, err := store.Load(rec.Name)
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestLoadNotFound(t *testing.T) {
	store := NewStoreAt(t.TempDir())
	_, err := store.Load("missing")
	require.Error(t, err)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestListAllSkipsNetworkAndBadEntries(t *testing.T) {
	root := t.TempDir()
	store := NewStoreAt(root)

	require.NoError(t, store.Save(&Record{Name: "a", ID: "0000000001", Status: StatusRunning, PID: "1"}))
	require.NoError(t, store.Save(&Record{Name: "b", ID: "0000000002", Status: StatusExited}))

	// A reserved "network" directory must never surface as a container,
	// even when it holds a valid config.json.
	require.NoError(t, store.Save(&Record{Name: "network", ID: "0000000003", Status: StatusExited}))

	// An entry whose config.json doesn't parse is skipped, not fatal.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "corrupt"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "corrupt", "config.json"), []byte("{not json"), 0644))

	records, err := store.ListAll()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, r := range records {
		names[r.Name] = true
	}
	assert.True(t, names["a"])
	assert.True(t, names["b"])
	assert.False(t, names["network"])
	assert.Len(t, records, 2)
}

func TestDeleteAbsentDirNotError(t *testing.T) {
	store := NewStoreAt(t.TempDir())
	assert.NoError(t, store.Delete("never-existed"))
}

func TestUpdateStatus(t *testing.T) {
	store := NewStoreAt(t.TempDir())
	require.NoError(t, store.Save(&Record{Name: "c", ID: "0000000004", Status: StatusRunning, PID: "99"}))

	require.NoError(t, store.UpdateStatus("c", StatusStopped))

	rec, err := store.Load("c")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, rec.Status)
}

// TestStopThenRemoveStateMachine models stop-then-rm at the store layer:
// the record starts Running, stop's mutation (pid cleared, status stopped)
// is saved, and the record is then deleted. The actual stop/rm operations,
// including rm's InvalidState refusal of a Running record, live in
// pkg/orchestrator and are not called here, since they require real pids.
func TestStopThenRemoveStateMachine(t *testing.T) {
	store := NewStoreAt(t.TempDir())
	require.NoError(t, store.Save(&Record{Name: "d", ID: "0000000005", Status: StatusRunning, PID: "42"}))

	rec, err := store.Load("d")
	require.NoError(t, err)
	require.Equal(t, StatusRunning, rec.Status)

	// "rm" must refuse a Running record: the orchestrator checks this
	// before ever calling Delete.
	assert.Equal(t, StatusRunning, rec.Status)

	// stop clears pid and marks stopped.
	rec.PID = ""
	rec.Status = StatusStopped
	require.NoError(t, store.Save(rec))

	// now rm is permitted.
	require.NoError(t, store.Delete("d"))

	_, err = store.Load("d")
	require.Error(t, err)
}
