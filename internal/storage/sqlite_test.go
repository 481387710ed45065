package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveFloor(FloorEntry{
		Seed:      42,
		Topology:  "spanning-tree",
		RoomCount: 12,
		Hallways:  3,
		Layout:    "#####\n#...#\n#####",
	})
	if err != nil {
		t.Fatalf("SaveFloor() failed: %v", err)
	}

	_, err = store.SaveFloor(FloorEntry{
		Seed:      7,
		Topology:  "maze",
		RoomCount: 16,
		Layout:    "####",
	})
	if err != nil {
		t.Fatalf("SaveFloor() failed: %v", err)
	}

	entry, err := store.FloorByID(id)
	if err != nil {
		t.Fatalf("FloorByID() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("FloorByID() returned nil for existing floor")
	}
	if entry.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", entry.Seed)
	}
	if entry.Topology != "spanning-tree" {
		t.Errorf("Expected topology spanning-tree, got %s", entry.Topology)
	}
	if entry.Layout != "#####\n#...#\n#####" {
		t.Errorf("Layout mismatch: %q", entry.Layout)
	}

	// Most recent first
	recent, err := store.RecentFloors(10)
	if err != nil {
		t.Fatalf("RecentFloors() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected 2 floors, got %d", len(recent))
	}
	if recent[0].Topology != "maze" {
		t.Errorf("Expected most recent floor first, got %s", recent[0].Topology)
	}
}

func TestStoreFloorByIDMissing(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entry, err := store.FloorByID(999)
	if err != nil {
		t.Fatalf("FloorByID() failed: %v", err)
	}
	if entry != nil {
		t.Error("Expected nil for missing floor")
	}
}

func TestStoreFloorsByTopology(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		if _, err := store.SaveFloor(FloorEntry{Seed: uint64(i), Topology: "grid", RoomCount: 9, Layout: "#"}); err != nil {
			t.Fatalf("SaveFloor() failed: %v", err)
		}
	}
	if _, err := store.SaveFloor(FloorEntry{Seed: 99, Topology: "cellular", RoomCount: 20, Layout: "#"}); err != nil {
		t.Fatalf("SaveFloor() failed: %v", err)
	}

	grids, err := store.FloorsByTopology("grid", 10)
	if err != nil {
		t.Fatalf("FloorsByTopology() failed: %v", err)
	}
	if len(grids) != 3 {
		t.Errorf("Expected 3 grid floors, got %d", len(grids))
	}
}

func TestStoreDeleteAndClear(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveFloor(FloorEntry{Seed: 1, Topology: "grid", RoomCount: 4, Layout: "#"})
	if err != nil {
		t.Fatalf("SaveFloor() failed: %v", err)
	}
	if _, err := store.SaveFloor(FloorEntry{Seed: 2, Topology: "grid", RoomCount: 4, Layout: "#"}); err != nil {
		t.Fatalf("SaveFloor() failed: %v", err)
	}

	if err := store.DeleteFloor(id); err != nil {
		t.Fatalf("DeleteFloor() failed: %v", err)
	}
	entry, err := store.FloorByID(id)
	if err != nil {
		t.Fatalf("FloorByID() failed: %v", err)
	}
	if entry != nil {
		t.Error("Expected floor to be deleted")
	}

	if err := store.ClearFloors(); err != nil {
		t.Fatalf("ClearFloors() failed: %v", err)
	}
	recent, err := store.RecentFloors(10)
	if err != nil {
		t.Fatalf("RecentFloors() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected empty store, got %d floors", len(recent))
	}
}

func TestStoreTopologyStats(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveFloor(FloorEntry{Seed: 1, Topology: "maze", RoomCount: 10, Hallways: 2, Layout: "#"}); err != nil {
		t.Fatalf("SaveFloor() failed: %v", err)
	}
	if _, err := store.SaveFloor(FloorEntry{Seed: 2, Topology: "maze", RoomCount: 20, Hallways: 4, Layout: "#"}); err != nil {
		t.Fatalf("SaveFloor() failed: %v", err)
	}

	stats, err := store.GetTopologyStats()
	if err != nil {
		t.Fatalf("GetTopologyStats() failed: %v", err)
	}
	st, ok := stats["maze"]
	if !ok {
		t.Fatal("Expected stats for maze topology")
	}
	if st.FloorCount != 2 {
		t.Errorf("Expected 2 floors, got %d", st.FloorCount)
	}
	if st.AvgRooms != 15 {
		t.Errorf("Expected avg 15 rooms, got %f", st.AvgRooms)
	}
	if st.TotalHallways != 6 {
		t.Errorf("Expected 6 hallways total, got %d", st.TotalHallways)
	}
}
