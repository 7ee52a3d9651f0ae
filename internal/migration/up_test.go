package migration

import "testing"

func TestMigrationVersions(t *testing.T) {
	versions, err := migrationVersions()
	if err != nil {
		t.Fatalf("migrationVersions() err = %v", err)
	}
	want := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	if len(versions) != len(want) {
		t.Fatalf("got %v; want %v", versions, want)
	}
	for i := range want {
		if versions[i] != want[i] {
			t.Fatalf("got %v; want %v", versions, want)
		}
	}
}

func TestGetPreviousVersionFromDirty(t *testing.T) {
	tests := []struct {
		dirty   int
		want    uint64
		wantErr bool
	}{
		{dirty: 5, want: 4},
		{dirty: 2, want: 1},
		{dirty: 1, wantErr: true},
		{dirty: 42, wantErr: true},
	}
	for _, tc := range tests {
		got, err := getPreviousVersionFromDirty(tc.dirty)
		if (err != nil) != tc.wantErr {
			t.Fatalf("dirty %d: err = %v; wantErr %v", tc.dirty, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("dirty %d: got %d; want %d", tc.dirty, got, tc.want)
		}
	}
}
